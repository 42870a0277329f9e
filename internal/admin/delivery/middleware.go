package delivery

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mailscope-backend/internal/admin/usecase"
	"mailscope-backend/pkg/config"
)

var errUnauthorized = errors.New("unauthorized admin")

// CredentialVerifier checks the admin credential carried on a request. Two
// interchangeable strategies exist; the admin surface never hardcodes either.
type CredentialVerifier interface {
	Verify(c *gin.Context) error
}

// StaticKeyVerifier compares the X-Admin-Key header against a shared secret.
type StaticKeyVerifier struct {
	Key string
}

func (v *StaticKeyVerifier) Verify(c *gin.Context) error {
	if v.Key == "" {
		return usecase.ErrPasswordNotConfigured
	}
	key := c.GetHeader("X-Admin-Key")
	if subtle.ConstantTimeCompare([]byte(key), []byte(v.Key)) != 1 {
		return errUnauthorized
	}
	return nil
}

// SessionVerifier validates a Bearer token against the session store.
type SessionVerifier struct {
	Admin usecase.AdminUsecase
}

func (v *SessionVerifier) Verify(c *gin.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return errUnauthorized
	}
	if _, err := v.Admin.VerifySession(token); err != nil {
		return errUnauthorized
	}
	return nil
}

// NewCredentialVerifier picks the strategy configured by ADMIN_AUTH_MODE.
func NewCredentialVerifier(cfg *config.Config, adminUsecase usecase.AdminUsecase) CredentialVerifier {
	if cfg.AdminAuthMode == "static" {
		return &StaticKeyVerifier{Key: cfg.AdminKey}
	}
	return &SessionVerifier{Admin: adminUsecase}
}

// AdminMiddleware guards mutating admin endpoints with the configured
// credential strategy.
func AdminMiddleware(verifier CredentialVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := verifier.Verify(c); err != nil {
			if errors.Is(err, usecase.ErrPasswordNotConfigured) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "admin credential not configured"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized admin"})
			}
			c.Abort()
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}
