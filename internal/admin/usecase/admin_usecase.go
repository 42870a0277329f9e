package usecase

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	admindomain "mailscope-backend/internal/admin/domain"
	admindto "mailscope-backend/internal/admin/dto"
	"mailscope-backend/internal/admin/repository"
	"mailscope-backend/pkg/config"
)

const adminUsername = "admin"

// adminUsecase implements AdminUsecase
type adminUsecase struct {
	sessionRepo repository.SessionRepository
	config      *config.Config
}

// NewAdminUsecase creates a new instance of adminUsecase
func NewAdminUsecase(sessionRepo repository.SessionRepository, cfg *config.Config) AdminUsecase {
	return &adminUsecase{
		sessionRepo: sessionRepo,
		config:      cfg,
	}
}

func (u *adminUsecase) Login(password, ipAddress, userAgent string) (*admindto.LoginResponse, error) {
	if err := u.checkPassword(password); err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(u.config.SessionDuration)
	token, err := u.generateToken(expiresAt)
	if err != nil {
		return nil, err
	}

	session := &admindomain.AdminSession{
		Token:     token,
		Username:  adminUsername,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		ExpiresAt: expiresAt,
		IsActive:  true,
	}
	if err := u.sessionRepo.Create(session); err != nil {
		return nil, err
	}

	return &admindto.LoginResponse{
		Success:   true,
		Token:     token,
		ExpiresAt: expiresAt,
		Message:   "Login successful",
	}, nil
}

func (u *adminUsecase) Logout(token string) error {
	err := u.sessionRepo.Deactivate(token)
	if err == repository.ErrSessionNotFound {
		return ErrSessionNotFound
	}
	return err
}

func (u *adminUsecase) VerifySession(token string) (*admindomain.AdminSession, error) {
	parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	session, err := u.sessionRepo.FindActiveByToken(token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrInvalidToken
	}

	if err := u.sessionRepo.Touch(session.ID); err != nil {
		return nil, err
	}
	session.LastActivityAt = time.Now()
	return session, nil
}

// checkPassword prefers the bcrypt hash when configured and falls back to a
// direct comparison against the plaintext env value.
func (u *adminUsecase) checkPassword(password string) error {
	if u.config.AdminPasswordHash != "" {
		if bcrypt.CompareHashAndPassword([]byte(u.config.AdminPasswordHash), []byte(password)) != nil {
			return ErrInvalidPassword
		}
		return nil
	}
	if u.config.AdminPassword == "" {
		return ErrPasswordNotConfigured
	}
	if password != u.config.AdminPassword {
		return ErrInvalidPassword
	}
	return nil
}

func (u *adminUsecase) generateToken(expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"username":   adminUsername,
		"session_id": uuid.New().String(),
		"exp":        expiresAt.Unix(),
		"iat":        time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}
