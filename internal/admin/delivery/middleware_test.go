package delivery

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"mailscope-backend/internal/admin/repository"
	"mailscope-backend/internal/admin/usecase"
	"mailscope-backend/pkg/config"
)

func newGuardedRouter(verifier CredentialVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", AdminMiddleware(verifier), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestStaticKeyVerifier(t *testing.T) {
	r := newGuardedRouter(&StaticKeyVerifier{Key: "top-secret"})

	cases := []struct {
		name string
		key  string
		want int
	}{
		{"correct key", "top-secret", http.StatusOK},
		{"wrong key", "nope", http.StatusUnauthorized},
		{"missing key", "", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			if tc.key != "" {
				req.Header.Set("X-Admin-Key", tc.key)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Errorf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}
}

func TestStaticKeyVerifier_NotConfigured(t *testing.T) {
	r := newGuardedRouter(&StaticKeyVerifier{})

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("X-Admin-Key", "anything")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

func TestSessionVerifier(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", AdminPassword: "hunter2", SessionDuration: time.Hour}
	adminUsecase := usecase.NewAdminUsecase(repository.NewMemorySessionRepository(), cfg)
	r := newGuardedRouter(&SessionVerifier{Admin: adminUsecase})

	resp, err := adminUsecase.Login("hunter2", "", "")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"valid session", "Bearer " + resp.Token, http.StatusOK},
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"unknown token", "Bearer not-a-real-token", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Errorf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}
}

func TestNewCredentialVerifier_ModeSelection(t *testing.T) {
	staticCfg := &config.Config{AdminAuthMode: "static", AdminKey: "k"}
	if _, ok := NewCredentialVerifier(staticCfg, nil).(*StaticKeyVerifier); !ok {
		t.Error("static mode did not select StaticKeyVerifier")
	}

	sessionCfg := &config.Config{AdminAuthMode: "session"}
	if _, ok := NewCredentialVerifier(sessionCfg, nil).(*SessionVerifier); !ok {
		t.Error("session mode did not select SessionVerifier")
	}
}
