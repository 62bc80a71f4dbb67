package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"natura-http-service/internal/domain/services"
	"natura-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{JWTSecretKey: "test-secret"}
	InitAuthMiddleware(cfg)

	r := gin.New()
	r.GET("/protected", AuthenticateAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAuthenticateAdminMissingHeader(t *testing.T) {
	r := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("状态码 = %d, 期望 401", w.Code)
	}
}

func TestAuthenticateAdminInvalidToken(t *testing.T) {
	r := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("状态码 = %d, 期望 401", w.Code)
	}
}

func TestAuthenticateAdminValidToken(t *testing.T) {
	r := newAuthRouter(t)

	svc := services.NewJWTService(&config.Config{JWTSecretKey: "test-secret"})
	token, err := svc.GenerateToken(1, "admin")
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("状态码 = %d, 期望 200, body=%s", w.Code, w.Body.String())
	}
}

func TestAuthenticateAdminWrongSecret(t *testing.T) {
	r := newAuthRouter(t)

	svc := services.NewJWTService(&config.Config{JWTSecretKey: "another-secret"})
	token, err := svc.GenerateToken(1, "admin")
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("状态码 = %d, 期望 401", w.Code)
	}
}
