package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bookhive/internal/api/models"
	"bookhive/internal/api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// stubAuthService accepts exactly one token and rejects everything else
type stubAuthService struct {
	validToken string
	userID     string
}

func (s *stubAuthService) Signup(name, email, password string) (*models.User, string, error) {
	return nil, "", nil
}

func (s *stubAuthService) Login(email, password string) (string, *models.User, error) {
	return "", nil, nil
}

func (s *stubAuthService) Logout(tokenString string) error {
	return nil
}

func (s *stubAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	if tokenString != s.validToken {
		return nil, service.ErrInvalidToken
	}
	return &service.Claims{UserID: s.userID}, nil
}

func setupProtectedRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", mw, func(c *gin.Context) {
		userID, _ := c.Get("userID")
		c.JSON(http.StatusOK, gin.H{"success": true, "data": userID})
	})
	return r
}

func get(r *gin.Engine, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	stub := &stubAuthService{validToken: "tok-1", userID: "user-1"}
	r := setupProtectedRouter(AuthMiddleware(stub))

	w := get(r, "/protected", map[string]string{"Authorization": "Bearer tok-1"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	stub := &stubAuthService{validToken: "tok-1", userID: "user-1"}
	r := setupProtectedRouter(AuthMiddleware(stub))

	w := get(r, "/protected", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	stub := &stubAuthService{validToken: "tok-1", userID: "user-1"}
	r := setupProtectedRouter(AuthMiddleware(stub))

	for _, header := range []string{"tok-1", "Basic tok-1", "Bearer"} {
		w := get(r, "/protected", map[string]string{"Authorization": header})
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthMiddleware_RejectedToken(t *testing.T) {
	stub := &stubAuthService{validToken: "tok-1", userID: "user-1"}
	r := setupProtectedRouter(AuthMiddleware(stub))

	w := get(r, "/protected", map[string]string{"Authorization": "Bearer forged"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid token")
}

func TestRateLimit_BurstThenThrottle(t *testing.T) {
	// rps near zero, so the bucket never refills during the test
	r := setupProtectedRouter(RateLimit(0.0001, 2))

	first := get(r, "/protected", nil)
	second := get(r, "/protected", nil)
	third := get(r, "/protected", nil)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
}

func TestCORS_AllowedOrigin(t *testing.T) {
	r := setupProtectedRouter(CORS("http://localhost:5173"))

	w := get(r, "/protected", map[string]string{"Origin": "http://localhost:5173"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_UnknownOrigin(t *testing.T) {
	r := setupProtectedRouter(CORS("http://localhost:5173"))

	w := get(r, "/protected", map[string]string{"Origin": "http://evil.example"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS("http://localhost:5173"))
	r.POST("/protected", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/protected", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}
