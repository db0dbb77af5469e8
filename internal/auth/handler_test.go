package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangeeth-21/velkani-admin/internal/config"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *JWTManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := HashPassword("letmein123")
	require.NoError(t, err)

	cfg := config.Config{
		AdminEmail:        "admin@velkani.test",
		AdminPasswordHash: hash,
	}
	jwtMgr := NewJWTManager(JWTConfig{
		Issuer:       "velkani-admin",
		AccessSecret: "test-secret",
		AccessTTLMin: 5,
	})
	h := NewHandler(cfg, jwtMgr)

	r := gin.New()
	r.POST("/login", h.Login)
	protected := r.Group("/", AuthMiddleware(jwtMgr), RequireRole("admin"))
	protected.GET("/me", h.Me)
	return r, jwtMgr
}

func login(t *testing.T, r *gin.Engine, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body)))
	return w
}

func TestLoginIssuesAdminToken(t *testing.T) {
	r, jwtMgr := newAuthRouter(t)

	w := login(t, r, "Admin@Velkani.test", "letmein123")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	claims, err := jwtMgr.ParseAccess(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin@velkani.test", claims.Email)
	assert.Equal(t, "admin", claims.Role)

	me := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.AccessToken)
	r.ServeHTTP(me, req)
	assert.Equal(t, http.StatusOK, me.Code)
	assert.Contains(t, me.Body.String(), "admin@velkani.test")
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	r, _ := newAuthRouter(t)
	w := login(t, r, "admin@velkani.test", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	r, _ := newAuthRouter(t)
	w := login(t, r, "other@velkani.test", "letmein123")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
