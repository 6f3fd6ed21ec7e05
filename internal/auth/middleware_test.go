package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hasanarofid/lms-assessment/config"
	"github.com/hasanarofid/lms-assessment/internal/auth"
	"github.com/stretchr/testify/require"
)

func newRouter(mw *auth.Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", mw.RequireUser(), func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "identity not set"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func TestRequireUserValidToken(t *testing.T) {
	mw := auth.NewMiddleware(&config.Config{JWTSecret: "test-secret"})
	token, err := mw.Sign(42, time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	newRouter(mw).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"user_id":42`)
}

func TestRequireUserMissingHeader(t *testing.T) {
	mw := auth.NewMiddleware(&config.Config{JWTSecret: "test-secret"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	newRouter(mw).ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireUserBadToken(t *testing.T) {
	mw := auth.NewMiddleware(&config.Config{JWTSecret: "test-secret"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	newRouter(mw).ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireUserWrongSecret(t *testing.T) {
	issuer := auth.NewMiddleware(&config.Config{JWTSecret: "other-secret"})
	token, err := issuer.Sign(42, time.Hour)
	require.NoError(t, err)

	mw := auth.NewMiddleware(&config.Config{JWTSecret: "test-secret"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	newRouter(mw).ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestParseExpiredToken(t *testing.T) {
	mw := auth.NewMiddleware(&config.Config{JWTSecret: "test-secret"})
	token, err := mw.Sign(42, -time.Minute)
	require.NoError(t, err)

	_, err = mw.Parse(token)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}
