package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newAuthRouter(adminKeyHash string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(AdminAuth(adminKeyHash, zap.NewNop()))
	router.POST("/suppliers", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestAdminAuth(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-key"), 10)
	require.NoError(t, err)

	t.Run("empty hash disables the check", func(t *testing.T) {
		router := newAuthRouter("")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/suppliers", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing key is rejected", func(t *testing.T) {
		router := newAuthRouter(string(hash))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/suppliers", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong key is rejected", func(t *testing.T) {
		router := newAuthRouter(string(hash))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/suppliers", nil)
		req.Header.Set("Authorization", "Bearer wrong-key")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid key passes", func(t *testing.T) {
		router := newAuthRouter(string(hash))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/suppliers", nil)
		req.Header.Set("Authorization", "Bearer secret-key")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
