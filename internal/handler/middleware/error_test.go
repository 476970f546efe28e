//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"courtbook/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func performGet(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	assert.NoError(t, err)
	router.ServeHTTP(w, req)
	return w
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("leaves written responses alone", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/ok", func(c *gin.Context) {
			c.JSON(http.StatusCreated, gin.H{"id": "x"})
		})

		w := performGet(t, router, "/ok")
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":"x"}`, w.Body.String())
	})

	t.Run("falls back to 500 when a handler writes nothing", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/silent", func(c *gin.Context) {
			_ = c.Error(errors.New("lookup failed"))
		})

		w := performGet(t, router, "/silent")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	})

	t.Run("preserves an explicit status set without a body", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/gone", func(c *gin.Context) {
			c.Status(http.StatusGone)
		})

		w := performGet(t, router, "/gone")
		assert.Equal(t, http.StatusGone, w.Code)
	})
}

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.CustomRecovery())
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := performGet(t, router, "/panic")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}
