package ratelimit_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"taskapp/pkg/ratelimit"
)

func newLimitedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(ratelimit.NewRateLimiter(nil).Middleware())

	router.POST("/api/auth/register", func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	router.GET("/api/todos", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router
}

func hit(router *gin.Engine, method, path, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = remoteAddr

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestRegisterWindowCapsAtFive(t *testing.T) {
	router := newLimitedRouter()

	for i := 0; i < 5; i++ {
		rec := hit(router, http.MethodPost, "/api/auth/register", "10.0.0.1:1234")
		assert.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := hit(router, http.MethodPost, "/api/auth/register", "10.0.0.1:1234")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestWindowsAreKeyedPerClient(t *testing.T) {
	router := newLimitedRouter()

	for i := 0; i < 6; i++ {
		hit(router, http.MethodPost, "/api/auth/register", "10.0.0.1:1234")
	}

	// A different client address gets its own window.
	rec := hit(router, http.MethodPost, "/api/auth/register", "10.0.0.2:1234")

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestDefaultLimitAppliesToUnlistedRoutes(t *testing.T) {
	router := newLimitedRouter()

	for i := 0; i < 100; i++ {
		rec := hit(router, http.MethodGet, "/api/todos", "10.0.0.1:1234")
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := hit(router, http.MethodGet, "/api/todos", "10.0.0.1:1234")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
