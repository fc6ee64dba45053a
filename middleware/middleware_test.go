package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/seo-optimizer/backend/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(r http.Handler, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), ErrorHandler(zaptest.NewLogger(t)))
	r.GET("/panic", func(*gin.Context) { panic("boom") })
	r.GET("/error", func(c *gin.Context) { _ = c.Error(errors.New("handler failed")) })

	w := perform(r, http.MethodGet, "/panic", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "An unexpected error occurred")

	w = perform(r, http.MethodGet, "/error", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "handler failed")
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := perform(r, http.MethodGet, "/", nil)
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	w = perform(r, http.MethodGet, "/", http.Header{RequestIDHeader: {"abc-123"}})
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 2, zaptest.NewLogger(t))
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	r := gin.New()
	r.Use(rl.RateLimit())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/", nil).Code)
	assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, perform(r, http.MethodGet, "/", nil).Code)

	now = now.Add(time.Second)
	assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/", nil).Code, "bucket refills over time")

	assert.True(t, rl.Allow("other-client"), "clients have separate buckets")
	require.Equal(t, 2, rl.Clients())

	now = now.Add(time.Hour)
	assert.Equal(t, 2, rl.Prune(time.Minute))
	assert.Zero(t, rl.Clients())
}

type observerFunc func(method, route string, status int, elapsed time.Duration)

func (f observerFunc) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	f(method, route, status, elapsed)
}

func TestStats(t *testing.T) {
	stats := logging.NewStatistics(true)
	var routes []string
	observer := observerFunc(func(method, route string, status int, _ time.Duration) {
		routes = append(routes, method+" "+route)
	})

	r := gin.New()
	r.Use(Stats(stats, zaptest.NewLogger(t), observer))
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/fail", func(c *gin.Context) { c.Status(http.StatusBadGateway) })

	perform(r, http.MethodGet, "/items/1", nil)
	perform(r, http.MethodGet, "/items/2", nil)
	perform(r, http.MethodGet, "/fail", nil)
	perform(r, http.MethodGet, "/missing", nil)

	assert.Equal(t, []string{"GET /items/:id", "GET /items/:id", "GET /fail", "GET unmatched"}, routes)
	assert.Equal(t, 25.0, stats.ErrorRate())
	top := stats.TopEndpoints(1)
	require.Len(t, top, 1)
	assert.Equal(t, logging.EndpointCount{Endpoint: "GET /items/:id", Count: 2}, top[0])
}
