package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newCORSApp() *fiber.App {
	app := fiber.New()
	api := app.Group("/api", middleware.CORS())
	api.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"pong": true})
	})
	return app
}

func assertCORSHeaders(t *testing.T, resp *http.Response) {
	t.Helper()
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, Authorization", resp.Header.Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
}

func TestCORSPreflight(t *testing.T) {
	app := newCORSApp()

	for _, path := range []string{"/api/ping", "/api/products/create", "/api/orders/abc/status"} {
		req := httptest.NewRequest(http.MethodOptions, path, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode, path)
		body, _ := io.ReadAll(resp.Body)
		assert.Empty(t, body)
		assertCORSHeaders(t, resp)
		resp.Body.Close()
	}
}

func TestCORSHeadersOnRegularResponses(t *testing.T) {
	app := newCORSApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/ping", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assertCORSHeaders(t, resp)
}

func TestCORSDoesNotApplyOutsideAPI(t *testing.T) {
	app := newCORSApp()
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	app := fiber.New()
	app.Use(middleware.RequestLogger(zap.New(core)))
	app.Get("/api/products", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/products", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()

	entries := logs.FilterMessage("incoming request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/api/products", fields["path"])
	assert.EqualValues(t, 200, fields["status"])
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := middleware.NewMetrics(reg)

	app := fiber.New()
	app.Use(m.Handler())
	app.Get("/api/orders/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNotFound) })

	for _, id := range []string{"a", "b"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/orders/"+id, nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
	}

	expected := `
# HELP storefront_http_requests_total Total number of HTTP requests by method, route and status
# TYPE storefront_http_requests_total counter
storefront_http_requests_total{method="GET",route="/api/orders/:id",status="404"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "storefront_http_requests_total"))
}
