package router_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/wawasandigital/contact-api/internal/config"
	"github.com/wawasandigital/contact-api/internal/middleware"
	"github.com/wawasandigital/contact-api/internal/router"
)

func newTestApp(allowOrigins string) *fiber.App {
	app := fiber.New()
	logger := zerolog.New(io.Discard)
	middleware.Register(app, middleware.Config{Logger: &logger, AllowOrigins: allowOrigins})
	router.Register(app, config.Config{AppName: "Wawasan Contact API", AppEnv: "test"}, router.Dependencies{})
	return app
}

func TestRouterHealthRoute(t *testing.T) {
	app := newTestApp("*")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "Wawasan Contact API", resp.Header.Get("X-Application"))
}

func TestRouterMetricsRoute(t *testing.T) {
	app := newTestApp("*")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	app := newTestApp("https://wawasandigital.example")

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/contact", nil)
	req.Header.Set("Origin", "https://wawasandigital.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, "https://wawasandigital.example", resp.Header.Get("Access-Control-Allow-Origin"))
	require.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "POST")
	require.Contains(t, resp.Header.Get("Access-Control-Allow-Headers"), "Content-Type")
}

func TestCORSRejectsUnknownOrigin(t *testing.T) {
	app := newTestApp("https://wawasandigital.example")

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/contact", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}
