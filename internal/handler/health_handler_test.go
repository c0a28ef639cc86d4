package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/wawasandigital/contact-api/internal/config"
	"github.com/wawasandigital/contact-api/internal/handler"
)

func TestHealthCheck(t *testing.T) {
	cfg := config.Config{AppName: "Wawasan Contact API", AppEnv: "test"}

	app := fiber.New()
	app.Get("/health", handler.HealthCheck(cfg))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body handler.HealthResponse
	decodeResponse(t, resp, &body)
	require.Equal(t, "ok", body.Status)
	require.Equal(t, "Wawasan Contact API", body.Service)
	require.Equal(t, "test", body.Environment)
}
