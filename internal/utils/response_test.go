package utils_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/wawasandigital/contact-api/internal/utils"
)

func performRequest(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	return resp
}

func TestSendSuccess(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c *fiber.Ctx) error {
		return utils.SendSuccess(c, "Message received", "en")
	})

	resp := performRequest(t, app, "/ok")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, true, body["success"])
	require.Equal(t, "Message received", body["message"])
	require.Equal(t, "en", body["lang"])
}

func TestSendSuccessOmitsEmptyLang(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c *fiber.Ctx) error {
		return utils.SendSuccess(c, "", "")
	})

	resp := performRequest(t, app, "/ok")

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "success", body["message"])
	require.NotContains(t, body, "lang")
}

func TestSendError(t *testing.T) {
	app := fiber.New()
	app.Get("/bad", func(c *fiber.Ctx) error {
		return utils.SendError(c, fiber.StatusBadRequest, "All fields are required")
	})

	resp := performRequest(t, app, "/bad")
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body utils.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "All fields are required", body.Error)
}

func TestErrorHandlerTranslatesFiberErrors(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: utils.ErrorHandler})
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	resp := performRequest(t, app, "/teapot")
	require.Equal(t, fiber.StatusTeapot, resp.StatusCode)

	var body utils.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "short and stout", body.Error)
}
