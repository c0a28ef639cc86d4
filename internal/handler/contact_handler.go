package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/wawasandigital/contact-api/internal/dto"
	"github.com/wawasandigital/contact-api/internal/service"
	"github.com/wawasandigital/contact-api/internal/utils"
)

// genericFailure is the only message infrastructure errors may leak to callers.
const genericFailure = "Something went wrong. Please try again later."

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	service service.ContactService
	logger  zerolog.Logger
}

// NewContactHandler constructs a contact handler.
func NewContactHandler(service service.ContactService, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		logger:  logger.With().Str("component", "contact_handler").Logger(),
	}
}

// Register wires contact routes.
func (h *ContactHandler) Register(router fiber.Router) {
	router.Post("", h.submit)
}

func (h *ContactHandler) submit(c *fiber.Ctx) error {
	var payload dto.ContactRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	payload.IPAddress = c.IP()
	payload.UserAgent = string(c.Request().Header.UserAgent())

	result, err := h.service.Submit(c.Context(), payload)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			return utils.SendError(c, fiber.StatusBadRequest, verr.Message)
		case errors.Is(err, service.ErrContactDuplicate):
			return utils.SendError(c, fiber.StatusTooManyRequests, "Duplicate submission, please wait before retrying")
		default:
			h.logger.Error().Err(err).Msg("failed to process contact submission")
			return utils.SendError(c, fiber.StatusInternalServerError, genericFailure)
		}
	}

	return utils.SendSuccess(c, result.Ack, result.Lang)
}
