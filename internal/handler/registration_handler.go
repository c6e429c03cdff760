package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/jadwal-go-api/internal/dto"
	"github.com/noah-isme/jadwal-go-api/internal/service"
	"github.com/noah-isme/jadwal-go-api/internal/utils"
)

// RegistrationHandler wires the public registration route.
type RegistrationHandler struct {
	service service.RegistrationService
	logger  zerolog.Logger
}

// NewRegistrationHandler constructs the handler.
func NewRegistrationHandler(service service.RegistrationService, logger zerolog.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		service: service,
		logger:  logger.With().Str("component", "registration_handler").Logger(),
	}
}

// Register attaches the registration endpoint to the router group.
func (h *RegistrationHandler) Register(router fiber.Router) {
	router.Post("", h.register)
}

func (h *RegistrationHandler) register(c *fiber.Ctx) error {
	var payload dto.RegisterRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	category, err := h.service.Register(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "registration accepted", category)
}

func (h *RegistrationHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, service.ErrCategoryNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "category not found")
	case errors.Is(err, service.ErrScheduleClosed):
		return utils.SendError(c, fiber.StatusBadRequest, "schedule is closed")
	case errors.Is(err, service.ErrScheduleNotActive):
		return utils.SendError(c, fiber.StatusBadRequest, "schedule is not active")
	case errors.Is(err, service.ErrNameRequired):
		return utils.SendError(c, fiber.StatusBadRequest, "name is required")
	case errors.Is(err, service.ErrDuplicateRegistration):
		return utils.SendError(c, fiber.StatusTooManyRequests, "registration already submitted, please wait")
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	case errors.Is(err, service.ErrCoupleWrite):
		h.logger.Error().Err(err).Msg("paired registration failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to persist paired registration")
	default:
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
