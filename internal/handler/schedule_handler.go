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

// ScheduleHandler wires schedule HTTP routes.
type ScheduleHandler struct {
	service service.ScheduleService
	logger  zerolog.Logger
}

// NewScheduleHandler constructs the handler.
func NewScheduleHandler(service service.ScheduleService, logger zerolog.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		service: service,
		logger:  logger.With().Str("component", "schedule_handler").Logger(),
	}
}

// RegisterPublic attaches the read-only schedule endpoints.
func (h *ScheduleHandler) RegisterPublic(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
}

// RegisterAdmin attaches the schedule administration endpoints.
func (h *ScheduleHandler) RegisterAdmin(router fiber.Router) {
	router.Post("", h.create)
	router.Put("/:id", h.update)
	router.Patch("/:id/status", h.toggleStatus)
	router.Delete("/:id", h.delete)
}

func (h *ScheduleHandler) list(c *fiber.Ctx) error {
	schedules, err := h.service.List(c.Context())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "schedules retrieved", schedules)
}

func (h *ScheduleHandler) get(c *fiber.Ctx) error {
	schedule, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "schedule retrieved", schedule)
}

func (h *ScheduleHandler) create(c *fiber.Ctx) error {
	var payload dto.ScheduleCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	schedule, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "schedule created", schedule)
}

func (h *ScheduleHandler) update(c *fiber.Ctx) error {
	var payload dto.ScheduleUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	schedule, err := h.service.Update(c.Context(), c.Params("id"), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "schedule updated", schedule)
}

func (h *ScheduleHandler) toggleStatus(c *fiber.Ctx) error {
	schedule, err := h.service.ToggleStatus(c.Context(), c.Params("id"))
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "schedule status toggled", schedule)
}

func (h *ScheduleHandler) delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Delete(c.Context(), id); err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "schedule deleted", fiber.Map{"id": id})
}

func (h *ScheduleHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, service.ErrScheduleNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "schedule not found")
	case errors.Is(err, service.ErrScheduleWindow):
		return utils.SendError(c, fiber.StatusBadRequest, "closed time must be after open time")
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		return h.internalError(c, err)
	}
}

func (h *ScheduleHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
