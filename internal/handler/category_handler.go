package handler

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/jadwal-go-api/internal/dto"
	"github.com/noah-isme/jadwal-go-api/internal/service"
	"github.com/noah-isme/jadwal-go-api/internal/utils"
)

// CategoryHandler wires category HTTP routes.
type CategoryHandler struct {
	service service.CategoryService
	logger  zerolog.Logger
}

// NewCategoryHandler constructs the handler.
func NewCategoryHandler(service service.CategoryService, logger zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		logger:  logger.With().Str("component", "category_handler").Logger(),
	}
}

// RegisterPublic attaches the read-only category endpoints.
func (h *CategoryHandler) RegisterPublic(router fiber.Router) {
	router.Get("", h.listBySchedule)
}

// RegisterAdmin attaches the category administration endpoints.
func (h *CategoryHandler) RegisterAdmin(router fiber.Router) {
	router.Post("", h.create)
	router.Put("/:id", h.update)
	router.Delete("/:id", h.delete)
}

func (h *CategoryHandler) listBySchedule(c *fiber.Ctx) error {
	scheduleID := strings.TrimSpace(c.Query("schedule_id"))
	if scheduleID == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "schedule_id is required")
	}

	categories, err := h.service.ListBySchedule(c.Context(), scheduleID)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "categories retrieved", categories)
}

func (h *CategoryHandler) create(c *fiber.Ctx) error {
	var payload dto.CategoryCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	category, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "category created", category)
}

func (h *CategoryHandler) update(c *fiber.Ctx) error {
	var payload dto.CategoryUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	category, err := h.service.Update(c.Context(), c.Params("id"), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "category updated", category)
}

func (h *CategoryHandler) delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Delete(c.Context(), id); err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "category deleted", fiber.Map{"id": id})
}

func (h *CategoryHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, service.ErrCategoryNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "category not found")
	case errors.Is(err, service.ErrScheduleNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "schedule not found")
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
