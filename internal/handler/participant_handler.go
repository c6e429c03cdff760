package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/jadwal-go-api/internal/service"
	"github.com/noah-isme/jadwal-go-api/internal/utils"
)

// ParticipantHandler wires the soft-delete ledger routes.
type ParticipantHandler struct {
	service service.ParticipantService
	logger  zerolog.Logger
}

// NewParticipantHandler constructs the handler.
func NewParticipantHandler(service service.ParticipantService, logger zerolog.Logger) *ParticipantHandler {
	return &ParticipantHandler{
		service: service,
		logger:  logger.With().Str("component", "participant_handler").Logger(),
	}
}

// RegisterAdmin attaches the ledger endpoints to the admin router group.
func (h *ParticipantHandler) RegisterAdmin(router fiber.Router) {
	router.Delete("/:id", h.softDelete)
	router.Post("/:id/restore", h.restore)
}

func (h *ParticipantHandler) softDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.SoftDelete(c.Context(), id); err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "participant deleted", fiber.Map{"id": id})
}

func (h *ParticipantHandler) restore(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Restore(c.Context(), id); err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "participant brought back", fiber.Map{"id": id})
}

func (h *ParticipantHandler) handleError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrParticipantNotFound) {
		return utils.SendError(c, fiber.StatusNotFound, "participant not found")
	}

	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
