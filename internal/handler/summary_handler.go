package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/jadwal-go-api/internal/service"
	"github.com/noah-isme/jadwal-go-api/internal/utils"
)

// SummaryHandler wires the schedule summary route.
type SummaryHandler struct {
	service service.SummaryService
	logger  zerolog.Logger
}

// NewSummaryHandler constructs the handler.
func NewSummaryHandler(service service.SummaryService, logger zerolog.Logger) *SummaryHandler {
	return &SummaryHandler{
		service: service,
		logger:  logger.With().Str("component", "summary_handler").Logger(),
	}
}

// RegisterAdmin attaches the summary endpoint to the admin router group.
func (h *SummaryHandler) RegisterAdmin(router fiber.Router) {
	router.Get("/:id/summary", h.summarize)
}

func (h *SummaryHandler) summarize(c *fiber.Ctx) error {
	summary, err := h.service.Summarize(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrScheduleNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "schedule not found")
		}
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}

	return utils.SendSuccess(c, "summary generated", summary)
}
