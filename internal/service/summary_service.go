package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/noah-isme/jadwal-go-api/internal/repository"
)

const waitlistDivider = "*-----------WAITLIST-----------*"

// SummaryService renders a schedule's registrations as a plain-text digest
// meant for manual copy/paste into a chat. The digest is never stored.
type SummaryService interface {
	Summarize(ctx context.Context, scheduleID string) (string, error)
}

type summaryService struct {
	schedules repository.ScheduleRepository
	logger    zerolog.Logger
	tracer    trace.Tracer
}

// NewSummaryService builds the summary projector.
func NewSummaryService(schedules repository.ScheduleRepository, logger zerolog.Logger) SummaryService {
	return &summaryService{
		schedules: schedules,
		logger:    logger.With().Str("component", "summary_service").Logger(),
		tracer:    otel.Tracer("github.com/noah-isme/jadwal-go-api/internal/service/summary"),
	}
}

// Summarize writes one paragraph per category: title, instructor, then the
// numbered confirmed participants followed by a waitlist block when the
// category has overflowed. Withdrawn participants never appear.
func (s *summaryService) Summarize(ctx context.Context, scheduleID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "summary.summarize")
	defer span.End()

	schedule, err := s.schedules.GetWithParticipants(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			span.SetStatus(codes.Error, "schedule not found")
			return "", ErrScheduleNotFound
		}
		span.RecordError(err)
		return "", err
	}

	blocks := make([]string, 0, len(schedule.Categories))
	for _, category := range schedule.Categories {
		var b strings.Builder
		fmt.Fprintf(&b, "*%s*\n", strings.TrimSpace(category.Title))
		fmt.Fprintf(&b, "*INSTRUKTUR:* %s\n", strings.TrimSpace(category.Instructor))

		snapshot := category.Capacity()
		if len(snapshot.Active) == 0 {
			b.WriteString("Belum ada peserta")
		} else {
			lines := make([]string, 0, len(snapshot.Confirmed))
			for i, participant := range snapshot.Confirmed {
				lines = append(lines, fmt.Sprintf("%d. %s", i+1, strings.TrimSpace(participant.Name)))
			}
			b.WriteString(strings.Join(lines, "\n"))

			if len(snapshot.Waitlist) > 0 {
				b.WriteString("\n" + waitlistDivider)
				for i, participant := range snapshot.Waitlist {
					fmt.Fprintf(&b, "\n%d. %s", i+1, strings.TrimSpace(participant.Name))
				}
			}
		}

		blocks = append(blocks, b.String())
	}

	s.logger.Info().Str("schedule_id", scheduleID).Int("categories", len(blocks)).Msg("summary generated")
	span.SetStatus(codes.Ok, "summarized")

	return strings.Join(blocks, "\n\n"), nil
}
