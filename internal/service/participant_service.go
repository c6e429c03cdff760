package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/jadwal-go-api/internal/observability"
	"github.com/noah-isme/jadwal-go-api/internal/repository"
)

// ErrParticipantNotFound indicates the requested participant does not exist.
var ErrParticipantNotFound = errors.New("participant not found")

// ParticipantService is the soft-delete ledger: it marks participants as
// withdrawn and brings them back without ever removing rows. Neither
// operation touches a couple partner.
type ParticipantService interface {
	SoftDelete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
}

type participantService struct {
	repo   repository.ParticipantRepository
	logger zerolog.Logger
	now    func() time.Time
}

// NewParticipantService builds the participant ledger service.
func NewParticipantService(repo repository.ParticipantRepository, logger zerolog.Logger) ParticipantService {
	return &participantService{
		repo:   repo,
		logger: logger.With().Str("component", "participant_service").Logger(),
		now:    time.Now,
	}
}

// SoftDelete marks the participant withdrawn. Deleting an already-withdrawn
// participant is a no-op success.
func (s *participantService) SoftDelete(ctx context.Context, id string) error {
	participant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrParticipantNotFound
		}
		return err
	}

	if participant.IsDeleted() {
		return nil
	}

	deletedAt := s.now()
	if err := s.repo.SetDeletedAt(ctx, id, &deletedAt); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrParticipantNotFound
		}
		return err
	}

	observability.LedgerOps().WithLabelValues("delete").Inc()
	s.logger.Info().Str("participant_id", id).Msg("participant withdrawn")
	return nil
}

// Restore clears the withdrawal marker, putting the participant back into the
// capacity calculation at their original registration position. Restoring an
// active participant is a no-op success.
func (s *participantService) Restore(ctx context.Context, id string) error {
	participant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrParticipantNotFound
		}
		return err
	}

	if !participant.IsDeleted() {
		return nil
	}

	if err := s.repo.SetDeletedAt(ctx, id, nil); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrParticipantNotFound
		}
		return err
	}

	observability.LedgerOps().WithLabelValues("restore").Inc()
	s.logger.Info().Str("participant_id", id).Msg("participant brought back")
	return nil
}
