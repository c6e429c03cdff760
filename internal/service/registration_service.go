package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/noah-isme/jadwal-go-api/internal/dto"
	"github.com/noah-isme/jadwal-go-api/internal/models"
	"github.com/noah-isme/jadwal-go-api/internal/observability"
	"github.com/noah-isme/jadwal-go-api/internal/repository"
)

var (
	// ErrScheduleClosed indicates the parent schedule is forced shut.
	ErrScheduleClosed = errors.New("schedule is closed")
	// ErrScheduleNotActive indicates the registration window has not opened or already passed.
	ErrScheduleNotActive = errors.New("schedule is not active")
	// ErrNameRequired indicates the participant name is empty after trimming.
	ErrNameRequired = errors.New("participant name is required")
	// ErrDuplicateRegistration indicates the same registration was submitted moments ago.
	ErrDuplicateRegistration = errors.New("duplicate registration submission")
	// ErrCoupleWrite indicates the paired double-insert failed; the transaction
	// rolls back, but the caller should know no half-couple was committed.
	ErrCoupleWrite = errors.New("failed to persist paired registration")
)

// RegistrationService accepts registration attempts against categories.
type RegistrationService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.CategoryResponse, error)
}

type registrationService struct {
	categories   repository.CategoryRepository
	participants repository.ParticipantRepository
	cache        *redis.Client
	validator    *validator.Validate
	logger       zerolog.Logger
	dedupeTTL    time.Duration
	tracer       trace.Tracer
	now          func() time.Time
}

// NewRegistrationService builds the registration engine. The redis client is
// optional; without it the double-submit guard becomes a no-op.
func NewRegistrationService(categories repository.CategoryRepository, participants repository.ParticipantRepository, cache *redis.Client, validate *validator.Validate, dedupeTTL time.Duration, logger zerolog.Logger) RegistrationService {
	if dedupeTTL <= 0 {
		dedupeTTL = 30 * time.Second
	}
	return &registrationService{
		categories:   categories,
		participants: participants,
		cache:        cache,
		validator:    validate,
		logger:       logger.With().Str("component", "registration_service").Logger(),
		dedupeTTL:    dedupeTTL,
		tracer:       otel.Tracer("github.com/noah-isme/jadwal-go-api/internal/service/registration"),
		now:          time.Now,
	}
}

// Register validates the attempt in order: the category must exist, the
// schedule must not be forced closed, the schedule must be active, and the
// trimmed name must be non-empty. Capacity is never checked; a full category
// absorbs the participant onto the waitlist.
func (s *registrationService) Register(ctx context.Context, req dto.RegisterRequest) (dto.CategoryResponse, error) {
	ctx, span := s.tracer.Start(ctx, "registration.register")
	defer span.End()

	if err := s.validator.Struct(req); err != nil {
		span.SetStatus(codes.Error, "validation failed")
		return dto.CategoryResponse{}, err
	}

	category, err := s.categories.GetWithParticipants(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			observability.Registrations().WithLabelValues("not_found").Inc()
			return dto.CategoryResponse{}, ErrCategoryNotFound
		}
		span.RecordError(err)
		return dto.CategoryResponse{}, err
	}

	if category.Schedule == nil {
		return dto.CategoryResponse{}, fmt.Errorf("category %s has no parent schedule", category.ID)
	}

	if category.Schedule.IsForcedClosed() {
		observability.Registrations().WithLabelValues("closed").Inc()
		return dto.CategoryResponse{}, ErrScheduleClosed
	}

	if !category.Schedule.IsActiveAt(s.now()) {
		observability.Registrations().WithLabelValues("inactive").Inc()
		return dto.CategoryResponse{}, ErrScheduleNotActive
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		observability.Registrations().WithLabelValues("invalid").Inc()
		return dto.CategoryResponse{}, ErrNameRequired
	}

	partner := strings.TrimSpace(req.PartnerName)
	notes := strings.TrimSpace(req.Notes)

	span.SetAttributes(
		attribute.String("category.id", category.ID),
		attribute.Bool("registration.paired", partner != ""),
	)

	if s.cache != nil {
		checksum := registrationChecksum(category.ID, name, partner)
		key := fmt.Sprintf("register:dedupe:%s", checksum)
		ok, err := s.cache.SetNX(ctx, key, 1, s.dedupeTTL).Result()
		if err != nil {
			span.RecordError(err)
			return dto.CategoryResponse{}, err
		}
		if !ok {
			span.SetStatus(codes.Error, "duplicate submission")
			observability.Registrations().WithLabelValues("duplicate").Inc()
			return dto.CategoryResponse{}, ErrDuplicateRegistration
		}
	}

	if partner != "" {
		first := models.Participant{Name: name, Notes: notes, CategoryID: category.ID}
		second := models.Participant{Name: partner, Notes: notes, CategoryID: category.ID}
		if err := s.participants.CreatePair(ctx, &first, &second); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "couple insert failed")
			observability.Registrations().WithLabelValues("error").Inc()
			return dto.CategoryResponse{}, fmt.Errorf("%w: %v", ErrCoupleWrite, err)
		}
	} else {
		participant := models.Participant{Name: name, Notes: notes, CategoryID: category.ID}
		if err := s.participants.Create(ctx, &participant); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "insert failed")
			observability.Registrations().WithLabelValues("error").Inc()
			return dto.CategoryResponse{}, err
		}
	}

	refreshed, err := s.categories.GetWithParticipants(ctx, category.ID)
	if err != nil {
		span.RecordError(err)
		return dto.CategoryResponse{}, err
	}

	outcome := "confirmed"
	if refreshed.Capacity().SlotsLeft < 0 {
		outcome = "waitlisted"
	}
	observability.Registrations().WithLabelValues(outcome).Inc()

	s.logger.Info().
		Str("category_id", category.ID).
		Bool("paired", partner != "").
		Str("outcome", outcome).
		Msg("registration accepted")
	span.SetStatus(codes.Ok, "registered")

	return dto.NewCategoryResponse(refreshed), nil
}

func registrationChecksum(parts ...string) string {
	hasher := sha256.New()
	for _, part := range parts {
		hasher.Write([]byte(strings.ToLower(strings.TrimSpace(part))))
		hasher.Write([]byte("|"))
	}
	return hex.EncodeToString(hasher.Sum(nil))
}
