package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/jadwal-go-api/internal/dto"
	"github.com/noah-isme/jadwal-go-api/internal/models"
	"github.com/noah-isme/jadwal-go-api/internal/repository"
)

var (
	// ErrScheduleNotFound indicates the requested schedule does not exist.
	ErrScheduleNotFound = errors.New("schedule not found")
	// ErrScheduleWindow indicates the closing time does not come after the opening time.
	ErrScheduleWindow = errors.New("closed time must be after open time")
)

// ScheduleService exposes schedule administration use cases.
type ScheduleService interface {
	List(ctx context.Context) ([]dto.ScheduleResponse, error)
	Get(ctx context.Context, id string) (dto.ScheduleResponse, error)
	Create(ctx context.Context, payload dto.ScheduleCreateRequest) (dto.ScheduleResponse, error)
	Update(ctx context.Context, id string, payload dto.ScheduleUpdateRequest) (dto.ScheduleResponse, error)
	ToggleStatus(ctx context.Context, id string) (dto.ScheduleResponse, error)
	Delete(ctx context.Context, id string) error
}

type scheduleService struct {
	repo      repository.ScheduleRepository
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewScheduleService builds a new schedule service.
func NewScheduleService(repo repository.ScheduleRepository, validate *validator.Validate, logger zerolog.Logger) ScheduleService {
	return &scheduleService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "schedule_service").Logger(),
		now:       time.Now,
	}
}

func (s *scheduleService) List(ctx context.Context) ([]dto.ScheduleResponse, error) {
	schedules, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewScheduleResponseSlice(schedules, s.now()), nil
}

func (s *scheduleService) Get(ctx context.Context, id string) (dto.ScheduleResponse, error) {
	schedule, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ScheduleResponse{}, ErrScheduleNotFound
		}
		return dto.ScheduleResponse{}, err
	}

	return dto.NewScheduleResponse(schedule, s.now()), nil
}

func (s *scheduleService) Create(ctx context.Context, payload dto.ScheduleCreateRequest) (dto.ScheduleResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ScheduleResponse{}, err
	}

	open, err := time.Parse(time.RFC3339, payload.Open)
	if err != nil {
		return dto.ScheduleResponse{}, fmt.Errorf("invalid open time: %w", err)
	}

	closed, err := time.Parse(time.RFC3339, payload.Closed)
	if err != nil {
		return dto.ScheduleResponse{}, fmt.Errorf("invalid closed time: %w", err)
	}

	if !closed.After(open) {
		return dto.ScheduleResponse{}, ErrScheduleWindow
	}

	schedule := models.Schedule{
		Title:  payload.Title,
		Desc:   payload.Desc,
		Open:   open,
		Closed: closed,
	}

	if err := s.repo.Create(ctx, &schedule); err != nil {
		return dto.ScheduleResponse{}, err
	}

	s.logger.Info().Str("schedule_id", schedule.ID).Msg("schedule created")

	return dto.NewScheduleResponse(schedule, s.now()), nil
}

func (s *scheduleService) Update(ctx context.Context, id string, payload dto.ScheduleUpdateRequest) (dto.ScheduleResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ScheduleResponse{}, err
	}

	schedule, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ScheduleResponse{}, ErrScheduleNotFound
		}
		return dto.ScheduleResponse{}, err
	}

	schedule.Title = payload.Title

	if payload.Desc != nil {
		schedule.Desc = *payload.Desc
	}

	if payload.Open != nil {
		open, err := time.Parse(time.RFC3339, *payload.Open)
		if err != nil {
			return dto.ScheduleResponse{}, fmt.Errorf("invalid open time: %w", err)
		}
		schedule.Open = open
	}

	if payload.Closed != nil {
		closed, err := time.Parse(time.RFC3339, *payload.Closed)
		if err != nil {
			return dto.ScheduleResponse{}, fmt.Errorf("invalid closed time: %w", err)
		}
		schedule.Closed = closed
	}

	if !schedule.Closed.After(schedule.Open) {
		return dto.ScheduleResponse{}, ErrScheduleWindow
	}

	if err := s.repo.Update(ctx, &schedule); err != nil {
		return dto.ScheduleResponse{}, err
	}

	s.logger.Info().Str("schedule_id", schedule.ID).Msg("schedule updated")

	return dto.NewScheduleResponse(schedule, s.now()), nil
}

// ToggleStatus flips the forced status: ACTIVE becomes CLOSED, anything else
// (including an unset status) becomes ACTIVE.
func (s *scheduleService) ToggleStatus(ctx context.Context, id string) (dto.ScheduleResponse, error) {
	schedule, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ScheduleResponse{}, ErrScheduleNotFound
		}
		return dto.ScheduleResponse{}, err
	}

	next := models.ScheduleStatusActive
	if schedule.Status != nil && *schedule.Status == models.ScheduleStatusActive {
		next = models.ScheduleStatusClosed
	}
	schedule.Status = &next

	if err := s.repo.Update(ctx, &schedule); err != nil {
		return dto.ScheduleResponse{}, err
	}

	s.logger.Info().Str("schedule_id", schedule.ID).Str("status", string(next)).Msg("schedule status toggled")

	return dto.NewScheduleResponse(schedule, s.now()), nil
}

func (s *scheduleService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScheduleNotFound
		}
		return err
	}

	s.logger.Info().Str("schedule_id", id).Msg("schedule deleted")
	return nil
}
