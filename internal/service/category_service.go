package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/jadwal-go-api/internal/dto"
	"github.com/noah-isme/jadwal-go-api/internal/models"
	"github.com/noah-isme/jadwal-go-api/internal/repository"
)

// ErrCategoryNotFound indicates the requested category does not exist.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryService exposes category administration use cases.
type CategoryService interface {
	ListBySchedule(ctx context.Context, scheduleID string) ([]dto.CategoryResponse, error)
	Create(ctx context.Context, payload dto.CategoryCreateRequest) (dto.CategoryResponse, error)
	Update(ctx context.Context, id string, payload dto.CategoryUpdateRequest) (dto.CategoryResponse, error)
	Delete(ctx context.Context, id string) error
}

type categoryService struct {
	repo      repository.CategoryRepository
	schedules repository.ScheduleRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewCategoryService builds a new category service.
func NewCategoryService(repo repository.CategoryRepository, schedules repository.ScheduleRepository, validate *validator.Validate, logger zerolog.Logger) CategoryService {
	return &categoryService{
		repo:      repo,
		schedules: schedules,
		validator: validate,
		logger:    logger.With().Str("component", "category_service").Logger(),
	}
}

func (s *categoryService) ListBySchedule(ctx context.Context, scheduleID string) ([]dto.CategoryResponse, error) {
	if _, err := s.schedules.GetByID(ctx, scheduleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}

	categories, err := s.repo.ListBySchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	return dto.NewCategoryResponseSlice(categories), nil
}

func (s *categoryService) Create(ctx context.Context, payload dto.CategoryCreateRequest) (dto.CategoryResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.CategoryResponse{}, err
	}

	if _, err := s.schedules.GetByID(ctx, payload.ScheduleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CategoryResponse{}, ErrScheduleNotFound
		}
		return dto.CategoryResponse{}, err
	}

	category := models.Category{
		Title:      payload.Title,
		Instructor: payload.Instructor,
		Slot:       payload.Slot,
		Desc:       payload.Desc,
		ScheduleID: payload.ScheduleID,
	}

	if err := s.repo.Create(ctx, &category); err != nil {
		return dto.CategoryResponse{}, err
	}

	s.logger.Info().Str("category_id", category.ID).Str("schedule_id", category.ScheduleID).Msg("category created")

	return dto.NewCategoryResponse(category), nil
}

func (s *categoryService) Update(ctx context.Context, id string, payload dto.CategoryUpdateRequest) (dto.CategoryResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.CategoryResponse{}, err
	}

	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CategoryResponse{}, ErrCategoryNotFound
		}
		return dto.CategoryResponse{}, err
	}

	category.Title = payload.Title
	category.Instructor = payload.Instructor
	category.Slot = payload.Slot
	category.Desc = payload.Desc

	if err := s.repo.Update(ctx, &category); err != nil {
		return dto.CategoryResponse{}, err
	}

	refreshed, err := s.repo.GetWithParticipants(ctx, id)
	if err != nil {
		return dto.CategoryResponse{}, err
	}

	s.logger.Info().Str("category_id", category.ID).Msg("category updated")

	return dto.NewCategoryResponse(refreshed), nil
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	s.logger.Info().Str("category_id", id).Msg("category deleted")
	return nil
}
