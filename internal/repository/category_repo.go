package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/jadwal-go-api/internal/models"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	ListBySchedule(ctx context.Context, scheduleID string) ([]models.Category, error)
	GetByID(ctx context.Context, id string) (models.Category, error)
	GetWithParticipants(ctx context.Context, id string) (models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id string) error
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository instantiates a GORM-backed repository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) ListBySchedule(ctx context.Context, scheduleID string) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).
		Preload("Participants", orderParticipants).
		Preload("Participants.Couple.Members").
		Where("schedule_id = ?", scheduleID).
		Order("created_at ASC, id ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return models.Category{}, err
	}

	return category, nil
}

func (r *categoryRepository) GetWithParticipants(ctx context.Context, id string) (models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).
		Preload("Schedule").
		Preload("Participants", orderParticipants).
		Preload("Participants.Couple.Members").
		First(&category, "id = ?", id).Error; err != nil {
		return models.Category{}, err
	}

	return category, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// Delete removes a category together with its participants.
func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&models.Participant{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Category{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
