package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/jadwal-go-api/internal/models"
)

// ScheduleRepository defines persistence operations for schedules.
type ScheduleRepository interface {
	List(ctx context.Context) ([]models.Schedule, error)
	GetByID(ctx context.Context, id string) (models.Schedule, error)
	GetWithParticipants(ctx context.Context, id string) (models.Schedule, error)
	Create(ctx context.Context, schedule *models.Schedule) error
	Update(ctx context.Context, schedule *models.Schedule) error
	Delete(ctx context.Context, id string) error
}

type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository instantiates a GORM-backed repository.
func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) List(ctx context.Context) ([]models.Schedule, error) {
	var schedules []models.Schedule
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Order("created_at DESC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}

	return schedules, nil
}

func (r *scheduleRepository) GetByID(ctx context.Context, id string) (models.Schedule, error) {
	var schedule models.Schedule
	if err := r.db.WithContext(ctx).First(&schedule, "id = ?", id).Error; err != nil {
		return models.Schedule{}, err
	}

	return schedule, nil
}

func (r *scheduleRepository) GetWithParticipants(ctx context.Context, id string) (models.Schedule, error) {
	var schedule models.Schedule
	if err := r.db.WithContext(ctx).
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Preload("Categories.Participants", orderParticipants).
		Preload("Categories.Participants.Couple.Members").
		First(&schedule, "id = ?", id).Error; err != nil {
		return models.Schedule{}, err
	}

	return schedule, nil
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *models.Schedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *scheduleRepository) Update(ctx context.Context, schedule *models.Schedule) error {
	return r.db.WithContext(ctx).Save(schedule).Error
}

// Delete removes a schedule with its categories and participants. The
// cascade is explicit so it holds on stores that skip FK enforcement.
func (r *scheduleRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categoryIDs := tx.Model(&models.Category{}).Select("id").Where("schedule_id = ?", id)
		if err := tx.Where("category_id IN (?)", categoryIDs).Delete(&models.Participant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("schedule_id = ?", id).Delete(&models.Category{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Schedule{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func orderParticipants(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC, id ASC")
}
