package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/noah-isme/jadwal-go-api/internal/models"
)

// ParticipantRepository defines persistence operations for participants and
// paired registrations.
type ParticipantRepository interface {
	GetByID(ctx context.Context, id string) (models.Participant, error)
	Create(ctx context.Context, participant *models.Participant) error
	CreatePair(ctx context.Context, first, second *models.Participant) error
	SetDeletedAt(ctx context.Context, id string, deletedAt *time.Time) error
}

type participantRepository struct {
	db *gorm.DB
}

// NewParticipantRepository instantiates a GORM-backed repository.
func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

func (r *participantRepository) GetByID(ctx context.Context, id string) (models.Participant, error) {
	var participant models.Participant
	if err := r.db.WithContext(ctx).First(&participant, "id = ?", id).Error; err != nil {
		return models.Participant{}, err
	}

	return participant, nil
}

func (r *participantRepository) Create(ctx context.Context, participant *models.Participant) error {
	return r.db.WithContext(ctx).Create(participant).Error
}

// CreatePair persists a couple and both of its members in one transaction so
// a half-couple is never visible.
func (r *participantRepository) CreatePair(ctx context.Context, first, second *models.Participant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		couple := models.Couple{}
		if err := tx.Create(&couple).Error; err != nil {
			return err
		}

		first.CoupleID = &couple.ID
		second.CoupleID = &couple.ID

		if err := tx.Create(first).Error; err != nil {
			return err
		}
		return tx.Create(second).Error
	})
}

func (r *participantRepository) SetDeletedAt(ctx context.Context, id string, deletedAt *time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&models.Participant{}).
		Where("id = ?", id).
		Update("deleted_at", deletedAt)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
