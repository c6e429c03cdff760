package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/noah-isme/jadwal-go-api/internal/models"
)

func setupScheduleTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Schedule{}, &models.Category{}, &models.Couple{}, &models.Participant{}))
	return db
}

func seedSchedule(t *testing.T, db *gorm.DB) (models.Schedule, models.Category) {
	t.Helper()
	schedule := models.Schedule{
		Title:  "Kelas Maret",
		Open:   time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
		Closed: time.Date(2025, 3, 8, 20, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&schedule).Error)

	category := models.Category{
		Title:      "Salsa Beginner",
		Instructor: "Ibu Rina",
		Slot:       3,
		ScheduleID: schedule.ID,
	}
	require.NoError(t, db.Create(&category).Error)

	return schedule, category
}

func TestScheduleRepositoryListNewestFirst(t *testing.T) {
	db := setupScheduleTestDB(t)
	repo := NewScheduleRepository(db)

	older := models.Schedule{
		Title:     "Kelas Februari",
		Open:      time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC),
		Closed:    time.Date(2025, 2, 8, 20, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
	}
	newer := models.Schedule{
		Title:     "Kelas Maret",
		Open:      time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
		Closed:    time.Date(2025, 3, 8, 20, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	schedules, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, schedules, 2)
	require.Equal(t, "Kelas Maret", schedules[0].Title)
	require.Equal(t, "Kelas Februari", schedules[1].Title)
}

func TestScheduleRepositoryGetWithParticipantsOrdering(t *testing.T) {
	db := setupScheduleTestDB(t)
	repo := NewScheduleRepository(db)
	schedule, category := seedSchedule(t, db)

	base := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	late := models.Participant{ID: "p-late", Name: "Cahya", CategoryID: category.ID, CreatedAt: base.Add(time.Hour)}
	early := models.Participant{ID: "p-early", Name: "Andi", CategoryID: category.ID, CreatedAt: base}
	tied := models.Participant{ID: "p-tied", Name: "Bambang", CategoryID: category.ID, CreatedAt: base.Add(time.Hour)}
	require.NoError(t, db.Create(&late).Error)
	require.NoError(t, db.Create(&early).Error)
	require.NoError(t, db.Create(&tied).Error)

	loaded, err := repo.GetWithParticipants(context.Background(), schedule.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Categories, 1)

	participants := loaded.Categories[0].Participants
	require.Len(t, participants, 3)
	require.Equal(t, "p-early", participants[0].ID)
	require.Equal(t, "p-late", participants[1].ID, "equal timestamps fall back to id order")
	require.Equal(t, "p-tied", participants[2].ID)
}

func TestScheduleRepositoryDeleteCascades(t *testing.T) {
	db := setupScheduleTestDB(t)
	repo := NewScheduleRepository(db)
	schedule, category := seedSchedule(t, db)

	participant := models.Participant{Name: "Andi", CategoryID: category.ID}
	require.NoError(t, db.Create(&participant).Error)

	require.NoError(t, repo.Delete(context.Background(), schedule.ID))

	var schedules, categories, participants int64
	require.NoError(t, db.Model(&models.Schedule{}).Count(&schedules).Error)
	require.NoError(t, db.Model(&models.Category{}).Count(&categories).Error)
	require.NoError(t, db.Model(&models.Participant{}).Count(&participants).Error)
	require.Zero(t, schedules)
	require.Zero(t, categories)
	require.Zero(t, participants)
}

func TestScheduleRepositoryDeleteMissing(t *testing.T) {
	db := setupScheduleTestDB(t)
	repo := NewScheduleRepository(db)

	err := repo.Delete(context.Background(), "missing")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCategoryRepositoryDeleteKeepsSiblings(t *testing.T) {
	db := setupScheduleTestDB(t)
	repo := NewCategoryRepository(db)
	schedule, category := seedSchedule(t, db)

	sibling := models.Category{Title: "Tango", Instructor: "Pak Budi", Slot: 4, ScheduleID: schedule.ID}
	require.NoError(t, db.Create(&sibling).Error)

	doomed := models.Participant{Name: "Andi", CategoryID: category.ID}
	survivor := models.Participant{Name: "Bambang", CategoryID: sibling.ID}
	require.NoError(t, db.Create(&doomed).Error)
	require.NoError(t, db.Create(&survivor).Error)

	require.NoError(t, repo.Delete(context.Background(), category.ID))

	var participants []models.Participant
	require.NoError(t, db.Find(&participants).Error)
	require.Len(t, participants, 1)
	require.Equal(t, survivor.ID, participants[0].ID)

	var categories int64
	require.NoError(t, db.Model(&models.Category{}).Count(&categories).Error)
	require.Equal(t, int64(1), categories)
}

func TestParticipantRepositoryCreatePair(t *testing.T) {
	db := setupScheduleTestDB(t)
	repo := NewParticipantRepository(db)
	categories := NewCategoryRepository(db)
	_, category := seedSchedule(t, db)

	first := models.Participant{Name: "Dewi", CategoryID: category.ID}
	second := models.Participant{Name: "Eko", CategoryID: category.ID}
	require.NoError(t, repo.CreatePair(context.Background(), &first, &second))

	require.NotNil(t, first.CoupleID)
	require.NotNil(t, second.CoupleID)
	require.Equal(t, *first.CoupleID, *second.CoupleID)

	loaded, err := categories.GetWithParticipants(context.Background(), category.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Participants, 2)
	require.NotNil(t, loaded.Participants[0].Couple)
	require.Len(t, loaded.Participants[0].Couple.Members, 2)
}

func TestParticipantRepositoryCreatePairRollsBack(t *testing.T) {
	db := setupScheduleTestDB(t)
	repo := NewParticipantRepository(db)
	_, category := seedSchedule(t, db)

	// a duplicate primary key makes the second insert fail mid-transaction
	first := models.Participant{ID: "pair-1", Name: "Dewi", CategoryID: category.ID}
	second := models.Participant{ID: "pair-1", Name: "Eko", CategoryID: category.ID}
	require.Error(t, repo.CreatePair(context.Background(), &first, &second))

	var participants, couples int64
	require.NoError(t, db.Model(&models.Participant{}).Count(&participants).Error)
	require.NoError(t, db.Model(&models.Couple{}).Count(&couples).Error)
	require.Zero(t, participants, "no half-couple may survive a failed pair insert")
	require.Zero(t, couples)
}

func TestParticipantRepositorySetDeletedAt(t *testing.T) {
	db := setupScheduleTestDB(t)
	repo := NewParticipantRepository(db)
	_, category := seedSchedule(t, db)

	participant := models.Participant{Name: "Andi", CategoryID: category.ID}
	require.NoError(t, repo.Create(context.Background(), &participant))

	deletedAt := time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SetDeletedAt(context.Background(), participant.ID, &deletedAt))

	stored, err := repo.GetByID(context.Background(), participant.ID)
	require.NoError(t, err)
	require.True(t, stored.IsDeleted())

	require.NoError(t, repo.SetDeletedAt(context.Background(), participant.ID, nil))
	stored, err = repo.GetByID(context.Background(), participant.ID)
	require.NoError(t, err)
	require.False(t, stored.IsDeleted())

	err = repo.SetDeletedAt(context.Background(), "missing", &deletedAt)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
