package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/noah-isme/jadwal-go-api/internal/models"
)

type scheduleRepoStub struct {
	schedule models.Schedule
	getErr   error
	created  *models.Schedule
	updated  *models.Schedule
	deleted  string
}

func (s *scheduleRepoStub) List(context.Context) ([]models.Schedule, error) {
	return []models.Schedule{s.schedule}, nil
}

func (s *scheduleRepoStub) GetByID(context.Context, string) (models.Schedule, error) {
	return s.schedule, s.getErr
}

func (s *scheduleRepoStub) GetWithParticipants(context.Context, string) (models.Schedule, error) {
	return s.schedule, s.getErr
}

func (s *scheduleRepoStub) Create(_ context.Context, schedule *models.Schedule) error {
	s.created = schedule
	return nil
}

func (s *scheduleRepoStub) Update(_ context.Context, schedule *models.Schedule) error {
	s.updated = schedule
	s.schedule = *schedule
	return nil
}

func (s *scheduleRepoStub) Delete(_ context.Context, id string) error {
	s.deleted = id
	return nil
}

func TestSummaryServiceSplitsConfirmedAndWaitlist(t *testing.T) {
	base := time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC)
	deletedAt := base.Add(time.Hour)

	participants := []models.Participant{
		{ID: "p1", Name: " Andi ", CreatedAt: base},
		{ID: "p2", Name: "Bambang", CreatedAt: base.Add(time.Minute), DeletedAt: &deletedAt},
		{ID: "p3", Name: "Cahya", CreatedAt: base.Add(2 * time.Minute)},
		{ID: "p4", Name: "Dian", CreatedAt: base.Add(3 * time.Minute)},
		{ID: "p5", Name: "Endah", CreatedAt: base.Add(4 * time.Minute)},
	}

	repo := &scheduleRepoStub{schedule: models.Schedule{
		ID: "sched-1",
		Categories: []models.Category{
			{Title: " Salsa Beginner ", Instructor: "Ibu Rina", Slot: 3, Participants: participants},
			{Title: "Tango", Instructor: "Pak Budi", Slot: 4},
		},
	}}

	svc := NewSummaryService(repo, testLogger())
	summary, err := svc.Summarize(context.Background(), "sched-1")
	require.NoError(t, err)

	expected := "*Salsa Beginner*\n" +
		"*INSTRUKTUR:* Ibu Rina\n" +
		"1. Andi\n" +
		"2. Cahya\n" +
		"3. Dian\n" +
		"*-----------WAITLIST-----------*\n" +
		"1. Endah\n" +
		"\n" +
		"*Tango*\n" +
		"*INSTRUKTUR:* Pak Budi\n" +
		"Belum ada peserta"

	require.Equal(t, expected, summary)
}

func TestSummaryServiceFitsWithinSlots(t *testing.T) {
	base := time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC)
	repo := &scheduleRepoStub{schedule: models.Schedule{
		ID: "sched-1",
		Categories: []models.Category{
			{Title: "Bachata", Instructor: "Ibu Sari", Slot: 5, Participants: []models.Participant{
				{ID: "p1", Name: "Andi", CreatedAt: base},
				{ID: "p2", Name: "Bambang", CreatedAt: base.Add(time.Minute)},
			}},
		},
	}}

	svc := NewSummaryService(repo, testLogger())
	summary, err := svc.Summarize(context.Background(), "sched-1")
	require.NoError(t, err)
	require.Equal(t, "*Bachata*\n*INSTRUKTUR:* Ibu Sari\n1. Andi\n2. Bambang", summary)
	require.NotContains(t, summary, "WAITLIST")
}

func TestSummaryServiceScheduleNotFound(t *testing.T) {
	repo := &scheduleRepoStub{getErr: gorm.ErrRecordNotFound}
	svc := NewSummaryService(repo, testLogger())

	_, err := svc.Summarize(context.Background(), "missing")
	require.ErrorIs(t, err, ErrScheduleNotFound)
}
