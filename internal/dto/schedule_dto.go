package dto

import (
	"time"

	"github.com/noah-isme/jadwal-go-api/internal/models"
)

// ScheduleCreateRequest describes the payload for creating a new schedule.
type ScheduleCreateRequest struct {
	Title  string `json:"title" validate:"required,min=3"`
	Desc   string `json:"desc"`
	Open   string `json:"open" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Closed string `json:"closed" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

// ScheduleUpdateRequest describes the payload for editing a schedule.
type ScheduleUpdateRequest struct {
	Title  string  `json:"title" validate:"required,min=3"`
	Desc   *string `json:"desc" validate:"omitempty"`
	Open   *string `json:"open" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Closed *string `json:"closed" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// ScheduleResponse is the serialized representation returned to API clients.
// IsActive is derived from the forced status and the registration window at
// response time; it is never persisted.
type ScheduleResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Desc          string    `json:"desc"`
	Open          time.Time `json:"open"`
	Closed        time.Time `json:"closed"`
	Status        *string   `json:"status"`
	IsActive      bool      `json:"is_active"`
	CategoryCount int       `json:"category_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewScheduleResponse converts a model into a DTO, deriving activation at now.
func NewScheduleResponse(model models.Schedule, now time.Time) ScheduleResponse {
	var status *string
	if model.Status != nil {
		value := string(*model.Status)
		status = &value
	}

	return ScheduleResponse{
		ID:            model.ID,
		Title:         model.Title,
		Desc:          model.Desc,
		Open:          model.Open,
		Closed:        model.Closed,
		Status:        status,
		IsActive:      model.IsActiveAt(now),
		CategoryCount: len(model.Categories),
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

// NewScheduleResponseSlice converts a slice of models into DTOs.
func NewScheduleResponseSlice(schedules []models.Schedule, now time.Time) []ScheduleResponse {
	responses := make([]ScheduleResponse, 0, len(schedules))
	for _, schedule := range schedules {
		responses = append(responses, NewScheduleResponse(schedule, now))
	}

	return responses
}
