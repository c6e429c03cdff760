package dto

import (
	"time"

	"github.com/noah-isme/jadwal-go-api/internal/models"
)

// CategoryCreateRequest describes the payload for creating a category.
// A zero slot count is rejected: a session nobody can join is a mistake.
type CategoryCreateRequest struct {
	ScheduleID string `json:"schedule_id" validate:"required"`
	Title      string `json:"title" validate:"required"`
	Instructor string `json:"instructor" validate:"required"`
	Slot       int    `json:"slot" validate:"required,min=1"`
	Desc       string `json:"desc"`
}

// CategoryUpdateRequest describes the payload for editing a category.
type CategoryUpdateRequest struct {
	Title      string `json:"title" validate:"required"`
	Instructor string `json:"instructor" validate:"required"`
	Slot       int    `json:"slot" validate:"required,min=1"`
	Desc       string `json:"desc"`
}

// CoupleMember identifies one half of a paired registration.
type CoupleMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CoupleResponse lists both members of a paired registration.
type CoupleResponse struct {
	ID      string         `json:"id"`
	Members []CoupleMember `json:"members"`
}

// ParticipantResponse is the serialized representation of a participant.
type ParticipantResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Notes     string          `json:"notes,omitempty"`
	Couple    *CoupleResponse `json:"couple,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	DeletedAt *time.Time      `json:"deleted_at,omitempty"`
}

// CategoryResponse carries the category together with its derived capacity
// split so clients never have to re-implement the waitlist rule.
type CategoryResponse struct {
	ID         string                `json:"id"`
	Title      string                `json:"title"`
	Instructor string                `json:"instructor"`
	Desc       string                `json:"desc"`
	Slot       int                   `json:"slot"`
	ScheduleID string                `json:"schedule_id"`
	SlotsLeft  int                   `json:"slots_left"`
	Confirmed  []ParticipantResponse `json:"confirmed"`
	Waitlist   []ParticipantResponse `json:"waitlist"`
	Deleted    []ParticipantResponse `json:"deleted"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  time.Time             `json:"updated_at"`
}

// NewParticipantResponse converts a model into a DTO.
func NewParticipantResponse(model models.Participant) ParticipantResponse {
	response := ParticipantResponse{
		ID:        model.ID,
		Name:      model.Name,
		Notes:     model.Notes,
		CreatedAt: model.CreatedAt,
		DeletedAt: model.DeletedAt,
	}

	if model.Couple != nil {
		couple := CoupleResponse{ID: model.Couple.ID}
		for _, member := range model.Couple.Members {
			couple.Members = append(couple.Members, CoupleMember{ID: member.ID, Name: member.Name})
		}
		response.Couple = &couple
	}

	return response
}

// NewCategoryResponse converts a model into a DTO, running the capacity
// calculator over its participants.
func NewCategoryResponse(model models.Category) CategoryResponse {
	snapshot := model.Capacity()

	return CategoryResponse{
		ID:         model.ID,
		Title:      model.Title,
		Instructor: model.Instructor,
		Desc:       model.Desc,
		Slot:       model.Slot,
		ScheduleID: model.ScheduleID,
		SlotsLeft:  snapshot.SlotsLeft,
		Confirmed:  newParticipantResponseSlice(snapshot.Confirmed),
		Waitlist:   newParticipantResponseSlice(snapshot.Waitlist),
		Deleted:    newParticipantResponseSlice(snapshot.Deleted),
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

// NewCategoryResponseSlice converts a slice of models into DTOs.
func NewCategoryResponseSlice(categories []models.Category) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, NewCategoryResponse(category))
	}

	return responses
}

func newParticipantResponseSlice(participants []models.Participant) []ParticipantResponse {
	responses := make([]ParticipantResponse, 0, len(participants))
	for _, participant := range participants {
		responses = append(responses, NewParticipantResponse(participant))
	}

	return responses
}
