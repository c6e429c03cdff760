package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleStatus is the forced activation override an admin can apply.
type ScheduleStatus string

const (
	// ScheduleStatusActive forces registration open regardless of the time window.
	ScheduleStatusActive ScheduleStatus = "ACTIVE"
	// ScheduleStatusClosed forces registration shut regardless of the time window.
	ScheduleStatusClosed ScheduleStatus = "CLOSED"
)

// Schedule is a time-boxed event whose categories accept registrations
// while the schedule is active.
type Schedule struct {
	ID         string          `gorm:"primaryKey;size:36" json:"id"`
	Title      string          `gorm:"size:255;not null" json:"title"`
	Desc       string          `gorm:"type:text" json:"desc"`
	Open       time.Time       `gorm:"not null" json:"open"`
	Closed     time.Time       `gorm:"not null" json:"closed"`
	Status     *ScheduleStatus `gorm:"size:16" json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	Categories []Category      `gorm:"constraint:OnDelete:CASCADE" json:"categories,omitempty"`
}

// BeforeCreate assigns a UUID primary key when none is set.
func (s *Schedule) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// IsActiveAt reports whether the schedule admits registrations at the given
// instant. A forced status always wins; without one the registration window
// [open, closed) decides. The result is derived, never stored.
func (s Schedule) IsActiveAt(now time.Time) bool {
	if s.Status != nil {
		switch *s.Status {
		case ScheduleStatusActive:
			return true
		case ScheduleStatusClosed:
			return false
		}
	}

	return !now.Before(s.Open) && now.Before(s.Closed)
}

// IsForcedClosed reports whether an admin has explicitly shut the schedule.
func (s Schedule) IsForcedClosed() bool {
	return s.Status != nil && *s.Status == ScheduleStatusClosed
}
