package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a session within a schedule with a fixed number of slots.
type Category struct {
	ID           string        `gorm:"primaryKey;size:36" json:"id"`
	Title        string        `gorm:"size:255;not null" json:"title"`
	Instructor   string        `gorm:"size:255;not null" json:"instructor"`
	Desc         string        `gorm:"type:text" json:"desc"`
	Slot         int           `gorm:"not null" json:"slot"`
	ScheduleID   string        `gorm:"size:36;not null;index" json:"schedule_id"`
	Schedule     *Schedule     `json:"-"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	Participants []Participant `gorm:"constraint:OnDelete:CASCADE" json:"participants,omitempty"`
}

// BeforeCreate assigns a UUID primary key when none is set.
func (c *Category) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// CapacitySnapshot partitions a category's participants at a point in time.
// Confirmed holds the first Slot active participants in registration order,
// Waitlist the overflow. Withdrawn participants appear only in Deleted.
type CapacitySnapshot struct {
	Active    []Participant
	Confirmed []Participant
	Waitlist  []Participant
	Deleted   []Participant
	SlotsLeft int
}

// Capacity derives the confirmed/waitlist split from the participant list.
// Ordering is by registration time with the id as tie-break, so the
// partition is reproducible under concurrent inserts. SlotsLeft goes
// negative when the waitlist is non-empty.
func (c Category) Capacity() CapacitySnapshot {
	ordered := make([]Participant, len(c.Participants))
	copy(ordered, c.Participants)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].CreatedAt.Equal(ordered[j].CreatedAt) {
			return ordered[i].ID < ordered[j].ID
		}
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	snapshot := CapacitySnapshot{
		Active:  make([]Participant, 0, len(ordered)),
		Deleted: make([]Participant, 0),
	}
	for _, participant := range ordered {
		if participant.IsDeleted() {
			snapshot.Deleted = append(snapshot.Deleted, participant)
			continue
		}
		snapshot.Active = append(snapshot.Active, participant)
	}

	slot := c.Slot
	if slot < 0 {
		slot = 0
	}

	cut := slot
	if cut > len(snapshot.Active) {
		cut = len(snapshot.Active)
	}

	snapshot.Confirmed = snapshot.Active[:cut]
	snapshot.Waitlist = snapshot.Active[cut:]
	snapshot.SlotsLeft = c.Slot - len(snapshot.Active)

	return snapshot
}

// IsFull reports whether all slots are taken by active participants.
func (c Category) IsFull() bool {
	return c.Capacity().SlotsLeft <= 0
}
