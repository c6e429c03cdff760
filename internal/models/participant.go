package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Participant is a person registered into a category.
//
// DeletedAt is a plain nullable column rather than gorm.DeletedAt: withdrawn
// participants must stay visible to admin reads and only drop out of the
// capacity calculation, so filtering is explicit instead of ORM-implicit.
type Participant struct {
	ID         string     `gorm:"primaryKey;size:36" json:"id"`
	Name       string     `gorm:"size:255;not null" json:"name"`
	Notes      string     `gorm:"type:text" json:"notes"`
	CategoryID string     `gorm:"size:36;not null;index" json:"category_id"`
	CoupleID   *string    `gorm:"size:36;index" json:"couple_id,omitempty"`
	Couple     *Couple    `json:"couple,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}

// BeforeCreate assigns a UUID primary key when none is set.
func (p *Participant) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// IsDeleted reports whether the participant has been withdrawn.
func (p Participant) IsDeleted() bool {
	return p.DeletedAt != nil
}

// Couple groups exactly two participants registered as a pair. It is created
// atomically with its members and never edited afterwards; withdrawing one
// member leaves the couple row and the partner untouched.
type Couple struct {
	ID        string        `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time     `json:"created_at"`
	Members   []Participant `gorm:"foreignKey:CoupleID" json:"members,omitempty"`
}

// BeforeCreate assigns a UUID primary key when none is set.
func (c *Couple) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
