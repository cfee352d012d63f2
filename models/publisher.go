package models

import (
	"time"

	"gorm.io/gorm"
)

// Publisher groups editors and journalists under a shared byline. Membership
// slots only accept accounts whose role matches the slot.
type Publisher struct {
	ID    uint   `json:"id" gorm:"primarykey"`
	Name  string `json:"name" gorm:"not null"`
	Email string `json:"email"`

	Editors     []User `json:"editors,omitempty" gorm:"many2many:publisher_editors;"`
	Journalists []User `json:"journalists,omitempty" gorm:"many2many:publisher_journalists;"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// HasMember reports whether the user sits in either membership slot.
func (p *Publisher) HasMember(userID uint) bool {
	for _, e := range p.Editors {
		if e.ID == userID {
			return true
		}
	}
	for _, j := range p.Journalists {
		if j.ID == userID {
			return true
		}
	}
	return false
}
