package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleReader     UserRole = "reader"
	RoleEditor     UserRole = "editor"
	RoleJournalist UserRole = "journalist"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleReader, RoleEditor, RoleJournalist:
		return true
	}
	return false
}

type User struct {
	ID       uint     `json:"id" gorm:"primarykey"`
	Username string   `json:"username" gorm:"uniqueIndex;not null"`
	Email    string   `json:"email" gorm:"not null"`
	Password string   `json:"-" gorm:"not null"`
	Role     UserRole `json:"role" gorm:"default:'reader'"`

	// Reader-side associations. Cleared on save for any other role.
	SubscriptionsToPublishers  []Publisher `json:"-" gorm:"many2many:publisher_subscriptions;"`
	SubscriptionsToJournalists []User      `json:"-" gorm:"many2many:journalist_subscriptions;joinForeignKey:FollowerID;joinReferences:JournalistID"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (u *User) IsReader() bool {
	return u.Role == RoleReader
}

func (u *User) IsEditor() bool {
	return u.Role == RoleEditor
}

func (u *User) IsJournalist() bool {
	return u.Role == RoleJournalist
}
