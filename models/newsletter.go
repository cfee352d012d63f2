package models

import (
	"time"

	"gorm.io/gorm"
)

// Newsletter is a plain container of articles. There is no approval gate on
// members, an unapproved draft may appear in an issue.
type Newsletter struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Title     string    `json:"title" gorm:"not null"`
	IssueDate time.Time `json:"issue_date"`
	Articles  []Article `json:"articles,omitempty" gorm:"many2many:newsletter_articles;"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
