package models

import (
	"time"

	"gorm.io/gorm"
)

type Article struct {
	ID          uint       `json:"id" gorm:"primarykey"`
	Headline    string     `json:"headline" gorm:"not null"`
	Byline      string     `json:"byline"`
	Body        string     `json:"body" gorm:"type:text"`
	Conclusion  string     `json:"conclusion" gorm:"type:text"`
	Approved    bool       `json:"approved" gorm:"default:false"`
	AuthorID    *uint      `json:"author_id"`
	Author      *User      `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	PublisherID *uint      `json:"publisher_id"`
	Publisher   *Publisher `json:"publisher,omitempty" gorm:"foreignKey:PublisherID;constraint:OnDelete:SET NULL"`

	Reviews []Review `json:"reviews,omitempty" gorm:"foreignKey:ArticleID"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// Review is an editor's commentary on a draft article. It never changes the
// approval state by itself.
type Review struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ArticleID uint      `json:"article_id" gorm:"not null"`
	EditorID  uint      `json:"editor_id" gorm:"not null"`
	Editor    *User     `json:"editor,omitempty" gorm:"foreignKey:EditorID"`
	Comments  string    `json:"comments" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}
