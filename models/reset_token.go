package models

import "time"

// ResetToken proves the right to set a new password. Only the sha1 hex of the
// issued token is stored; the row is deleted on consumption or failed expiry
// check, so a token can never be used twice.
type ResetToken struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	User      *User     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Token     string    `json:"-" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (t *ResetToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
