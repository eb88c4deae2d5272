package model

import "time"

// User is an account that owns items and notes.
type User struct {
	ID           uint   `gorm:"primarykey"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Timezone     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session is an opaque bearer token bound to a user.
type Session struct {
	Token     string    `gorm:"primaryKey;type:varchar(36)"`
	UserID    uint      `gorm:"index;not null"`
	ExpiresAt time.Time `gorm:"index"`
	CreatedAt time.Time
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
