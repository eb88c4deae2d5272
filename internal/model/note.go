package model

import "time"

// Note is a free-form text note owned by a user.
type Note struct {
	ID        uint   `gorm:"primarykey"`
	UserID    uint   `gorm:"index;not null"`
	Title     string `gorm:"not null"`
	Content   string
	Pinned    bool `gorm:"default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
