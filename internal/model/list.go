package model

import "time"

// List is a named, ordered set of entries that can be checked off, such as
// a shopping or packing list.
type List struct {
	ID        uint   `gorm:"primarykey"`
	UserID    uint   `gorm:"index;not null"`
	Title     string `gorm:"not null"`
	Pinned    bool   `gorm:"default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Entries []ListEntry `gorm:"foreignKey:ListID"`
}

// ListEntry is one line of a List. Entries are shown by ascending Position.
type ListEntry struct {
	ID        uint   `gorm:"primarykey"`
	ListID    uint   `gorm:"index;not null"`
	Text      string `gorm:"not null"`
	Checked   bool   `gorm:"default:false"`
	Position  int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Progress returns how many entries are checked out of the total.
func (l List) Progress() (checked, total int) {
	for _, e := range l.Entries {
		if e.Checked {
			checked++
		}
	}
	return checked, len(l.Entries)
}

// Entry returns the entry with the given id.
func (l List) Entry(id uint) (ListEntry, bool) {
	for _, e := range l.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return ListEntry{}, false
}
