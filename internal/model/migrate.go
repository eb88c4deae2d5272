package model

// All lists every table managed by AutoMigrate, in dependency order.
func All() []any {
	return []any{
		&User{},
		&Session{},
		&Item{},
		&ItemCompletion{},
		&Note{},
		&List{},
		&ListEntry{},
	}
}
