package repository

// GetOneUserOptions holds filter parameters for fetching a single User.
// All non-zero fields are applied as AND conditions.
type GetOneUserOptions struct {
	ID       uint
	Username string
}
