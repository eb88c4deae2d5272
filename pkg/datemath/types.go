package datemath

import "time"

// Layout is the wire and storage format of a calendar date.
const Layout = "2006-01-02"

// Calendar dates are carried as time.Time values at 00:00 UTC so that
// equality and ordering never depend on the server's zone.

// ParseResult holds the result of parsing a due date expression.
type ParseResult struct {
	Date     time.Time
	Relative bool
}
