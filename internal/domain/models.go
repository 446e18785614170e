package domain

import "time"

// Session is one open duty interval. A user has at most one open session
// at any time; StartTime never changes after creation.
type Session struct {
	UserID    int64
	StartTime time.Time
	Continues int
}
