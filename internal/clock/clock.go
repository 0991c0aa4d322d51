package clock

import "time"

// Clock abstracts wall time so cooldown and day-key logic is testable.
type Clock interface {
	Now() time.Time
}

// System reads the real wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// DayKey returns the local calendar day for t in YYYY-MM-DD form. The
// daily cap resets on local-midnight boundaries, not UTC, to match
// user-visible day boundaries.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
