package game

import "time"

// Clock provides the current time for score bonuses. Injecting it keeps
// session tests deterministic.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock with the system time.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
