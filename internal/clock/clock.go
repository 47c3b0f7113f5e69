// Package clock abstracts wall-clock access so time-dependent report and
// payload logic stays deterministic under test.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// NewSystemClock returns a Clock backed by the real wall clock in UTC.
func NewSystemClock() Clock { return systemClock{} }
