// Package clock lets level timestamps be controlled in tests.
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/Esderin/Standard-of-Iron/internal/pkg/clock Clock

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using the system clock, in UTC.
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now().UTC()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed always reports the same instant.
type Fixed time.Time

// Now returns the fixed instant
func (f Fixed) Now() time.Time {
	return time.Time(f)
}
