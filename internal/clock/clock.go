// Package clock provides the adjustable "now" used by every time comparison.
package clock

import (
	"sync/atomic"
	"time"
)

// Day is the unit of the admin time-machine offset.
const Day = 24 * time.Hour

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// Source is a Clock shifted by a signed whole-day offset.
// It is safe for concurrent use.
type Source struct {
	base   func() time.Time
	offset atomic.Int64
}

// New creates a Source over base. A nil base uses time.Now.
func New(base func() time.Time) *Source {
	if base == nil {
		base = time.Now
	}
	return &Source{base: base}
}

// Now returns the base time shifted by the current day offset, in UTC.
func (s *Source) Now() time.Time {
	return s.base().UTC().Add(time.Duration(s.offset.Load()) * Day)
}

// Offset returns the current day offset.
func (s *Source) Offset() int {
	return int(s.offset.Load())
}

// SetOffset replaces the day offset.
func (s *Source) SetOffset(days int) {
	s.offset.Store(int64(days))
}

// Fixed is a Clock frozen at a single instant. Useful in tests and jobs.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }
