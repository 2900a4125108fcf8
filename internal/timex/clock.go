// Package timex holds the time seam used by services and the display layout
// for ledger timestamps.
package timex

import "time"

// DisplayLayout renders a timestamp the way a US-locale date/time string
// looks, e.g. "10/15/2026, 3:04:05 PM".
const DisplayLayout = "1/2/2006, 3:04:05 PM"

// Clock returns the current time. Production code uses System; tests use
// Fixed.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// System returns a Clock backed by time.Now in the local time zone.
func System() Clock { return systemClock{} }

func (systemClock) Now() time.Time { return time.Now() }

// Fixed is a Clock that always reports the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }

// Display formats t with DisplayLayout.
func Display(t time.Time) string {
	return t.Format(DisplayLayout)
}
