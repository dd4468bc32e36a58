// Package biztime provides the business timezone used for ticket timestamps.
// All wall-clock stamps (createdAt, updatedAt, annotation times) are taken in
// the configured timezone so ticket numbers and audit times line up with the
// office calendar, not with wherever the server happens to run.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTimezone is the default business timezone.
const DefaultTimezone = "America/Sao_Paulo"

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
// If tz is empty, defaults to America/Sao_Paulo.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// MustInit initializes the business timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize business timezone %q: %v", tz, err))
	}
}

// Location returns the business timezone location, auto-initializing with the
// default timezone if Init was never called.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// Now returns the current time in the business timezone.
func Now() time.Time {
	return time.Now().In(Location())
}

// FromUnixMilli converts a stored millisecond timestamp back into the
// business timezone.
func FromUnixMilli(millis int64) time.Time {
	return time.UnixMilli(millis).In(Location())
}
