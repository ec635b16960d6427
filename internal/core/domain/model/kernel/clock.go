package kernel

import (
	"fmt"
	"time"
)

// Clock supplies the reference instant for every "must not be in the past" rule.
type Clock interface {
	Now() time.Time
}

// BusinessClock reads the wall clock in the shop's time zone.
// The zone is resolved once, when the clock is built at start-up.
type BusinessClock struct {
	location *time.Location
}

// NewBusinessClock loads the named IANA zone; an empty name selects DefaultBusinessTimeZone.
func NewBusinessClock(timeZone string) (BusinessClock, error) {
	if timeZone == "" {
		timeZone = DefaultBusinessTimeZone
	}

	location, err := time.LoadLocation(timeZone)
	if err != nil {
		return BusinessClock{}, fmt.Errorf("load business time zone %q: %w", timeZone, err)
	}

	return BusinessClock{location: location}, nil
}

// Now returns the current instant expressed in the business time zone.
func (c BusinessClock) Now() time.Time {
	if c.location == nil {
		return time.Now()
	}
	return time.Now().In(c.location)
}

// Location returns the business time zone.
func (c BusinessClock) Location() *time.Location {
	return c.location
}

// FixedClock always returns the same instant. Used by tests and replays.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}
