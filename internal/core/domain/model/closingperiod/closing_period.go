package closingperiod

import (
	"errors"
	"fmt"
	"time"

	"bakery/internal/core/domain/model/kernel"
)

var (
	// ErrInvalidClosingPeriod classifies every rejected closing period.
	ErrInvalidClosingPeriod = errors.New("invalid closing period")

	// ErrClosingPeriodIsNotConstructed is returned when a ClosingPeriod did not come from
	// NewClosingPeriod or RestoreClosingPeriod.
	ErrClosingPeriodIsNotConstructed = errors.New(
		"ClosingPeriod must be created via NewClosingPeriod or RestoreClosingPeriod",
	)
)

// InvalidClosingPeriodError names the rule a closing period broke.
type InvalidClosingPeriodError struct {
	Message string
}

func newInvalidClosingPeriodError(format string, args ...any) *InvalidClosingPeriodError {
	return &InvalidClosingPeriodError{Message: fmt.Sprintf(format, args...)}
}

func (e *InvalidClosingPeriodError) Error() string {
	return e.Message
}

func (e *InvalidClosingPeriodError) Unwrap() error {
	return ErrInvalidClosingPeriod
}

// ClosingPeriod is a range of calendar days during which the shop fulfils no order.
// It is immutable once built.
type ClosingPeriod struct {
	id        kernel.ClosingPeriodID
	startDate time.Time
	endDate   time.Time

	isConstructed bool
}

// NewClosingPeriod validates a new closing period against now.
//
// Rules, checked in order:
//   - start date is defined and not on a day before now
//   - end date is defined and not on a day before now
//   - end date is not earlier than start date (instant comparison)
//
// A zero time.Time stands for a missing date.
func NewClosingPeriod(startDate, endDate, now time.Time) (*ClosingPeriod, error) {
	if err := validateStartDate(startDate, now); err != nil {
		return nil, err
	}
	if err := validateEndDate(startDate, endDate, now); err != nil {
		return nil, err
	}

	return &ClosingPeriod{
		startDate:     startDate,
		endDate:       endDate,
		isConstructed: true,
	}, nil
}

// RestoreClosingPeriod rebuilds a persisted closing period. Periods that already started
// remain valid, so only the range ordering is checked.
func RestoreClosingPeriod(id kernel.ClosingPeriodID, startDate, endDate time.Time) (*ClosingPeriod, error) {
	if startDate.IsZero() {
		return nil, newInvalidClosingPeriodError("start date has to be defined")
	}
	if endDate.IsZero() {
		return nil, newInvalidClosingPeriodError("end date has to be defined")
	}
	if endDate.Before(startDate) {
		return nil, newInvalidClosingPeriodError(
			"end date %s has to be greater than start date %s", formatDate(endDate), formatDate(startDate),
		)
	}

	return &ClosingPeriod{
		id:            id,
		startDate:     startDate,
		endDate:       endDate,
		isConstructed: true,
	}, nil
}

// Validate ensures the closing period was built through a constructor.
func (c *ClosingPeriod) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClosingPeriodIsNotConstructed
	}
	return nil
}

func (c *ClosingPeriod) ID() kernel.ClosingPeriodID {
	return c.id
}

func (c *ClosingPeriod) StartDate() time.Time {
	return c.startDate
}

func (c *ClosingPeriod) EndDate() time.Time {
	return c.endDate
}

// Contains reports whether the calendar day of d falls within the period, bounds included.
func (c *ClosingPeriod) Contains(d time.Time) bool {
	return kernel.IsWithinDaysIgnoringTime(d, c.startDate, c.endDate)
}

// HasEndedBefore reports whether the whole period lies on days before now.
func (c *ClosingPeriod) HasEndedBefore(now time.Time) bool {
	return kernel.IsBeforeIgnoringTime(c.endDate, now)
}

// String renders the period as "[2099-01-05, 2099-01-10]".
func (c *ClosingPeriod) String() string {
	return fmt.Sprintf("[%s, %s]", kernel.FormatCalendarDate(c.startDate), kernel.FormatCalendarDate(c.endDate))
}

func validateStartDate(startDate, now time.Time) error {
	if startDate.IsZero() {
		return newInvalidClosingPeriodError("start date has to be defined")
	}
	if kernel.IsBeforeIgnoringTime(startDate, now) {
		return newInvalidClosingPeriodError("start date %s has to be in the future", formatDate(startDate))
	}
	return nil
}

func validateEndDate(startDate, endDate, now time.Time) error {
	if endDate.IsZero() {
		return newInvalidClosingPeriodError("end date has to be defined")
	}
	if kernel.IsBeforeIgnoringTime(endDate, now) {
		return newInvalidClosingPeriodError("end date %s has to be in the future", formatDate(endDate))
	}
	if endDate.Before(startDate) {
		return newInvalidClosingPeriodError(
			"end date %s has to be greater than start date %s", formatDate(endDate), formatDate(startDate),
		)
	}
	return nil
}

func formatDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
