package closingperiod_test

import (
	"testing"
	"time"

	"bakery/internal/core/domain/model/closingperiod"
	"bakery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 12, 0, 0, 0, time.UTC)
}

func TestNewClosingPeriod(t *testing.T) {
	eastern, err := time.LoadLocation("Canada/Eastern")
	require.NoError(t, err)
	now := time.Date(2099, time.January, 3, 9, 0, 0, 0, eastern)

	t.Run("should create closing period with future dates", func(t *testing.T) {
		start := date(2099, time.January, 5)
		end := date(2099, time.January, 10)

		cp, err := closingperiod.NewClosingPeriod(start, end, now)

		require.NoError(t, err)
		require.NoError(t, cp.Validate())
		assert.Equal(t, start, cp.StartDate())
		assert.Equal(t, end, cp.EndDate())
		assert.Zero(t, cp.ID())
	})

	t.Run("should accept a period starting and ending today", func(t *testing.T) {
		today := date(2099, time.January, 3)

		_, err := closingperiod.NewClosingPeriod(today, today, now)

		require.NoError(t, err)
	})

	t.Run("should fail when start date is missing", func(t *testing.T) {
		_, err := closingperiod.NewClosingPeriod(time.Time{}, date(2099, time.January, 10), now)

		require.ErrorIs(t, err, closingperiod.ErrInvalidClosingPeriod)
		assert.EqualError(t, err, "start date has to be defined")
	})

	t.Run("should fail when start date is in the past", func(t *testing.T) {
		for _, start := range []time.Time{
			date(2099, time.January, 2),
			date(2098, time.December, 31),
			date(2000, time.June, 1),
		} {
			_, err := closingperiod.NewClosingPeriod(start, date(2099, time.January, 10), now)

			var invalid *closingperiod.InvalidClosingPeriodError
			require.ErrorAs(t, err, &invalid)
			assert.Contains(t, invalid.Message, "has to be in the future")
			assert.Contains(t, invalid.Message, "start date")
		}
	})

	t.Run("should fail when end date is missing", func(t *testing.T) {
		_, err := closingperiod.NewClosingPeriod(date(2099, time.January, 5), time.Time{}, now)

		require.ErrorIs(t, err, closingperiod.ErrInvalidClosingPeriod)
		assert.EqualError(t, err, "end date has to be defined")
	})

	t.Run("should fail when end date is in the past", func(t *testing.T) {
		_, err := closingperiod.NewClosingPeriod(date(2099, time.January, 5), date(2099, time.January, 1), now)

		require.ErrorIs(t, err, closingperiod.ErrInvalidClosingPeriod)
		assert.EqualError(t, err, "end date 2099-01-01T12:00:00Z has to be in the future")
	})

	t.Run("should fail when end date is before start date", func(t *testing.T) {
		_, err := closingperiod.NewClosingPeriod(date(2099, time.January, 10), date(2099, time.January, 5), now)

		require.ErrorIs(t, err, closingperiod.ErrInvalidClosingPeriod)
		assert.EqualError(t, err,
			"end date 2099-01-05T12:00:00Z has to be greater than start date 2099-01-10T12:00:00Z")
	})

	t.Run("should compare start and end by instant", func(t *testing.T) {
		start := time.Date(2099, time.January, 5, 15, 0, 0, 0, time.UTC)
		end := time.Date(2099, time.January, 5, 9, 0, 0, 0, time.UTC)

		_, err := closingperiod.NewClosingPeriod(start, end, now)

		require.ErrorIs(t, err, closingperiod.ErrInvalidClosingPeriod)
	})
}

func TestRestoreClosingPeriod(t *testing.T) {
	t.Run("should restore a period that already started", func(t *testing.T) {
		cp, err := closingperiod.RestoreClosingPeriod(7, date(2000, time.January, 1), date(2000, time.January, 2))

		require.NoError(t, err)
		assert.Equal(t, kernel.ClosingPeriodID(7), cp.ID())
	})

	t.Run("should reject an inverted range", func(t *testing.T) {
		_, err := closingperiod.RestoreClosingPeriod(7, date(2000, time.January, 2), date(2000, time.January, 1))

		require.ErrorIs(t, err, closingperiod.ErrInvalidClosingPeriod)
	})
}

func TestClosingPeriod_Validate(t *testing.T) {
	var nilPeriod *closingperiod.ClosingPeriod
	assert.Equal(t, closingperiod.ErrClosingPeriodIsNotConstructed, nilPeriod.Validate())

	var zero closingperiod.ClosingPeriod
	assert.Equal(t, closingperiod.ErrClosingPeriodIsNotConstructed, zero.Validate())
}

func TestClosingPeriod_Contains(t *testing.T) {
	cp, err := closingperiod.RestoreClosingPeriod(1, date(2099, time.January, 5), date(2099, time.January, 10))
	require.NoError(t, err)

	assert.True(t, cp.Contains(date(2099, time.January, 5)))
	assert.True(t, cp.Contains(date(2099, time.January, 10)))
	assert.True(t, cp.Contains(time.Date(2099, time.January, 7, 0, 0, 0, 0, time.UTC)))
	assert.False(t, cp.Contains(date(2099, time.January, 4)))
	assert.False(t, cp.Contains(date(2099, time.January, 11)))
	assert.Equal(t, "[2099-01-05, 2099-01-10]", cp.String())
}

func TestClosingPeriod_HasEndedBefore(t *testing.T) {
	cp, err := closingperiod.RestoreClosingPeriod(1, date(2099, time.January, 5), date(2099, time.January, 10))
	require.NoError(t, err)

	assert.False(t, cp.HasEndedBefore(time.Date(2099, time.January, 10, 23, 0, 0, 0, time.UTC)))
	assert.True(t, cp.HasEndedBefore(time.Date(2099, time.January, 11, 1, 0, 0, 0, time.UTC)))
}
