package calendar

import (
	"testing"
	"time"

	"github.com/lakshana011/HealUp/internal/pkg/constvars"
	"github.com/lakshana011/HealUp/internal/pkg/exceptions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMonth(t *testing.T) {
	now := time.Date(2025, time.March, 10, 15, 30, 0, 0, time.UTC)

	t.Run("Month Parameter Wins", func(t *testing.T) {
		month, err := ResolveMonth("2025-05", "2025-03-15", now)
		require.NoError(t, err)
		assert.Equal(t, 2025, month.Year())
		assert.Equal(t, time.May, month.Month())
	})

	t.Run("Selected Date Month When No Parameter", func(t *testing.T) {
		month, err := ResolveMonth("", "2025-04-20", now)
		require.NoError(t, err)
		assert.Equal(t, time.April, month.Month())
		assert.Equal(t, 1, month.Day())
	})

	t.Run("Current Month As Fallback", func(t *testing.T) {
		month, err := ResolveMonth("", "", now)
		require.NoError(t, err)
		assert.Equal(t, time.March, month.Month())
		assert.Equal(t, 1, month.Day())
	})

	t.Run("Malformed Month Parameter", func(t *testing.T) {
		_, err := ResolveMonth("May 2025", "", now)
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Malformed Selected Date", func(t *testing.T) {
		_, err := ResolveMonth("", "15-03-2025", now)
		assert.Error(t, err)
	})
}

func TestBuildMonthView(t *testing.T) {
	now := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	march := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Grid Layout", func(t *testing.T) {
		view := BuildMonthView(march, "", now)

		assert.Equal(t, 2025, view.Year)
		assert.Equal(t, 3, view.Month)
		assert.Equal(t, "March", view.MonthName)
		assert.Equal(t, []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}, view.DayNames)
		assert.Equal(t, "2025-02", view.PrevMonth)
		assert.Equal(t, "2025-04", view.NextMonth)

		// March 1, 2025 is a Saturday, so six blank cells pad the first week.
		require.Len(t, view.Days, 6+31)
		for i := 0; i < 6; i++ {
			assert.True(t, view.Days[i].Blank, "cell %d should be blank", i)
		}
		assert.Equal(t, 1, view.Days[6].Day)
		assert.Equal(t, "2025-03-01", view.Days[6].Date)
		assert.Equal(t, 31, view.Days[len(view.Days)-1].Day)
	})

	t.Run("Past Days Are Not Selectable", func(t *testing.T) {
		view := BuildMonthView(march, "", now)

		ninth := view.Days[6+8]
		assert.Equal(t, 9, ninth.Day)
		assert.True(t, ninth.Past)
		assert.False(t, ninth.Selectable)

		tenth := view.Days[6+9]
		assert.Equal(t, 10, tenth.Day)
		assert.True(t, tenth.Today)
		assert.False(t, tenth.Past)
		assert.True(t, tenth.Selectable)

		eleventh := view.Days[6+10]
		assert.True(t, eleventh.Selectable)
		assert.False(t, eleventh.Today)
	})

	t.Run("Non-UTC Clock Keeps Today Selectable", func(t *testing.T) {
		west := time.FixedZone("UTC-5", -5*60*60)
		eveningWest := time.Date(2025, time.March, 10, 18, 0, 0, 0, west)

		view := BuildMonthView(march, "", eveningWest)

		ninth := view.Days[6+8]
		assert.True(t, ninth.Past)

		tenth := view.Days[6+9]
		assert.True(t, tenth.Today)
		assert.False(t, tenth.Past)
		assert.True(t, tenth.Selectable)

		east := time.FixedZone("UTC+5:30", 5*60*60+30*60)
		morningEast := time.Date(2025, time.March, 10, 1, 0, 0, 0, east)

		view = BuildMonthView(march, "", morningEast)
		tenth = view.Days[6+9]
		assert.True(t, tenth.Today)
		assert.True(t, tenth.Selectable)
	})

	t.Run("Selected Day Is Flagged", func(t *testing.T) {
		view := BuildMonthView(march, "2025-03-15", now)

		fifteenth := view.Days[6+14]
		assert.Equal(t, 15, fifteenth.Day)
		assert.True(t, fifteenth.Selected)

		selectedCount := 0
		for _, day := range view.Days {
			if day.Selected {
				selectedCount++
			}
		}
		assert.Equal(t, 1, selectedCount)
	})
}

func TestNormalizeSelectedDate(t *testing.T) {
	now := time.Date(2025, time.March, 10, 23, 59, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty stays empty", input: "", expected: ""},
		{name: "malformed date resets", input: "10/03/2025", expected: ""},
		{name: "past date resets", input: "2025-03-09", expected: ""},
		{name: "today survives", input: "2025-03-10", expected: "2025-03-10"},
		{name: "future date survives", input: "2025-04-01", expected: "2025-04-01"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeSelectedDate(tc.input, now))
		})
	}
}

func TestValidateBookingDate(t *testing.T) {
	now := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Future Date Passes", func(t *testing.T) {
		assert.NoError(t, ValidateBookingDate("2025-03-11", now))
	})

	t.Run("Today Passes", func(t *testing.T) {
		assert.NoError(t, ValidateBookingDate("2025-03-10", now))
	})

	t.Run("Past Date Rejected", func(t *testing.T) {
		err := ValidateBookingDate("2025-03-09", now)
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientPastDateSelected, customErr.ClientMessage)
	})

	t.Run("Today Passes Under A Non-UTC Clock", func(t *testing.T) {
		west := time.FixedZone("UTC-5", -5*60*60)
		nowWest := time.Date(2025, time.March, 10, 18, 0, 0, 0, west)

		assert.NoError(t, ValidateBookingDate("2025-03-10", nowWest))
		assert.Equal(t, "2025-03-10", NormalizeSelectedDate("2025-03-10", nowWest))
	})

	t.Run("Malformed Date Rejected", func(t *testing.T) {
		err := ValidateBookingDate("tomorrow", now)
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.ErrClientCannotProcessRequest, customErr.ClientMessage)
	})
}
