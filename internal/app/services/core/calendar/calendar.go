package calendar

import (
	"time"

	"github.com/lakshana011/HealUp/internal/pkg/constvars"
	"github.com/lakshana011/HealUp/internal/pkg/dto/responses"
	"github.com/lakshana011/HealUp/internal/pkg/exceptions"
	"github.com/lakshana011/HealUp/internal/pkg/utils"
)

var dayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// ResolveMonth picks the month the grid displays: an explicit month parameter
// wins, then the month of the selected date, then the current month.
func ResolveMonth(monthParam, selectedDate string, now time.Time) (time.Time, error) {
	if monthParam != "" {
		month, err := time.Parse(constvars.MonthFormat, monthParam)
		if err != nil {
			return time.Time{}, exceptions.ErrCannotParseDate(err)
		}
		return month, nil
	}
	if selectedDate != "" {
		date, err := utils.ParseCalendarDate(selectedDate)
		if err != nil {
			return time.Time{}, exceptions.ErrCannotParseDate(err)
		}
		return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), nil
}

// BuildMonthView lays out one month as a Sunday-first grid. Days before today
// are marked unselectable; the grid itself never rejects a request.
func BuildMonthView(month time.Time, selectedDate string, now time.Time) responses.MonthView {
	year, monthIndex := month.Year(), month.Month()
	firstOfMonth := time.Date(year, monthIndex, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := time.Date(year, monthIndex+1, 0, 0, 0, 0, 0, time.UTC).Day()

	days := make([]responses.CalendarDay, 0, int(firstOfMonth.Weekday())+daysInMonth)
	for i := 0; i < int(firstOfMonth.Weekday()); i++ {
		days = append(days, responses.CalendarDay{Blank: true})
	}

	today := utils.TruncateToDay(now)
	for day := 1; day <= daysInMonth; day++ {
		dayTime := time.Date(year, monthIndex, day, 0, 0, 0, 0, time.UTC)
		date := utils.FormatCalendarDate(dayTime)
		past := dayTime.Before(today)
		days = append(days, responses.CalendarDay{
			Day:        day,
			Date:       date,
			Past:       past,
			Today:      dayTime.Equal(today),
			Selected:   date == selectedDate,
			Selectable: !past,
		})
	}

	return responses.MonthView{
		Year:      year,
		Month:     int(monthIndex),
		MonthName: monthIndex.String(),
		DayNames:  dayNames,
		Days:      days,
		PrevMonth: firstOfMonth.AddDate(0, -1, 0).Format(constvars.MonthFormat),
		NextMonth: firstOfMonth.AddDate(0, 1, 0).Format(constvars.MonthFormat),
	}
}

// NormalizeSelectedDate drops a selection the calendar would not allow. A past
// or malformed date behaves as if nothing were selected.
func NormalizeSelectedDate(selectedDate string, now time.Time) string {
	if selectedDate == "" {
		return ""
	}
	date, err := utils.ParseCalendarDate(selectedDate)
	if err != nil {
		return ""
	}
	if utils.IsBeforeToday(date, now) {
		return ""
	}
	return selectedDate
}

// ValidateBookingDate gates a booking submission on its date. Unlike the
// display path, a past date here is an error, not a silent reset.
func ValidateBookingDate(date string, now time.Time) error {
	parsed, err := utils.ParseCalendarDate(date)
	if err != nil {
		return exceptions.ErrCannotParseDate(err)
	}
	if utils.IsBeforeToday(parsed, now) {
		return exceptions.ErrPastDateSelected(nil)
	}
	return nil
}
