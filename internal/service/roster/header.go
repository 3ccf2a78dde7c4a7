package roster

import (
	"strings"
	"time"

	"github.com/crewroster/roster-backend-go/internal/domain/holiday"
)

// Days returns the day numbers 1..n for the month's header row.
func Days(year, month int) []int {
	days := make([]int, DaysInMonth(year, month))
	for i := range days {
		days[i] = i + 1
	}
	return days
}

// DaysOfWeek returns the two-letter uppercase weekday label for every day
// of the month, e.g. "SA", "SU", "MO".
func DaysOfWeek(year, month int) []string {
	n := DaysInMonth(year, month)
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		d := time.Date(year, time.Month(month), i+1, 0, 0, 0, 0, time.UTC)
		labels[i] = strings.ToUpper(d.Weekday().String()[:2])
	}
	return labels
}

// HolidayMarks returns a "PH" marker per day of the month for days carrying
// a public holiday, empty string otherwise. Holidays annotate the header
// only; they never filter shifts out of the grid.
func HolidayMarks(year, month int, holidays []holiday.PublicHoliday) []string {
	n := DaysInMonth(year, month)
	marks := make([]string, n)
	for _, h := range holidays {
		if h.Date.Year() != year || int(h.Date.Month()) != month {
			continue
		}
		day := h.Date.Day()
		if day >= 1 && day <= n {
			marks[day-1] = "PH"
		}
	}
	return marks
}

// DisplayCode compresses a cell's display value to the single-letter code
// the grid renders: H for holidays, L for any leave tier, X for off days.
// Unknown values pass through unchanged.
func DisplayCode(value string) string {
	switch value {
	case "HOLIDAY":
		return "H"
	case "LEAVE", "NORMAL", "ANL1", "ANL2", "ANL3":
		return "L"
	case "OFF":
		return "X"
	default:
		return value
	}
}

// FirstName extracts the leading name token used as the row title.
func FirstName(name string) string {
	first, _, found := strings.Cut(name, " ")
	if !found || first == "" {
		return name
	}
	return first
}
