package holiday

import "time"

// PublicHoliday annotates a calendar date on the roster header. It never
// filters shift records.
type PublicHoliday struct {
	ID   string
	Date time.Time
	Name string
}
