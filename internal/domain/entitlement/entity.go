package entitlement

import "time"

// Entitlement is a per-user, per-year allotment of leave days. Multiple
// named categories per year are allowed by the schema; the dashboard
// consumes the first one for the remaining-days figure.
type Entitlement struct {
	ID     string
	UserID string
	Name   string
	Year   int
	Amount int

	CreatedAt time.Time
	UpdatedAt time.Time
}
