package shift

import (
	"context"
	"time"
)

// ShiftRepository - interface for the shifts table
type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)

	// ListByRosterWindow returns the non-rejected shifts of the roster's
	// members whose span overlaps [from, to], with the owner's name joined
	// in.
	ListByRosterWindow(ctx context.Context, roster string, from, to time.Time) ([]Shift, error)

	// ListByUserYear returns the member's non-rejected shifts starting in
	// the year, optionally excluding OFF records.
	ListByUserYear(ctx context.Context, userID string, year int, excludeOff bool) ([]Shift, error)

	// ListByYear returns every shift starting in the year regardless of
	// owner or status.
	ListByYear(ctx context.Context, year int) ([]Shift, error)

	Update(ctx context.Context, req UpdateShiftRequest) error
	Delete(ctx context.Context, id string) error
}
