package holiday

import "context"

// PublicHolidayRepository - interface for the public_holidays table
type PublicHolidayRepository interface {
	ListByMonth(ctx context.Context, year, month int) ([]PublicHoliday, error)
	Create(ctx context.Context, h PublicHoliday) (PublicHoliday, error)
	Delete(ctx context.Context, id string) error
}
