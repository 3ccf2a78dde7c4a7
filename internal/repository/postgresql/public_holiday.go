package postgresql

import (
	"context"
	"fmt"

	"github.com/crewroster/roster-backend-go/internal/domain/holiday"
	"github.com/crewroster/roster-backend-go/internal/pkg/database"
)

type publicHolidayRepositoryImpl struct {
	db *database.DB
}

func NewPublicHolidayRepository(db *database.DB) holiday.PublicHolidayRepository {
	return &publicHolidayRepositoryImpl{db: db}
}

// ListByMonth implements holiday.PublicHolidayRepository.
func (r *publicHolidayRepositoryImpl) ListByMonth(ctx context.Context, year, month int) ([]holiday.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, name
		FROM public_holidays
		WHERE EXTRACT(YEAR FROM date) = $1 AND EXTRACT(MONTH FROM date) = $2
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []holiday.PublicHoliday
	for rows.Next() {
		var h holiday.PublicHoliday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}

// Create implements holiday.PublicHolidayRepository.
func (r *publicHolidayRepositoryImpl) Create(ctx context.Context, h holiday.PublicHoliday) (holiday.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO public_holidays (id, date, name)
		VALUES (uuidv7(), $1, $2)
		RETURNING id, date, name
	`

	var created holiday.PublicHoliday
	err := q.QueryRow(ctx, query, h.Date, h.Name).Scan(&created.ID, &created.Date, &created.Name)
	if err != nil {
		return holiday.PublicHoliday{}, err
	}

	return created, nil
}

// Delete implements holiday.PublicHolidayRepository.
func (r *publicHolidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM public_holidays WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return fmt.Errorf("public holiday with id %s not found", id)
	}

	return nil
}
