package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/crewroster/roster-backend-go/internal/domain/shift"
	"github.com/crewroster/roster-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

// Create implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (id, user_id, start_date, end_date, type, priority, status, amount, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, user_id, start_date, end_date, type, priority, status, amount, created_at, updated_at
	`

	var created shift.Shift
	err := q.QueryRow(ctx, query,
		s.UserID,
		s.Start,
		s.End,
		s.Type,
		s.Priority,
		s.Status,
		s.Amount,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.Start,
		&created.End,
		&created.Type,
		&created.Priority,
		&created.Status,
		&created.Amount,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return shift.Shift{}, err
	}

	return created, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, start_date, end_date, type, priority, status, amount, created_at, updated_at
		FROM shifts
		WHERE id = $1
	`

	var found shift.Shift
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.UserID,
		&found.Start,
		&found.End,
		&found.Type,
		&found.Priority,
		&found.Status,
		&found.Amount,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, err
	}

	return found, nil
}

// ListByRosterWindow implements shift.ShiftRepository. Rejected requests
// never reach the grid.
func (r *shiftRepositoryImpl) ListByRosterWindow(ctx context.Context, roster string, from, to time.Time) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.user_id, s.start_date, s.end_date, s.type, s.priority, s.status, s.amount, s.created_at, s.updated_at, u.name
		FROM shifts s
		INNER JOIN users u ON s.user_id = u.id
		WHERE u.roster = $1
		  AND s.status <> 'REJECTED'
		  AND s.start_date <= $3
		  AND s.end_date >= $2
		ORDER BY s.start_date ASC, s.created_at ASC
	`

	rows, err := q.Query(ctx, query, roster, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.Start,
			&s.End,
			&s.Type,
			&s.Priority,
			&s.Status,
			&s.Amount,
			&s.CreatedAt,
			&s.UpdatedAt,
			&s.UserName,
		)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}

	return shifts, rows.Err()
}

// ListByUserYear implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) ListByUserYear(ctx context.Context, userID string, year int, excludeOff bool) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, start_date, end_date, type, priority, status, amount, created_at, updated_at
		FROM shifts
		WHERE user_id = $1
		  AND EXTRACT(YEAR FROM start_date) = $2
		  AND status <> 'REJECTED'
	`
	if excludeOff {
		query += ` AND type <> 'OFF'`
	}
	query += ` ORDER BY start_date ASC`

	rows, err := q.Query(ctx, query, userID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanShifts(rows)
}

// ListByYear implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) ListByYear(ctx context.Context, year int) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, start_date, end_date, type, priority, status, amount, created_at, updated_at
		FROM shifts
		WHERE EXTRACT(YEAR FROM start_date) = $1
		ORDER BY start_date ASC, created_at ASC
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanShifts(rows)
}

func scanShifts(rows pgx.Rows) ([]shift.Shift, error) {
	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.Start,
			&s.End,
			&s.Type,
			&s.Priority,
			&s.Status,
			&s.Amount,
			&s.CreatedAt,
			&s.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

// Update implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Update(ctx context.Context, req shift.UpdateShiftRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.StartDate != nil {
		updates = append(updates, fmt.Sprintf("start_date = $%d", argIdx))
		args = append(args, *req.StartDate)
		argIdx++
	}
	if req.EndDate != nil {
		updates = append(updates, fmt.Sprintf("end_date = $%d", argIdx))
		args = append(args, *req.EndDate)
		argIdx++
	}
	if req.Type != nil {
		updates = append(updates, fmt.Sprintf("type = $%d", argIdx))
		args = append(args, *req.Type)
		argIdx++
	}
	if req.Priority != nil {
		updates = append(updates, fmt.Sprintf("priority = $%d", argIdx))
		args = append(args, *req.Priority)
		argIdx++
	}
	if req.Status != nil {
		updates = append(updates, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *req.Status)
		argIdx++
	}
	if req.Amount != nil {
		updates = append(updates, fmt.Sprintf("amount = $%d", argIdx))
		args = append(args, *req.Amount)
		argIdx++
	}

	if len(updates) == 0 {
		return nil
	}

	updates = append(updates, "updated_at = NOW()")
	args = append(args, req.ID)

	query := fmt.Sprintf("UPDATE shifts SET %s WHERE id = $%d", strings.Join(updates, ", "), argIdx)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// Delete implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM shifts WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return shift.ErrShiftNotFound
	}

	return nil
}
