package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/crewroster/roster-backend-go/internal/domain/entitlement"
	"github.com/crewroster/roster-backend-go/internal/pkg/database"
)

type entitlementRepositoryImpl struct {
	db *database.DB
}

func NewEntitlementRepository(db *database.DB) entitlement.EntitlementRepository {
	return &entitlementRepositoryImpl{db: db}
}

// Create implements entitlement.EntitlementRepository.
func (r *entitlementRepositoryImpl) Create(ctx context.Context, e entitlement.Entitlement) (entitlement.Entitlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO entitlements (id, user_id, name, year, amount, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING id, user_id, name, year, amount, created_at, updated_at
	`

	var created entitlement.Entitlement
	err := q.QueryRow(ctx, query, e.UserID, e.Name, e.Year, e.Amount).Scan(
		&created.ID,
		&created.UserID,
		&created.Name,
		&created.Year,
		&created.Amount,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return entitlement.Entitlement{}, err
	}

	return created, nil
}

// GetByID implements entitlement.EntitlementRepository.
func (r *entitlementRepositoryImpl) GetByID(ctx context.Context, id string) (entitlement.Entitlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, name, year, amount, created_at, updated_at
		FROM entitlements
		WHERE id = $1
	`

	var found entitlement.Entitlement
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.UserID,
		&found.Name,
		&found.Year,
		&found.Amount,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return entitlement.Entitlement{}, entitlement.ErrEntitlementNotFound
		}
		return entitlement.Entitlement{}, err
	}

	return found, nil
}

// ListByUser implements entitlement.EntitlementRepository.
func (r *entitlementRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]entitlement.Entitlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, name, year, amount, created_at, updated_at
		FROM entitlements
		WHERE user_id = $1
		ORDER BY year DESC, name ASC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntitlements(rows)
}

// ListByUserYear implements entitlement.EntitlementRepository.
func (r *entitlementRepositoryImpl) ListByUserYear(ctx context.Context, userID string, year int) ([]entitlement.Entitlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, name, year, amount, created_at, updated_at
		FROM entitlements
		WHERE user_id = $1 AND year = $2
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query, userID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntitlements(rows)
}

func scanEntitlements(rows pgx.Rows) ([]entitlement.Entitlement, error) {
	var entitlements []entitlement.Entitlement
	for rows.Next() {
		var e entitlement.Entitlement
		err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.Name,
			&e.Year,
			&e.Amount,
			&e.CreatedAt,
			&e.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		entitlements = append(entitlements, e)
	}
	return entitlements, rows.Err()
}

// Update implements entitlement.EntitlementRepository.
func (r *entitlementRepositoryImpl) Update(ctx context.Context, req entitlement.UpdateEntitlementRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Year != nil {
		updates = append(updates, fmt.Sprintf("year = $%d", argIdx))
		args = append(args, *req.Year)
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

	query := fmt.Sprintf("UPDATE entitlements SET %s WHERE id = $%d", strings.Join(updates, ", "), argIdx)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return entitlement.ErrEntitlementNotFound
	}

	return nil
}

// Delete implements entitlement.EntitlementRepository.
func (r *entitlementRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM entitlements WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return entitlement.ErrEntitlementNotFound
	}

	return nil
}
