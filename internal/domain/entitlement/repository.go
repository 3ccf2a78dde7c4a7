package entitlement

import "context"

// EntitlementRepository - interface for the entitlements table
type EntitlementRepository interface {
	Create(ctx context.Context, e Entitlement) (Entitlement, error)
	GetByID(ctx context.Context, id string) (Entitlement, error)
	ListByUser(ctx context.Context, userID string) ([]Entitlement, error)
	ListByUserYear(ctx context.Context, userID string, year int) ([]Entitlement, error)
	Update(ctx context.Context, req UpdateEntitlementRequest) error
	Delete(ctx context.Context, id string) error
}
