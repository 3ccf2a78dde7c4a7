package entitlement

import (
	"context"
	"fmt"

	"github.com/crewroster/roster-backend-go/internal/domain/entitlement"
	"github.com/crewroster/roster-backend-go/internal/domain/user"
)

type EntitlementService struct {
	entitlement.EntitlementRepository
	user.UserRepository
}

func NewEntitlementService(entitlementRepository entitlement.EntitlementRepository, userRepository user.UserRepository) *EntitlementService {
	return &EntitlementService{
		EntitlementRepository: entitlementRepository,
		UserRepository:        userRepository,
	}
}

func (s *EntitlementService) Create(ctx context.Context, req *entitlement.CreateEntitlementRequest) (entitlement.Entitlement, error) {
	if err := req.Validate(); err != nil {
		return entitlement.Entitlement{}, err
	}

	if _, err := s.UserRepository.GetByID(ctx, req.UserID); err != nil {
		return entitlement.Entitlement{}, err
	}

	created, err := s.EntitlementRepository.Create(ctx, entitlement.Entitlement{
		UserID: req.UserID,
		Name:   req.Name,
		Year:   req.Year,
		Amount: req.Amount,
	})
	if err != nil {
		return entitlement.Entitlement{}, fmt.Errorf("failed to create entitlement: %w", err)
	}

	return created, nil
}

func (s *EntitlementService) GetByID(ctx context.Context, id string) (entitlement.Entitlement, error) {
	return s.EntitlementRepository.GetByID(ctx, id)
}

func (s *EntitlementService) ListByUser(ctx context.Context, userID string) ([]entitlement.Entitlement, error) {
	return s.EntitlementRepository.ListByUser(ctx, userID)
}

func (s *EntitlementService) ListByUserYear(ctx context.Context, userID string, year int) ([]entitlement.Entitlement, error) {
	return s.EntitlementRepository.ListByUserYear(ctx, userID, year)
}

func (s *EntitlementService) Update(ctx context.Context, req *entitlement.UpdateEntitlementRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.EntitlementRepository.Update(ctx, *req)
}

func (s *EntitlementService) Delete(ctx context.Context, id string) error {
	return s.EntitlementRepository.Delete(ctx, id)
}

// Remaining reports the member's leave balance for the year: the summed
// entitlement minus the days already used.
func (s *EntitlementService) Remaining(ctx context.Context, userID string, year int, used int) (int, error) {
	entitlements, err := s.EntitlementRepository.ListByUserYear(ctx, userID, year)
	if err != nil {
		return 0, fmt.Errorf("failed to list entitlements: %w", err)
	}

	total := 0
	for _, e := range entitlements {
		total += e.Amount
	}

	return total - used, nil
}
