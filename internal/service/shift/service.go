package shift

import (
	"context"
	"fmt"

	"github.com/crewroster/roster-backend-go/internal/domain/shift"
	"github.com/crewroster/roster-backend-go/internal/domain/user"
)

// Actor is the authenticated identity performing a shift operation.
type Actor struct {
	ID   string
	Role user.Role
}

type ShiftService struct {
	shift.ShiftRepository
	phase shift.PolicyPhase
}

func NewShiftService(shiftRepository shift.ShiftRepository, phase shift.PolicyPhase) *ShiftService {
	return &ShiftService{
		ShiftRepository: shiftRepository,
		phase:           phase,
	}
}

// Create validates and stores a new shift request. The request always
// lands as PENDING; the amount is derived from the span server-side.
func (s *ShiftService) Create(ctx context.Context, actor Actor, req *shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	typ, err := shift.ParseType(req.Type)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	priority := shift.DefaultPriority(s.phase)
	if req.Priority != "" {
		priority, err = shift.ParsePriority(req.Priority)
		if err != nil {
			return shift.ShiftResponse{}, err
		}
	}

	span := shift.SpanDays(req.StartDate, req.EndDate)
	if span == 0 {
		return shift.ShiftResponse{}, shift.ErrEndBeforeStart
	}
	if span > shift.MaxRequestSpanDays {
		return shift.ShiftResponse{}, shift.ErrSpanTooLong
	}

	if typ == shift.TypeOff && actor.Role != user.RoleAdmin {
		return shift.ShiftResponse{}, shift.ErrOffAdminOnly
	}

	if s.phase == shift.PhaseA && typ == shift.TypeLeave && priority == shift.PriorityNormal {
		return shift.ShiftResponse{}, shift.ErrNormalUnavailable
	}

	if priority == shift.PriorityANL1 || priority == shift.PriorityANL2 {
		year := req.StartDate.Year()
		existing, err := s.ShiftRepository.ListByUserYear(ctx, req.UserID, year, true)
		if err != nil {
			return shift.ShiftResponse{}, fmt.Errorf("failed to list shifts for tier check: %w", err)
		}
		usage := AggregateUsage(year, existing)
		if (priority == shift.PriorityANL1 && usage.HasANL1) ||
			(priority == shift.PriorityANL2 && usage.HasANL2) {
			return shift.ShiftResponse{}, shift.ErrTierAlreadyUsed
		}
	}

	created, err := s.ShiftRepository.Create(ctx, shift.Shift{
		UserID:   req.UserID,
		Start:    req.StartDate,
		End:      req.EndDate,
		Type:     typ,
		Priority: priority,
		Status:   shift.StatusPending,
		Amount:   span,
	})
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return shift.NewShiftResponse(created), nil
}

// Update applies an admin edit to a shift. When either boundary date moves
// the amount is recomputed from the resulting span.
func (s *ShiftService) Update(ctx context.Context, req *shift.UpdateShiftRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	existing, err := s.ShiftRepository.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.StartDate != nil || req.EndDate != nil {
		start := existing.Start
		end := existing.End
		if req.StartDate != nil {
			start = *req.StartDate
		}
		if req.EndDate != nil {
			end = *req.EndDate
		}

		span := shift.SpanDays(start, end)
		if span == 0 {
			return shift.ErrEndBeforeStart
		}
		if span > shift.MaxRequestSpanDays {
			return shift.ErrSpanTooLong
		}
		req.Amount = &span
	}

	if err := s.ShiftRepository.Update(ctx, *req); err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}

	return nil
}

func (s *ShiftService) Delete(ctx context.Context, id string) error {
	if _, err := s.ShiftRepository.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.ShiftRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}

	return nil
}

func (s *ShiftService) GetByID(ctx context.Context, id string) (shift.ShiftResponse, error) {
	found, err := s.ShiftRepository.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return shift.NewShiftResponse(found), nil
}

// ListByUserYear returns the member's non-rejected shifts for the year.
func (s *ShiftService) ListByUserYear(ctx context.Context, userID string, year int) ([]shift.ShiftResponse, error) {
	shifts, err := s.ShiftRepository.ListByUserYear(ctx, userID, year, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	resp := make([]shift.ShiftResponse, 0, len(shifts))
	for _, found := range shifts {
		resp = append(resp, shift.NewShiftResponse(found))
	}

	return resp, nil
}

// ListByYear returns every shift for the year, for the admin overview.
func (s *ShiftService) ListByYear(ctx context.Context, year int) ([]shift.ShiftResponse, error) {
	shifts, err := s.ShiftRepository.ListByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	resp := make([]shift.ShiftResponse, 0, len(shifts))
	for _, found := range shifts {
		resp = append(resp, shift.NewShiftResponse(found))
	}

	return resp, nil
}

// UsageSummary aggregates a member's yearly leave usage. OFF days are
// excluded at the query level so they never inflate the totals.
func (s *ShiftService) UsageSummary(ctx context.Context, userID string, year int) (UsageSummary, error) {
	shifts, err := s.ShiftRepository.ListByUserYear(ctx, userID, year, true)
	if err != nil {
		return UsageSummary{}, fmt.Errorf("failed to list shifts for usage summary: %w", err)
	}

	return AggregateUsage(year, shifts), nil
}
