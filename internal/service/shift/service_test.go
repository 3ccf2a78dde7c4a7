package shift

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewroster/roster-backend-go/internal/domain/shift"
	"github.com/crewroster/roster-backend-go/internal/domain/user"
)

// fakeShiftRepository keeps shifts in memory so the service rules can be
// exercised without a database.
type fakeShiftRepository struct {
	shifts map[string]shift.Shift
	nextID int
}

func newFakeShiftRepository() *fakeShiftRepository {
	return &fakeShiftRepository{shifts: make(map[string]shift.Shift)}
}

func (f *fakeShiftRepository) Create(_ context.Context, s shift.Shift) (shift.Shift, error) {
	f.nextID++
	s.ID = fmt.Sprintf("shift-%d", f.nextID)
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	f.shifts[s.ID] = s
	return s, nil
}

func (f *fakeShiftRepository) GetByID(_ context.Context, id string) (shift.Shift, error) {
	s, ok := f.shifts[id]
	if !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return s, nil
}

func (f *fakeShiftRepository) ListByRosterWindow(_ context.Context, _ string, _, _ time.Time) ([]shift.Shift, error) {
	return nil, nil
}

func (f *fakeShiftRepository) ListByUserYear(_ context.Context, userID string, year int, excludeOff bool) ([]shift.Shift, error) {
	var out []shift.Shift
	for _, s := range f.shifts {
		if s.UserID != userID || s.Start.Year() != year || s.Status == shift.StatusRejected {
			continue
		}
		if excludeOff && s.Type == shift.TypeOff {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeShiftRepository) ListByYear(_ context.Context, year int) ([]shift.Shift, error) {
	var out []shift.Shift
	for _, s := range f.shifts {
		if s.Start.Year() == year {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeShiftRepository) Update(_ context.Context, req shift.UpdateShiftRequest) error {
	s, ok := f.shifts[req.ID]
	if !ok {
		return shift.ErrShiftNotFound
	}
	if req.StartDate != nil {
		s.Start = *req.StartDate
	}
	if req.EndDate != nil {
		s.End = *req.EndDate
	}
	if req.Type != nil {
		s.Type = shift.Type(*req.Type)
	}
	if req.Priority != nil {
		s.Priority = shift.Priority(*req.Priority)
	}
	if req.Status != nil {
		s.Status = shift.Status(*req.Status)
	}
	if req.Amount != nil {
		s.Amount = *req.Amount
	}
	f.shifts[req.ID] = s
	return nil
}

func (f *fakeShiftRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.shifts[id]; !ok {
		return shift.ErrShiftNotFound
	}
	delete(f.shifts, id)
	return nil
}

var (
	member = Actor{ID: "u1", Role: user.RoleUser}
	admin  = Actor{ID: "a1", Role: user.RoleAdmin}
)

func createReq(userID, start, end, typ, priority string) *shift.CreateShiftRequest {
	return &shift.CreateShiftRequest{
		UserID:   userID,
		Start:    start,
		End:      end,
		Type:     typ,
		Priority: priority,
	}
}

func TestShiftService_Create_ForcesPendingAndAmount(t *testing.T) {
	ctx := context.Background()
	svc := NewShiftService(newFakeShiftRepository(), shift.PhaseA)

	resp, err := svc.Create(ctx, member, createReq("u1", "2023-07-10", "2023-07-12", "LEAVE", "ANL1"))
	require.NoError(t, err)

	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, 3, resp.Amount)
	assert.Equal(t, "2023-07-10", resp.StartDate)
	assert.Equal(t, "2023-07-12", resp.EndDate)
}

func TestShiftService_Create_DefaultsPriorityByPhase(t *testing.T) {
	ctx := context.Background()

	svc := NewShiftService(newFakeShiftRepository(), shift.PhaseA)
	resp, err := svc.Create(ctx, member, createReq("u1", "2023-07-10", "2023-07-10", "LEAVE", ""))
	require.NoError(t, err)
	assert.Equal(t, "ANL3", resp.Priority)

	svc = NewShiftService(newFakeShiftRepository(), shift.PhaseB)
	resp, err = svc.Create(ctx, member, createReq("u1", "2023-07-10", "2023-07-10", "LEAVE", ""))
	require.NoError(t, err)
	assert.Equal(t, "NORMAL", resp.Priority)
}

func TestShiftService_Create_EndBeforeStart(t *testing.T) {
	ctx := context.Background()
	svc := NewShiftService(newFakeShiftRepository(), shift.PhaseA)

	_, err := svc.Create(ctx, member, createReq("u1", "2023-07-12", "2023-07-10", "LEAVE", "ANL3"))
	assert.ErrorIs(t, err, shift.ErrEndBeforeStart)
}

func TestShiftService_Create_SpanCap(t *testing.T) {
	ctx := context.Background()
	svc := NewShiftService(newFakeShiftRepository(), shift.PhaseA)

	// Five inclusive days is the limit.
	_, err := svc.Create(ctx, member, createReq("u1", "2023-07-10", "2023-07-14", "LEAVE", "ANL3"))
	assert.NoError(t, err)

	_, err = svc.Create(ctx, member, createReq("u1", "2023-08-10", "2023-08-15", "LEAVE", "ANL3"))
	assert.ErrorIs(t, err, shift.ErrSpanTooLong)
}

func TestShiftService_Create_OffIsAdminOnly(t *testing.T) {
	ctx := context.Background()
	svc := NewShiftService(newFakeShiftRepository(), shift.PhaseB)

	_, err := svc.Create(ctx, member, createReq("u1", "2023-07-10", "2023-07-10", "OFF", ""))
	assert.ErrorIs(t, err, shift.ErrOffAdminOnly)

	_, err = svc.Create(ctx, admin, createReq("u1", "2023-07-10", "2023-07-10", "OFF", ""))
	assert.NoError(t, err)
}

func TestShiftService_Create_PhaseABlocksNormalLeave(t *testing.T) {
	ctx := context.Background()

	svc := NewShiftService(newFakeShiftRepository(), shift.PhaseA)
	_, err := svc.Create(ctx, member, createReq("u1", "2023-07-10", "2023-07-10", "LEAVE", "NORMAL"))
	assert.ErrorIs(t, err, shift.ErrNormalUnavailable)

	svc = NewShiftService(newFakeShiftRepository(), shift.PhaseB)
	_, err = svc.Create(ctx, member, createReq("u1", "2023-07-10", "2023-07-10", "LEAVE", "NORMAL"))
	assert.NoError(t, err)
}

func TestShiftService_Create_TierOncePerYear(t *testing.T) {
	ctx := context.Background()
	svc := NewShiftService(newFakeShiftRepository(), shift.PhaseA)

	_, err := svc.Create(ctx, member, createReq("u1", "2023-02-01", "2023-02-03", "LEAVE", "ANL1"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, member, createReq("u1", "2023-09-01", "2023-09-02", "LEAVE", "ANL1"))
	assert.ErrorIs(t, err, shift.ErrTierAlreadyUsed)

	// A different tier is still available, and so is ANL1 in another year.
	_, err = svc.Create(ctx, member, createReq("u1", "2023-09-01", "2023-09-02", "LEAVE", "ANL2"))
	assert.NoError(t, err)

	_, err = svc.Create(ctx, member, createReq("u1", "2024-02-01", "2024-02-02", "LEAVE", "ANL1"))
	assert.NoError(t, err)
}

func TestShiftService_Update_RecomputesAmount(t *testing.T) {
	ctx := context.Background()
	repo := newFakeShiftRepository()
	svc := NewShiftService(repo, shift.PhaseA)

	created, err := svc.Create(ctx, member, createReq("u1", "2023-07-10", "2023-07-11", "LEAVE", "ANL3"))
	require.NoError(t, err)

	newEnd := "2023-07-13"
	err = svc.Update(ctx, &shift.UpdateShiftRequest{ID: created.ID, End: &newEnd})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Amount)
	assert.Equal(t, "2023-07-13", got.EndDate)
}

func TestShiftService_Update_StatusOnlyKeepsAmount(t *testing.T) {
	ctx := context.Background()
	repo := newFakeShiftRepository()
	svc := NewShiftService(repo, shift.PhaseA)

	created, err := svc.Create(ctx, member, createReq("u1", "2023-07-10", "2023-07-12", "LEAVE", "ANL3"))
	require.NoError(t, err)

	approved := "APPROVED"
	err = svc.Update(ctx, &shift.UpdateShiftRequest{ID: created.ID, Status: &approved})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", got.Status)
	assert.Equal(t, 3, got.Amount)
}

func TestShiftService_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewShiftService(newFakeShiftRepository(), shift.PhaseA)

	approved := "APPROVED"
	err := svc.Update(ctx, &shift.UpdateShiftRequest{ID: "missing", Status: &approved})
	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
}

func TestShiftService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeShiftRepository()
	svc := NewShiftService(repo, shift.PhaseA)

	created, err := svc.Create(ctx, member, createReq("u1", "2023-07-10", "2023-07-10", "LEAVE", "ANL3"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, shift.ErrShiftNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, "missing"), shift.ErrShiftNotFound)
}

func TestShiftService_UsageSummary_ExcludesOff(t *testing.T) {
	ctx := context.Background()
	repo := newFakeShiftRepository()
	svc := NewShiftService(repo, shift.PhaseA)

	_, err := svc.Create(ctx, member, createReq("u1", "2023-02-01", "2023-02-03", "LEAVE", "ANL1"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, admin, createReq("u1", "2023-03-01", "2023-03-02", "OFF", ""))
	require.NoError(t, err)

	got, err := svc.UsageSummary(ctx, "u1", 2023)
	require.NoError(t, err)

	assert.True(t, got.HasANL1)
	assert.Equal(t, 3, got.Used)
	assert.Len(t, got.Groups, 1)
}
