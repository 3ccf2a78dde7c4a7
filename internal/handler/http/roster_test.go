package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewroster/roster-backend-go/internal/domain/holiday"
	"github.com/crewroster/roster-backend-go/internal/domain/shift"
	"github.com/crewroster/roster-backend-go/internal/domain/user"
	"github.com/crewroster/roster-backend-go/internal/handler/http/response"
	"github.com/crewroster/roster-backend-go/internal/pkg/jwt"
	"github.com/crewroster/roster-backend-go/internal/service/roster"
)

type stubUserRepository struct {
	members []user.Member
}

func (s *stubUserRepository) Create(_ context.Context, _ user.User) (user.User, error) {
	return user.User{}, nil
}

func (s *stubUserRepository) GetByID(_ context.Context, _ string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (s *stubUserRepository) GetByUsername(_ context.Context, _ string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (s *stubUserRepository) GetByEmail(_ context.Context, _ string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (s *stubUserRepository) List(_ context.Context) ([]user.User, error) {
	return nil, nil
}

func (s *stubUserRepository) ListMembersByRoster(_ context.Context, _ user.Roster, _ int) ([]user.Member, error) {
	return s.members, nil
}

func (s *stubUserRepository) Update(_ context.Context, _ user.UpdateUserRequest) error {
	return nil
}

func (s *stubUserRepository) UpdatePassword(_ context.Context, _, _ string) error {
	return nil
}

type stubShiftRepository struct {
	shifts []shift.Shift
}

func (s *stubShiftRepository) Create(_ context.Context, sh shift.Shift) (shift.Shift, error) {
	return sh, nil
}

func (s *stubShiftRepository) GetByID(_ context.Context, _ string) (shift.Shift, error) {
	return shift.Shift{}, shift.ErrShiftNotFound
}

func (s *stubShiftRepository) ListByRosterWindow(_ context.Context, _ string, _, _ time.Time) ([]shift.Shift, error) {
	return s.shifts, nil
}

func (s *stubShiftRepository) ListByUserYear(_ context.Context, _ string, _ int, _ bool) ([]shift.Shift, error) {
	return nil, nil
}

func (s *stubShiftRepository) ListByYear(_ context.Context, _ int) ([]shift.Shift, error) {
	return nil, nil
}

func (s *stubShiftRepository) Update(_ context.Context, _ shift.UpdateShiftRequest) error {
	return nil
}

func (s *stubShiftRepository) Delete(_ context.Context, _ string) error {
	return nil
}

type stubHolidayRepository struct {
	holidays []holiday.PublicHoliday
}

func (s *stubHolidayRepository) ListByMonth(_ context.Context, _, _ int) ([]holiday.PublicHoliday, error) {
	return s.holidays, nil
}

func (s *stubHolidayRepository) Create(_ context.Context, h holiday.PublicHoliday) (holiday.PublicHoliday, error) {
	return h, nil
}

func (s *stubHolidayRepository) Delete(_ context.Context, _ string) error {
	return nil
}

func gridTestRouter(t *testing.T, members []user.Member, shifts []shift.Shift) *chi.Mux {
	t.Helper()

	svc := roster.NewRosterService(
		&stubUserRepository{members: members},
		&stubShiftRepository{shifts: shifts},
		&stubHolidayRepository{},
	)
	handler := NewRosterHandler(svc)

	r := chi.NewRouter()
	r.Get("/rosters/{roster}/{year}/{month}", handler.MonthGrid)
	return r
}

func authedRequest(t *testing.T, target string, role user.Role) *http.Request {
	t.Helper()

	svc := jwt.NewJWTService("handler-test-secret", "1h", "24h")
	token, _, err := svc.GenerateAccessToken("viewer-1", "viewer", role)
	require.NoError(t, err)

	decoded, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	return req.WithContext(jwtauth.NewContext(req.Context(), decoded, nil))
}

func TestMonthGrid_Success(t *testing.T) {
	members := []user.Member{{ID: "u1", Name: "Alice Smith"}}
	shifts := []shift.Shift{{
		ID:       "s1",
		UserID:   "u1",
		Start:    time.Date(2023, 7, 10, 0, 0, 0, 0, time.UTC),
		End:      time.Date(2023, 7, 11, 0, 0, 0, 0, time.UTC),
		Type:     shift.TypeLeave,
		Priority: shift.PriorityANL1,
		Status:   shift.StatusApproved,
	}}

	router := gridTestRouter(t, members, shifts)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, "/rosters/engineer/2023/7", user.RoleAdmin))

	require.Equal(t, http.StatusOK, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)

	payload, err := json.Marshal(body.Data)
	require.NoError(t, err)
	var grid roster.GridResponse
	require.NoError(t, json.Unmarshal(payload, &grid))

	assert.Equal(t, "ENGINEER", grid.Roster)
	assert.Len(t, grid.Days, 31)
	require.Len(t, grid.Rows, 1)
	assert.Equal(t, "Alice", grid.Rows[0].Name)
	assert.Equal(t, "ANL1", grid.Rows[0].Cells[9].Display)
	assert.Equal(t, "L", grid.Rows[0].Cells[9].Code)
}

func TestMonthGrid_RouteParamValidation(t *testing.T) {
	router := gridTestRouter(t, nil, nil)

	cases := []string{
		"/rosters/pilots/2023/7",
		"/rosters/engineer/23/7",
		"/rosters/engineer/2023/13",
		"/rosters/engineer/2023/0",
		"/rosters/engineer/abcd/7",
	}
	for _, target := range cases {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, authedRequest(t, target, user.RoleAdmin))
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestMonthGrid_RequiresToken(t *testing.T) {
	router := gridTestRouter(t, nil, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rosters/engineer/2023/7", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
