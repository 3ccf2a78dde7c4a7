package roster

import (
	"context"
	"fmt"
	"time"

	"github.com/crewroster/roster-backend-go/internal/domain/holiday"
	"github.com/crewroster/roster-backend-go/internal/domain/shift"
	"github.com/crewroster/roster-backend-go/internal/domain/user"
)

// GridResponse is the JSON payload for one roster month: the header rows
// (day numbers, weekday labels, public holiday marks) plus one row per
// member.
type GridResponse struct {
	Roster     string        `json:"roster"`
	Year       int           `json:"year"`
	Month      int           `json:"month"`
	Days       []int         `json:"days"`
	DaysOfWeek []string      `json:"days_of_week"`
	Holidays   []string      `json:"holidays"`
	Rows       []RowResponse `json:"rows"`
}

type RowResponse struct {
	UserID string         `json:"user_id"`
	Name   string         `json:"name"`
	Cells  []CellResponse `json:"cells"`
}

type CellResponse struct {
	ShiftID  string `json:"shift_id,omitempty"`
	Type     string `json:"type,omitempty"`
	Priority string `json:"priority,omitempty"`
	Status   string `json:"status,omitempty"`
	Display  string `json:"display,omitempty"`
	Code     string `json:"code,omitempty"`
}

type RosterService struct {
	user.UserRepository
	shift.ShiftRepository
	holiday.PublicHolidayRepository
}

func NewRosterService(userRepository user.UserRepository, shiftRepository shift.ShiftRepository, holidayRepository holiday.PublicHolidayRepository) *RosterService {
	return &RosterService{
		UserRepository:          userRepository,
		ShiftRepository:         shiftRepository,
		PublicHolidayRepository: holidayRepository,
	}
}

// MonthGrid fetches the roster's members, the shift records overlapping the
// padded window around the month, and the month's public holidays, and
// assembles the rendered grid for the viewer.
func (s *RosterService) MonthGrid(ctx context.Context, roster user.Roster, year, month int, viewer Viewer) (GridResponse, error) {
	members, err := s.UserRepository.ListMembersByRoster(ctx, roster, year)
	if err != nil {
		return GridResponse{}, fmt.Errorf("failed to list roster members: %w", err)
	}

	from, to := paddedWindow(year, month)
	shifts, err := s.ShiftRepository.ListByRosterWindow(ctx, string(roster), from, to)
	if err != nil {
		return GridResponse{}, fmt.Errorf("failed to list shifts for roster window: %w", err)
	}

	holidays, err := s.PublicHolidayRepository.ListByMonth(ctx, year, month)
	if err != nil {
		return GridResponse{}, fmt.Errorf("failed to list public holidays: %w", err)
	}

	grid, err := BuildGrid(GridParams{
		Year:   year,
		Month:  month,
		Member: members,
		Shifts: shifts,
		Viewer: viewer,
	})
	if err != nil {
		return GridResponse{}, err
	}

	resp := GridResponse{
		Roster:     string(roster),
		Year:       year,
		Month:      month,
		Days:       Days(year, month),
		DaysOfWeek: DaysOfWeek(year, month),
		Holidays:   HolidayMarks(year, month, holidays),
		Rows:       make([]RowResponse, 0, len(grid.Rows)),
	}

	for _, row := range grid.Rows {
		r := RowResponse{
			UserID: row.Member.ID,
			Name:   FirstName(row.Member.Name),
			Cells:  make([]CellResponse, len(row.Cells)),
		}
		for i, cell := range row.Cells {
			r.Cells[i] = CellResponse{
				ShiftID:  cell.ShiftID,
				Type:     cell.Type,
				Priority: cell.Priority,
				Status:   cell.Status,
				Display:  cell.Display,
				Code:     DisplayCode(cell.Display),
			}
		}
		resp.Rows = append(resp.Rows, r)
	}

	return resp, nil
}

// paddedWindow returns the fetch window for a month grid: the first day of
// the previous month through the last day of the next one, so spans that
// cross the month boundary expand correctly.
func paddedWindow(year, month int) (time.Time, time.Time) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	from := first.AddDate(0, -1, 0)
	to := first.AddDate(0, 2, -1)
	return from, to
}
