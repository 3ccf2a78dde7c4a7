package roster

import (
	"errors"
	"sort"
	"time"

	"github.com/crewroster/roster-backend-go/internal/domain/shift"
	"github.com/crewroster/roster-backend-go/internal/domain/user"
)

var (
	// ErrInvalidPeriod signals a month/year pair the grid cannot be built
	// for. Handlers validate route params before calling the builder, so
	// hitting this is a programming error, not a user fault.
	ErrInvalidPeriod = errors.New("Invalid roster period")
)

// Viewer is the identity the grid is rendered for. It drives the single
// visibility rule: OFF shifts are visible to everyone, admins see every
// shift, and members additionally see their own.
type Viewer struct {
	ID   string
	Role user.Role
}

// Cell is one member-day of the grid. The zero value renders as an empty
// day. Display carries the resolved label: the priority when it is a
// meaningful tier, the type otherwise.
type Cell struct {
	ShiftID  string
	Type     string
	Priority string
	Status   string
	Display  string
}

// Row is one roster member's line of cells, one cell per day of the month.
type Row struct {
	Member user.Member
	Cells  []Cell
}

// Grid is the derived month-by-member matrix. Dropped counts records that
// could not be placed: spans ending before they start, and shifts owned by
// nobody in the member list. Those never crash a build.
type Grid struct {
	Rows    []Row
	Dropped int
}

// GridParams are the inputs to one grid build. Shifts must cover the
// padding window of one month either side of the target month so that
// cross-boundary spans expand correctly; the builder trims everything
// outside the target month itself.
type GridParams struct {
	Year   int
	Month  int
	Member []user.Member
	Shifts []shift.Shift
	Viewer Viewer
}

// BuildGrid lays raw shift records out onto the month grid, one row per
// member in sequence order, one cell per calendar day. It is a pure
// transformation: inputs are never mutated and identical inputs always
// produce an identical grid.
func BuildGrid(p GridParams) (Grid, error) {
	if p.Month < 1 || p.Month > 12 || p.Year < 1000 || p.Year > 9999 {
		return Grid{}, ErrInvalidPeriod
	}

	members := sortMembers(p.Member)
	days := DaysInMonth(p.Year, p.Month)

	memberIDs := make(map[string]bool, len(members))
	for _, m := range members {
		memberIDs[m.ID] = true
	}

	grid := Grid{Rows: make([]Row, 0, len(members))}
	for _, s := range p.Shifts {
		if !memberIDs[s.UserID] {
			grid.Dropped++
		}
	}

	for _, m := range members {
		row := Row{Member: m, Cells: make([]Cell, days)}

		// day number (1-based) -> shift chosen for that cell
		placed := make(map[int]shift.Shift)
		for _, s := range p.Shifts {
			if s.UserID != m.ID {
				continue
			}
			if !visibleTo(s, p.Viewer) {
				continue
			}
			if shift.SpanDays(s.Start, s.End) == 0 {
				grid.Dropped++
				continue
			}
			for _, day := range expandIntoMonth(s, p.Year, p.Month) {
				existing, ok := placed[day]
				// Overlaps are not expected; when they happen the most
				// recently created record wins so edits show through.
				if !ok || s.CreatedAt.After(existing.CreatedAt) {
					placed[day] = s
				}
			}
		}

		for day := 1; day <= days; day++ {
			s, ok := placed[day]
			if !ok {
				continue
			}
			row.Cells[day-1] = Cell{
				ShiftID:  s.ID,
				Type:     string(s.Type),
				Priority: string(s.Priority),
				Status:   string(s.Status),
				Display:  displayValue(s),
			}
		}

		grid.Rows = append(grid.Rows, row)
	}

	return grid, nil
}

// sortMembers orders rows by the per-year sequence, members without one
// last. Ties and the no-sequence tail fall back to ID so the order is
// reproducible.
func sortMembers(members []user.Member) []user.Member {
	sorted := make([]user.Member, len(members))
	copy(sorted, members)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		switch {
		case a.Sequence != nil && b.Sequence != nil:
			if *a.Sequence != *b.Sequence {
				return *a.Sequence < *b.Sequence
			}
			return a.ID < b.ID
		case a.Sequence != nil:
			return true
		case b.Sequence != nil:
			return false
		default:
			return a.ID < b.ID
		}
	})
	return sorted
}

func visibleTo(s shift.Shift, v Viewer) bool {
	if s.Type == shift.TypeOff {
		return true
	}
	if v.Role == user.RoleAdmin {
		return true
	}
	return s.UserID == v.ID
}

// expandIntoMonth walks the inclusive [start, end] span one day at a time
// and returns the day-of-month numbers that land inside the target month.
// Days outside it are trimmed; they only existed to carry the span across
// the month boundary.
func expandIntoMonth(s shift.Shift, year, month int) []int {
	var days []int
	start := dateOnly(s.Start)
	end := dateOnly(s.End)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Year() == year && int(d.Month()) == month {
			days = append(days, d.Day())
		}
	}
	return days
}

func displayValue(s shift.Shift) string {
	if s.Priority == "" || s.Priority == shift.PriorityNormal {
		return string(s.Type)
	}
	return string(s.Priority)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysInMonth returns the number of calendar days in the month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
