package shift

import "time"

// Type classifies what a shift record blocks the day out as.
type Type string

const (
	TypeLeave   Type = "LEAVE"
	TypeOff     Type = "OFF"
	TypeHoliday Type = "HOLIDAY"
)

// Priority is the annual-leave tier attached to a shift. NORMAL marks an
// untiered request; ANL1 and ANL2 are the once-per-year preferential tiers,
// ANL3 the unlimited fallback.
type Priority string

const (
	PriorityNormal Priority = "NORMAL"
	PriorityANL1   Priority = "ANL1"
	PriorityANL2   Priority = "ANL2"
	PriorityANL3   Priority = "ANL3"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// PolicyPhase selects the request-rule regime. Phase A restricts leave to
// the ANL tiers and defaults new requests to ANL3; phase B lifts the
// restriction and defaults to NORMAL.
type PolicyPhase string

const (
	PhaseA PolicyPhase = "A"
	PhaseB PolicyPhase = "B"
)

// Shift is one blocked span of days for one member. Start and End are
// inclusive calendar dates; Amount is the day count derived from them at
// write time.
type Shift struct {
	ID        string
	UserID    string
	Start     time.Time
	End       time.Time
	Type      Type
	Priority  Priority
	Status    Status
	Amount    int
	CreatedAt time.Time
	UpdatedAt time.Time

	// UserName is joined in by list queries for display; nil elsewhere.
	UserName *string
}

func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeLeave, TypeOff, TypeHoliday:
		return Type(s), nil
	}
	return "", ErrInvalidType
}

func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityNormal, PriorityANL1, PriorityANL2, PriorityANL3:
		return Priority(s), nil
	}
	return "", ErrInvalidPriority
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

func ParsePolicyPhase(s string) (PolicyPhase, error) {
	switch PolicyPhase(s) {
	case PhaseA, PhaseB:
		return PolicyPhase(s), nil
	}
	return "", ErrInvalidPhase
}

// SpanDays counts the calendar days covered by the inclusive [start, end]
// span, ignoring the time of day. A span ending before it starts counts as
// zero days.
func SpanDays(start, end time.Time) int {
	s := truncateToDay(start)
	e := truncateToDay(end)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DefaultPriority returns the priority a request gets when the caller sends
// none.
func DefaultPriority(phase PolicyPhase) Priority {
	if phase == PhaseA {
		return PriorityANL3
	}
	return PriorityNormal
}
