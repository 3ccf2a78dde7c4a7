package shift

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestSpanDays(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"2023-07-10", "2023-07-10", 1},
		{"2023-07-10", "2023-07-12", 3},
		{"2023-06-29", "2023-07-02", 4},
		{"2023-12-30", "2024-01-03", 5},
		{"2023-07-12", "2023-07-10", 0},
	}
	for _, c := range cases {
		got := SpanDays(day(c.start), day(c.end))
		if got != c.want {
			t.Errorf("SpanDays(%s, %s) = %d, want %d", c.start, c.end, got, c.want)
		}
	}
}

func TestSpanDaysIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2023, 7, 10, 23, 59, 0, 0, time.UTC)
	end := time.Date(2023, 7, 11, 0, 1, 0, 0, time.UTC)
	if got := SpanDays(start, end); got != 2 {
		t.Errorf("SpanDays across midnight = %d, want 2", got)
	}
}

func TestParseType(t *testing.T) {
	for _, s := range []string{"LEAVE", "OFF", "HOLIDAY"} {
		if _, err := ParseType(s); err != nil {
			t.Errorf("ParseType(%q) returned %v", s, err)
		}
	}
	for _, s := range []string{"", "leave", "SICK"} {
		if _, err := ParseType(s); err == nil {
			t.Errorf("ParseType(%q) accepted an invalid type", s)
		}
	}
}

func TestParsePriority(t *testing.T) {
	for _, s := range []string{"NORMAL", "ANL1", "ANL2", "ANL3"} {
		if _, err := ParsePriority(s); err != nil {
			t.Errorf("ParsePriority(%q) returned %v", s, err)
		}
	}
	for _, s := range []string{"", "anl1", "ANL4"} {
		if _, err := ParsePriority(s); err == nil {
			t.Errorf("ParsePriority(%q) accepted an invalid priority", s)
		}
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"PENDING", "APPROVED", "REJECTED"} {
		if _, err := ParseStatus(s); err != nil {
			t.Errorf("ParseStatus(%q) returned %v", s, err)
		}
	}
	if _, err := ParseStatus("CANCELLED"); err == nil {
		t.Error("ParseStatus accepted an unknown status")
	}
}

func TestDefaultPriority(t *testing.T) {
	if got := DefaultPriority(PhaseA); got != PriorityANL3 {
		t.Errorf("DefaultPriority(PhaseA) = %s, want ANL3", got)
	}
	if got := DefaultPriority(PhaseB); got != PriorityNormal {
		t.Errorf("DefaultPriority(PhaseB) = %s, want NORMAL", got)
	}
}
