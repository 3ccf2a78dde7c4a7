package shift

import (
	"sort"

	"github.com/crewroster/roster-backend-go/internal/domain/shift"
)

// UsageGroup is one (priority, type) bucket of a member's yearly shifts.
type UsageGroup struct {
	Priority string `json:"priority"`
	Type     string `json:"type"`
	Count    int    `json:"count"`
	Days     int    `json:"days"`
}

// UsageSummary is the yearly leave usage derived from a member's shift
// records: the per-bucket breakdown, the preferential-tier flags, and the
// total days counted against the leave entitlement.
type UsageSummary struct {
	Year    int          `json:"year"`
	Groups  []UsageGroup `json:"groups"`
	HasANL1 bool         `json:"has_anl1"`
	HasANL2 bool         `json:"has_anl2"`
	Used    int          `json:"used"`
}

// AggregateUsage folds a member's shifts for one year into a UsageSummary.
// Rejected records and records of other years are skipped; OFF days appear
// in their bucket but never count toward Used. The result is independent of
// input order.
func AggregateUsage(year int, shifts []shift.Shift) UsageSummary {
	summary := UsageSummary{Year: year}

	type key struct {
		priority shift.Priority
		typ      shift.Type
	}
	buckets := make(map[key]*UsageGroup)

	for _, s := range shifts {
		if s.Status == shift.StatusRejected {
			continue
		}
		if s.Start.Year() != year {
			continue
		}

		k := key{priority: s.Priority, typ: s.Type}
		g, ok := buckets[k]
		if !ok {
			g = &UsageGroup{Priority: string(s.Priority), Type: string(s.Type)}
			buckets[k] = g
		}
		g.Count++
		g.Days += s.Amount

		switch s.Priority {
		case shift.PriorityANL1:
			summary.HasANL1 = true
		case shift.PriorityANL2:
			summary.HasANL2 = true
		}

		if s.Type != shift.TypeOff {
			summary.Used += s.Amount
		}
	}

	summary.Groups = make([]UsageGroup, 0, len(buckets))
	for _, g := range buckets {
		summary.Groups = append(summary.Groups, *g)
	}
	sort.Slice(summary.Groups, func(i, j int) bool {
		a, b := summary.Groups[i], summary.Groups[j]
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return a.Type < b.Type
	})

	return summary
}
