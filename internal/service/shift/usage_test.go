package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/crewroster/roster-backend-go/internal/domain/shift"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func usageShift(id, start, end string, typ shift.Type, priority shift.Priority, status shift.Status) shift.Shift {
	return shift.Shift{
		ID:       id,
		UserID:   "u1",
		Start:    date(start),
		End:      date(end),
		Type:     typ,
		Priority: priority,
		Status:   status,
		Amount:   shift.SpanDays(date(start), date(end)),
	}
}

func TestAggregateUsage_GroupsAndTotals(t *testing.T) {
	shifts := []shift.Shift{
		usageShift("s1", "2023-02-01", "2023-02-03", shift.TypeLeave, shift.PriorityANL1, shift.StatusApproved),
		usageShift("s2", "2023-04-10", "2023-04-11", shift.TypeLeave, shift.PriorityANL3, shift.StatusApproved),
		usageShift("s3", "2023-06-05", "2023-06-05", shift.TypeLeave, shift.PriorityANL3, shift.StatusPending),
		usageShift("s4", "2023-08-20", "2023-08-21", shift.TypeLeave, shift.PriorityANL2, shift.StatusApproved),
	}

	got := AggregateUsage(2023, shifts)

	assert.Equal(t, 2023, got.Year)
	assert.True(t, got.HasANL1)
	assert.True(t, got.HasANL2)
	assert.Equal(t, 8, got.Used)

	// Groups come back sorted by priority then type; the two ANL3 records
	// fold into one bucket.
	assert.Equal(t, []UsageGroup{
		{Priority: "ANL1", Type: "LEAVE", Count: 1, Days: 3},
		{Priority: "ANL2", Type: "LEAVE", Count: 1, Days: 2},
		{Priority: "ANL3", Type: "LEAVE", Count: 2, Days: 3},
	}, got.Groups)
}

func TestAggregateUsage_SkipsRejected(t *testing.T) {
	shifts := []shift.Shift{
		usageShift("s1", "2023-02-01", "2023-02-03", shift.TypeLeave, shift.PriorityANL1, shift.StatusRejected),
		usageShift("s2", "2023-03-01", "2023-03-01", shift.TypeLeave, shift.PriorityANL3, shift.StatusApproved),
	}

	got := AggregateUsage(2023, shifts)

	assert.False(t, got.HasANL1)
	assert.Equal(t, 1, got.Used)
	assert.Len(t, got.Groups, 1)
}

func TestAggregateUsage_OffDaysNeverCountAsUsed(t *testing.T) {
	shifts := []shift.Shift{
		usageShift("s1", "2023-05-01", "2023-05-02", shift.TypeOff, shift.PriorityNormal, shift.StatusApproved),
		usageShift("s2", "2023-05-10", "2023-05-10", shift.TypeLeave, shift.PriorityANL3, shift.StatusApproved),
	}

	got := AggregateUsage(2023, shifts)

	assert.Equal(t, 1, got.Used)
	assert.Len(t, got.Groups, 2)
}

func TestAggregateUsage_SkipsOtherYears(t *testing.T) {
	shifts := []shift.Shift{
		usageShift("s1", "2022-12-28", "2022-12-30", shift.TypeLeave, shift.PriorityANL1, shift.StatusApproved),
		usageShift("s2", "2023-01-05", "2023-01-06", shift.TypeLeave, shift.PriorityANL3, shift.StatusApproved),
	}

	got := AggregateUsage(2023, shifts)

	assert.False(t, got.HasANL1)
	assert.Equal(t, 2, got.Used)
	assert.Len(t, got.Groups, 1)
}

func TestAggregateUsage_OrderIndependent(t *testing.T) {
	shifts := []shift.Shift{
		usageShift("s1", "2023-02-01", "2023-02-03", shift.TypeLeave, shift.PriorityANL1, shift.StatusApproved),
		usageShift("s2", "2023-04-10", "2023-04-11", shift.TypeLeave, shift.PriorityANL3, shift.StatusApproved),
		usageShift("s3", "2023-06-05", "2023-06-05", shift.TypeLeave, shift.PriorityANL2, shift.StatusApproved),
	}
	reversed := []shift.Shift{shifts[2], shifts[1], shifts[0]}

	assert.Equal(t, AggregateUsage(2023, shifts), AggregateUsage(2023, reversed))
}

func TestAggregateUsage_Empty(t *testing.T) {
	got := AggregateUsage(2023, nil)

	assert.Equal(t, 0, got.Used)
	assert.False(t, got.HasANL1)
	assert.False(t, got.HasANL2)
	assert.Empty(t, got.Groups)
}
