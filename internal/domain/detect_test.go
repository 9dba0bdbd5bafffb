package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EDU-SchedulingService/pkg/types"
)

func sched(id int64, room string, day Weekday, start, end, course string) *Schedule {
	return &Schedule{
		ID:        id,
		RoomID:    room,
		Day:       day,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
		Course:    course,
		Status:    DefaultStatus,
	}
}

func TestClassifySeverity(t *testing.T) {
	tests := []struct {
		name           string
		overlapMinutes int
		shorterMinutes int
		sameSpan       bool
		sameCourse     bool
		want           ConflictSeverity
	}{
		{name: "exact duplicate is critical", overlapMinutes: 90, shorterMinutes: 90, sameSpan: true, sameCourse: true, want: SeverityCritical},
		{name: "same span different course is high", overlapMinutes: 90, shorterMinutes: 90, want: SeverityHigh},
		{name: "overlap above half of shorter is high", overlapMinutes: 40, shorterMinutes: 60, want: SeverityHigh},
		{name: "overlap exactly half of shorter is medium", overlapMinutes: 30, shorterMinutes: 60, want: SeverityMedium},
		{name: "overlap of 15 minutes is medium", overlapMinutes: 15, shorterMinutes: 120, want: SeverityMedium},
		{name: "overlap below 15 minutes is low", overlapMinutes: 10, shorterMinutes: 120, want: SeverityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifySeverity(tt.overlapMinutes, tt.shorterMinutes, tt.sameSpan, tt.sameCourse)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildConflict(t *testing.T) {
	t.Run("partial overlap", func(t *testing.T) {
		a := sched(1, "R1", Monday, "09:00", "10:30", "Math 101")
		b := sched(2, "R1", Monday, "10:00", "11:00", "Physics 201")

		c, ok := BuildConflict(a, b)
		require.True(t, ok)
		assert.Equal(t, ConflictPartialOverlap, c.Type)
		assert.Equal(t, SeverityMedium, c.Severity)
		assert.Equal(t, "10:00-10:30", c.OverlapPeriod())
		assert.Equal(t, 30, c.OverlapMinutes)
		assert.Equal(t, int64(1), c.First.ID)
		assert.Equal(t, int64(2), c.Second.ID)
	})

	t.Run("exact duplicate", func(t *testing.T) {
		a := sched(1, "R1", Monday, "09:00", "10:30", "Math 101")
		b := sched(2, "R1", Monday, "09:00", "10:30", "Math 101")

		c, ok := BuildConflict(a, b)
		require.True(t, ok)
		assert.Equal(t, ConflictExactDuplicate, c.Type)
		assert.Equal(t, SeverityCritical, c.Severity)
		assert.Equal(t, 90, c.OverlapMinutes)
	})

	t.Run("back to back is not a conflict", func(t *testing.T) {
		a := sched(1, "R1", Monday, "09:00", "10:30", "Math 101")
		b := sched(2, "R1", Monday, "10:30", "11:30", "Physics 201")

		_, ok := BuildConflict(a, b)
		assert.False(t, ok)
	})

	t.Run("invalid times are skipped", func(t *testing.T) {
		a := sched(1, "R1", Monday, "10:30", "09:00", "Math 101")
		b := sched(2, "R1", Monday, "09:00", "11:00", "Physics 201")

		_, ok := BuildConflict(a, b)
		assert.False(t, ok)
	})
}

func TestDetectConflicts(t *testing.T) {
	schedules := []*Schedule{
		sched(1, "R1", Monday, "09:00", "10:30", "Math 101"),
		sched(2, "R1", Monday, "10:00", "11:00", "Physics 201"),
		sched(3, "R1", Monday, "14:00", "15:00", "Chemistry 301"),
	}

	conflicts := DetectConflicts(schedules)
	require.Len(t, conflicts, 1)
	assert.Equal(t, int64(1), conflicts[0].First.ID)
	assert.Equal(t, int64(2), conflicts[0].Second.ID)

	// Отсутствие конфликтов - пустой срез, не nil
	none := DetectConflicts([]*Schedule{sched(3, "R1", Monday, "14:00", "15:00", "Chemistry 301")})
	require.NotNil(t, none)
	assert.Empty(t, none)
}

func TestDetectCandidateConflicts(t *testing.T) {
	existing := []*Schedule{
		sched(1, "R1", Monday, "09:00", "10:30", "Math 101"),
		sched(2, "R1", Monday, "11:00", "12:00", "Physics 201"),
	}
	candidate := sched(0, "R1", Monday, "10:00", "11:30", "Chemistry 301")

	conflicts := DetectCandidateConflicts(candidate, existing, 0)
	require.Len(t, conflicts, 2)
	// Кандидат всегда First
	for _, c := range conflicts {
		assert.Equal(t, "Chemistry 301", c.First.Course)
	}

	// Перемещаемая запись исключается по ID
	conflicts = DetectCandidateConflicts(candidate, existing, 1)
	require.Len(t, conflicts, 1)
	assert.Equal(t, int64(2), conflicts[0].Second.ID)
}

func TestSplitBySeverity(t *testing.T) {
	conflicts := []Conflict{
		{Severity: SeverityLow},
		{Severity: SeverityMedium},
		{Severity: SeverityCritical},
	}

	blocking, warnings := SplitBySeverity(conflicts, SeverityMedium)
	assert.Len(t, blocking, 2)
	assert.Len(t, warnings, 1)
	assert.Equal(t, SeverityLow, warnings[0].Severity)

	blocking, warnings = SplitBySeverity(conflicts, SeverityCritical)
	assert.Len(t, blocking, 1)
	assert.Len(t, warnings, 2)
}

func TestMaxSeverity(t *testing.T) {
	_, ok := MaxSeverity(nil)
	assert.False(t, ok)

	max, ok := MaxSeverity([]Conflict{
		{Severity: SeverityLow},
		{Severity: SeverityHigh},
		{Severity: SeverityMedium},
	})
	require.True(t, ok)
	assert.Equal(t, SeverityHigh, max)
}

func TestComputeFreeSlots(t *testing.T) {
	window := types.TimeSpan{Start: 8 * 60, End: 18 * 60}

	t.Run("gaps around bookings", func(t *testing.T) {
		schedules := []*Schedule{
			sched(1, "R1", Monday, "09:00", "10:00", "Math 101"),
			sched(2, "R1", Monday, "14:00", "15:00", "Physics 201"),
		}

		slots := ComputeFreeSlots(schedules, window)
		require.Len(t, slots, 3)

		assert.Equal(t, "08:00", slots[0].Start.String())
		assert.Equal(t, "09:00", slots[0].End.String())
		assert.Equal(t, 60, slots[0].DurationMinutes)

		assert.Equal(t, "10:00", slots[1].Start.String())
		assert.Equal(t, "14:00", slots[1].End.String())
		assert.Equal(t, 240, slots[1].DurationMinutes)

		assert.Equal(t, "15:00", slots[2].Start.String())
		assert.Equal(t, "18:00", slots[2].End.String())
		assert.Equal(t, 180, slots[2].DurationMinutes)
	})

	t.Run("empty room yields whole window", func(t *testing.T) {
		slots := ComputeFreeSlots(nil, window)
		require.Len(t, slots, 1)
		assert.Equal(t, "08:00", slots[0].Start.String())
		assert.Equal(t, "18:00", slots[0].End.String())
	})

	t.Run("overlapping and duplicated bookings", func(t *testing.T) {
		schedules := []*Schedule{
			sched(1, "R1", Monday, "09:00", "11:00", "Math 101"),
			sched(2, "R1", Monday, "10:00", "12:00", "Physics 201"),
			sched(3, "R1", Monday, "09:00", "11:00", "Math 101"),
		}

		slots := ComputeFreeSlots(schedules, window)
		require.Len(t, slots, 2)
		assert.Equal(t, "08:00", slots[0].Start.String())
		assert.Equal(t, "09:00", slots[0].End.String())
		assert.Equal(t, "12:00", slots[1].Start.String())
		assert.Equal(t, "18:00", slots[1].End.String())
	})

	t.Run("bookings outside window are clipped or dropped", func(t *testing.T) {
		schedules := []*Schedule{
			sched(1, "R1", Monday, "06:00", "07:00", "Early"),
			sched(2, "R1", Monday, "07:30", "09:00", "Straddles open"),
		}

		slots := ComputeFreeSlots(schedules, window)
		require.Len(t, slots, 1)
		assert.Equal(t, "09:00", slots[0].Start.String())
		assert.Equal(t, "18:00", slots[0].End.String())
	})

	t.Run("free minutes plus busy minutes partition the window", func(t *testing.T) {
		schedules := []*Schedule{
			sched(1, "R1", Monday, "09:00", "10:00", "Math 101"),
			sched(2, "R1", Monday, "14:00", "15:00", "Physics 201"),
		}

		slots := ComputeFreeSlots(schedules, window)
		assert.Equal(t, window.DurationMinutes()-120, TotalFreeMinutes(slots))
	})
}

func TestHasAccommodatingSlot(t *testing.T) {
	window := types.TimeSpan{Start: 8 * 60, End: 18 * 60}
	schedules := []*Schedule{
		sched(1, "R1", Monday, "09:00", "10:00", "Math 101"),
	}
	slots := ComputeFreeSlots(schedules, window)

	fits := func(start, end string) bool {
		span, err := types.NewTimeSpanFromStrings(start, end)
		require.NoError(t, err)
		return HasAccommodatingSlot(slots, span)
	}

	assert.True(t, fits("10:00", "12:00"))
	assert.True(t, fits("08:00", "09:00"))
	assert.False(t, fits("09:30", "10:30"))
	assert.False(t, fits("07:00", "08:30"))
}
