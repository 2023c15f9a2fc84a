package roster

import (
	"testing"
	"time"

	"github.com/rosterly/rosterly/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timedShift(id int64, day, startHour, startMin, endHour, endMin int) domain.Shift {
	date := time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC)
	start := time.Date(2026, 3, day, startHour, startMin, 0, 0, time.UTC)
	end := time.Date(2026, 3, day, endHour, endMin, 0, 0, time.UTC)
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	return domain.Shift{
		ID:        id,
		ShiftDate: date,
		StartTime: start,
		EndTime:   end,
		Status:    domain.ShiftStatusDraft,
	}
}

func TestFindConflict(t *testing.T) {
	existing := timedShift(42, 2, 9, 0, 17, 0)

	tests := []struct {
		name      string
		candidate domain.Shift
		conflicts bool
	}{
		{"identical range", timedShift(0, 2, 9, 0, 17, 0), true},
		{"starts inside existing", timedShift(0, 2, 12, 0, 20, 0), true},
		{"ends inside existing", timedShift(0, 2, 6, 0, 10, 0), true},
		{"fully contains existing", timedShift(0, 2, 8, 0, 18, 0), true},
		{"fully inside existing", timedShift(0, 2, 10, 0, 12, 0), true},
		{"back to back after", timedShift(0, 2, 17, 0, 22, 0), false},
		{"back to back before", timedShift(0, 2, 6, 0, 9, 0), false},
		{"different day", timedShift(0, 3, 9, 0, 17, 0), false},
		{"one minute of overlap", timedShift(0, 2, 16, 59, 22, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflict := FindConflict(tt.candidate, []domain.Shift{existing})
			if tt.conflicts {
				require.NotNil(t, conflict)
				assert.Equal(t, int64(42), conflict.ShiftID)
			} else {
				assert.Nil(t, conflict)
			}
		})
	}
}

func TestFindConflictIsSymmetric(t *testing.T) {
	a := timedShift(1, 2, 9, 0, 17, 0)
	b := timedShift(2, 2, 12, 0, 20, 0)

	assert.NotNil(t, FindConflict(a, []domain.Shift{b}))
	assert.NotNil(t, FindConflict(b, []domain.Shift{a}))
}

func TestFindConflictOvernight(t *testing.T) {
	// 22:00 Monday through 06:00 Tuesday
	overnight := timedShift(9, 2, 22, 0, 6, 0)

	earlyTuesday := timedShift(0, 3, 5, 0, 13, 0)
	assert.NotNil(t, FindConflict(earlyTuesday, []domain.Shift{overnight}),
		"a shift starting before the overnight shift ends must conflict")

	laterTuesday := timedShift(0, 3, 6, 0, 14, 0)
	assert.Nil(t, FindConflict(laterTuesday, []domain.Shift{overnight}))
}

func TestFindConflictSkipsCancelled(t *testing.T) {
	cancelled := timedShift(42, 2, 9, 0, 17, 0)
	cancelled.Status = domain.ShiftStatusCancelled

	candidate := timedShift(0, 2, 9, 0, 17, 0)
	assert.Nil(t, FindConflict(candidate, []domain.Shift{cancelled}))
}

func TestFindConflictReturnsFirstMatch(t *testing.T) {
	first := timedShift(10, 2, 9, 0, 12, 0)
	second := timedShift(11, 2, 14, 0, 17, 0)

	candidate := timedShift(0, 2, 8, 0, 18, 0)
	conflict := FindConflict(candidate, []domain.Shift{first, second})
	require.NotNil(t, conflict)
	assert.Equal(t, int64(10), conflict.ShiftID)
}
