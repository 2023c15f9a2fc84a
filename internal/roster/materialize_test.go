package roster

import (
	"testing"
	"time"

	"github.com/rosterly/rosterly/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterializeShift(t *testing.T) {
	targetDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // a Monday

	t.Run("same-day shift", func(t *testing.T) {
		ts := domain.TemplateShift{ID: 7, StartTime: "09:00", EndTime: "17:00"}

		shift, err := MaterializeShift(ts, targetDate)
		require.NoError(t, err)

		assert.Equal(t, targetDate, shift.ShiftDate)
		assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), shift.StartTime)
		assert.Equal(t, time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC), shift.EndTime)
		assert.Equal(t, domain.ShiftStatusDraft, shift.Status)
		assert.NotEmpty(t, shift.TempID)
		require.NotNil(t, shift.TemplateShiftID)
		assert.Equal(t, int64(7), *shift.TemplateShiftID)
	})

	t.Run("overnight shift ends the next day", func(t *testing.T) {
		ts := domain.TemplateShift{StartTime: "22:00", EndTime: "06:00"}

		shift, err := MaterializeShift(ts, targetDate)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2026, 3, 2, 22, 0, 0, 0, time.UTC), shift.StartTime)
		assert.Equal(t, time.Date(2026, 3, 3, 6, 0, 0, 0, time.UTC), shift.EndTime)
		assert.Equal(t, targetDate, shift.ShiftDate, "the shift stays attached to its start date")
		assert.Equal(t, 8*time.Hour, shift.Duration())
	})

	t.Run("seconds precision accepted", func(t *testing.T) {
		ts := domain.TemplateShift{StartTime: "09:30:15", EndTime: "17:45:30"}

		shift, err := MaterializeShift(ts, targetDate)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 2, 9, 30, 15, 0, time.UTC), shift.StartTime)
	})

	t.Run("deterministic apart from the temp id", func(t *testing.T) {
		ts := domain.TemplateShift{ID: 3, StartTime: "09:00", EndTime: "17:00"}

		first, err := MaterializeShift(ts, targetDate)
		require.NoError(t, err)
		second, err := MaterializeShift(ts, targetDate)
		require.NoError(t, err)

		assert.NotEqual(t, first.TempID, second.TempID)

		first.TempID = ""
		second.TempID = ""
		assert.Equal(t, first, second)
	})

	t.Run("clock on the target date is ignored", func(t *testing.T) {
		ts := domain.TemplateShift{StartTime: "09:00", EndTime: "17:00"}

		shift, err := MaterializeShift(ts, targetDate.Add(14*time.Hour+30*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), shift.StartTime)
	})

	t.Run("malformed times rejected", func(t *testing.T) {
		_, err := MaterializeShift(domain.TemplateShift{StartTime: "9am", EndTime: "17:00"}, targetDate)
		assert.Error(t, err)

		_, err = MaterializeShift(domain.TemplateShift{StartTime: "09:00", EndTime: "later"}, targetDate)
		assert.Error(t, err)
	})
}
