package roster

import (
	"testing"
	"time"

	"github.com/rosterly/rosterly/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekdayTemplate() (domain.RosterTemplate, []domain.TemplateShift) {
	shifts := []domain.TemplateShift{
		{ID: 1, TemplateID: 5, DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"},
		{ID: 2, TemplateID: 5, DayOfWeek: 2, StartTime: "09:00", EndTime: "17:00"},
		{ID: 3, TemplateID: 5, DayOfWeek: 3, StartTime: "09:00", EndTime: "17:00"},
	}
	template := domain.RosterTemplate{ID: 5, Name: "Weekdays", IsActive: true, Shifts: shifts}
	return template, shifts
}

func TestApplyTemplateEmptyWeek(t *testing.T) {
	template, shifts := weekdayTemplate()
	sunday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	result := ApplyTemplate(ApplyRequest{
		TemplateID:          template.ID,
		TargetWeekStartDate: sunday,
	}, template, shifts, nil)

	assert.True(t, result.Success)
	assert.Equal(t, 3, result.ShiftsCreated)
	assert.Equal(t, 0, result.ShiftsUpdated)
	assert.Equal(t, 0, result.ShiftsSkipped)
	require.Len(t, result.Decisions, 3)

	// Monday, Tuesday, Wednesday of the target week, in order
	for i, d := range result.Decisions {
		assert.Equal(t, ActionCreate, d.Action)
		assert.Nil(t, d.ConflictWith)
		assert.Equal(t, sunday.AddDate(0, 0, i+1), d.Shift.ShiftDate)
		assert.Equal(t, domain.ShiftStatusDraft, d.Shift.Status)
		assert.NotEmpty(t, d.Shift.TempID)
	}
}

func TestApplyTemplateNormalizesToWeekStart(t *testing.T) {
	template, shifts := weekdayTemplate()
	wednesday := time.Date(2026, 3, 4, 15, 0, 0, 0, time.UTC)

	result := ApplyTemplate(ApplyRequest{
		TemplateID:          template.ID,
		TargetWeekStartDate: wednesday,
	}, template, shifts, nil)

	require.Len(t, result.Decisions, 3)
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, monday, result.Decisions[0].Shift.ShiftDate,
		"a mid-week target must expand over the week containing it")
}

func TestApplyTemplateSkipsConflicts(t *testing.T) {
	template, shifts := weekdayTemplate()
	sunday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	// an existing shift occupying Monday 09:00-17:00
	existing := []domain.Shift{timedShift(42, 2, 9, 0, 17, 0)}

	result := ApplyTemplate(ApplyRequest{
		TemplateID:          template.ID,
		TargetWeekStartDate: sunday,
		OverwriteExisting:   false,
	}, template, shifts, existing)

	assert.True(t, result.Success)
	assert.Equal(t, 2, result.ShiftsCreated)
	assert.Equal(t, 0, result.ShiftsUpdated)
	assert.Equal(t, 1, result.ShiftsSkipped)

	skip := result.Decisions[0]
	assert.Equal(t, ActionSkip, skip.Action)
	require.NotNil(t, skip.ConflictWith)
	assert.Equal(t, int64(42), skip.ConflictWith.ShiftID)
}

func TestApplyTemplateOverwritesConflicts(t *testing.T) {
	template, shifts := weekdayTemplate()
	sunday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	// the existing Monday shift has different hours than the template slot
	existing := []domain.Shift{timedShift(42, 2, 7, 0, 15, 0)}

	result := ApplyTemplate(ApplyRequest{
		TemplateID:          template.ID,
		TargetWeekStartDate: sunday,
		OverwriteExisting:   true,
	}, template, shifts, existing)

	assert.True(t, result.Success)
	assert.Equal(t, 2, result.ShiftsCreated)
	assert.Equal(t, 1, result.ShiftsUpdated)
	assert.Equal(t, 0, result.ShiftsSkipped)

	update := result.Decisions[0]
	assert.Equal(t, ActionUpdate, update.Action)
	require.NotNil(t, update.ConflictWith)
	assert.Equal(t, int64(42), update.ConflictWith.ShiftID)
	assert.Equal(t, int64(42), update.Shift.ID,
		"the decision must target the conflicting shift's record")
	assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), update.Shift.StartTime)
}

func TestApplyTemplateMultipleShiftsPerDay(t *testing.T) {
	shifts := []domain.TemplateShift{
		{ID: 1, DayOfWeek: 6, StartTime: "08:00", EndTime: "14:00"},
		{ID: 2, DayOfWeek: 6, StartTime: "14:00", EndTime: "20:00"},
	}
	template := domain.RosterTemplate{ID: 5, Name: "Saturday double", IsActive: true}
	sunday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	result := ApplyTemplate(ApplyRequest{TargetWeekStartDate: sunday}, template, shifts, nil)

	assert.Equal(t, 2, result.ShiftsCreated)
	saturday := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	for _, d := range result.Decisions {
		assert.Equal(t, saturday, d.Shift.ShiftDate)
	}
}

func TestApplyTemplateOvernightSlot(t *testing.T) {
	shifts := []domain.TemplateShift{
		{ID: 1, DayOfWeek: 6, StartTime: "22:00", EndTime: "06:00"},
	}
	template := domain.RosterTemplate{ID: 5, Name: "Stocktake", IsActive: true}
	sunday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	result := ApplyTemplate(ApplyRequest{TargetWeekStartDate: sunday}, template, shifts, nil)

	require.Len(t, result.Decisions, 1)
	shift := result.Decisions[0].Shift
	assert.Equal(t, time.Date(2026, 3, 7, 22, 0, 0, 0, time.UTC), shift.StartTime)
	assert.Equal(t, time.Date(2026, 3, 8, 6, 0, 0, 0, time.UTC), shift.EndTime)
}

func TestApplyTemplateBadSlotDoesNotAbortTheWeek(t *testing.T) {
	shifts := []domain.TemplateShift{
		{ID: 1, DayOfWeek: 1, StartTime: "bogus", EndTime: "17:00"},
		{ID: 2, DayOfWeek: 2, StartTime: "09:00", EndTime: "17:00"},
	}
	template := domain.RosterTemplate{ID: 5, Name: "Weekdays", IsActive: true}
	sunday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	result := ApplyTemplate(ApplyRequest{TargetWeekStartDate: sunday}, template, shifts, nil)

	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "2026-03-02")
	assert.Equal(t, 1, result.ShiftsCreated, "the valid slot must still be planned")
}
