package roster

import (
	"testing"

	"github.com/rosterly/rosterly/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func messagesFor(result ValidationResult, rule string) []string {
	var msgs []string
	for _, v := range result.Violations {
		if v.Rule == rule {
			msgs = append(msgs, v.Message)
		}
	}
	return msgs
}

func fullTimer() domain.Employee {
	return domain.Employee{ID: 1, EmploymentType: domain.EmploymentFullTime}
}

func TestValidateShiftMaxShiftLength(t *testing.T) {
	employee := fullTimer()
	rules := DefaultRules()

	t.Run("exactly twelve hours passes", func(t *testing.T) {
		shift := timedShift(1, 2, 8, 0, 20, 0)
		result := ValidateShift(shift, nil, employee, rules)
		assert.Empty(t, messagesFor(result, "max_shift_length"))
	})

	t.Run("over twelve hours fails", func(t *testing.T) {
		shift := timedShift(1, 2, 8, 0, 20, 6)
		result := ValidateShift(shift, nil, employee, rules)

		msgs := messagesFor(result, "max_shift_length")
		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0], "exceeds the maximum of 12 hours")
		assert.False(t, result.IsValid)
	})
}

func TestValidateShiftMinBreak(t *testing.T) {
	employee := fullTimer()
	rules := DefaultRules()

	t.Run("long shift without break warns", func(t *testing.T) {
		shift := timedShift(1, 2, 9, 0, 17, 0)
		result := ValidateShift(shift, nil, employee, rules)

		msgs := messagesFor(result, "min_break")
		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0], "require a break of at least 30 minutes")
		assert.True(t, result.IsValid, "a warning must not invalidate the schedule")
	})

	t.Run("long shift with a sufficient break is clean", func(t *testing.T) {
		shift := timedShift(1, 2, 9, 0, 17, 0)
		shift.BreakDurationMinutes = 30
		result := ValidateShift(shift, nil, employee, rules)
		assert.Empty(t, messagesFor(result, "min_break"))
	})

	t.Run("short shift needs no break", func(t *testing.T) {
		shift := timedShift(1, 2, 9, 0, 14, 0) // exactly the threshold
		result := ValidateShift(shift, nil, employee, rules)
		assert.Empty(t, messagesFor(result, "min_break"))
	})
}

func TestValidateShiftMaxShiftsPerDay(t *testing.T) {
	employee := fullTimer()
	rules := DefaultRules()

	existing := []domain.Shift{
		timedShift(10, 2, 6, 0, 8, 0),
		timedShift(11, 2, 12, 0, 14, 0),
	}

	t.Run("third shift on a day is an error", func(t *testing.T) {
		candidate := timedShift(12, 2, 18, 0, 20, 0)
		result := ValidateShift(candidate, existing, employee, rules)

		msgs := messagesFor(result, "max_shifts_per_day")
		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0], "Maximum 2 shifts per day")
	})

	t.Run("second shift on a day is fine", func(t *testing.T) {
		candidate := timedShift(12, 2, 18, 0, 20, 0)
		result := ValidateShift(candidate, existing[:1], employee, rules)
		assert.Empty(t, messagesFor(result, "max_shifts_per_day"))
	})
}

func TestValidateShiftMinRestSameDay(t *testing.T) {
	employee := fullTimer()
	rules := DefaultRules()

	morning := timedShift(10, 2, 8, 0, 12, 0)

	t.Run("exactly four hours rest passes", func(t *testing.T) {
		afternoon := timedShift(11, 2, 16, 0, 20, 0)
		result := ValidateShift(afternoon, []domain.Shift{morning}, employee, rules)
		assert.Empty(t, messagesFor(result, "min_rest"))
	})

	t.Run("less than four hours rest fails", func(t *testing.T) {
		afternoon := timedShift(11, 2, 15, 59, 19, 59)
		result := ValidateShift(afternoon, []domain.Shift{morning}, employee, rules)

		msgs := messagesFor(result, "min_rest")
		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0], "between split shifts")
		assert.False(t, result.IsValid)
	})
}

func TestValidateShiftMinRestBetweenDays(t *testing.T) {
	employee := fullTimer()
	rules := DefaultRules()

	lateMonday := timedShift(10, 2, 14, 0, 22, 0)

	t.Run("exactly ten hours rest passes", func(t *testing.T) {
		tuesday := timedShift(11, 3, 8, 0, 16, 0)
		result := ValidateShift(tuesday, []domain.Shift{lateMonday}, employee, rules)
		assert.Empty(t, messagesFor(result, "min_rest"))
	})

	t.Run("less than ten hours rest fails", func(t *testing.T) {
		tuesday := timedShift(11, 3, 7, 59, 15, 59)
		result := ValidateShift(tuesday, []domain.Shift{lateMonday}, employee, rules)

		msgs := messagesFor(result, "min_rest")
		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0], "between shifts on different days")
	})

	t.Run("the violation is seen from either shift", func(t *testing.T) {
		tuesday := timedShift(11, 3, 7, 59, 15, 59)
		result := ValidateShift(lateMonday, []domain.Shift{tuesday}, employee, rules)
		assert.NotEmpty(t, messagesFor(result, "min_rest"))
	})
}

func TestValidateShiftMaxConsecutiveDays(t *testing.T) {
	employee := fullTimer()
	rules := DefaultRules()

	// Sunday March 1st through Friday March 6th, three hours each morning
	var week []domain.Shift
	for day := 1; day <= 6; day++ {
		week = append(week, timedShift(int64(day), day, 9, 0, 12, 0))
	}

	t.Run("six days in a row warns", func(t *testing.T) {
		result := ValidateShift(week[3], week, employee, rules)

		msgs := messagesFor(result, "max_consecutive_days")
		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0], "6 consecutive days")
		assert.True(t, result.IsValid)
	})

	t.Run("a day off splits the run", func(t *testing.T) {
		withGap := append(append([]domain.Shift{}, week[:3]...), week[4:]...) // Wednesday off
		result := ValidateShift(withGap[0], withGap, employee, rules)
		assert.Empty(t, messagesFor(result, "max_consecutive_days"))
	})
}

func TestValidateShiftMaxWeeklyHours(t *testing.T) {
	rules := DefaultRules()
	casual := domain.Employee{ID: 2, EmploymentType: domain.EmploymentCasual}

	// seven-hour shifts Sunday March 1st through Saturday March 7th
	var week []domain.Shift
	for day := 1; day <= 7; day++ {
		week = append(week, timedShift(int64(day), day, 9, 0, 16, 0))
	}

	t.Run("49 hours for a casual passes", func(t *testing.T) {
		result := ValidateShift(week[0], week, casual, rules)
		assert.Empty(t, messagesFor(result, "max_weekly_hours"))
	})

	t.Run("51 hours for a casual warns", func(t *testing.T) {
		over := append([]domain.Shift{}, week...)
		over[6] = timedShift(7, 7, 9, 0, 18, 0) // Saturday stretched to nine hours
		result := ValidateShift(over[0], over, casual, rules)

		msgs := messagesFor(result, "max_weekly_hours")
		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0], "50 hours for casual")
		assert.True(t, result.IsValid)
	})

	t.Run("breaks are deducted from weekly hours", func(t *testing.T) {
		over := append([]domain.Shift{}, week...)
		over[6] = timedShift(7, 7, 9, 0, 18, 0)
		for i := range over {
			over[i].BreakDurationMinutes = 30 // 3.5 hours off the total
		}
		result := ValidateShift(over[0], over, casual, rules)
		assert.Empty(t, messagesFor(result, "max_weekly_hours"))
	})

	t.Run("part-time ceiling is lower", func(t *testing.T) {
		partTimer := domain.Employee{ID: 3, EmploymentType: domain.EmploymentPartTime}
		// five days of seven hours is 35, over the 30-hour part-time limit
		result := ValidateShift(week[0], week[:5], partTimer, rules)

		msgs := messagesFor(result, "max_weekly_hours")
		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0], "30 hours for part-time")
	})
}

func TestValidateShiftCancelled(t *testing.T) {
	employee := fullTimer()
	rules := DefaultRules()

	t.Run("a cancelled shift is never checked", func(t *testing.T) {
		shift := timedShift(1, 2, 8, 0, 23, 0) // far over every limit
		shift.Status = domain.ShiftStatusCancelled
		result := ValidateShift(shift, nil, employee, rules)

		assert.True(t, result.IsValid)
		assert.Empty(t, result.Violations)
	})

	t.Run("cancelled neighbors do not count", func(t *testing.T) {
		overlapping := timedShift(10, 2, 9, 0, 17, 0)
		overlapping.Status = domain.ShiftStatusCancelled

		candidate := timedShift(11, 2, 9, 0, 13, 0)
		result := ValidateShift(candidate, []domain.Shift{overlapping}, employee, rules)
		assert.Empty(t, messagesFor(result, "min_rest"))
	})
}

func TestValidateShiftUnsavedShiftsMatchByTempID(t *testing.T) {
	employee := fullTimer()
	rules := DefaultRules()

	shift := timedShift(0, 2, 9, 0, 13, 0)
	shift.TempID = "pending-1"

	// history already contains the shift under validation; it must not be
	// treated as a second shift resting zero hours from itself
	result := ValidateShift(shift, []domain.Shift{shift}, employee, rules)
	assert.Empty(t, messagesFor(result, "min_rest"))
	assert.Empty(t, messagesFor(result, "max_shifts_per_day"))
}

func TestValidateEmployeeShifts(t *testing.T) {
	employee := fullTimer()
	rules := DefaultRules()

	first := timedShift(1, 2, 8, 0, 12, 0)
	second := timedShift(2, 2, 13, 0, 17, 0) // one hour after the first

	result := ValidateEmployeeShifts([]domain.Shift{first, second}, employee, rules)

	assert.False(t, result.IsValid)
	// both shifts report the same rest violation from their own side
	assert.Len(t, messagesFor(result, "min_rest"), 2)
}
