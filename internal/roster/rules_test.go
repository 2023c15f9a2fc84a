package roster

import (
	"testing"
	"time"

	"github.com/rosterly/rosterly/backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()

	assert.Equal(t, 2, rules.MaxShiftsPerDay)
	assert.Equal(t, 12*time.Hour, rules.MaxShiftLength)
	assert.Equal(t, 5*time.Hour, rules.LongShiftThreshold)
	assert.Equal(t, 30*time.Minute, rules.MinBreak)
	assert.Equal(t, 4*time.Hour, rules.MinRestSameDay)
	assert.Equal(t, 10*time.Hour, rules.MinRestBetweenDays)
	assert.Equal(t, 5, rules.MaxConsecutiveDays)
}

func TestWeeklyHourLimit(t *testing.T) {
	rules := DefaultRules()

	assert.Equal(t, float64(38), rules.WeeklyHourLimit(domain.EmploymentFullTime))
	assert.Equal(t, float64(30), rules.WeeklyHourLimit(domain.EmploymentPartTime))
	assert.Equal(t, float64(50), rules.WeeklyHourLimit(domain.EmploymentCasual))

	// unknown employment types get the most permissive ceiling
	assert.Equal(t, float64(50), rules.WeeklyHourLimit(domain.EmploymentType("contractor")))
}
