// Package roster implements the roster compliance and template scheduling
// engine: expanding a weekly roster template into concrete dated shifts for a
// target week, and validating an employee's shifts against labor-compliance
// rules. Every function in this package is a pure computation over the slices
// it is given; persistence is the caller's job.
package roster

import (
	"time"

	"github.com/rosterly/rosterly/backend/internal/domain"
)

// Rules is the table of labor-compliance thresholds the validator checks
// against. It is passed in rather than read from globals so a different
// jurisdiction can supply its own table.
type Rules struct {
	MaxShiftsPerDay int

	// MaxShiftLength is the longest a single shift may run, breaks included.
	MaxShiftLength time.Duration

	// LongShiftThreshold and MinBreak: a shift longer than the threshold
	// must carry at least MinBreak of unpaid break.
	LongShiftThreshold time.Duration
	MinBreak           time.Duration

	// MinRestSameDay applies between two shifts on the same calendar date
	// (a split shift); MinRestBetweenDays applies otherwise.
	MinRestSameDay     time.Duration
	MinRestBetweenDays time.Duration

	MaxConsecutiveDays int

	// MaxWeeklyHours maps employment type to the weekly hour ceiling.
	// Unknown employment types fall back to the casual ceiling.
	MaxWeeklyHours map[domain.EmploymentType]float64
}

func DefaultRules() Rules {
	return Rules{
		MaxShiftsPerDay:    2,
		MaxShiftLength:     12 * time.Hour,
		LongShiftThreshold: 5 * time.Hour,
		MinBreak:           30 * time.Minute,
		MinRestSameDay:     4 * time.Hour,
		MinRestBetweenDays: 10 * time.Hour,
		MaxConsecutiveDays: 5,
		MaxWeeklyHours: map[domain.EmploymentType]float64{
			domain.EmploymentFullTime: 38,
			domain.EmploymentPartTime: 30,
			domain.EmploymentCasual:   50,
		},
	}
}

// WeeklyHourLimit returns the weekly ceiling for the given employment type,
// degrading to the casual (most permissive) ceiling for unknown types.
func (r Rules) WeeklyHourLimit(et domain.EmploymentType) float64 {
	if limit, ok := r.MaxWeeklyHours[et]; ok {
		return limit
	}
	return r.MaxWeeklyHours[domain.EmploymentCasual]
}
