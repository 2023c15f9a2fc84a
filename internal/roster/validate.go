package roster

import (
	"fmt"

	"github.com/rosterly/rosterly/backend/internal/domain"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

type Violation struct {
	Rule     string   `json:"rule"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// ValidationResult aggregates compliance findings. Errors render the
// schedule invalid; warnings are advisory and never flip IsValid.
type ValidationResult struct {
	IsValid    bool        `json:"isValid"`
	Errors     []string    `json:"errors"`
	Warnings   []string    `json:"warnings"`
	Violations []Violation `json:"violations"`
}

func newValidationResult() ValidationResult {
	return ValidationResult{
		IsValid:    true,
		Errors:     []string{},
		Warnings:   []string{},
		Violations: []Violation{},
	}
}

func (r *ValidationResult) addError(rule, message string) {
	r.IsValid = false
	r.Errors = append(r.Errors, message)
	r.Violations = append(r.Violations, Violation{Rule: rule, Message: message, Severity: SeverityError})
}

func (r *ValidationResult) addWarning(rule, message string) {
	r.Warnings = append(r.Warnings, message)
	r.Violations = append(r.Violations, Violation{Rule: rule, Message: message, Severity: SeverityWarning})
}

func (r *ValidationResult) merge(other ValidationResult) {
	r.IsValid = r.IsValid && other.IsValid
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Violations = append(r.Violations, other.Violations...)
}

// sameShift reports whether a and b refer to the same shift record, by
// durable ID when both are saved, by TempID otherwise.
func sameShift(a, b domain.Shift) bool {
	if a.ID != 0 && a.ID == b.ID {
		return true
	}
	return a.TempID != "" && a.TempID == b.TempID
}

// ValidateShift checks one shift against every compliance rule.
// employeeShifts must be the employee's full relevant shift history, not
// just the week being checked: the rest-gap, consecutive-day and
// weekly-hour rules all cross-reference neighboring shifts. Cancelled
// shifts never produce or contribute to violations.
func ValidateShift(shift domain.Shift, employeeShifts []domain.Shift, employee domain.Employee, rules Rules) ValidationResult {
	result := newValidationResult()

	if shift.Status == domain.ShiftStatusCancelled {
		return result
	}

	// at most two shifts per calendar day
	sameDayCount := 0
	for _, other := range employeeShifts {
		if sameShift(shift, other) || other.Status == domain.ShiftStatusCancelled {
			continue
		}
		if SameDate(other.ShiftDate, shift.ShiftDate) {
			sameDayCount++
		}
	}
	if sameDayCount >= rules.MaxShiftsPerDay {
		result.addError("max_shifts_per_day", fmt.Sprintf("Maximum %d shifts per day allowed", rules.MaxShiftsPerDay))
	}

	// maximum single shift length
	duration := shift.Duration()
	if duration > rules.MaxShiftLength {
		result.addError("max_shift_length",
			fmt.Sprintf("Shift length %.2f hours exceeds the maximum of %.0f hours", duration.Hours(), rules.MaxShiftLength.Hours()))
	}

	// minimum break on long shifts
	if duration > rules.LongShiftThreshold {
		breakMinutes := int32(rules.MinBreak.Minutes())
		if shift.BreakDurationMinutes < breakMinutes {
			result.addWarning("min_break",
				fmt.Sprintf("Shifts longer than %.0f hours require a break of at least %d minutes", rules.LongShiftThreshold.Hours(), breakMinutes))
		}
	}

	// minimum rest against every other shift, in both directions
	for _, other := range employeeShifts {
		if sameShift(shift, other) || other.Status == domain.ShiftStatusCancelled {
			continue
		}

		minRest := rules.MinRestBetweenDays
		restKind := "between shifts on different days"
		if SameDate(other.ShiftDate, shift.ShiftDate) {
			minRest = rules.MinRestSameDay
			restKind = "between split shifts"
		}

		if !other.EndTime.After(shift.StartTime) {
			if gap := shift.StartTime.Sub(other.EndTime); gap < minRest {
				result.addError("min_rest",
					fmt.Sprintf("Only %.1f hours rest %s; minimum is %.0f hours", gap.Hours(), restKind, minRest.Hours()))
			}
		}
		if !shift.EndTime.After(other.StartTime) {
			if gap := other.StartTime.Sub(shift.EndTime); gap < minRest {
				result.addError("min_rest",
					fmt.Sprintf("Only %.1f hours rest %s; minimum is %.0f hours", gap.Hours(), restKind, minRest.Hours()))
			}
		}
	}

	// longest run of consecutive worked days around this shift's date
	workedDates := make(map[string]bool)
	for _, other := range employeeShifts {
		if other.Status == domain.ShiftStatusCancelled {
			continue
		}
		workedDates[DateOf(other.ShiftDate).Format("2006-01-02")] = true
	}
	workedDates[DateOf(shift.ShiftDate).Format("2006-01-02")] = true

	run := 1
	for d := DateOf(shift.ShiftDate).AddDate(0, 0, -1); workedDates[d.Format("2006-01-02")]; d = d.AddDate(0, 0, -1) {
		run++
	}
	for d := DateOf(shift.ShiftDate).AddDate(0, 0, 1); workedDates[d.Format("2006-01-02")]; d = d.AddDate(0, 0, 1) {
		run++
	}
	if run > rules.MaxConsecutiveDays {
		result.addWarning("max_consecutive_days",
			fmt.Sprintf("%d consecutive days scheduled (maximum: %d)", run, rules.MaxConsecutiveDays))
	}

	// weekly hours inside the Sunday-to-Sunday week containing this shift
	weekStart := WeekStart(shift.ShiftDate)
	weekEnd := weekStart.AddDate(0, 0, 7)

	var weeklyHours float64
	counted := false
	for _, other := range employeeShifts {
		if other.Status == domain.ShiftStatusCancelled {
			continue
		}
		if other.StartTime.Before(weekStart) || !other.StartTime.Before(weekEnd) {
			continue
		}
		if sameShift(shift, other) {
			counted = true
		}
		weeklyHours += other.Duration().Hours() - float64(other.BreakDurationMinutes)/60
	}
	if !counted {
		weeklyHours += duration.Hours() - float64(shift.BreakDurationMinutes)/60
	}

	limit := rules.WeeklyHourLimit(employee.EmploymentType)
	if weeklyHours > limit {
		result.addWarning("max_weekly_hours",
			fmt.Sprintf("Weekly hours %.1f exceed the limit of %.0f hours for %s", weeklyHours, limit, employee.EmploymentType))
	}

	return result
}

// ValidateEmployeeShifts runs ValidateShift over every shift in shifts and
// concatenates the findings. Quadratic in the number of shifts, which is
// fine at roster scale.
func ValidateEmployeeShifts(shifts []domain.Shift, employee domain.Employee, rules Rules) ValidationResult {
	result := newValidationResult()

	for _, shift := range shifts {
		result.merge(ValidateShift(shift, shifts, employee, rules))
	}

	return result
}
