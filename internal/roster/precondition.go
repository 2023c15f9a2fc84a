package roster

import (
	"fmt"
	"regexp"
	"time"

	"github.com/rosterly/rosterly/backend/internal/domain"
)

// wallClockPattern accepts "HH:MM" or "HH:MM:SS" on a 24-hour clock.
var wallClockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9](:[0-5][0-9])?$`)

type PreconditionResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// ValidateTemplateApplication checks that a template is fit to be applied:
// it must be active, have at least one shift, and every shift must carry a
// day of week in [0,6] and well-formed wall-clock times. Start before end is
// deliberately not checked here, because an end at or before the start marks
// a legitimate overnight shift.
func ValidateTemplateApplication(template domain.RosterTemplate, templateShifts []domain.TemplateShift, targetDate time.Time) PreconditionResult {
	result := PreconditionResult{IsValid: true, Errors: []string{}}

	fail := func(format string, args ...any) {
		result.IsValid = false
		result.Errors = append(result.Errors, fmt.Sprintf(format, args...))
	}

	if !template.IsActive {
		fail("template %q is not active and cannot be applied", template.Name)
	}
	if len(templateShifts) == 0 {
		fail("template %q has no shifts", template.Name)
	}
	if targetDate.IsZero() {
		fail("target week start date is required")
	}

	for i, ts := range templateShifts {
		if ts.DayOfWeek < 0 || ts.DayOfWeek > 6 {
			fail("shift %d: day of week %d is out of range 0-6", i, ts.DayOfWeek)
		}
		if ts.StartTime == "" || !wallClockPattern.MatchString(ts.StartTime) {
			fail("shift %d: start time %q is not HH:MM or HH:MM:SS", i, ts.StartTime)
		}
		if ts.EndTime == "" || !wallClockPattern.MatchString(ts.EndTime) {
			fail("shift %d: end time %q is not HH:MM or HH:MM:SS", i, ts.EndTime)
		}
	}

	return result
}
