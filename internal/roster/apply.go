package roster

import (
	"fmt"
	"time"

	"github.com/rosterly/rosterly/backend/internal/domain"
)

type ApplyRequest struct {
	TemplateID          int64     `json:"templateID"`
	TargetWeekStartDate time.Time `json:"targetWeekStartDate"`
	OverwriteExisting   bool      `json:"overwriteExisting"`
}

type DecisionAction string

const (
	ActionCreate DecisionAction = "create"
	ActionUpdate DecisionAction = "update"
	ActionSkip   DecisionAction = "skip"
)

// ShiftDecision records what the engine decided for one materialized slot.
// For ActionUpdate the Shift carries the conflicting shift's ID, so the
// caller has everything needed to persist the new times over the old shift.
type ShiftDecision struct {
	Action       DecisionAction `json:"action"`
	Shift        domain.Shift   `json:"shift"`
	ConflictWith *Conflict      `json:"conflictWith,omitempty"`
}

type ApplyResult struct {
	Success       bool            `json:"success"`
	ShiftsCreated int             `json:"shiftsCreated"`
	ShiftsUpdated int             `json:"shiftsUpdated"`
	ShiftsSkipped int             `json:"shiftsSkipped"`
	Errors        []string        `json:"errors"`
	Decisions     []ShiftDecision `json:"decisions"`
}

// ApplyTemplate plans the expansion of a roster template over the week
// containing req.TargetWeekStartDate. It materializes every template shift
// on each of the week's seven days, checks each candidate against
// existingShifts, and records a create, update or skip decision per slot.
// Nothing is persisted here: the caller acts on the returned decisions.
//
// Preconditions (template active, shift times well-formed) are the caller's
// job via ValidateTemplateApplication; a slot that still fails to
// materialize is recorded in Errors and the remaining slots proceed.
func ApplyTemplate(req ApplyRequest, template domain.RosterTemplate, templateShifts []domain.TemplateShift, existingShifts []domain.Shift) ApplyResult {
	result := ApplyResult{
		Errors:    []string{},
		Decisions: []ShiftDecision{},
	}

	// normalize to the Sunday on or before the requested date
	weekStart := WeekStart(req.TargetWeekStartDate)

	// bucket template shifts by day of week
	byDay := make(map[int32][]domain.TemplateShift)
	for _, ts := range templateShifts {
		byDay[ts.DayOfWeek] = append(byDay[ts.DayOfWeek], ts)
	}

	for dayOffset := 0; dayOffset < 7; dayOffset++ {
		targetDate := weekStart.AddDate(0, 0, dayOffset)

		for _, ts := range byDay[int32(dayOffset)] {
			shift, err := MaterializeShift(ts, targetDate)
			if err != nil {
				// one bad slot must not abort the rest of the week
				result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", targetDate.Format("2006-01-02"), err))
				continue
			}

			conflict := FindConflict(shift, existingShifts)
			switch {
			case conflict == nil:
				result.ShiftsCreated++
				result.Decisions = append(result.Decisions, ShiftDecision{
					Action: ActionCreate,
					Shift:  shift,
				})
			case req.OverwriteExisting:
				result.ShiftsUpdated++
				shift.ID = conflict.ShiftID
				result.Decisions = append(result.Decisions, ShiftDecision{
					Action:       ActionUpdate,
					Shift:        shift,
					ConflictWith: conflict,
				})
			default:
				result.ShiftsSkipped++
				result.Decisions = append(result.Decisions, ShiftDecision{
					Action:       ActionSkip,
					Shift:        shift,
					ConflictWith: conflict,
				})
			}
		}
	}

	result.Success = len(result.Errors) == 0

	return result
}
