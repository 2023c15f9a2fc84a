package roster

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rosterly/rosterly/backend/internal/domain"
)

// parseWallClock parses a template shift time of the form "HH:MM" or
// "HH:MM:SS".
func parseWallClock(s string) (time.Time, error) {
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t, nil
	}
	return time.Parse("15:04", s)
}

// MaterializeShift binds one template shift to a concrete calendar date,
// producing an unsaved draft shift. If the end-of-day timestamp is at or
// before the start (an overnight slot such as 22:00-06:00), the end is
// advanced by exactly one day. The returned shift carries a fresh TempID;
// the durable ID is assigned by the store on insert.
func MaterializeShift(ts domain.TemplateShift, targetDate time.Time) (domain.Shift, error) {
	start, err := parseWallClock(ts.StartTime)
	if err != nil {
		return domain.Shift{}, fmt.Errorf("invalid start time %q: %w", ts.StartTime, err)
	}
	end, err := parseWallClock(ts.EndTime)
	if err != nil {
		return domain.Shift{}, fmt.Errorf("invalid end time %q: %w", ts.EndTime, err)
	}

	date := DateOf(targetDate)
	startAt := time.Date(date.Year(), date.Month(), date.Day(), start.Hour(), start.Minute(), start.Second(), 0, date.Location())
	endAt := time.Date(date.Year(), date.Month(), date.Day(), end.Hour(), end.Minute(), end.Second(), 0, date.Location())

	if !endAt.After(startAt) {
		// overnight shift, ends on the following day
		endAt = endAt.AddDate(0, 0, 1)
	}

	templateShiftID := ts.ID

	return domain.Shift{
		TempID:               uuid.NewString(),
		ShiftDate:            date,
		StartTime:            startAt,
		EndTime:              endAt,
		BreakDurationMinutes: 0,
		Status:               domain.ShiftStatusDraft,
		TemplateShiftID:      &templateShiftID,
	}, nil
}
