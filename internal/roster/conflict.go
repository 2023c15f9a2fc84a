package roster

import (
	"time"

	"github.com/rosterly/rosterly/backend/internal/domain"
)

// Conflict identifies the existing shift a candidate overlaps with.
type Conflict struct {
	ShiftID   int64     `json:"shiftID"`
	ShiftDate time.Time `json:"shiftDate"`
}

// FindConflict reports whether the candidate's [StartTime, EndTime) range
// overlaps any shift in existing, returning the first overlapping shift or
// nil. Cancelled shifts are skipped. The function does not filter by
// employee: callers must pass shifts already scoped to the employee (or, for
// template application, to the whole roster) they care about.
//
// Three cases are checked explicitly so that exact-boundary containment is
// caught: the candidate starting inside an existing shift, the candidate
// ending inside one, and the candidate fully containing one.
func FindConflict(candidate domain.Shift, existing []domain.Shift) *Conflict {
	for _, ex := range existing {
		if ex.Status == domain.ShiftStatusCancelled {
			continue
		}

		startsWithin := !candidate.StartTime.Before(ex.StartTime) && candidate.StartTime.Before(ex.EndTime)
		endsWithin := candidate.EndTime.After(ex.StartTime) && !candidate.EndTime.After(ex.EndTime)
		contains := !candidate.StartTime.After(ex.StartTime) && !candidate.EndTime.Before(ex.EndTime)

		if startsWithin || endsWithin || contains {
			return &Conflict{
				ShiftID:   ex.ID,
				ShiftDate: ex.ShiftDate,
			}
		}
	}

	return nil
}
