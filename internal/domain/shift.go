package domain

import (
	"time"
)

type ShiftStatus string

const (
	ShiftStatusDraft     ShiftStatus = "draft"
	ShiftStatusPublished ShiftStatus = "published"
	ShiftStatusCompleted ShiftStatus = "completed"
	ShiftStatusCancelled ShiftStatus = "cancelled"
)

// Shift is one concrete dated work period for one employee.
// EndTime may fall on the day after ShiftDate (overnight shifts),
// but EndTime is always strictly after StartTime.
type Shift struct {
	ID int64 `json:"id"`
	// TempID is a placeholder assigned when a shift is materialized from a
	// template and has not been inserted yet. The database assigns the
	// durable ID on insert.
	TempID               string      `json:"tempID,omitempty"`
	EmployeeID           int64       `json:"employeeID"`
	ShiftDate            time.Time   `json:"shiftDate"`
	StartTime            time.Time   `json:"startTime"`
	EndTime              time.Time   `json:"endTime"`
	BreakDurationMinutes int32       `json:"breakDurationMinutes"`
	Status               ShiftStatus `json:"status"`
	TemplateShiftID      *int64      `json:"templateShiftID"`
	CreatedAt            time.Time   `json:"createdAt"`
	Version              int32       `json:"-"`
}

// Duration returns the worked span of the shift, breaks not deducted.
func (s *Shift) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}
