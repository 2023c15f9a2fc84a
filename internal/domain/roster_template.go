package domain

import (
	"time"
)

// TemplateShift is one recurring weekly slot: a day of week plus wall-clock
// times, not yet bound to a calendar date. DayOfWeek runs 0-6 with 0 = Sunday.
// StartTime and EndTime are "HH:MM" or "HH:MM:SS" strings; an end time at or
// before the start time means the slot runs overnight.
type TemplateShift struct {
	ID           int64  `json:"id"`
	TemplateID   int64  `json:"templateID"`
	DayOfWeek    int32  `json:"dayOfWeek"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	RoleRequired string `json:"roleRequired"`
	MinEmployees int32  `json:"minEmployees"`
}

type RosterTemplate struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	IsActive    bool            `json:"isActive"`
	Shifts      []TemplateShift `json:"shifts"`
	CreatedAt   time.Time       `json:"createdAt"`
	Version     int32           `json:"-"`
}
