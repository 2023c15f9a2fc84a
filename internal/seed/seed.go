package seed

import (
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/rosterly/rosterly/backend/internal/domain"
	"github.com/rosterly/rosterly/backend/internal/repository"
	"github.com/rosterly/rosterly/backend/internal/roster"
)

var demoEmployees = []struct {
	Username       string
	FullName       string
	EmploymentType domain.EmploymentType
}{
	{"asmith", "Alice Smith", domain.EmploymentFullTime},
	{"bjones", "Bob Jones", domain.EmploymentFullTime},
	{"cnguyen", "Carol Nguyen", domain.EmploymentPartTime},
	{"dlee", "David Lee", domain.EmploymentPartTime},
	{"ewalker", "Erin Walker", domain.EmploymentCasual},
	{"fkelly", "Frank Kelly", domain.EmploymentCasual},
}

var demoTemplateShifts = []domain.TemplateShift{
	// weekdays: opening, mid and closing shifts
	{DayOfWeek: 1, StartTime: "06:00", EndTime: "14:00", RoleRequired: "barista", MinEmployees: 2},
	{DayOfWeek: 1, StartTime: "14:00", EndTime: "22:00", RoleRequired: "barista", MinEmployees: 2},
	{DayOfWeek: 2, StartTime: "06:00", EndTime: "14:00", RoleRequired: "barista", MinEmployees: 2},
	{DayOfWeek: 2, StartTime: "14:00", EndTime: "22:00", RoleRequired: "barista", MinEmployees: 2},
	{DayOfWeek: 3, StartTime: "06:00", EndTime: "14:00", RoleRequired: "barista", MinEmployees: 2},
	{DayOfWeek: 3, StartTime: "14:00", EndTime: "22:00", RoleRequired: "barista", MinEmployees: 2},
	{DayOfWeek: 4, StartTime: "06:00", EndTime: "14:00", RoleRequired: "barista", MinEmployees: 2},
	{DayOfWeek: 4, StartTime: "14:00", EndTime: "22:00", RoleRequired: "barista", MinEmployees: 2},
	{DayOfWeek: 5, StartTime: "06:00", EndTime: "14:00", RoleRequired: "barista", MinEmployees: 2},
	{DayOfWeek: 5, StartTime: "14:00", EndTime: "22:00", RoleRequired: "barista", MinEmployees: 3},
	// weekend: single long shift plus an overnight stocktake slot
	{DayOfWeek: 6, StartTime: "08:00", EndTime: "18:00", RoleRequired: "barista", MinEmployees: 3},
	{DayOfWeek: 6, StartTime: "22:00", EndTime: "06:00", RoleRequired: "stocktake", MinEmployees: 1},
	{DayOfWeek: 0, StartTime: "08:00", EndTime: "16:00", RoleRequired: "barista", MinEmployees: 2},
}

// SeedDemoData inserts a handful of employees, a standard weekly template,
// and a materialized draft roster for the coming week. The roster is
// produced by the template engine itself, so seeded data goes through the
// same path as a template applied over the API.
func SeedDemoData(r *repository.Repository) {
	for _, e := range demoEmployees {
		_, err := r.GetEmployeeByUsername(e.Username)
		if err == nil {
			continue // already seeded
		}
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Error("failed to look up employee", "username", e.Username, "error", err)
			return
		}

		employee := &domain.Employee{
			Username:       e.Username,
			PasswordHash:   "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy", // rosterly@demo
			FullName:       e.FullName,
			Email:          e.Username + "@example.com",
			Role:           domain.RoleStaff,
			EmploymentType: e.EmploymentType,
		}
		if err := r.CreateEmployee(employee); err != nil {
			slog.Error("failed to insert employee", "username", e.Username, "error", err)
			return
		}
	}

	template := &domain.RosterTemplate{
		Name:        "Standard Week",
		Description: "Opening and closing coverage Monday to Friday, reduced weekend coverage with a Saturday overnight stocktake",
		IsActive:    true,
		Shifts:      demoTemplateShifts,
	}
	if err := r.CreateRosterTemplate(template); err != nil {
		slog.Error("failed to insert roster template", "error", err)
		return
	}

	// expand the template over next week through the engine
	nextWeek := roster.WeekStart(time.Now()).AddDate(0, 0, 7)

	existing, err := r.ListShiftsInRange(nextWeek, nextWeek.AddDate(0, 0, 7))
	if err != nil {
		slog.Error("failed to list existing shifts", "error", err)
		return
	}

	result := roster.ApplyTemplate(roster.ApplyRequest{
		TemplateID:          template.ID,
		TargetWeekStartDate: nextWeek,
		OverwriteExisting:   false,
	}, *template, template.Shifts, existing)

	if !result.Success {
		slog.Error("template application reported errors", "errors", result.Errors)
		return
	}

	creates := make([]*domain.Shift, 0, result.ShiftsCreated)
	for i := range result.Decisions {
		if result.Decisions[i].Action == roster.ActionCreate {
			creates = append(creates, &result.Decisions[i].Shift)
		}
	}
	if err := r.CreateShifts(creates); err != nil {
		slog.Error("failed to insert shifts", "error", err)
		return
	}

	slog.Info("demo data seeded",
		"employees", len(demoEmployees),
		"templateShifts", len(template.Shifts),
		"shiftsCreated", result.ShiftsCreated,
		"shiftsSkipped", result.ShiftsSkipped,
	)
}
