package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rosterly/rosterly/backend/internal/domain"
	"github.com/rosterly/rosterly/backend/internal/roster"
)

func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID           int64     `json:"employeeID"`
		ShiftDate            time.Time `json:"shiftDate" validate:"required"`
		StartTime            time.Time `json:"startTime" validate:"required"`
		EndTime              time.Time `json:"endTime" validate:"required"`
		BreakDurationMinutes int32     `json:"breakDurationMinutes" validate:"gte=0"`
		Force                bool      `json:"force"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if !req.EndTime.After(req.StartTime) {
		h.errorResponse(w, r, "end time must be after start time")
		return
	}

	shift := &domain.Shift{
		EmployeeID:           req.EmployeeID,
		ShiftDate:            roster.DateOf(req.ShiftDate),
		StartTime:            req.StartTime,
		EndTime:              req.EndTime,
		BreakDurationMinutes: req.BreakDurationMinutes,
		Status:               domain.ShiftStatusDraft,
	}

	// for an assigned shift, check compliance against the employee's
	// existing schedule before committing; force lets a manager override
	var validation *roster.ValidationResult
	if req.EmployeeID != 0 {
		employee, err := h.repository.GetEmployeeByID(req.EmployeeID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "employee not found")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		existing, err := h.repository.ListShiftsByEmployee(req.EmployeeID)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		result := roster.ValidateShift(*shift, existing, *employee, h.rules)
		validation = &result

		if !result.IsValid && !req.Force {
			h.writeJSON(w, r, http.StatusOK, Response{
				Success: false,
				Message: "shift violates compliance rules",
				Data:    result,
			})
			return
		}
	}

	if err := h.repository.CreateShift(shift); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "shifts_employee_id_fkey":
				h.errorResponse(w, r, "employee not found")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "shift created", struct {
		Shift      *domain.Shift            `json:"shift"`
		Validation *roster.ValidationResult `json:"validation,omitempty"`
	}{shift, validation})
}

func (h *Handler) ListShifts(w http.ResponseWriter, r *http.Request) {
	fromParam := r.URL.Query().Get("from")
	toParam := r.URL.Query().Get("to")
	employeeIDParam := r.URL.Query().Get("employeeID")

	from := roster.WeekStart(time.Now())
	to := from.AddDate(0, 0, 7)

	var err error
	if fromParam != "" {
		if from, err = time.Parse("2006-01-02", fromParam); err != nil {
			h.errorResponse(w, r, "invalid from date, expected YYYY-MM-DD")
			return
		}
	}
	if toParam != "" {
		if to, err = time.Parse("2006-01-02", toParam); err != nil {
			h.errorResponse(w, r, "invalid to date, expected YYYY-MM-DD")
			return
		}
	}

	var shifts []domain.Shift
	if employeeIDParam != "" {
		employeeID, err := strconv.ParseInt(employeeIDParam, 10, 64)
		if err != nil {
			h.errorResponse(w, r, "invalid employee ID")
			return
		}
		shifts, err = h.repository.ListShiftsByEmployeeInRange(employeeID, from, to)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
	} else {
		shifts, err = h.repository.ListShiftsInRange(from, to)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}

	h.successResponse(w, r, "shifts retrieved", shifts)
}

func (h *Handler) GetShift(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)
	h.successResponse(w, r, "shift retrieved", shift)
}

func (h *Handler) UpdateShift(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	var req struct {
		EmployeeID           *int64     `json:"employeeID"`
		ShiftDate            *time.Time `json:"shiftDate"`
		StartTime            *time.Time `json:"startTime"`
		EndTime              *time.Time `json:"endTime"`
		BreakDurationMinutes *int32     `json:"breakDurationMinutes" validate:"omitempty,gte=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.EmployeeID != nil {
		shift.EmployeeID = *req.EmployeeID
	}
	if req.ShiftDate != nil {
		shift.ShiftDate = roster.DateOf(*req.ShiftDate)
	}
	if req.StartTime != nil {
		shift.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		shift.EndTime = *req.EndTime
	}
	if req.BreakDurationMinutes != nil {
		shift.BreakDurationMinutes = *req.BreakDurationMinutes
	}

	if !shift.EndTime.After(shift.StartTime) {
		h.errorResponse(w, r, "end time must be after start time")
		return
	}

	if err := h.repository.UpdateShift(shift); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "update failed, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "shift updated", shift)
}

// legal status transitions: draft -> published -> completed, and anything
// but completed may be cancelled
func allowedStatusTransition(from, to domain.ShiftStatus) bool {
	switch to {
	case domain.ShiftStatusPublished:
		return from == domain.ShiftStatusDraft
	case domain.ShiftStatusCompleted:
		return from == domain.ShiftStatusPublished
	case domain.ShiftStatusCancelled:
		return from != domain.ShiftStatusCompleted
	default:
		return false
	}
}

func (h *Handler) UpdateShiftStatus(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	var req struct {
		Status string `json:"status" validate:"required,oneof=published completed cancelled"`
		Force  bool   `json:"force"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	status := domain.ShiftStatus(req.Status)
	if !allowedStatusTransition(shift.Status, status) {
		h.errorResponse(w, r, "status transition not allowed")
		return
	}

	// publishing an assigned shift re-checks compliance; errors block
	// unless the manager forces the change
	if status == domain.ShiftStatusPublished && shift.EmployeeID != 0 && !req.Force {
		employee, err := h.repository.GetEmployeeByID(shift.EmployeeID)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		existing, err := h.repository.ListShiftsByEmployee(shift.EmployeeID)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		result := roster.ValidateShift(*shift, existing, *employee, h.rules)
		if !result.IsValid {
			h.writeJSON(w, r, http.StatusOK, Response{
				Success: false,
				Message: "shift violates compliance rules",
				Data:    result,
			})
			return
		}
	}

	if err := h.repository.UpdateShiftStatus(shift, status); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "update failed, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "shift status updated", shift)
}

func (h *Handler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	if err := h.repository.DeleteShift(shift.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "shift deleted", nil)
}
