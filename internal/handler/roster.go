package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rosterly/rosterly/backend/internal/domain"
	"github.com/rosterly/rosterly/backend/internal/roster"
)

// ApplyRosterTemplate expands a roster template over a target week. The
// engine itself only plans; this handler persists the returned decisions:
// created shifts are batch-inserted as drafts, and with overwriteExisting
// the conflicting shifts have their times replaced.
func (h *Handler) ApplyRosterTemplate(w http.ResponseWriter, r *http.Request) {
	template := r.Context().Value(RosterTemplateCtx).(*domain.RosterTemplate)

	var req struct {
		TargetWeekStartDate string `json:"targetWeekStartDate" validate:"required"`
		OverwriteExisting   bool   `json:"overwriteExisting"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	targetDate, err := time.Parse("2006-01-02", req.TargetWeekStartDate)
	if err != nil {
		h.errorResponse(w, r, "invalid target week start date, expected YYYY-MM-DD")
		return
	}

	precheck := roster.ValidateTemplateApplication(*template, template.Shifts, targetDate)
	if !precheck.IsValid {
		h.writeJSON(w, r, http.StatusOK, Response{
			Success: false,
			Message: "template cannot be applied",
			Data:    precheck,
		})
		return
	}

	weekStart := roster.WeekStart(targetDate)
	existing, err := h.repository.ListShiftsInRange(weekStart, weekStart.AddDate(0, 0, 7))
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	result := roster.ApplyTemplate(roster.ApplyRequest{
		TemplateID:          template.ID,
		TargetWeekStartDate: targetDate,
		OverwriteExisting:   req.OverwriteExisting,
	}, *template, template.Shifts, existing)

	// act on the engine's decisions
	creates := make([]*domain.Shift, 0, result.ShiftsCreated)
	for i := range result.Decisions {
		d := &result.Decisions[i]
		switch d.Action {
		case roster.ActionCreate:
			creates = append(creates, &d.Shift)
		case roster.ActionUpdate:
			if err := h.repository.OverwriteShiftTimes(d.ConflictWith.ShiftID, &d.Shift); err != nil {
				h.internalServerError(w, r, err)
				return
			}
		}
	}

	if len(creates) > 0 {
		if err := h.repository.CreateShifts(creates); err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}

	if result.ShiftsCreated+result.ShiftsUpdated > 0 {
		h.notifyRosterPlanned(template.Name, weekStart)
	}

	h.successResponse(w, r, "template applied", result)
}

// notifyRosterPlanned queues a roster notice to every active employee.
// Best effort: the roster is already persisted, so a publish failure is
// logged rather than surfaced as a request error.
func (h *Handler) notifyRosterPlanned(templateName string, weekStart time.Time) {
	employees, err := h.repository.GetAllEmployees()
	if err != nil {
		slog.Error("failed to load employees for roster notice", "error", err)
		return
	}

	for _, employee := range employees {
		if !employee.IsActive {
			continue
		}

		mailMessage := domain.MailMessage{
			Type: "roster_published",
			To:   employee.Email,
			Data: domain.RosterPublishedMailData{
				FullName:      employee.FullName,
				WeekStartDate: weekStart.Format("2006-01-02"),
				TemplateName:  templateName,
			},
		}

		mailData, err := json.Marshal(mailMessage)
		if err != nil {
			slog.Error("failed to marshal roster notice", "error", err)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
		err = h.mailChannel.PublishWithContext(
			ctx,
			"",
			"email_queue",
			true,
			false,
			amqp.Publishing{
				ContentType: "application/json",
				Body:        mailData,
			},
		)
		cancel()
		if err != nil {
			slog.Error("failed to queue roster notice", "to", employee.Email, "error", err)
		}
	}
}
