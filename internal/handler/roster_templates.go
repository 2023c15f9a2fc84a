package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rosterly/rosterly/backend/internal/domain"
)

func (h *Handler) GetAllRosterTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.repository.GetAllRosterTemplates()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "templates retrieved", templates)
}

func (h *Handler) CreateRosterTemplate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
		IsActive    *bool  `json:"isActive"`
		Shifts      []struct {
			DayOfWeek    int32  `json:"dayOfWeek" validate:"gte=0,lte=6"`
			StartTime    string `json:"startTime" validate:"required"`
			EndTime      string `json:"endTime" validate:"required"`
			RoleRequired string `json:"roleRequired"`
			MinEmployees int32  `json:"minEmployees" validate:"omitempty,gte=1"`
		} `json:"shifts" validate:"required,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	template := &domain.RosterTemplate{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
		Shifts:      make([]domain.TemplateShift, 0, len(req.Shifts)),
	}
	if req.IsActive != nil {
		template.IsActive = *req.IsActive
	}

	for _, shift := range req.Shifts {
		template.Shifts = append(template.Shifts, domain.TemplateShift{
			DayOfWeek:    shift.DayOfWeek,
			StartTime:    shift.StartTime,
			EndTime:      shift.EndTime,
			RoleRequired: shift.RoleRequired,
			MinEmployees: shift.MinEmployees,
		})
	}

	if err := h.repository.CreateRosterTemplate(template); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "roster_templates_name_key":
				h.errorResponse(w, r, "template name already exists")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "template created", template)
}

func (h *Handler) GetRosterTemplate(w http.ResponseWriter, r *http.Request) {
	template := r.Context().Value(RosterTemplateCtx).(*domain.RosterTemplate)

	h.successResponse(w, r, "template retrieved", template)
}

func (h *Handler) UpdateRosterTemplate(w http.ResponseWriter, r *http.Request) {
	template := r.Context().Value(RosterTemplateCtx).(*domain.RosterTemplate)

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		IsActive    *bool   `json:"isActive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Name != nil {
		template.Name = *req.Name
	}
	if req.Description != nil {
		template.Description = *req.Description
	}
	if req.IsActive != nil {
		template.IsActive = *req.IsActive
	}

	if err := h.repository.UpdateRosterTemplate(template); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "roster_templates_name_key":
				h.errorResponse(w, r, "template name already exists")
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "template updated", template)
}

func (h *Handler) DeleteRosterTemplate(w http.ResponseWriter, r *http.Request) {
	template := r.Context().Value(RosterTemplateCtx).(*domain.RosterTemplate)

	if err := h.repository.DeleteRosterTemplate(template.ID); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "shifts_template_shift_id_fkey":
				h.errorResponse(w, r, "template has materialized shifts and cannot be deleted")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "template deleted", nil)
}
