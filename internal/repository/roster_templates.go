package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/rosterly/rosterly/backend/internal/domain"
)

func (r *Repository) GetAllRosterTemplates() ([]*domain.RosterTemplate, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			rt.id,
			rt.name,
			rt.description,
			rt.is_active,
			rt.created_at,
			rt.version,
			ts.id,
			ts.day_of_week,
			ts.start_time,
			ts.end_time,
			ts.role_required,
			ts.min_employees
		FROM roster_templates rt
		LEFT JOIN roster_template_shifts ts ON rt.id = ts.template_id
		ORDER BY rt.id, ts.id
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templatesMap := make(map[int64]*domain.RosterTemplate)
	order := make([]int64, 0)

	for rows.Next() {
		var row struct {
			ID          int64
			Name        string
			Description string
			IsActive    bool
			CreatedAt   time.Time
			Version     int32

			ShiftID      sql.NullInt64
			DayOfWeek    sql.NullInt32
			StartTime    sql.NullString
			EndTime      sql.NullString
			RoleRequired sql.NullString
			MinEmployees sql.NullInt32
		}

		dst := []any{
			&row.ID,
			&row.Name,
			&row.Description,
			&row.IsActive,
			&row.CreatedAt,
			&row.Version,
			&row.ShiftID,
			&row.DayOfWeek,
			&row.StartTime,
			&row.EndTime,
			&row.RoleRequired,
			&row.MinEmployees,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		template, exists := templatesMap[row.ID]
		if !exists {
			// first row for this template
			template = &domain.RosterTemplate{
				ID:          row.ID,
				Name:        row.Name,
				Description: row.Description,
				IsActive:    row.IsActive,
				Shifts:      make([]domain.TemplateShift, 0),
				CreatedAt:   row.CreatedAt,
				Version:     row.Version,
			}
			templatesMap[row.ID] = template
			order = append(order, row.ID)
		}

		// a null shift id means the template has no shifts at all
		if !row.ShiftID.Valid {
			continue
		}

		template.Shifts = append(template.Shifts, domain.TemplateShift{
			ID:           row.ShiftID.Int64,
			TemplateID:   row.ID,
			DayOfWeek:    row.DayOfWeek.Int32,
			StartTime:    row.StartTime.String,
			EndTime:      row.EndTime.String,
			RoleRequired: row.RoleRequired.String,
			MinEmployees: row.MinEmployees.Int32,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	templates := make([]*domain.RosterTemplate, 0, len(order))
	for _, id := range order {
		templates = append(templates, templatesMap[id])
	}

	return templates, nil
}

func (r *Repository) GetRosterTemplate(id int64) (*domain.RosterTemplate, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			rt.name,
			rt.description,
			rt.is_active,
			rt.created_at,
			rt.version,
			ts.id,
			ts.day_of_week,
			ts.start_time,
			ts.end_time,
			ts.role_required,
			ts.min_employees
		FROM roster_templates rt
		LEFT JOIN roster_template_shifts ts ON rt.id = ts.template_id
		WHERE rt.id = $1
		ORDER BY ts.id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	template := &domain.RosterTemplate{
		ID:     id,
		Shifts: make([]domain.TemplateShift, 0),
	}
	found := false

	for rows.Next() {
		var row struct {
			Name        string
			Description string
			IsActive    bool
			CreatedAt   time.Time
			Version     int32

			ShiftID      sql.NullInt64
			DayOfWeek    sql.NullInt32
			StartTime    sql.NullString
			EndTime      sql.NullString
			RoleRequired sql.NullString
			MinEmployees sql.NullInt32
		}

		dst := []any{
			&row.Name,
			&row.Description,
			&row.IsActive,
			&row.CreatedAt,
			&row.Version,
			&row.ShiftID,
			&row.DayOfWeek,
			&row.StartTime,
			&row.EndTime,
			&row.RoleRequired,
			&row.MinEmployees,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if !found {
			template.Name = row.Name
			template.Description = row.Description
			template.IsActive = row.IsActive
			template.CreatedAt = row.CreatedAt
			template.Version = row.Version
			found = true
		}

		if !row.ShiftID.Valid {
			continue
		}

		template.Shifts = append(template.Shifts, domain.TemplateShift{
			ID:           row.ShiftID.Int64,
			TemplateID:   id,
			DayOfWeek:    row.DayOfWeek.Int32,
			StartTime:    row.StartTime.String,
			EndTime:      row.EndTime.String,
			RoleRequired: row.RoleRequired.String,
			MinEmployees: row.MinEmployees.Int32,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !found {
		return nil, sql.ErrNoRows
	}

	return template, nil
}

func (r *Repository) CreateRosterTemplate(template *domain.RosterTemplate) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO roster_templates (name, description, is_active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, version
	`
	if err := tx.QueryRowContext(ctx, query, template.Name, template.Description, template.IsActive).Scan(&template.ID, &template.CreatedAt, &template.Version); err != nil {
		return err
	}

	for i := range template.Shifts {
		query = `
			INSERT INTO roster_template_shifts (template_id, day_of_week, start_time, end_time, role_required, min_employees)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`
		params := []any{template.ID, template.Shifts[i].DayOfWeek, template.Shifts[i].StartTime, template.Shifts[i].EndTime, template.Shifts[i].RoleRequired, template.Shifts[i].MinEmployees}
		if err := tx.QueryRowContext(ctx, query, params...).Scan(&template.Shifts[i].ID); err != nil {
			return err
		}
		template.Shifts[i].TemplateID = template.ID
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateRosterTemplate(template *domain.RosterTemplate) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE roster_templates
		SET
			name = $1,
			description = $2,
			is_active = $3,
			version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING version
	`

	params := []any{template.Name, template.Description, template.IsActive, template.ID, template.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&template.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteRosterTemplate(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM roster_templates WHERE id = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
