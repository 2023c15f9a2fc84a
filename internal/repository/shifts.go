package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/rosterly/rosterly/backend/internal/domain"
)

func scanShift(scan func(dst ...any) error, shift *domain.Shift) error {
	var employeeID, templateShiftID sql.NullInt64

	dst := []any{
		&shift.ID,
		&employeeID,
		&shift.ShiftDate,
		&shift.StartTime,
		&shift.EndTime,
		&shift.BreakDurationMinutes,
		&shift.Status,
		&templateShiftID,
		&shift.CreatedAt,
		&shift.Version,
	}
	if err := scan(dst...); err != nil {
		return err
	}

	if employeeID.Valid {
		shift.EmployeeID = employeeID.Int64
	}
	if templateShiftID.Valid {
		shift.TemplateShiftID = &templateShiftID.Int64
	}

	return nil
}

const shiftColumns = `id, employee_id, shift_date, start_time, end_time, break_duration_minutes, status, template_shift_id, created_at, version`

func (r *Repository) CreateShift(shift *domain.Shift) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO shifts (employee_id, shift_date, start_time, end_time, break_duration_minutes, status, template_shift_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, version
	`

	var employeeID *int64
	if shift.EmployeeID != 0 {
		employeeID = &shift.EmployeeID
	}

	args := []any{employeeID, shift.ShiftDate, shift.StartTime, shift.EndTime, shift.BreakDurationMinutes, shift.Status, shift.TemplateShiftID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&shift.ID, &shift.CreatedAt, &shift.Version); err != nil {
		return err
	}

	shift.TempID = ""

	return nil
}

// CreateShifts inserts every shift in one transaction, so a week planned by
// the template engine lands all-or-nothing.
func (r *Repository) CreateShifts(shifts []*domain.Shift) error {
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
		INSERT INTO shifts (employee_id, shift_date, start_time, end_time, break_duration_minutes, status, template_shift_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, version
	`

	for _, shift := range shifts {
		var employeeID *int64
		if shift.EmployeeID != 0 {
			employeeID = &shift.EmployeeID
		}

		args := []any{employeeID, shift.ShiftDate, shift.StartTime, shift.EndTime, shift.BreakDurationMinutes, shift.Status, shift.TemplateShiftID}
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&shift.ID, &shift.CreatedAt, &shift.Version); err != nil {
			return err
		}
		shift.TempID = ""
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetShiftByID(id int64) (*domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	shift := &domain.Shift{}
	row := r.dbpool.QueryRowContext(ctx, query, id)
	if err := scanShift(row.Scan, shift); err != nil {
		return nil, err
	}

	return shift, nil
}

func (r *Repository) ListShiftsInRange(from, to time.Time) ([]domain.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE shift_date >= $1 AND shift_date < $2
		ORDER BY start_time, id
	`

	return r.queryShifts(query, from, to)
}

func (r *Repository) ListShiftsByEmployee(employeeID int64) ([]domain.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE employee_id = $1
		ORDER BY start_time, id
	`

	return r.queryShifts(query, employeeID)
}

func (r *Repository) ListShiftsByEmployeeInRange(employeeID int64, from, to time.Time) ([]domain.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE employee_id = $1 AND shift_date >= $2 AND shift_date < $3
		ORDER BY start_time, id
	`

	return r.queryShifts(query, employeeID, from, to)
}

func (r *Repository) queryShifts(query string, args ...any) ([]domain.Shift, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := make([]domain.Shift, 0)
	for rows.Next() {
		shift := domain.Shift{}
		if err := scanShift(rows.Scan, &shift); err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

func (r *Repository) UpdateShift(shift *domain.Shift) error {
	query := `
		UPDATE shifts
		SET
			employee_id = $1,
			shift_date = $2,
			start_time = $3,
			end_time = $4,
			break_duration_minutes = $5,
			status = $6,
			template_shift_id = $7,
			version = version + 1
		WHERE id = $8 AND version = $9
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var employeeID *int64
	if shift.EmployeeID != 0 {
		employeeID = &shift.EmployeeID
	}

	args := []any{employeeID, shift.ShiftDate, shift.StartTime, shift.EndTime, shift.BreakDurationMinutes, shift.Status, shift.TemplateShiftID, shift.ID, shift.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&shift.Version); err != nil {
		return err
	}

	return nil
}

// OverwriteShiftTimes replaces the times of an existing shift with those of
// a freshly materialized one. Used when a template is applied with
// overwriteExisting: the durable row keeps its identity and employee, only
// the schedule changes. No version guard, the caller just planned against
// the current week.
func (r *Repository) OverwriteShiftTimes(id int64, shift *domain.Shift) error {
	query := `
		UPDATE shifts
		SET
			shift_date = $1,
			start_time = $2,
			end_time = $3,
			template_shift_id = $4,
			version = version + 1
		WHERE id = $5
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{shift.ShiftDate, shift.StartTime, shift.EndTime, shift.TemplateShiftID, id}
	if _, err := r.dbpool.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateShiftStatus(shift *domain.Shift, status domain.ShiftStatus) error {
	query := `
		UPDATE shifts
		SET status = $1, version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, status, shift.ID, shift.Version).Scan(&shift.Version); err != nil {
		return err
	}

	shift.Status = status

	return nil
}

func (r *Repository) DeleteShift(id int64) error {
	query := `
		DELETE FROM shifts WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
