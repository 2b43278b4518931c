package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rosterhq/roster-backend-go/internal/domain/shift"
	"github.com/rosterhq/roster-backend-go/internal/pkg/database"
)

type scheduledShiftRepositoryImpl struct {
	db *database.DB
}

func NewScheduledShiftRepository(db *database.DB) shift.ScheduledShiftRepository {
	return &scheduledShiftRepositoryImpl{db: db}
}

const scheduledShiftSelect = `
	SELECT ss.id, ss.shift_date, ss.staff_id, ss.shift_template_id,
		   ss.cover_shift, ss.alternative_staff_id, ss.has_payslip,
		   ss.created_at, ss.updated_at,
		   e.first_name || ' ' || e.last_name AS staff_name,
		   CASE WHEN a.id IS NULL THEN NULL ELSE a.first_name || ' ' || a.last_name END AS alternative_staff_name,
		   st.name AS template_name
	FROM scheduled_shifts ss
	JOIN employees e ON ss.staff_id = e.id
	LEFT JOIN employees a ON ss.alternative_staff_id = a.id
	JOIN shift_templates st ON ss.shift_template_id = st.id
`

func scanScheduledShiftRows(rows pgx.Rows) ([]shift.ScheduledShift, error) {
	defer rows.Close()

	shifts := make([]shift.ScheduledShift, 0)
	for rows.Next() {
		var s shift.ScheduledShift
		if err := rows.Scan(
			&s.ID, &s.ShiftDate, &s.StaffID, &s.ShiftTemplateID,
			&s.CoverShift, &s.AlternativeStaffID, &s.HasPayslip,
			&s.CreatedAt, &s.UpdatedAt,
			&s.StaffName, &s.AlternativeStaffName, &s.TemplateName,
		); err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}

	return shifts, rows.Err()
}

func (r *scheduledShiftRepositoryImpl) Create(ctx context.Context, s shift.ScheduledShift) (shift.ScheduledShift, error) {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	query := `
		INSERT INTO scheduled_shifts (
			id, shift_date, staff_id, shift_template_id,
			cover_shift, alternative_staff_id, has_payslip, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := q.Exec(ctx, query,
		s.ID, s.ShiftDate, s.StaffID, s.ShiftTemplateID,
		s.CoverShift, s.AlternativeStaffID, s.HasPayslip, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return shift.ScheduledShift{}, err
	}

	return s, nil
}

func (r *scheduledShiftRepositoryImpl) BulkCreate(ctx context.Context, shifts []shift.ScheduledShift) error {
	if len(shifts) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	now := time.Now()
	rows := make([][]interface{}, 0, len(shifts))
	for _, s := range shifts {
		id := s.ID
		if id == "" {
			id = uuid.New().String()
		}
		rows = append(rows, []interface{}{
			id, s.ShiftDate, s.StaffID, s.ShiftTemplateID,
			s.CoverShift, s.AlternativeStaffID, s.HasPayslip, now, now,
		})
	}

	// CopyFrom is only available on the pool/tx, not the Querier interface,
	// so fall back to batched inserts.
	batch := &pgx.Batch{}
	query := `
		INSERT INTO scheduled_shifts (
			id, shift_date, staff_id, shift_template_id,
			cover_shift, alternative_staff_id, has_payslip, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	for _, row := range rows {
		batch.Queue(query, row...)
	}

	switch querier := q.(type) {
	case pgx.Tx:
		return querier.SendBatch(ctx, batch).Close()
	default:
		return r.db.Pool.SendBatch(ctx, batch).Close()
	}
}

func (r *scheduledShiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.ScheduledShift, error) {
	q := GetQuerier(ctx, r.db)

	query := scheduledShiftSelect + ` WHERE ss.id = $1`

	var s shift.ScheduledShift
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.ShiftDate, &s.StaffID, &s.ShiftTemplateID,
		&s.CoverShift, &s.AlternativeStaffID, &s.HasPayslip,
		&s.CreatedAt, &s.UpdatedAt,
		&s.StaffName, &s.AlternativeStaffName, &s.TemplateName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return shift.ScheduledShift{}, shift.ErrShiftNotFound
	}
	if err != nil {
		return shift.ScheduledShift{}, err
	}

	return s, nil
}

func (r *scheduledShiftRepositoryImpl) ListByDateRange(ctx context.Context, from, to time.Time) ([]shift.ScheduledShift, error) {
	q := GetQuerier(ctx, r.db)

	query := scheduledShiftSelect + `
		WHERE ss.shift_date >= $1 AND ss.shift_date <= $2
		ORDER BY ss.shift_date, st.start_time
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}

	return scanScheduledShiftRows(rows)
}

func (r *scheduledShiftRepositoryImpl) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]shift.ScheduledShift, error) {
	q := GetQuerier(ctx, r.db)

	query := scheduledShiftSelect + `
		WHERE (ss.staff_id = $1 OR ss.alternative_staff_id = $1)
		  AND ss.shift_date >= $2 AND ss.shift_date <= $3
		ORDER BY ss.shift_date, st.start_time
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}

	return scanScheduledShiftRows(rows)
}

func (r *scheduledShiftRepositoryImpl) ListUnpaidByDate(ctx context.Context, date time.Time) ([]shift.ScheduledShift, error) {
	q := GetQuerier(ctx, r.db)

	query := scheduledShiftSelect + `
		WHERE ss.shift_date = $1 AND ss.has_payslip = FALSE
		ORDER BY st.start_time
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}

	return scanScheduledShiftRows(rows)
}

func (r *scheduledShiftRepositoryImpl) ExistsInRange(ctx context.Context, from, to time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM scheduled_shifts WHERE shift_date >= $1 AND shift_date <= $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, from, to).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *scheduledShiftRepositoryImpl) Update(ctx context.Context, s shift.ScheduledShift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE scheduled_shifts
		SET shift_date = $2, staff_id = $3, shift_template_id = $4,
			cover_shift = $5, alternative_staff_id = $6, has_payslip = $7,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		s.ID, s.ShiftDate, s.StaffID, s.ShiftTemplateID,
		s.CoverShift, s.AlternativeStaffID, s.HasPayslip,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

func (r *scheduledShiftRepositoryImpl) MarkPaid(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	query := `UPDATE scheduled_shifts SET has_payslip = TRUE, updated_at = NOW() WHERE id = ANY($1)`

	_, err := q.Exec(ctx, query, ids)
	return err
}

func (r *scheduledShiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM scheduled_shifts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}
