package postgresql

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rosterhq/roster-backend-go/internal/domain/payroll"
	"github.com/rosterhq/roster-backend-go/internal/pkg/database"
)

type wageRepositoryImpl struct {
	db *database.DB
}

func NewWageRepository(db *database.DB) payroll.WageRepository {
	return &wageRepositoryImpl{db: db}
}

const wageSelect = `
	SELECT w.id, w.employee_id, w.shift_id, w.pay_date, w.salary, w.created_at,
		   e.first_name || ' ' || e.last_name AS employee_name,
		   st.name AS template_name
	FROM wage_records w
	JOIN employees e ON w.employee_id = e.id
	JOIN scheduled_shifts ss ON w.shift_id = ss.id
	JOIN shift_templates st ON ss.shift_template_id = st.id
`

func scanWageRows(rows pgx.Rows) ([]payroll.WageRecord, error) {
	defer rows.Close()

	records := make([]payroll.WageRecord, 0)
	for rows.Next() {
		var w payroll.WageRecord
		if err := rows.Scan(
			&w.ID, &w.EmployeeID, &w.ShiftID, &w.PayDate, &w.Salary, &w.CreatedAt,
			&w.EmployeeName, &w.TemplateName,
		); err != nil {
			return nil, err
		}
		records = append(records, w)
	}

	return records, rows.Err()
}

func (r *wageRepositoryImpl) BulkCreate(ctx context.Context, records []payroll.WageRecord) error {
	if len(records) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO wage_records (id, employee_id, shift_id, pay_date, salary, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	now := time.Now()
	batch := &pgx.Batch{}
	for _, w := range records {
		id := w.ID
		if id == "" {
			id = uuid.New().String()
		}
		batch.Queue(query, id, w.EmployeeID, w.ShiftID, w.PayDate, w.Salary, now)
	}

	switch querier := q.(type) {
	case pgx.Tx:
		return querier.SendBatch(ctx, batch).Close()
	default:
		return r.db.Pool.SendBatch(ctx, batch).Close()
	}
}

func (r *wageRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.WageRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := wageSelect + ` WHERE w.employee_id = $1 ORDER BY w.pay_date DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}

	return scanWageRows(rows)
}

func (r *wageRepositoryImpl) ListByPayDateRange(ctx context.Context, from, to time.Time) ([]payroll.WageRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := wageSelect + ` WHERE w.pay_date >= $1 AND w.pay_date <= $2 ORDER BY w.pay_date, employee_name`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}

	return scanWageRows(rows)
}
