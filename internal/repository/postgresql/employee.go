package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rosterhq/roster-backend-go/internal/domain/employee"
	"github.com/rosterhq/roster-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, first_name, last_name, email, mobile, gender,
	address, suburb, state, postcode, tfn,
	position_type, permanent_position, part_time_rate, pay_rate,
	start_date, end_date, is_active, is_staff, is_superuser,
	created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.FirstName, &emp.LastName, &emp.Email, &emp.Mobile, &emp.Gender,
		&emp.Address, &emp.Suburb, &emp.State, &emp.Postcode, &emp.TFN,
		&emp.PositionType, &emp.PermanentPosition, &emp.PartTimeRate, &emp.PayRate,
		&emp.StartDate, &emp.EndDate, &emp.IsActive, &emp.IsStaff, &emp.IsSuperuser,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if emp.ID == "" {
		emp.ID = uuid.New().String()
	}
	now := time.Now()
	emp.CreatedAt = now
	emp.UpdatedAt = now

	query := `
		INSERT INTO employees (
			id, first_name, last_name, email, mobile, gender,
			address, suburb, state, postcode, tfn,
			position_type, permanent_position, part_time_rate, pay_rate,
			start_date, end_date, is_active, is_staff, is_superuser,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11,
			$12, $13, $14, $15,
			$16, $17, $18, $19, $20,
			$21, $22
		)
	`

	_, err := q.Exec(ctx, query,
		emp.ID, emp.FirstName, emp.LastName, emp.Email, emp.Mobile, emp.Gender,
		emp.Address, emp.Suburb, emp.State, emp.Postcode, emp.TFN,
		emp.PositionType, emp.PermanentPosition, emp.PartTimeRate, emp.PayRate,
		emp.StartDate, emp.EndDate, emp.IsActive, emp.IsStaff, emp.IsSuperuser,
		emp.CreatedAt, emp.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	return emp, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, err
	}

	return emp, nil
}

func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, err
	}

	return emp, nil
}

func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY last_name, first_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) ListByPositionType(ctx context.Context, positionType employee.PositionType, activeOnly bool) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE position_type = $1`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY last_name, first_name`

	rows, err := q.Query(ctx, query, positionType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			first_name = $2, last_name = $3, email = $4, mobile = $5, gender = $6,
			address = $7, suburb = $8, state = $9, postcode = $10, tfn = $11,
			position_type = $12, permanent_position = $13, part_time_rate = $14, pay_rate = $15,
			start_date = $16, end_date = $17, is_active = $18, is_staff = $19,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		emp.ID, emp.FirstName, emp.LastName, emp.Email, emp.Mobile, emp.Gender,
		emp.Address, emp.Suburb, emp.State, emp.Postcode, emp.TFN,
		emp.PositionType, emp.PermanentPosition, emp.PartTimeRate, emp.PayRate,
		emp.StartDate, emp.EndDate, emp.IsActive, emp.IsStaff,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
