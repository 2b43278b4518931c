package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rosterhq/roster-backend-go/internal/domain/leave"
	"github.com/rosterhq/roster-backend-go/internal/pkg/database"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

func (r *leaveBalanceRepositoryImpl) Create(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	if balance.ID == "" {
		balance.ID = uuid.New().String()
	}
	now := time.Now()
	balance.CreatedAt = now
	balance.UpdatedAt = now

	// One balance per employee; recreating for an existing employee keeps
	// the old counters.
	query := `
		INSERT INTO leave_balances (id, employee_id, annual_leave_used, sick_leave_used, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id) DO NOTHING
	`

	_, err := q.Exec(ctx, query,
		balance.ID, balance.EmployeeID, balance.AnnualLeaveUsed, balance.SickLeaveUsed,
		balance.CreatedAt, balance.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveBalance{}, err
	}

	return balance, nil
}

func (r *leaveBalanceRepositoryImpl) GetByEmployee(ctx context.Context, employeeID string) (leave.LeaveBalance, error) {
	return r.getByEmployee(ctx, employeeID, false)
}

func (r *leaveBalanceRepositoryImpl) GetByEmployeeForUpdate(ctx context.Context, employeeID string) (leave.LeaveBalance, error) {
	return r.getByEmployee(ctx, employeeID, true)
}

func (r *leaveBalanceRepositoryImpl) getByEmployee(ctx context.Context, employeeID string, forUpdate bool) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, annual_leave_used, sick_leave_used, created_at, updated_at
		FROM leave_balances
		WHERE employee_id = $1
	`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var balance leave.LeaveBalance
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&balance.ID, &balance.EmployeeID, &balance.AnnualLeaveUsed, &balance.SickLeaveUsed,
		&balance.CreatedAt, &balance.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return leave.LeaveBalance{}, leave.ErrBalanceNotFound
	}
	if err != nil {
		return leave.LeaveBalance{}, err
	}

	return balance, nil
}

func (r *leaveBalanceRepositoryImpl) Update(ctx context.Context, balance leave.LeaveBalance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET annual_leave_used = $2, sick_leave_used = $3, updated_at = NOW()
		WHERE employee_id = $1
	`

	tag, err := q.Exec(ctx, query, balance.EmployeeID, balance.AnnualLeaveUsed, balance.SickLeaveUsed)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrBalanceNotFound
	}

	return nil
}

func (r *leaveBalanceRepositoryImpl) DeleteByEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM leave_balances WHERE employee_id = $1`, employeeID)
	return err
}
