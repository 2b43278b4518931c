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

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestSelect = `
	SELECT lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date,
		   lr.leave_hours, lr.reason, lr.status, lr.requested_at,
		   lr.reviewed_at, lr.reviewed_by,
		   e.first_name || ' ' || e.last_name AS employee_name,
		   CASE WHEN r.id IS NULL THEN NULL ELSE r.first_name || ' ' || r.last_name END AS reviewer_name
	FROM leave_requests lr
	JOIN employees e ON lr.employee_id = e.id
	LEFT JOIN employees r ON lr.reviewed_by = r.id
`

func scanLeaveRequestRows(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	defer rows.Close()

	requests := make([]leave.LeaveRequest, 0)
	for rows.Next() {
		var req leave.LeaveRequest
		if err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.LeaveType, &req.StartDate, &req.EndDate,
			&req.LeaveHours, &req.Reason, &req.Status, &req.RequestedAt,
			&req.ReviewedAt, &req.ReviewedBy,
			&req.EmployeeName, &req.ReviewerName,
		); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	if request.ID == "" {
		request.ID = uuid.New().String()
	}
	request.RequestedAt = time.Now()

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type, start_date, end_date,
			leave_hours, reason, status, requested_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := q.Exec(ctx, query,
		request.ID, request.EmployeeID, request.LeaveType, request.StartDate, request.EndDate,
		request.LeaveHours, request.Reason, request.Status, request.RequestedAt,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := leaveRequestSelect + ` WHERE lr.id = $1`

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.LeaveType, &req.StartDate, &req.EndDate,
		&req.LeaveHours, &req.Reason, &req.Status, &req.RequestedAt,
		&req.ReviewedAt, &req.ReviewedBy,
		&req.EmployeeName, &req.ReviewerName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return req, nil
}

func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := leaveRequestSelect + ` WHERE lr.employee_id = $1 ORDER BY lr.requested_at DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}

	return scanLeaveRequestRows(rows)
}

func (r *leaveRequestRepositoryImpl) List(ctx context.Context, status *leave.LeaveRequestStatus) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := leaveRequestSelect
	args := []interface{}{}
	if status != nil {
		query += ` WHERE lr.status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY lr.requested_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return scanLeaveRequestRows(rows)
}

func (r *leaveRequestRepositoryImpl) HasActiveDuplicate(ctx context.Context, employeeID string, start, end time.Time, reason string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1 AND start_date = $2 AND end_date = $3
			  AND reason = $4 AND status IN ('pending', 'approved')
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, start, end, reason).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, request leave.LeaveRequest, from leave.LeaveRequestStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, reviewed_at = $3, reviewed_by = $4
		WHERE id = $1 AND status = $5
	`

	tag, err := q.Exec(ctx, query, request.ID, request.Status, request.ReviewedAt, request.ReviewedBy, from)
	if err != nil {
		return err
	}
	// Zero rows means another transition won the race (or the row is gone);
	// either way this transition no longer applies.
	if tag.RowsAffected() == 0 {
		return leave.ErrInvalidTransition
	}

	return nil
}
