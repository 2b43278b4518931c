package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	List(ctx context.Context, status *LeaveRequestStatus) ([]LeaveRequest, error)
	// HasActiveDuplicate reports whether a pending or approved request exists
	// for the same employee, date range, and reason.
	HasActiveDuplicate(ctx context.Context, employeeID string, start, end time.Time, reason string) (bool, error)
	// UpdateStatus persists the transition only if the stored status still
	// equals from. A concurrent transition that committed first makes the
	// update match nothing, reported as ErrInvalidTransition.
	UpdateStatus(ctx context.Context, request LeaveRequest, from LeaveRequestStatus) error
}

// LeaveBalanceRepository - interface for leave_balances table
type LeaveBalanceRepository interface {
	Create(ctx context.Context, balance LeaveBalance) (LeaveBalance, error)
	GetByEmployee(ctx context.Context, employeeID string) (LeaveBalance, error)
	// GetByEmployeeForUpdate row-locks the balance inside the surrounding
	// transaction so concurrent reviewers cannot interleave updates.
	GetByEmployeeForUpdate(ctx context.Context, employeeID string) (LeaveBalance, error)
	Update(ctx context.Context, balance LeaveBalance) error
	DeleteByEmployee(ctx context.Context, employeeID string) error
}
