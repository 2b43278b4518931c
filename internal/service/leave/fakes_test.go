package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/rosterhq/roster-backend-go/internal/domain/employee"
	"github.com/rosterhq/roster-backend-go/internal/domain/leave"
)

// In-memory repositories backing the service tests.

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, e := range emps {
		r.employees[e.ID] = e
	}
	return r
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	if emp.ID == "" {
		emp.ID = fmt.Sprintf("emp-%d", len(r.employees)+1)
	}
	r.employees[emp.ID] = emp
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, emp := range r.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0, len(r.employees))
	for _, emp := range r.employees {
		out = append(out, emp)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) ListByPositionType(ctx context.Context, positionType employee.PositionType, activeOnly bool) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range r.employees {
		if emp.PositionType != positionType {
			continue
		}
		if activeOnly && !emp.IsActive {
			continue
		}
		out = append(out, emp)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	if _, ok := r.employees[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	r.employees[emp.ID] = emp
	return nil
}

type fakeBalanceRepo struct {
	balances map[string]leave.LeaveBalance // keyed by employee ID
}

func newFakeBalanceRepo() *fakeBalanceRepo {
	return &fakeBalanceRepo{balances: make(map[string]leave.LeaveBalance)}
}

func (r *fakeBalanceRepo) Create(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	// Mirrors ON CONFLICT DO NOTHING: an existing record wins.
	if existing, ok := r.balances[balance.EmployeeID]; ok {
		return existing, nil
	}
	balance.ID = fmt.Sprintf("bal-%d", len(r.balances)+1)
	r.balances[balance.EmployeeID] = balance
	return balance, nil
}

func (r *fakeBalanceRepo) GetByEmployee(ctx context.Context, employeeID string) (leave.LeaveBalance, error) {
	balance, ok := r.balances[employeeID]
	if !ok {
		return leave.LeaveBalance{}, leave.ErrBalanceNotFound
	}
	return balance, nil
}

func (r *fakeBalanceRepo) GetByEmployeeForUpdate(ctx context.Context, employeeID string) (leave.LeaveBalance, error) {
	return r.GetByEmployee(ctx, employeeID)
}

func (r *fakeBalanceRepo) Update(ctx context.Context, balance leave.LeaveBalance) error {
	if _, ok := r.balances[balance.EmployeeID]; !ok {
		return leave.ErrBalanceNotFound
	}
	r.balances[balance.EmployeeID] = balance
	return nil
}

func (r *fakeBalanceRepo) DeleteByEmployee(ctx context.Context, employeeID string) error {
	delete(r.balances, employeeID)
	return nil
}

type fakeRequestRepo struct {
	requests map[string]leave.LeaveRequest
	seq      int

	// afterGet runs after GetByID snapshots the request but before it
	// returns, letting tests commit a rival transition mid-read.
	afterGet func()
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]leave.LeaveRequest)}
}

func (r *fakeRequestRepo) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.seq++
	request.ID = fmt.Sprintf("req-%d", r.seq)
	request.RequestedAt = time.Now()
	r.requests[request.ID] = request
	return request, nil
}

func (r *fakeRequestRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	request, ok := r.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	if r.afterGet != nil {
		r.afterGet()
	}
	return request, nil
}

func (r *fakeRequestRepo) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, request := range r.requests {
		if request.EmployeeID == employeeID {
			out = append(out, request)
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) List(ctx context.Context, status *leave.LeaveRequestStatus) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, request := range r.requests {
		if status != nil && request.Status != *status {
			continue
		}
		out = append(out, request)
	}
	return out, nil
}

func (r *fakeRequestRepo) HasActiveDuplicate(ctx context.Context, employeeID string, start, end time.Time, reason string) (bool, error) {
	for _, request := range r.requests {
		if request.EmployeeID != employeeID || request.Reason != reason {
			continue
		}
		if !request.StartDate.Equal(start) || !request.EndDate.Equal(end) {
			continue
		}
		if request.Status == leave.LeaveRequestStatusPending || request.Status == leave.LeaveRequestStatusApproved {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRequestRepo) UpdateStatus(ctx context.Context, request leave.LeaveRequest, from leave.LeaveRequestStatus) error {
	stored, ok := r.requests[request.ID]
	if !ok || stored.Status != from {
		return leave.ErrInvalidTransition
	}
	r.requests[request.ID] = request
	return nil
}
