package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rosterhq/roster-backend-go/internal/domain/employee"
	"github.com/rosterhq/roster-backend-go/internal/domain/leave"
	"github.com/rosterhq/roster-backend-go/internal/pkg/database"
	"github.com/rosterhq/roster-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

// RequestService owns the leave request lifecycle. Status transitions and
// their ledger mutation are applied as one transaction so two reviewers
// acting at once cannot produce a lost update.
type RequestService struct {
	db          *database.DB
	requestRepo leave.LeaveRequestRepository
	balanceRepo leave.LeaveBalanceRepository
	now         func() time.Time
}

func NewRequestService(db *database.DB, requestRepo leave.LeaveRequestRepository, balanceRepo leave.LeaveBalanceRepository) *RequestService {
	return &RequestService{
		db:          db,
		requestRepo: requestRepo,
		balanceRepo: balanceRepo,
		now:         time.Now,
	}
}

// WithClock overrides the review timestamp clock. Tests use this.
func (s *RequestService) WithClock(now func() time.Time) *RequestService {
	s.now = now
	return s
}

// Create validates and files a new pending request on behalf of the actor.
func (s *RequestService) Create(ctx context.Context, actor employee.Employee, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	duplicate, err := s.requestRepo.HasActiveDuplicate(ctx, actor.ID, startDate, endDate, req.Reason)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to check duplicate leave requests: %w", err)
	}
	if duplicate {
		return leave.LeaveRequest{}, leave.ErrDuplicateRequest
	}

	request := leave.LeaveRequest{
		EmployeeID: actor.ID,
		LeaveType:  leave.LeaveType(req.LeaveType),
		StartDate:  startDate,
		EndDate:    endDate,
		LeaveHours: req.LeaveHours,
		Reason:     req.Reason,
		Status:     leave.LeaveRequestStatusPending,
	}

	created, err := s.requestRepo.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

// Transition moves a request to a new status on behalf of the actor,
// stamping reviewer identity and applying the ledger delta atomically.
//
// Authorization: pending -> approved/rejected takes a staff actor other
// than the requester; canceling takes the requester themself or staff.
func (s *RequestService) Transition(ctx context.Context, requestID string, newStatus leave.LeaveRequestStatus, actor employee.Employee) (leave.LeaveRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	oldStatus := request.Status
	if !allowedTransition(oldStatus, newStatus) {
		return leave.LeaveRequest{}, leave.ErrInvalidTransition
	}

	if newStatus == leave.LeaveRequestStatusApproved || newStatus == leave.LeaveRequestStatusRejected {
		if !actor.IsStaff {
			return leave.LeaveRequest{}, leave.ErrReviewForbidden
		}
		if actor.ID == request.EmployeeID {
			return leave.LeaveRequest{}, leave.ErrSelfReview
		}
	}
	if newStatus == leave.LeaveRequestStatusCanceled {
		if actor.ID != request.EmployeeID && !actor.IsStaff {
			return leave.LeaveRequest{}, leave.ErrCancelForbidden
		}
	}

	reviewedAt := s.now()
	request.Status = newStatus
	request.ReviewedAt = &reviewedAt
	request.ReviewedBy = &actor.ID

	delta := transitionDelta(request, oldStatus, newStatus)

	err = s.withTx(ctx, func(txCtx context.Context) error {
		// Conditional on the status we read: if another reviewer committed
		// a transition in between, this matches nothing and the ledger
		// delta is never applied.
		if err := s.requestRepo.UpdateStatus(txCtx, request, oldStatus); err != nil {
			return err
		}
		if delta.IsZero() {
			return nil
		}
		return s.applyDelta(txCtx, request.EmployeeID, delta)
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

// applyDelta mutates the used-hours counters under a row lock, lazily
// creating the balance record on first use.
func (s *RequestService) applyDelta(ctx context.Context, employeeID string, delta balanceDelta) error {
	balance, err := s.balanceRepo.GetByEmployeeForUpdate(ctx, employeeID)
	if err == leave.ErrBalanceNotFound {
		if _, err := s.balanceRepo.Create(ctx, leave.LeaveBalance{
			EmployeeID:      employeeID,
			AnnualLeaveUsed: decimal.Zero,
			SickLeaveUsed:   decimal.Zero,
		}); err != nil {
			return fmt.Errorf("failed to create leave balance: %w", err)
		}
		balance, err = s.balanceRepo.GetByEmployeeForUpdate(ctx, employeeID)
	}
	if err != nil {
		return fmt.Errorf("failed to lock leave balance: %w", err)
	}

	balance.AnnualLeaveUsed = balance.AnnualLeaveUsed.Add(delta.Annual)
	balance.SickLeaveUsed = balance.SickLeaveUsed.Add(delta.Sick)

	if err := s.balanceRepo.Update(ctx, balance); err != nil {
		return fmt.Errorf("failed to update leave balance: %w", err)
	}
	return nil
}

func (s *RequestService) withTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.db == nil {
		return fn(ctx)
	}
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, "tx", tx))
	})
}
