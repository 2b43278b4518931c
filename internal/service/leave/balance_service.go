package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/rosterhq/roster-backend-go/internal/domain/employee"
	"github.com/rosterhq/roster-backend-go/internal/domain/leave"
	"github.com/shopspring/decimal"
)

// Accrual constants, in hours per month of permanent employment.
// Annual: 20 days x 7.6h = 152h a year, 12.67h a month.
// Sick:   10 days x 7.6h =  76h a year,  6.33h a month.
var (
	annualAccrualPerMonth = decimal.RequireFromString("12.67")
	sickAccrualPerMonth   = decimal.RequireFromString("6.33")
)

// BalanceService derives available leave hours from the accrual formula and
// manages the lifecycle of balance records.
type BalanceService struct {
	balanceRepo  leave.LeaveBalanceRepository
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewBalanceService(balanceRepo leave.LeaveBalanceRepository, employeeRepo employee.EmployeeRepository) *BalanceService {
	return &BalanceService{
		balanceRepo:  balanceRepo,
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

// WithClock overrides the accrual clock. Tests use this to pin "today".
func (s *BalanceService) WithClock(now func() time.Time) *BalanceService {
	s.now = now
	return s
}

// AvailableAnnualHours computes the annual leave hours the employee can
// still take: months worked x monthly accrual, scaled by the part-time
// rate for part-timers, minus hours already used, floored at zero.
// Employees without a start date, with an end date, or outside a permanent
// position accrue nothing.
func (s *BalanceService) AvailableAnnualHours(emp employee.Employee, balance leave.LeaveBalance) decimal.Decimal {
	return s.availableHours(emp, annualAccrualPerMonth, balance.AnnualLeaveUsed)
}

// AvailableSickHours is the sick-leave counterpart of AvailableAnnualHours.
func (s *BalanceService) AvailableSickHours(emp employee.Employee, balance leave.LeaveBalance) decimal.Decimal {
	return s.availableHours(emp, sickAccrualPerMonth, balance.SickLeaveUsed)
}

func (s *BalanceService) availableHours(emp employee.Employee, perMonth, used decimal.Decimal) decimal.Decimal {
	if !emp.AccruesLeave() {
		return decimal.Zero
	}

	today := s.now()
	monthsWorked := (today.Year()-emp.StartDate.Year())*12 + int(today.Month()) - int(emp.StartDate.Month())

	accrued := decimal.NewFromInt(int64(monthsWorked)).Mul(perMonth)
	if emp.PositionType == employee.PositionPartTime {
		accrued = accrued.Mul(emp.PartTimeRate)
	}

	available := accrued.Sub(used)
	if available.IsNegative() {
		return decimal.Zero
	}
	return available
}

// ComputeAvailable resolves the employee and their balance record and
// returns the derived available hours. A missing balance record counts as
// zero used hours.
func (s *BalanceService) ComputeAvailable(ctx context.Context, employeeID string) (leave.BalanceSummary, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return leave.BalanceSummary{}, fmt.Errorf("failed to get employee: %w", err)
	}

	balance, err := s.balanceRepo.GetByEmployee(ctx, employeeID)
	if err != nil && err != leave.ErrBalanceNotFound {
		return leave.BalanceSummary{}, fmt.Errorf("failed to get leave balance: %w", err)
	}

	return leave.BalanceSummary{
		EmployeeID:      employeeID,
		AvailableAnnual: s.AvailableAnnualHours(emp, balance).Round(2),
		AvailableSick:   s.AvailableSickHours(emp, balance).Round(2),
	}, nil
}

// SyncForPosition creates or removes the balance record after a position or
// activity change: full/part active employees carry one, everyone else does
// not. Removal drops the used-hours counters with it.
func (s *BalanceService) SyncForPosition(ctx context.Context, emp employee.Employee) error {
	if emp.HoldsBalance() && emp.IsActive {
		_, err := s.balanceRepo.Create(ctx, leave.LeaveBalance{
			EmployeeID:      emp.ID,
			AnnualLeaveUsed: decimal.Zero,
			SickLeaveUsed:   decimal.Zero,
		})
		if err != nil {
			return fmt.Errorf("failed to create leave balance: %w", err)
		}
		return nil
	}

	if err := s.balanceRepo.DeleteByEmployee(ctx, emp.ID); err != nil {
		return fmt.Errorf("failed to remove leave balance: %w", err)
	}
	return nil
}
