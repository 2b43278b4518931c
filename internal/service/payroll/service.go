package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rosterhq/roster-backend-go/internal/domain/employee"
	"github.com/rosterhq/roster-backend-go/internal/domain/payroll"
	"github.com/rosterhq/roster-backend-go/internal/domain/shift"
	"github.com/rosterhq/roster-backend-go/internal/pkg/database"
	"github.com/rosterhq/roster-backend-go/internal/repository/postgresql"
)

// Service computes wages for worked shifts. Each shift is paid exactly
// once: selection is gated on has_payslip, and the wage insert plus the
// mark-off run in one transaction, so re-running a date is a no-op.
type Service struct {
	db           *database.DB
	shiftRepo    shift.ScheduledShiftRepository
	templateRepo shift.ShiftTemplateRepository
	wageRepo     payroll.WageRepository
	employeeRepo employee.EmployeeRepository
}

func NewService(
	db *database.DB,
	shiftRepo shift.ScheduledShiftRepository,
	templateRepo shift.ShiftTemplateRepository,
	wageRepo payroll.WageRepository,
	employeeRepo employee.EmployeeRepository,
) *Service {
	return &Service{
		db:           db,
		shiftRepo:    shiftRepo,
		templateRepo: templateRepo,
		wageRepo:     wageRepo,
		employeeRepo: employeeRepo,
	}
}

// RunDaily processes all unpaid shifts of the target date and returns how
// many wage records were created. A date with nothing to process is a
// successful run with zero effect.
func (s *Service) RunDaily(ctx context.Context, targetDate time.Time) (int, error) {
	targetDate = time.Date(targetDate.Year(), targetDate.Month(), targetDate.Day(), 0, 0, 0, 0, time.UTC)

	shifts, err := s.shiftRepo.ListUnpaidByDate(ctx, targetDate)
	if err != nil {
		return 0, fmt.Errorf("failed to list unpaid shifts: %w", err)
	}
	if len(shifts) == 0 {
		slog.Info("Payroll: no unpaid shifts", "date", targetDate.Format("2006-01-02"))
		return 0, nil
	}

	// Resolve each effective worker once.
	workers := make(map[string]employee.Employee)
	for _, sh := range shifts {
		workerID := sh.EffectiveStaffID()
		if _, ok := workers[workerID]; ok {
			continue
		}
		emp, err := s.employeeRepo.GetByID(ctx, workerID)
		if err != nil {
			return 0, fmt.Errorf("failed to resolve worker for shift %s: %w", sh.ID, err)
		}
		workers[workerID] = emp
	}

	templates := make(map[string]shift.ShiftTemplate)
	lookupTemplate := func(id string) (shift.ShiftTemplate, error) {
		if tmpl, ok := templates[id]; ok {
			return tmpl, nil
		}
		tmpl, err := s.templateRepo.GetByID(ctx, id)
		if err != nil {
			return shift.ShiftTemplate{}, fmt.Errorf("failed to load shift template %s: %w", id, err)
		}
		templates[id] = tmpl
		return tmpl, nil
	}

	records := make([]payroll.WageRecord, 0, len(shifts))
	shiftIDs := make([]string, 0, len(shifts))
	for _, sh := range shifts {
		worker := workers[sh.EffectiveStaffID()]
		tmpl, err := lookupTemplate(sh.ShiftTemplateID)
		if err != nil {
			return 0, err
		}

		rate := worker.PayRate
		if worker.PositionType == employee.PositionCasual {
			rate = rate.Mul(payroll.CasualLoading)
		}

		records = append(records, payroll.WageRecord{
			EmployeeID: worker.ID,
			ShiftID:    sh.ID,
			PayDate:    targetDate,
			Salary:     tmpl.DailyWorkHours().Mul(rate).Round(2),
		})
		shiftIDs = append(shiftIDs, sh.ID)
	}

	err = s.withTx(ctx, func(txCtx context.Context) error {
		if err := s.wageRepo.BulkCreate(txCtx, records); err != nil {
			return fmt.Errorf("failed to create wage records: %w", err)
		}
		if err := s.shiftRepo.MarkPaid(txCtx, shiftIDs); err != nil {
			return fmt.Errorf("failed to mark shifts paid: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.Info("Payroll run complete",
		"date", targetDate.Format("2006-01-02"), "wages_created", len(records))

	return len(records), nil
}

func (s *Service) withTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.db == nil {
		return fn(ctx)
	}
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, "tx", tx))
	})
}
