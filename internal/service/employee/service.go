package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rosterhq/roster-backend-go/internal/domain/employee"
	"github.com/rosterhq/roster-backend-go/internal/pkg/database"
	"github.com/rosterhq/roster-backend-go/internal/repository/postgresql"
	serviceLeave "github.com/rosterhq/roster-backend-go/internal/service/leave"
	"github.com/shopspring/decimal"
)

type Service struct {
	db             *database.DB
	employeeRepo   employee.EmployeeRepository
	balanceService *serviceLeave.BalanceService
}

func NewService(db *database.DB, employeeRepo employee.EmployeeRepository, balanceService *serviceLeave.BalanceService) *Service {
	return &Service{
		db:             db,
		employeeRepo:   employeeRepo,
		balanceService: balanceService,
	}
}

func (s *Service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	if _, err := s.employeeRepo.GetByEmail(ctx, req.Email); err == nil {
		return employee.Employee{}, employee.ErrEmailExists
	}

	positionType := employee.PositionType(req.PositionType)
	if req.PositionType == "" {
		positionType = employee.PositionCasual
	}

	partTimeRate := decimal.NewFromInt(1)
	if req.PartTimeRate != nil {
		partTimeRate = *req.PartTimeRate
	}

	emp := employee.Employee{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		Mobile:            req.Mobile,
		Gender:            req.Gender,
		Address:           req.Address,
		Suburb:            req.Suburb,
		State:             req.State,
		Postcode:          req.Postcode,
		TFN:               req.TFN,
		PositionType:      positionType,
		PermanentPosition: req.PermanentPosition,
		PartTimeRate:      partTimeRate,
		PayRate:           req.PayRate,
		IsActive:          true,
		IsStaff:           req.IsStaff,
	}
	if req.StartDate != "" {
		startDate, _ := time.Parse("2006-01-02", req.StartDate)
		emp.StartDate = &startDate
	}

	var created employee.Employee
	err := s.withTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.employeeRepo.Create(txCtx, emp)
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}
		return s.balanceService.SyncForPosition(txCtx, created)
	})
	if err != nil {
		return employee.Employee{}, err
	}

	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]employee.Employee, error) {
	return s.employeeRepo.List(ctx)
}

// Update applies a partial update. Deactivation is guarded: superuser
// accounts cannot be deactivated at all, and staff cannot deactivate
// themselves. A position or activity change re-syncs the leave balance
// record.
func (s *Service) Update(ctx context.Context, actor employee.Employee, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.Employee{}, err
	}

	if req.IsActive != nil && !*req.IsActive {
		if emp.IsSuperuser {
			return employee.Employee{}, employee.ErrProtectedAccount
		}
		if emp.IsStaff && emp.ID == actor.ID {
			return employee.Employee{}, employee.ErrSelfDeactivation
		}
	}

	if req.FirstName != nil {
		emp.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		emp.LastName = *req.LastName
	}
	if req.Mobile != nil {
		emp.Mobile = *req.Mobile
	}
	if req.Address != nil {
		emp.Address = *req.Address
	}
	if req.Suburb != nil {
		emp.Suburb = *req.Suburb
	}
	if req.State != nil {
		emp.State = *req.State
	}
	if req.Postcode != nil {
		emp.Postcode = *req.Postcode
	}
	if req.PositionType != nil {
		emp.PositionType = employee.PositionType(*req.PositionType)
	}
	if req.PermanentPosition != nil {
		emp.PermanentPosition = *req.PermanentPosition
	}
	if req.PartTimeRate != nil {
		emp.PartTimeRate = *req.PartTimeRate
	}
	if req.PayRate != nil {
		emp.PayRate = *req.PayRate
	}
	if req.StartDate != nil {
		startDate, _ := time.Parse("2006-01-02", *req.StartDate)
		emp.StartDate = &startDate
	}
	if req.EndDate != nil {
		if *req.EndDate == "" {
			emp.EndDate = nil
		} else {
			endDate, _ := time.Parse("2006-01-02", *req.EndDate)
			emp.EndDate = &endDate
		}
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}
	if req.IsStaff != nil {
		emp.IsStaff = *req.IsStaff
	}

	err = s.withTx(ctx, func(txCtx context.Context) error {
		if err := s.employeeRepo.Update(txCtx, emp); err != nil {
			return fmt.Errorf("failed to update employee: %w", err)
		}
		return s.balanceService.SyncForPosition(txCtx, emp)
	})
	if err != nil {
		return employee.Employee{}, err
	}

	return emp, nil
}

func (s *Service) withTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.db == nil {
		return fn(ctx)
	}
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, "tx", tx))
	})
}
