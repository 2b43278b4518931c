package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/rosterhq/roster-backend-go/internal/domain/payroll"
	"github.com/rosterhq/roster-backend-go/internal/handler/http/middleware"
	"github.com/rosterhq/roster-backend-go/internal/handler/http/response"
	servicePayroll "github.com/rosterhq/roster-backend-go/internal/service/payroll"
)

type PayrollHandler interface {
	Run(w http.ResponseWriter, r *http.Request)
	ListWages(w http.ResponseWriter, r *http.Request)
	GetMyWages(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService *servicePayroll.Service
	wageRepo       payroll.WageRepository
}

func NewPayrollHandler(payrollService *servicePayroll.Service, wageRepo payroll.WageRepository) PayrollHandler {
	return &PayrollHandlerImpl{
		payrollService: payrollService,
		wageRepo:       wageRepo,
	}
}

// Run implements PayrollHandler. Manually triggers the wage run for a
// given date (defaults to yesterday), mirroring what the cron job does.
func (h *PayrollHandlerImpl) Run(w http.ResponseWriter, r *http.Request) {
	var req payroll.RunPayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Run payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	targetDate := time.Now().UTC().AddDate(0, 0, -1)
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			response.BadRequest(w, "date must be YYYY-MM-DD", nil)
			return
		}
		targetDate = parsed
	}

	count, err := h.payrollService.RunDaily(r.Context(), targetDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payroll.RunPayrollResponse{
		Date:         targetDate.Format("2006-01-02"),
		WagesCreated: count,
	})
}

// ListWages implements PayrollHandler. Staff only; filtered by pay date
// range.
func (h *PayrollHandlerImpl) ListWages(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseDateRange(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	wages, err := h.wageRepo.ListByPayDateRange(r.Context(), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]payroll.WageRecordResponse, 0, len(wages))
	for _, wage := range wages {
		resp = append(resp, payroll.ToWageResponse(wage))
	}

	response.Success(w, resp)
}

// GetMyWages implements PayrollHandler.
func (h *PayrollHandlerImpl) GetMyWages(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	wages, err := h.wageRepo.ListByEmployee(r.Context(), actor.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]payroll.WageRecordResponse, 0, len(wages))
	for _, wage := range wages {
		resp = append(resp, payroll.ToWageResponse(wage))
	}

	response.Success(w, resp)
}
