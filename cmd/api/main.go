package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/rosterhq/roster-backend-go/internal/config"
	appHTTP "github.com/rosterhq/roster-backend-go/internal/handler/http"
	"github.com/rosterhq/roster-backend-go/internal/pkg/cron"
	"github.com/rosterhq/roster-backend-go/internal/pkg/database"
	"github.com/rosterhq/roster-backend-go/internal/repository/postgresql"
	employeeService "github.com/rosterhq/roster-backend-go/internal/service/employee"
	"github.com/rosterhq/roster-backend-go/internal/service/leave"
	payrollService "github.com/rosterhq/roster-backend-go/internal/service/payroll"
	rosterService "github.com/rosterhq/roster-backend-go/internal/service/roster"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	templateRepo := postgresql.NewShiftTemplateRepository(db)
	shiftRepo := postgresql.NewScheduledShiftRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	wageRepo := postgresql.NewWageRepository(db)

	balanceService := leave.NewBalanceService(leaveBalanceRepo, employeeRepo)
	requestService := leave.NewRequestService(db, leaveRequestRepo, leaveBalanceRepo)
	employeeSvc := employeeService.NewService(db, employeeRepo, balanceService)
	rosterSvc := rosterService.NewService(
		employeeRepo,
		templateRepo,
		shiftRepo,
		cfg.Roster.ManagerEmail,
		rand.New(rand.NewSource(time.Now().UnixNano())),
	)
	payrollSvc := payrollService.NewService(db, shiftRepo, templateRepo, wageRepo, employeeRepo)

	scheduler := cron.NewScheduler()
	cron.NewPayrollJobs(payrollSvc, cfg.Payroll.RunHour).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc, balanceService)
	shiftHandler := appHTTP.NewShiftHandler(templateRepo, shiftRepo)
	leaveHandler := appHTTP.NewLeaveHandler(requestService, leaveRequestRepo)
	rosterHandler := appHTTP.NewRosterHandler(rosterSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc, wageRepo)

	router := appHTTP.NewRouter(
		employeeRepo,
		employeeHandler,
		shiftHandler,
		leaveHandler,
		rosterHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
