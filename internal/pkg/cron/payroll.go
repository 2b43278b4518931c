package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/rosterhq/roster-backend-go/internal/service/payroll"
)

// PayrollJobs contains payroll-related cron jobs
type PayrollJobs struct {
	payrollService *payroll.Service
	runHour        int
	now            func() time.Time
}

// NewPayrollJobs creates payroll cron jobs. runHour is the UTC hour
// (0-23) during which the daily wage run fires.
func NewPayrollJobs(payrollService *payroll.Service, runHour int) *PayrollJobs {
	return &PayrollJobs{
		payrollService: payrollService,
		runHour:        runHour,
		now:            time.Now,
	}
}

// RegisterJobs registers all payroll-related cron jobs
func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("daily_wage_run", 1*time.Hour, j.DailyWageRun)
}

// DailyWageRun creates wage records for yesterday's unpaid shifts and
// marks them paid. The job ticks hourly but only does work during the
// configured hour, so a restart mid-day cannot double-run it.
func (j *PayrollJobs) DailyWageRun(ctx context.Context) error {
	nowUTC := j.now().UTC()
	if nowUTC.Hour() != j.runHour {
		return nil
	}

	slog.Info("Cron: Starting daily wage run")

	yesterday := nowUTC.AddDate(0, 0, -1)
	count, err := j.payrollService.RunDaily(ctx, yesterday)
	if err != nil {
		return err
	}

	slog.Info("Cron: Daily wage run completed",
		"date", yesterday.Format("2006-01-02"),
		"wages_created", count)
	return nil
}
