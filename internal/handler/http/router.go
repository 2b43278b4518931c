package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/rosterhq/roster-backend-go/internal/domain/employee"
	"github.com/rosterhq/roster-backend-go/internal/handler/http/middleware"
)

func NewRouter(
	employeeRepo employee.EmployeeRepository,
	employeeHandler EmployeeHandler,
	shiftHandler ShiftHandler,
	leaveHandler LeaveHandler,
	rosterHandler RosterHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "roster-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Employee-ID"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.ActorRequired(employeeRepo))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", employeeHandler.GetMe)
				r.Get("/me/balance", employeeHandler.GetMyBalance)
				r.Get("/{id}", employeeHandler.Get)
				r.Get("/{id}/balance", employeeHandler.GetBalance)

				// Staff only
				r.Group(func(r chi.Router) {
					r.Use(middleware.StaffOnly)
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
				})
			})

			r.Route("/shift-templates", func(r chi.Router) {
				r.Get("/", shiftHandler.ListTemplates)
				r.Get("/{id}", shiftHandler.GetTemplate)

				// Staff only
				r.Group(func(r chi.Router) {
					r.Use(middleware.StaffOnly)
					r.Post("/", shiftHandler.CreateTemplate)
					r.Put("/{id}", shiftHandler.UpdateTemplate)
					r.Delete("/{id}", shiftHandler.DeleteTemplate)
				})
			})

			r.Route("/scheduled-shifts", func(r chi.Router) {
				r.Get("/my", shiftHandler.GetMyShifts)

				// Staff only
				r.Group(func(r chi.Router) {
					r.Use(middleware.StaffOnly)
					r.Get("/", shiftHandler.ListShifts)
					r.Post("/", shiftHandler.CreateShift)
					r.Put("/{id}", shiftHandler.UpdateShift)
					r.Delete("/{id}", shiftHandler.DeleteShift)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Post("/", leaveHandler.CreateRequest)
				r.Get("/my", leaveHandler.GetMyRequests)
				r.Get("/{id}", leaveHandler.GetRequest)
				r.Patch("/{id}/status", leaveHandler.TransitionRequest)

				// Staff only
				r.Group(func(r chi.Router) {
					r.Use(middleware.StaffOnly)
					r.Get("/", leaveHandler.ListRequests)
				})
			})

			r.Route("/roster", func(r chi.Router) {
				r.Use(middleware.StaffOnly)
				r.Post("/{year}/{month}", rosterHandler.Generate)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/wages/my", payrollHandler.GetMyWages)

				// Staff only
				r.Group(func(r chi.Router) {
					r.Use(middleware.StaffOnly)
					r.Post("/run", payrollHandler.Run)
					r.Get("/wages", payrollHandler.ListWages)
				})
			})
		})
	})

	return r
}
