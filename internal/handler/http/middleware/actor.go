package middleware

import (
	"context"
	"net/http"

	"github.com/rosterhq/roster-backend-go/internal/domain/employee"
	"github.com/rosterhq/roster-backend-go/internal/handler/http/response"
)

type contextKey string

const actorKey contextKey = "actor"

// ActorRequired resolves the calling employee from the X-Employee-ID
// header and stores it in the request context. Authentication proper is
// handled upstream by the gateway; this layer only needs to know who is
// acting.
func ActorRequired(employeeRepo employee.EmployeeRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			employeeID := r.Header.Get("X-Employee-ID")
			if employeeID == "" {
				response.Unauthorized(w, "Missing X-Employee-ID header")
				return
			}

			actor, err := employeeRepo.GetByID(r.Context(), employeeID)
			if err != nil {
				response.Unauthorized(w, "Unknown employee")
				return
			}
			if !actor.IsActive {
				response.Forbidden(w, "Account is deactivated")
				return
			}

			ctx := context.WithValue(r.Context(), actorKey, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// StaffOnly rejects requests whose actor is not staff. Must run after
// ActorRequired.
func StaffOnly(next http.Handler) http.Handler {
	hfn := func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		if !ok || !actor.IsStaff {
			response.Forbidden(w, "Staff access required")
			return
		}
		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hfn)
}

// ActorFromContext returns the employee resolved by ActorRequired.
func ActorFromContext(ctx context.Context) (employee.Employee, bool) {
	actor, ok := ctx.Value(actorKey).(employee.Employee)
	return actor, ok
}
