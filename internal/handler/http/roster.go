package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rosterhq/roster-backend-go/internal/domain/shift"
	"github.com/rosterhq/roster-backend-go/internal/handler/http/response"
	serviceRoster "github.com/rosterhq/roster-backend-go/internal/service/roster"
)

type RosterHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
}

type RosterHandlerImpl struct {
	rosterService *serviceRoster.Service
}

func NewRosterHandler(rosterService *serviceRoster.Service) RosterHandler {
	return &RosterHandlerImpl{rosterService: rosterService}
}

// Generate implements RosterHandler. Builds the full month of shifts in
// one shot; a month that already has shifts is rejected.
func (h *RosterHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.BadRequest(w, "year must be numeric", nil)
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		response.BadRequest(w, "month must be numeric", nil)
		return
	}

	shifts, err := h.rosterService.Generate(r.Context(), year, time.Month(month))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]shift.ScheduledShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		resp = append(resp, shift.ToScheduledShiftResponse(s))
	}

	response.Created(w, "Roster generated successfully", resp)
}
