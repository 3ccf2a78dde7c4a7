package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/crewroster/roster-backend-go/internal/domain/user"
	"github.com/crewroster/roster-backend-go/internal/handler/http/response"
	"github.com/crewroster/roster-backend-go/internal/pkg/validator"
	"github.com/crewroster/roster-backend-go/internal/service/roster"
)

type RosterHandler interface {
	MonthGrid(w http.ResponseWriter, r *http.Request)
}

type RosterHandlerImpl struct {
	rosterService *roster.RosterService
}

func NewRosterHandler(rosterService *roster.RosterService) RosterHandler {
	return &RosterHandlerImpl{rosterService: rosterService}
}

// MonthGrid implements RosterHandler. Route params are validated here;
// the grid builder only ever sees a well-formed period.
func (h *RosterHandlerImpl) MonthGrid(w http.ResponseWriter, r *http.Request) {
	actor, err := currentActor(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rosterName, err := user.ParseRosterSlug(chi.URLParam(r, "roster"))
	if err != nil {
		response.BadRequest(w, "roster must be engineer or mechanic", nil)
		return
	}

	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || !validator.IsValidYear(year) {
		response.BadRequest(w, "year must be a 4-digit year", nil)
		return
	}

	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || !validator.IsValidMonth(month) {
		response.BadRequest(w, "month must be between 1 and 12", nil)
		return
	}

	grid, err := h.rosterService.MonthGrid(r.Context(), rosterName, year, month, roster.Viewer{
		ID:   actor.ID,
		Role: actor.Role,
	})
	if err != nil {
		slog.Error("MonthGrid service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, grid)
}
