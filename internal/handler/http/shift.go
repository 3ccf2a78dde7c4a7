package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/crewroster/roster-backend-go/internal/domain/shift"
	"github.com/crewroster/roster-backend-go/internal/domain/user"
	"github.com/crewroster/roster-backend-go/internal/handler/http/response"
	"github.com/crewroster/roster-backend-go/internal/pkg/validator"
	shiftsvc "github.com/crewroster/roster-backend-go/internal/service/shift"
)

type ShiftHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	ListByYear(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	UsageSummary(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService *shiftsvc.ShiftService
}

func NewShiftHandler(shiftService *shiftsvc.ShiftService) ShiftHandler {
	return &ShiftHandlerImpl{shiftService: shiftService}
}

// Create implements ShiftHandler. Members file requests for themselves;
// an admin may file one for any user by sending user_id.
func (h *ShiftHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := currentActor(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq struct {
		shift.CreateShiftRequest
		TargetUserID string `json:"user_id,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create shift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	createReq.UserID = actor.ID
	if createReq.TargetUserID != "" && createReq.TargetUserID != actor.ID {
		if actor.Role != user.RoleAdmin {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}
		createReq.UserID = createReq.TargetUserID
	}

	created, err := h.shiftService.Create(r.Context(), actor, &createReq.CreateShiftRequest)
	if err != nil {
		slog.Error("Create shift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift request created", created)
}

// GetByID implements ShiftHandler.
func (h *ShiftHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	found, err := h.shiftService.GetByID(r.Context(), chi.URLParam(r, "shiftID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// ListByYear implements ShiftHandler. Admin overview of every shift in a
// year, defaulting to the current one.
func (h *ShiftHandlerImpl) ListByYear(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || !validator.IsValidYear(parsed) {
			response.BadRequest(w, "year must be a 4-digit year", nil)
			return
		}
		year = parsed
	}

	shifts, err := h.shiftService.ListByYear(r.Context(), year)
	if err != nil {
		slog.Error("List shifts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, shifts)
}

// Update implements ShiftHandler.
func (h *ShiftHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq shift.UpdateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update shift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "shiftID")

	if err := h.shiftService.Update(r.Context(), &updateReq); err != nil {
		slog.Error("Update shift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift updated", nil)
}

// Delete implements ShiftHandler.
func (h *ShiftHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.shiftService.Delete(r.Context(), chi.URLParam(r, "shiftID")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted", nil)
}

// UsageSummary implements ShiftHandler. Members see their own usage; an
// admin may ask for any user via user_id.
func (h *ShiftHandlerImpl) UsageSummary(w http.ResponseWriter, r *http.Request) {
	actor, err := currentActor(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	userID := actor.ID
	if requested := r.URL.Query().Get("user_id"); requested != "" && requested != actor.ID {
		if actor.Role != user.RoleAdmin {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}
		userID = requested
	}

	year := time.Now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || !validator.IsValidYear(parsed) {
			response.BadRequest(w, "year must be a 4-digit year", nil)
			return
		}
		year = parsed
	}

	summary, err := h.shiftService.UsageSummary(r.Context(), userID, year)
	if err != nil {
		slog.Error("Usage summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
