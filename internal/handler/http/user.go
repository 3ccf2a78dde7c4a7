package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/crewroster/roster-backend-go/internal/domain/user"
	"github.com/crewroster/roster-backend-go/internal/handler/http/response"
	"github.com/crewroster/roster-backend-go/internal/pkg/validator"
	entitlementsvc "github.com/crewroster/roster-backend-go/internal/service/entitlement"
	shiftsvc "github.com/crewroster/roster-backend-go/internal/service/shift"
	usersvc "github.com/crewroster/roster-backend-go/internal/service/user"
)

type UserHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	SetRosterSequence(w http.ResponseWriter, r *http.Request)
	DeleteRosterSequence(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService        *usersvc.UserService
	shiftService       *shiftsvc.ShiftService
	entitlementService *entitlementsvc.EntitlementService
}

func NewUserHandler(userService *usersvc.UserService, shiftService *shiftsvc.ShiftService, entitlementService *entitlementsvc.EntitlementService) UserHandler {
	return &UserHandlerImpl{
		userService:        userService,
		shiftService:       shiftService,
		entitlementService: entitlementService,
	}
}

// Create implements UserHandler.
func (h *UserHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq user.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.userService.Create(r.Context(), &createReq)
	if err != nil {
		slog.Error("Create user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User created", created)
}

// List implements UserHandler.
func (h *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		slog.Error("List users service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, users)
}

// ProfileResponse is the /users/me payload: the profile plus the current
// year's usage and leave balance.
type ProfileResponse struct {
	User      user.UserResponse     `json:"user"`
	Usage     shiftsvc.UsageSummary `json:"usage"`
	Remaining int                   `json:"remaining"`
}

// Me implements UserHandler.
func (h *UserHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	actor, err := currentActor(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	profile, err := h.userService.GetByID(r.Context(), actor.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	year := time.Now().Year()
	usage, err := h.shiftService.UsageSummary(r.Context(), actor.ID, year)
	if err != nil {
		slog.Error("Profile usage summary error", "error", err)
		response.HandleError(w, err)
		return
	}

	remaining, err := h.entitlementService.Remaining(r.Context(), actor.ID, year, usage.Used)
	if err != nil {
		slog.Error("Profile remaining entitlement error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, ProfileResponse{
		User:      profile,
		Usage:     usage,
		Remaining: remaining,
	})
}

// GetByID implements UserHandler.
func (h *UserHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	found, err := h.userService.GetByID(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Update implements UserHandler.
func (h *UserHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq user.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "userID")

	if err := h.userService.Update(r.Context(), &updateReq); err != nil {
		slog.Error("Update user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User updated", nil)
}

// SetRosterSequence implements UserHandler.
func (h *UserHandlerImpl) SetRosterSequence(w http.ResponseWriter, r *http.Request) {
	var seqReq user.SetRosterSequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&seqReq); err != nil {
		slog.Error("Set roster sequence decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	seqReq.UserID = chi.URLParam(r, "userID")

	if err := h.userService.SetRosterSequence(r.Context(), &seqReq); err != nil {
		slog.Error("Set roster sequence service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Roster sequence updated", nil)
}

// DeleteRosterSequence implements UserHandler.
func (h *UserHandlerImpl) DeleteRosterSequence(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || !validator.IsValidYear(year) {
		response.BadRequest(w, "year must be a 4-digit year", nil)
		return
	}

	if err := h.userService.DeleteRosterSequence(r.Context(), chi.URLParam(r, "userID"), year); err != nil {
		slog.Error("Delete roster sequence service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Roster sequence removed", nil)
}
