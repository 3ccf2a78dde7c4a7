package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/crewroster/roster-backend-go/internal/domain/entitlement"
	"github.com/crewroster/roster-backend-go/internal/handler/http/response"
	"github.com/crewroster/roster-backend-go/internal/pkg/validator"
	entitlementsvc "github.com/crewroster/roster-backend-go/internal/service/entitlement"
)

type EntitlementHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	ListByUser(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type EntitlementHandlerImpl struct {
	entitlementService *entitlementsvc.EntitlementService
}

func NewEntitlementHandler(entitlementService *entitlementsvc.EntitlementService) EntitlementHandler {
	return &EntitlementHandlerImpl{entitlementService: entitlementService}
}

// Create implements EntitlementHandler.
func (h *EntitlementHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq entitlement.CreateEntitlementRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create entitlement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.entitlementService.Create(r.Context(), &createReq)
	if err != nil {
		slog.Error("Create entitlement service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Entitlement created", created)
}

// GetByID implements EntitlementHandler.
func (h *EntitlementHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	found, err := h.entitlementService.GetByID(r.Context(), chi.URLParam(r, "entitlementID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// ListByUser implements EntitlementHandler. An optional year query narrows
// the list to one year.
func (h *EntitlementHandlerImpl) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	if raw := r.URL.Query().Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || !validator.IsValidYear(year) {
			response.BadRequest(w, "year must be a 4-digit year", nil)
			return
		}

		entitlements, err := h.entitlementService.ListByUserYear(r.Context(), userID, year)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, entitlements)
		return
	}

	entitlements, err := h.entitlementService.ListByUser(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entitlements)
}

// Update implements EntitlementHandler.
func (h *EntitlementHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq entitlement.UpdateEntitlementRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update entitlement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "entitlementID")

	if err := h.entitlementService.Update(r.Context(), &updateReq); err != nil {
		slog.Error("Update entitlement service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Entitlement updated", nil)
}

// Delete implements EntitlementHandler.
func (h *EntitlementHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.entitlementService.Delete(r.Context(), chi.URLParam(r, "entitlementID")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Entitlement deleted", nil)
}
