package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/crewroster/roster-backend-go/internal/domain/holiday"
	"github.com/crewroster/roster-backend-go/internal/handler/http/response"
	"github.com/crewroster/roster-backend-go/internal/pkg/validator"
)

type PublicHolidayHandler interface {
	ListByMonth(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PublicHolidayHandlerImpl struct {
	holidayRepository holiday.PublicHolidayRepository
}

func NewPublicHolidayHandler(holidayRepository holiday.PublicHolidayRepository) PublicHolidayHandler {
	return &PublicHolidayHandlerImpl{holidayRepository: holidayRepository}
}

// ListByMonth implements PublicHolidayHandler.
func (h *PublicHolidayHandlerImpl) ListByMonth(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || !validator.IsValidYear(year) {
		response.BadRequest(w, "year must be a 4-digit year", nil)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || !validator.IsValidMonth(month) {
		response.BadRequest(w, "month must be between 1 and 12", nil)
		return
	}

	holidays, err := h.holidayRepository.ListByMonth(r.Context(), year, month)
	if err != nil {
		slog.Error("List public holidays error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}

// Create implements PublicHolidayHandler.
func (h *PublicHolidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq struct {
		Date string `json:"date"`
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create public holiday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	date, ok := validator.IsValidDate(createReq.Date)
	if !ok {
		response.BadRequest(w, "date must be a valid date in YYYY-MM-DD format", nil)
		return
	}
	if validator.IsEmpty(createReq.Name) {
		response.BadRequest(w, "name is required", nil)
		return
	}

	created, err := h.holidayRepository.Create(r.Context(), holiday.PublicHoliday{
		Date: date,
		Name: createReq.Name,
	})
	if err != nil {
		slog.Error("Create public holiday error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Public holiday created", created)
}

// Delete implements PublicHolidayHandler.
func (h *PublicHolidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.holidayRepository.Delete(r.Context(), chi.URLParam(r, "holidayID")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Public holiday deleted", nil)
}
