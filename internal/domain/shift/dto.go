package shift

import (
	"time"

	"github.com/crewroster/roster-backend-go/internal/pkg/validator"
)

// MaxRequestSpanDays caps a single request at five inclusive calendar days.
const MaxRequestSpanDays = 5

type CreateShiftRequest struct {
	UserID   string `json:"-"`
	Start    string `json:"start_date"`
	End      string `json:"end_date"`
	Type     string `json:"type"`
	Priority string `json:"priority,omitempty"`

	// Parsed by Validate.
	StartDate time.Time `json:"-"`
	EndDate   time.Time `json:"-"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if validator.IsEmpty(r.Start) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if start, ok := validator.IsValidDate(r.Start); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date in YYYY-MM-DD format",
		})
	} else {
		r.StartDate = start
	}

	if validator.IsEmpty(r.End) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if end, ok := validator.IsValidDate(r.End); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date in YYYY-MM-DD format",
		})
	} else {
		r.EndDate = end
	}

	if _, err := ParseType(r.Type); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be LEAVE, OFF or HOLIDAY",
		})
	}

	if r.Priority != "" {
		if _, err := ParsePriority(r.Priority); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "priority",
				Message: "priority must be NORMAL, ANL1, ANL2 or ANL3",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateShiftRequest struct {
	ID       string  `json:"-"`
	Start    *string `json:"start_date,omitempty"`
	End      *string `json:"end_date,omitempty"`
	Type     *string `json:"type,omitempty"`
	Priority *string `json:"priority,omitempty"`
	Status   *string `json:"status,omitempty"`

	// Set by the service after validation.
	StartDate *time.Time `json:"-"`
	EndDate   *time.Time `json:"-"`
	Amount    *int       `json:"-"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id is required",
		})
	}

	if r.Start != nil {
		if start, ok := validator.IsValidDate(*r.Start); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be a valid date in YYYY-MM-DD format",
			})
		} else {
			r.StartDate = &start
		}
	}

	if r.End != nil {
		if end, ok := validator.IsValidDate(*r.End); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be a valid date in YYYY-MM-DD format",
			})
		} else {
			r.EndDate = &end
		}
	}

	if r.Type != nil {
		if _, err := ParseType(*r.Type); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "type",
				Message: "type must be LEAVE, OFF or HOLIDAY",
			})
		}
	}

	if r.Priority != nil {
		if _, err := ParsePriority(*r.Priority); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "priority",
				Message: "priority must be NORMAL, ANL1, ANL2 or ANL3",
			})
		}
	}

	if r.Status != nil {
		if _, err := ParseStatus(*r.Status); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be PENDING, APPROVED or REJECTED",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ShiftResponse is the JSON shape returned for a shift record.
type ShiftResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	UserName  *string `json:"user_name,omitempty"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Type      string  `json:"type"`
	Priority  string  `json:"priority"`
	Status    string  `json:"status"`
	Amount    int     `json:"amount"`
}

func NewShiftResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		UserName:  s.UserName,
		StartDate: s.Start.Format("2006-01-02"),
		EndDate:   s.End.Format("2006-01-02"),
		Type:      string(s.Type),
		Priority:  string(s.Priority),
		Status:    string(s.Status),
		Amount:    s.Amount,
	}
}
