package entitlement

import "github.com/crewroster/roster-backend-go/internal/pkg/validator"

type CreateEntitlementRequest struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Year   int    `json:"year"`
	Amount int    `json:"amount"`
}

func (r *CreateEntitlementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.Year < 1000 || r.Year > 9999 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a 4-digit year",
		})
	}

	if r.Amount < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEntitlementRequest struct {
	ID     string  `json:"-"`
	Name   *string `json:"name,omitempty"`
	Year   *int    `json:"year,omitempty"`
	Amount *int    `json:"amount,omitempty"`
}

func (r *UpdateEntitlementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "entitlement_id",
			Message: "entitlement_id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Year != nil && (*r.Year < 1000 || *r.Year > 9999) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a 4-digit year",
		})
	}

	if r.Amount != nil && *r.Amount < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
