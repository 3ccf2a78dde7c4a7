package user

import "github.com/crewroster/roster-backend-go/internal/pkg/validator"

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleUser:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

func ParseRoster(s string) (Roster, error) {
	switch Roster(s) {
	case RosterEngineer, RosterMechanic:
		return Roster(s), nil
	}
	return "", ErrInvalidRoster
}

// ParseRosterSlug accepts the lowercase roster form used in URLs.
func ParseRosterSlug(s string) (Roster, error) {
	switch s {
	case "engineer":
		return RosterEngineer, nil
	case "mechanic":
		return RosterMechanic, nil
	}
	return "", ErrInvalidRoster
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Roster   string `json:"roster"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	} else if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters of letters, digits, '.', '_' or '-'",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if _, err := ParseRole(r.Role); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be ADMIN or USER",
		})
	}

	if _, err := ParseRoster(r.Roster); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "roster",
			Message: "roster must be ENGINEER or MECHANIC",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateUserRequest struct {
	ID       string  `json:"-"`
	Username *string `json:"username,omitempty"`
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Role     *string `json:"role,omitempty"`
	Roster   *string `json:"roster,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if r.Username != nil && !validator.IsValidUsername(*r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters of letters, digits, '.', '_' or '-'",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if r.Role != nil {
		if _, err := ParseRole(*r.Role); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "role",
				Message: "role must be ADMIN or USER",
			})
		}
	}

	if r.Roster != nil {
		if _, err := ParseRoster(*r.Roster); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "roster",
				Message: "roster must be ENGINEER or MECHANIC",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SetRosterSequenceRequest struct {
	UserID   string `json:"-"`
	Year     int    `json:"year"`
	Sequence int    `json:"sequence"`
}

func (r *SetRosterSequenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if r.Year < 1000 || r.Year > 9999 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a 4-digit year",
		})
	}

	if r.Sequence < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "sequence",
			Message: "sequence must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UserResponse is the JSON shape returned for a user, without credentials.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Roster   string `json:"roster"`
}

func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Email:    u.Email,
		Role:     string(u.Role),
		Roster:   string(u.Roster),
	}
}
