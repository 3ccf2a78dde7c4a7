package response

import (
	"errors"
	"net/http"

	"github.com/crewroster/roster-backend-go/internal/domain/auth"
	"github.com/crewroster/roster-backend-go/internal/domain/entitlement"
	"github.com/crewroster/roster-backend-go/internal/domain/shift"
	"github.com/crewroster/roster-backend-go/internal/domain/user"
	"github.com/crewroster/roster-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenCookieNotFound),
		errors.Is(err, auth.ErrRefreshTokenCookieEmpty):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrWrongPassword):
		BadRequest(w, "Current password is incorrect", nil)
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, user.ErrInvalidRoster):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrInvalidType),
		errors.Is(err, shift.ErrInvalidPriority),
		errors.Is(err, shift.ErrInvalidStatus),
		errors.Is(err, shift.ErrEndBeforeStart),
		errors.Is(err, shift.ErrSpanTooLong):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, shift.ErrOffAdminOnly):
		Forbidden(w, err.Error())
	case errors.Is(err, shift.ErrNormalUnavailable),
		errors.Is(err, shift.ErrTierAlreadyUsed):
		Conflict(w, err.Error())

	// Entitlement domain errors
	case errors.Is(err, entitlement.ErrEntitlementNotFound):
		NotFound(w, "Entitlement not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
