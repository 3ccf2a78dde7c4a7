package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/crewroster/roster-backend-go/internal/domain/auth"
	"github.com/crewroster/roster-backend-go/internal/domain/user"
	shiftsvc "github.com/crewroster/roster-backend-go/internal/service/shift"
)

// currentActor extracts the authenticated identity from the verified JWT
// claims on the request context.
func currentActor(r *http.Request) (shiftsvc.Actor, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return shiftsvc.Actor{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return shiftsvc.Actor{}, auth.ErrInvalidToken
	}
	role, ok := claims["role"].(string)
	if !ok {
		return shiftsvc.Actor{}, auth.ErrInvalidToken
	}

	return shiftsvc.Actor{ID: userID, Role: user.Role(role)}, nil
}
