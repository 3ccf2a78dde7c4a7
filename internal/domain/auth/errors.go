package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("Invalid username or password")
	ErrInvalidToken        = errors.New("Invalid token")
	ErrTokenExpired        = errors.New("Token expired")
	ErrRefreshTokenRevoked = errors.New("Refresh token revoked")
	ErrUserNotFound        = errors.New("User not found")
	ErrWrongPassword       = errors.New("Current password is incorrect")

	ErrRefreshTokenCookieNotFound = errors.New("Refresh token cookie not found")
	ErrRefreshTokenCookieEmpty    = errors.New("Refresh token cookie is empty")
)
