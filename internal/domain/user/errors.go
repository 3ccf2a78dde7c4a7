package user

import "errors"

var (
	ErrUserNotFound           = errors.New("User not found")
	ErrUsernameExists         = errors.New("Username already taken")
	ErrInvalidRole            = errors.New("Invalid role")
	ErrInvalidRoster          = errors.New("Invalid roster")
	ErrAdminPrivilegeRequired = errors.New("Admin privilege required")
)
