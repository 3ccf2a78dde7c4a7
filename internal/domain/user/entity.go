package user

import "time"

type Role string

const (
	RoleAdmin Role = "ADMIN" // Manages shifts, users, entitlements, sequences
	RoleUser  Role = "USER"  // Regular roster member
)

// Roster identifies which of the two crews a member belongs to.
type Roster string

const (
	RosterEngineer Roster = "ENGINEER"
	RosterMechanic Roster = "MECHANIC"
)

type User struct {
	ID           string
	Username     string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Roster       Roster
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RosterSequence pins a member to a display position on the roster grid for
// one year. Members without a sequence for the year sort after those with one.
type RosterSequence struct {
	UserID   string
	Year     int
	Sequence int
}

// Member is the slice of a user the grid builder needs: identity, display
// name, and the optional per-year ordering key.
type Member struct {
	ID       string
	Name     string
	Sequence *int
}

// IsAdmin checks if the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
