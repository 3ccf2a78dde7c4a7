package user

import "context"

// UserRepository - interface for the users table
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)

	// ListMembersByRoster returns the roster's members with their ordering
	// sequence for the given year joined in. Members without a sequence for
	// that year carry a nil Sequence.
	ListMembersByRoster(ctx context.Context, roster Roster, year int) ([]Member, error)

	Update(ctx context.Context, req UpdateUserRequest) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

// RosterSequenceRepository - interface for the roster_sequences table
type RosterSequenceRepository interface {
	// Set upserts the member's display position for the year.
	Set(ctx context.Context, seq RosterSequence) error
	Delete(ctx context.Context, userID string, year int) error
}
