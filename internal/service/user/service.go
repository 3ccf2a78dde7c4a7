package user

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/crewroster/roster-backend-go/internal/domain/user"
)

type UserService struct {
	user.UserRepository
	user.RosterSequenceRepository
}

func NewUserService(userRepository user.UserRepository, sequenceRepository user.RosterSequenceRepository) *UserService {
	return &UserService{
		UserRepository:           userRepository,
		RosterSequenceRepository: sequenceRepository,
	}
}

// Create provisions a new roster member. Password hashing happens here so
// handlers never touch the plaintext beyond decoding the request.
func (s *UserService) Create(ctx context.Context, req *user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	role, err := user.ParseRole(req.Role)
	if err != nil {
		return user.UserResponse{}, err
	}
	roster, err := user.ParseRoster(req.Roster)
	if err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		Username:     req.Username,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		Roster:       roster,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.NewUserResponse(created), nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (user.UserResponse, error) {
	found, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.NewUserResponse(found), nil
}

func (s *UserService) List(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	resp := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, user.NewUserResponse(u))
	}

	return resp, nil
}

func (s *UserService) Update(ctx context.Context, req *user.UpdateUserRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.UserRepository.Update(ctx, *req)
}

// SetRosterSequence pins a member's display position on the roster grid
// for one year.
func (s *UserService) SetRosterSequence(ctx context.Context, req *user.SetRosterSequenceRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.UserRepository.GetByID(ctx, req.UserID); err != nil {
		return err
	}

	return s.RosterSequenceRepository.Set(ctx, user.RosterSequence{
		UserID:   req.UserID,
		Year:     req.Year,
		Sequence: req.Sequence,
	})
}

func (s *UserService) DeleteRosterSequence(ctx context.Context, userID string, year int) error {
	return s.RosterSequenceRepository.Delete(ctx, userID, year)
}
