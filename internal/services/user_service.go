package services

import (
	"context"

	"usersvc/internal/domain"
	"usersvc/internal/repos"
	"usersvc/internal/validate"
)

// ValidationError reports input rejected before any storage call.
type ValidationError struct{ Message string }

func (e *ValidationError) Error() string { return e.Message }

var errMissingFields = &ValidationError{Message: "Username and email are required"}

type UserService struct {
	Users *repos.UserRepo
}

func NewUserService(users *repos.UserRepo) *UserService {
	return &UserService{Users: users}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.Users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.Users.ByID(ctx, id)
}

// Create inserts a user and echoes the input with the assigned id. The row
// is not re-read, so Age and Role reflect what the caller sent (Role
// defaulted to "user" when absent or falsy).
func (s *UserService) Create(ctx context.Context, in domain.UserInput) (*domain.UserEcho, error) {
	if !validate.Truthy(in.Username.Value) || !validate.Truthy(in.Email.Value) {
		return nil, errMissingFields
	}
	if !validate.Truthy(in.Role.Value) {
		in.Role = domain.Value(domain.DefaultRole)
	}
	id, err := s.Users.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return &domain.UserEcho{ID: id, Username: in.Username, Email: in.Email, Age: in.Age, Role: in.Role}, nil
}

// Update overwrites every mutable field, including with NULL for omitted
// ones. No presence checks apply here.
func (s *UserService) Update(ctx context.Context, id int64, in domain.UserInput) (*domain.UserEcho, error) {
	if err := s.Users.Update(ctx, id, in); err != nil {
		return nil, err
	}
	return &domain.UserEcho{ID: id, Username: in.Username, Email: in.Email, Age: in.Age, Role: in.Role}, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.Users.Delete(ctx, id)
}
