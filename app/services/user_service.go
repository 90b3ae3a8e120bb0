package services

import (
	"errors"
	"fmt"
	"sync"

	"postbox/app/models"
	"postbox/app/repositories"
	"postbox/app/validation"
)

// UserService handles business logic for users.
type UserService struct {
	users    repositories.UserRepository
	posts    repositories.PostRepository
	validate *validation.Validator
	policy   Policy
	mu       *sync.Mutex
}

// ListUsers retrieves a page of users in id order. skip and limit
// default to 0 and 10.
func (s *UserService) ListUsers(skip, limit int) ([]*models.User, error) {
	skip, limit = clampPage(skip, limit)
	return s.users.List(limit, skip)
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(id int) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// CreateUser validates the input, assigns the next id, and stores the
// user. On validation failure it returns the full violation list.
func (s *UserService) CreateUser(in models.UserInput) (*models.User, error) {
	if err := s.validate.ValidateUser(in); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := &models.User{}
	user.Apply(in)
	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// UpdateUser replaces the user's name, email and age after validation.
// The id never changes.
func (s *UserService) UpdateUser(id int, in models.UserInput) (*models.User, error) {
	if err := s.validate.ValidateUser(in); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.users.GetByID(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user := &models.User{ID: id}
	user.Apply(in)
	if err := s.users.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// DeleteUser removes a user. Under the strict policy it refuses with
// ErrConflict while any post still references the user.
func (s *UserService) DeleteUser(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.users.GetByID(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if s.policy.StrictDelete {
		n, err := s.posts.CountByAuthor(id)
		if err != nil {
			return fmt.Errorf("failed to count posts: %w", err)
		}
		if n > 0 {
			return ErrConflict
		}
	}

	if err := s.users.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
