package services

import (
	"errors"
	"fmt"
	"sync"

	"postbox/app/models"
	"postbox/app/repositories"
	"postbox/app/validation"
)

// PostService handles business logic for posts, including the
// referential check against the user collection.
type PostService struct {
	posts    repositories.PostRepository
	users    repositories.UserRepository
	validate *validation.Validator
	mu       *sync.Mutex
}

// ListPosts retrieves a page of posts in id order, each with its
// author resolved.
func (s *PostService) ListPosts(skip, limit int) ([]*models.Post, error) {
	skip, limit = clampPage(skip, limit)
	posts, err := s.posts.List(limit, skip)
	if err != nil {
		return nil, err
	}

	for _, post := range posts {
		if err := s.resolveAuthor(post); err != nil {
			return nil, err
		}
	}
	return posts, nil
}

// GetPost retrieves a post by ID with its author resolved.
func (s *PostService) GetPost(id int) (*models.Post, error) {
	post, err := s.posts.GetByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	if err := s.resolveAuthor(post); err != nil {
		return nil, err
	}
	return post, nil
}

// CreatePost validates the input, verifies the author exists, assigns
// the next id, and stores the post. Nothing is stored when the author
// check fails.
func (s *PostService) CreatePost(in models.PostInput) (*models.Post, error) {
	if err := s.validate.ValidatePost(in); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	author, err := s.users.GetByID(in.AuthorID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrInvalidReference
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	post := &models.Post{
		Title:    in.Title,
		Content:  in.Content,
		AuthorID: in.AuthorID,
	}
	if err := s.posts.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	post.Author = author
	return post, nil
}

// UpdatePost applies a partial patch: only supplied fields change.
// The merged record is re-validated, and a supplied author id is
// re-checked against the user collection.
func (s *PostService) UpdatePost(id int, patch models.PostPatch) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.posts.GetByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	in := patch.Merged(existing)
	if err := s.validate.ValidatePost(in); err != nil {
		return nil, err
	}

	if patch.AuthorID != nil {
		if _, err := s.users.GetByID(*patch.AuthorID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, ErrInvalidReference
			}
			return nil, fmt.Errorf("failed to get author: %w", err)
		}
	}

	post := &models.Post{
		ID:       id,
		Title:    in.Title,
		Content:  in.Content,
		AuthorID: in.AuthorID,
	}
	if err := s.posts.Update(post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	if err := s.resolveAuthor(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post unconditionally; posts have no dependents.
func (s *PostService) DeletePost(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.posts.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

// resolveAuthor attaches the author entity. A missing author (possible
// under the permissive delete policy) leaves Author nil rather than
// failing the read.
func (s *PostService) resolveAuthor(post *models.Post) error {
	author, err := s.users.GetByID(post.AuthorID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to resolve author: %w", err)
	}
	post.Author = author
	return nil
}
