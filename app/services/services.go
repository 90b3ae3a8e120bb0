package services

import (
	"sync"

	"postbox/app/repositories"
	"postbox/app/validation"
)

// DefaultPageSize is the page size used when a list request does not
// supply a limit.
const DefaultPageSize = 10

// Policy configures the cross-entity behavior of the services.
type Policy struct {
	// StrictDelete refuses to delete a user that still has posts.
	// When false the user is removed and its posts keep a dangling
	// author id.
	StrictDelete bool
}

// NewServices creates the user and post services over a shared lock.
// The lock serializes read-modify-write sequences that span both
// collections, so a user delete cannot race a dependent post create
// past the integrity check.
func NewServices(users repositories.UserRepository, posts repositories.PostRepository, v *validation.Validator, policy Policy) (*UserService, *PostService) {
	mu := &sync.Mutex{}
	userSvc := &UserService{
		users:    users,
		posts:    posts,
		validate: v,
		policy:   policy,
		mu:       mu,
	}
	postSvc := &PostService{
		posts:    posts,
		users:    users,
		validate: v,
		mu:       mu,
	}
	return userSvc, postSvc
}

// clampPage normalizes skip/limit, applying the 0/10 defaults and
// clamping negative values.
func clampPage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	return skip, limit
}
