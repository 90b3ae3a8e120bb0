package repositories

import (
	"errors"

	"postbox/app/models"
)

// ErrNotFound is returned when no record has the requested id.
var ErrNotFound = errors.New("record not found")

// UserRepository defines the interface for user data access. Create
// assigns the next id from a monotonic per-entity sequence; ids are
// never reused within a process lifetime, even after deletes.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	List(limit, offset int) ([]*models.User, error)
	Update(user *models.User) error
	Delete(id int) error
	Count() (int, error)
}

// PostRepository defines the interface for post data access. The
// stored record carries only AuthorID; resolving the author entity is
// the services layer's job.
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	List(limit, offset int) ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id int) error
	Count() (int, error)
	ListByAuthor(authorID int) ([]*models.Post, error)
	CountByAuthor(authorID int) (int, error)
}

// Store bundles the two collections of one storage backend.
type Store interface {
	Users() UserRepository
	Posts() PostRepository
	Close() error
}
