package badgerstore

import (
	"github.com/dgraph-io/badger/v4"

	"postbox/app/repositories"
)

// Store is the badger-backed storage backend. Each entity is stored
// as JSON under a prefixed key; id sequences are persisted alongside
// the records.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) a badger database at path.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithSyncWrites(false).
		WithNumVersionsToKeep(1)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// NewStore wraps an already opened badger DB.
func NewStore(db *badger.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Users() repositories.UserRepository {
	return &UserRepository{db: s.db}
}

func (s *Store) Posts() repositories.PostRepository {
	return &PostRepository{db: s.db}
}

func (s *Store) Close() error {
	return s.db.Close()
}
