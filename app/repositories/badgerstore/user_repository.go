package badgerstore

import (
	"github.com/dgraph-io/badger/v4"

	"postbox/app/models"
	"postbox/app/repositories"
)

// UserRepository implements repositories.UserRepository using BadgerDB
type UserRepository struct {
	db *badger.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *badger.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create assigns the next id from the user sequence and stores the user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, UserSeqKey)
		if err != nil {
			return err
		}
		user.ID = id

		data, err := marshalEntity(user)
		if err != nil {
			return err
		}
		return txn.Set(userKey(user.ID), data)
	})
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id int) (*models.User, error) {
	var user models.User

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(id))
		if err == badger.ErrKeyNotFound {
			return repositories.ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &user)
		})
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List retrieves a paginated list of users in id order
func (r *UserRepository) List(limit, offset int) ([]*models.User, error) {
	var users []*models.User
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		count := 0
		prefix := []byte(UserKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if count < offset {
				count++
				continue
			}
			if count >= offset+limit {
				break
			}

			var user models.User
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &user)
			})
			if err != nil {
				return err
			}
			users = append(users, &user)
			count++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Update updates an existing user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := userKey(user.ID)

		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return repositories.ErrNotFound
		}
		if err != nil {
			return err
		}

		data, err := marshalEntity(user)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

// Delete deletes a user by ID
func (r *UserRepository) Delete(id int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := userKey(id)

		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return repositories.ErrNotFound
		}
		if err != nil {
			return err
		}

		return txn.Delete(key)
	})
}

// Count returns the number of stored users
func (r *UserRepository) Count() (int, error) {
	count := 0
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(UserKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
