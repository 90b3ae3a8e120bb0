package memory

import (
	"sort"
	"sync"

	"postbox/app/models"
	"postbox/app/repositories"
)

// Store keeps both collections in process memory. It is the default
// backend and the one tests run against. Records are copied on the
// way in and out so callers can never mutate stored state through a
// shared pointer.
type Store struct {
	users *UserRepository
	posts *PostRepository
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		users: NewUserRepository(),
		posts: NewPostRepository(),
	}
}

func (s *Store) Users() repositories.UserRepository { return s.users }
func (s *Store) Posts() repositories.PostRepository { return s.posts }
func (s *Store) Close() error                       { return nil }

// UserRepository implements repositories.UserRepository over a map.
type UserRepository struct {
	users  map[int]*models.User
	nextID int
	mutex  sync.RWMutex
}

// NewUserRepository creates an empty user collection.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[int]*models.User),
		nextID: 1,
	}
}

func (m *UserRepository) Create(user *models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user.Clone()
	return nil
}

func (m *UserRepository) GetByID(id int) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return user.Clone(), nil
}

func (m *UserRepository) List(limit, offset int) ([]*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	ids := make([]int, 0, len(m.users))
	for id := range m.users {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var users []*models.User
	for i, id := range ids {
		if i < offset {
			continue
		}
		if len(users) >= limit {
			break
		}
		users = append(users, m.users[id].Clone())
	}
	return users, nil
}

func (m *UserRepository) Update(user *models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.users[user.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.users[user.ID] = user.Clone()
	return nil
}

func (m *UserRepository) Delete(id int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.users[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *UserRepository) Count() (int, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.users), nil
}

// PostRepository implements repositories.PostRepository over a map.
type PostRepository struct {
	posts  map[int]*models.Post
	nextID int
	mutex  sync.RWMutex
}

// NewPostRepository creates an empty post collection.
func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts:  make(map[int]*models.Post),
		nextID: 1,
	}
}

func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.ID = m.nextID
	m.nextID++
	stored := post.Clone()
	stored.Author = nil
	m.posts[post.ID] = stored
	return nil
}

func (m *PostRepository) GetByID(id int) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return post.Clone(), nil
}

func (m *PostRepository) List(limit, offset int) ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	ids := make([]int, 0, len(m.posts))
	for id := range m.posts {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var posts []*models.Post
	for i, id := range ids {
		if i < offset {
			continue
		}
		if len(posts) >= limit {
			break
		}
		posts = append(posts, m.posts[id].Clone())
	}
	return posts, nil
}

func (m *PostRepository) Update(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	stored := post.Clone()
	stored.Author = nil
	m.posts[post.ID] = stored
	return nil
}

func (m *PostRepository) Delete(id int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *PostRepository) Count() (int, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.posts), nil
}

func (m *PostRepository) ListByAuthor(authorID int) ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	ids := make([]int, 0, len(m.posts))
	for id, post := range m.posts {
		if post.AuthorID == authorID {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	var posts []*models.Post
	for _, id := range ids {
		posts = append(posts, m.posts[id].Clone())
	}
	return posts, nil
}

func (m *PostRepository) CountByAuthor(authorID int) (int, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	count := 0
	for _, post := range m.posts {
		if post.AuthorID == authorID {
			count++
		}
	}
	return count, nil
}
