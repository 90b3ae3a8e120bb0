package gormstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"postbox/app/models"
	"postbox/app/repositories"
)

func setupStore(t *testing.T) *Store {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	store, err := New(db)
	require.NoError(t, err)
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

func TestGormUserRepository(t *testing.T) {
	store := setupStore(t)
	repo := store.Users()

	t.Run("create and get user", func(t *testing.T) {
		user := &models.User{Name: "Alice", Email: "alice@example.com", Age: 30}
		require.NoError(t, repo.Create(user))
		assert.Equal(t, 1, user.ID)

		got, err := repo.GetByID(user.ID)
		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("get unknown id", func(t *testing.T) {
		_, err := repo.GetByID(9999)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("update user", func(t *testing.T) {
		user := &models.User{Name: "Bob", Email: "bob@example.com", Age: 25}
		require.NoError(t, repo.Create(user))

		user.Age = 26
		require.NoError(t, repo.Update(user))

		got, err := repo.GetByID(user.ID)
		require.NoError(t, err)
		assert.Equal(t, 26, got.Age)
	})

	t.Run("update unknown id", func(t *testing.T) {
		err := repo.Update(&models.User{ID: 9999, Name: "Nobody", Email: "n@example.com", Age: 1})
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("ids are not reused after delete", func(t *testing.T) {
		user := &models.User{Name: "Carol", Email: "carol@example.com", Age: 35}
		require.NoError(t, repo.Create(user))
		lastID := user.ID

		require.NoError(t, repo.Delete(lastID))

		next := &models.User{Name: "Dave", Email: "dave@example.com", Age: 40}
		require.NoError(t, repo.Create(next))
		assert.Equal(t, lastID+1, next.ID)
	})

	t.Run("delete unknown id", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(9999), repositories.ErrNotFound)
	})

	t.Run("list and count", func(t *testing.T) {
		users, err := repo.List(10, 0)
		require.NoError(t, err)
		require.Len(t, users, 3)
		assert.Equal(t, "Alice", users[0].Name)

		page, err := repo.List(1, 1)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, "Bob", page[0].Name)

		n, err := repo.Count()
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})
}

func TestGormPostRepository(t *testing.T) {
	store := setupStore(t)
	users := store.Users()
	repo := store.Posts()

	alice := &models.User{Name: "Alice", Email: "alice@example.com", Age: 30}
	require.NoError(t, users.Create(alice))

	t.Run("create and get post", func(t *testing.T) {
		post := &models.Post{Title: "Hello", Content: "Some content here", AuthorID: alice.ID}
		require.NoError(t, repo.Create(post))
		assert.Equal(t, 1, post.ID)

		got, err := repo.GetByID(post.ID)
		require.NoError(t, err)
		assert.Equal(t, "Hello", got.Title)
		assert.Equal(t, alice.ID, got.AuthorID)
		assert.Nil(t, got.Author)
	})

	t.Run("count by author", func(t *testing.T) {
		require.NoError(t, repo.Create(&models.Post{Title: "Second", Content: "More content here", AuthorID: alice.ID}))

		n, err := repo.CountByAuthor(alice.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		n, err = repo.CountByAuthor(9999)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("list by author", func(t *testing.T) {
		posts, err := repo.ListByAuthor(alice.ID)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, 1, posts[0].ID)
		assert.Equal(t, 2, posts[1].ID)
	})

	t.Run("update post", func(t *testing.T) {
		post := &models.Post{ID: 1, Title: "Changed", Content: "Changed content here", AuthorID: alice.ID}
		require.NoError(t, repo.Update(post))

		got, err := repo.GetByID(1)
		require.NoError(t, err)
		assert.Equal(t, "Changed", got.Title)
	})

	t.Run("delete post", func(t *testing.T) {
		require.NoError(t, repo.Delete(1))
		_, err := repo.GetByID(1)
		assert.ErrorIs(t, err, repositories.ErrNotFound)

		assert.ErrorIs(t, repo.Delete(1), repositories.ErrNotFound)
	})
}

func TestOpenCreatesFile(t *testing.T) {
	store, err := Open(t.TempDir() + "/records.db")
	require.NoError(t, err)
	defer store.Close()

	user := &models.User{Name: "Alice", Email: "alice@example.com", Age: 30}
	require.NoError(t, store.Users().Create(user))
	assert.Equal(t, 1, user.ID)
}
