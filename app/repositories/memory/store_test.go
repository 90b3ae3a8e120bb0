package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postbox/app/models"
	"postbox/app/repositories"
)

func TestUserRepository(t *testing.T) {
	t.Run("create assigns increasing ids", func(t *testing.T) {
		repo := NewUserRepository()

		first := &models.User{Name: "Alice", Email: "alice@example.com", Age: 30}
		require.NoError(t, repo.Create(first))
		assert.Equal(t, 1, first.ID)

		second := &models.User{Name: "Bob", Email: "bob@example.com", Age: 25}
		require.NoError(t, repo.Create(second))
		assert.Equal(t, 2, second.ID)
	})

	t.Run("ids are not reused after delete", func(t *testing.T) {
		repo := NewUserRepository()

		for _, name := range []string{"Alice", "Bob"} {
			require.NoError(t, repo.Create(&models.User{Name: name, Email: name + "@example.com", Age: 30}))
		}
		require.NoError(t, repo.Delete(2))

		third := &models.User{Name: "Carol", Email: "carol@example.com", Age: 35}
		require.NoError(t, repo.Create(third))
		assert.Equal(t, 3, third.ID)
	})

	t.Run("get returns stored record", func(t *testing.T) {
		repo := NewUserRepository()
		user := &models.User{Name: "Alice", Email: "alice@example.com", Age: 30}
		require.NoError(t, repo.Create(user))

		got, err := repo.GetByID(user.ID)
		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("get unknown id", func(t *testing.T) {
		repo := NewUserRepository()
		_, err := repo.GetByID(42)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("stored records are isolated from callers", func(t *testing.T) {
		repo := NewUserRepository()
		user := &models.User{Name: "Alice", Email: "alice@example.com", Age: 30}
		require.NoError(t, repo.Create(user))

		got, err := repo.GetByID(user.ID)
		require.NoError(t, err)
		got.Name = "Mallory"

		again, err := repo.GetByID(user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alice", again.Name)
	})

	t.Run("update replaces fields", func(t *testing.T) {
		repo := NewUserRepository()
		user := &models.User{Name: "Alice", Email: "alice@example.com", Age: 30}
		require.NoError(t, repo.Create(user))

		user.Name = "Alicia"
		require.NoError(t, repo.Update(user))

		got, err := repo.GetByID(user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alicia", got.Name)
	})

	t.Run("update unknown id", func(t *testing.T) {
		repo := NewUserRepository()
		err := repo.Update(&models.User{ID: 42, Name: "Nobody", Email: "n@example.com", Age: 1})
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("delete unknown id", func(t *testing.T) {
		repo := NewUserRepository()
		assert.ErrorIs(t, repo.Delete(42), repositories.ErrNotFound)
	})

	t.Run("list pages in id order", func(t *testing.T) {
		repo := NewUserRepository()
		for i := 0; i < 5; i++ {
			require.NoError(t, repo.Create(&models.User{Name: "User", Email: "u@example.com", Age: 20 + i}))
		}

		page, err := repo.List(2, 1)
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, 2, page[0].ID)
		assert.Equal(t, 3, page[1].ID)

		all, err := repo.List(10, 0)
		require.NoError(t, err)
		assert.Len(t, all, 5)

		empty, err := repo.List(10, 99)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("count", func(t *testing.T) {
		repo := NewUserRepository()
		n, err := repo.Count()
		require.NoError(t, err)
		assert.Equal(t, 0, n)

		require.NoError(t, repo.Create(&models.User{Name: "Alice", Email: "a@example.com", Age: 30}))
		n, err = repo.Count()
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})
}

func TestPostRepository(t *testing.T) {
	t.Run("create strips resolved author", func(t *testing.T) {
		repo := NewPostRepository()
		post := &models.Post{
			Title:    "Hello",
			Content:  "Some content here",
			AuthorID: 1,
			Author:   &models.User{ID: 1, Name: "Alice"},
		}
		require.NoError(t, repo.Create(post))

		got, err := repo.GetByID(post.ID)
		require.NoError(t, err)
		assert.Nil(t, got.Author)
		assert.Equal(t, 1, got.AuthorID)
	})

	t.Run("list by author", func(t *testing.T) {
		repo := NewPostRepository()
		for i := 0; i < 3; i++ {
			require.NoError(t, repo.Create(&models.Post{Title: "By one", Content: "Content here", AuthorID: 1}))
		}
		require.NoError(t, repo.Create(&models.Post{Title: "By two", Content: "Content here", AuthorID: 2}))

		posts, err := repo.ListByAuthor(1)
		require.NoError(t, err)
		require.Len(t, posts, 3)
		for _, post := range posts {
			assert.Equal(t, 1, post.AuthorID)
		}

		n, err := repo.CountByAuthor(1)
		require.NoError(t, err)
		assert.Equal(t, 3, n)

		n, err = repo.CountByAuthor(99)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("delete removes record", func(t *testing.T) {
		repo := NewPostRepository()
		post := &models.Post{Title: "Hello", Content: "Some content here", AuthorID: 1}
		require.NoError(t, repo.Create(post))

		require.NoError(t, repo.Delete(post.ID))
		_, err := repo.GetByID(post.ID)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}

func TestStore(t *testing.T) {
	store := NewStore()
	assert.NotNil(t, store.Users())
	assert.NotNil(t, store.Posts())
	assert.NoError(t, store.Close())
}
