package gormstore

import (
	"errors"
	"sync"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"postbox/app/models"
	"postbox/app/repositories"
)

// userRecord is the relational shape of a user.
type userRecord struct {
	ID    int    `gorm:"primaryKey"`
	Name  string `gorm:"not null"`
	Email string `gorm:"not null"`
	Age   int
}

func (userRecord) TableName() string { return "users" }

// postRecord is the relational shape of a post. The resolved author is
// never stored; AuthorID is the foreign key into users.
type postRecord struct {
	ID       int    `gorm:"primaryKey"`
	Title    string `gorm:"not null"`
	Content  string
	AuthorID int `gorm:"index;not null"`
}

func (postRecord) TableName() string { return "posts" }

// Store is the relational storage backend. IDs come from in-process
// sequences seeded from the current max id, so they only move forward
// within a process lifetime even when rows are deleted.
type Store struct {
	db *gorm.DB

	mu         sync.Mutex
	nextUserID int
	nextPostID int
}

// Open opens (or creates) a sqlite database at path.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return New(db)
}

// OpenPostgres connects to a postgres database with the given DSN.
func OpenPostgres(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return New(db)
}

// New wraps an already opened gorm DB, migrating the two tables and
// seeding the id sequences.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&userRecord{}, &postRecord{}); err != nil {
		return nil, err
	}

	s := &Store{db: db}
	if err := s.seedSequences(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) seedSequences() error {
	var maxUser, maxPost int
	if err := s.db.Model(&userRecord{}).Select("COALESCE(MAX(id), 0)").Scan(&maxUser).Error; err != nil {
		return err
	}
	if err := s.db.Model(&postRecord{}).Select("COALESCE(MAX(id), 0)").Scan(&maxPost).Error; err != nil {
		return err
	}
	s.nextUserID = maxUser + 1
	s.nextPostID = maxPost + 1
	return nil
}

func (s *Store) takeUserID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextUserID
	s.nextUserID++
	return id
}

func (s *Store) takePostID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextPostID
	s.nextPostID++
	return id
}

func (s *Store) Users() repositories.UserRepository { return &UserRepository{store: s} }
func (s *Store) Posts() repositories.PostRepository { return &PostRepository{store: s} }

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// UserRepository implements repositories.UserRepository over gorm.
type UserRepository struct {
	store *Store
}

func (r *UserRepository) Create(user *models.User) error {
	rec := userRecord{
		ID:    r.store.takeUserID(),
		Name:  user.Name,
		Email: user.Email,
		Age:   user.Age,
	}
	if err := r.store.db.Create(&rec).Error; err != nil {
		return err
	}
	user.ID = rec.ID
	return nil
}

func (r *UserRepository) GetByID(id int) (*models.User, error) {
	var rec userRecord
	err := r.store.db.First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec.toModel(), nil
}

func (r *UserRepository) List(limit, offset int) ([]*models.User, error) {
	var recs []userRecord
	err := r.store.db.Order("id").Offset(offset).Limit(limit).Find(&recs).Error
	if err != nil {
		return nil, err
	}
	var users []*models.User
	for _, rec := range recs {
		users = append(users, rec.toModel())
	}
	return users, nil
}

func (r *UserRepository) Update(user *models.User) error {
	rec := userRecord{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Age:   user.Age,
	}
	res := r.store.db.Model(&userRecord{}).Where("id = ?", user.ID).
		Updates(map[string]interface{}{"name": rec.Name, "email": rec.Email, "age": rec.Age})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(id int) error {
	res := r.store.db.Delete(&userRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *UserRepository) Count() (int, error) {
	var n int64
	if err := r.store.db.Model(&userRecord{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return int(n), nil
}

func (rec userRecord) toModel() *models.User {
	return &models.User{
		ID:    rec.ID,
		Name:  rec.Name,
		Email: rec.Email,
		Age:   rec.Age,
	}
}

// PostRepository implements repositories.PostRepository over gorm.
type PostRepository struct {
	store *Store
}

func (r *PostRepository) Create(post *models.Post) error {
	rec := postRecord{
		ID:       r.store.takePostID(),
		Title:    post.Title,
		Content:  post.Content,
		AuthorID: post.AuthorID,
	}
	if err := r.store.db.Create(&rec).Error; err != nil {
		return err
	}
	post.ID = rec.ID
	return nil
}

func (r *PostRepository) GetByID(id int) (*models.Post, error) {
	var rec postRecord
	err := r.store.db.First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec.toModel(), nil
}

func (r *PostRepository) List(limit, offset int) ([]*models.Post, error) {
	var recs []postRecord
	err := r.store.db.Order("id").Offset(offset).Limit(limit).Find(&recs).Error
	if err != nil {
		return nil, err
	}
	var posts []*models.Post
	for _, rec := range recs {
		posts = append(posts, rec.toModel())
	}
	return posts, nil
}

func (r *PostRepository) Update(post *models.Post) error {
	res := r.store.db.Model(&postRecord{}).Where("id = ?", post.ID).
		Updates(map[string]interface{}{"title": post.Title, "content": post.Content, "author_id": post.AuthorID})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *PostRepository) Delete(id int) error {
	res := r.store.db.Delete(&postRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *PostRepository) Count() (int, error) {
	var n int64
	if err := r.store.db.Model(&postRecord{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return int(n), nil
}

func (r *PostRepository) ListByAuthor(authorID int) ([]*models.Post, error) {
	var recs []postRecord
	err := r.store.db.Order("id").Find(&recs, "author_id = ?", authorID).Error
	if err != nil {
		return nil, err
	}
	var posts []*models.Post
	for _, rec := range recs {
		posts = append(posts, rec.toModel())
	}
	return posts, nil
}

func (r *PostRepository) CountByAuthor(authorID int) (int, error) {
	var n int64
	err := r.store.db.Model(&postRecord{}).Where("author_id = ?", authorID).Count(&n).Error
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (rec postRecord) toModel() *models.Post {
	return &models.Post{
		ID:       rec.ID,
		Title:    rec.Title,
		Content:  rec.Content,
		AuthorID: rec.AuthorID,
	}
}
