package models

// User represents a registered account that can author posts.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

// Post represents a piece of content written by a user. Author is
// resolved from AuthorID when the post is read; it is never persisted.
type Post struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	AuthorID int    `json:"author_id"`
	Author   *User  `json:"author,omitempty"`
}

// UserInput carries the writable user fields for create and
// full-replace update requests.
type UserInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

// PostInput carries the writable post fields for create requests.
type PostInput struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	AuthorID int    `json:"author_id"`
}

// PostPatch is a partial update: nil fields are left unchanged. A
// field omitted from the request JSON decodes to nil, so omitted means
// unchanged; an explicit null is indistinguishable from omitted.
type PostPatch struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	AuthorID *int    `json:"author_id"`
}
