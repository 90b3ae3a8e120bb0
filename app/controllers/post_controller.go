package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"postbox/app/models"
	"postbox/app/services"
)

// PostController handles HTTP requests for posts
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// Index handles listing posts with skip/limit paging
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	skip, limit := pageParams(r)

	posts, err := pc.postService.ListPosts(skip, limit)
	if err != nil {
		writeServiceError(w, err, "Post not found")
		return
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	writeJSON(w, http.StatusOK, posts)
}

// Show handles retrieving a single post with its author resolved
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	post, err := pc.postService.GetPost(id)
	if err != nil {
		writeServiceError(w, err, "Post not found")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// Search handles the id-filter lookup. A missing post_id parameter is
// a 400, distinct from the 404 for an unknown id.
func (pc *PostController) Search(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("post_id")
	if raw == "" {
		writeDetail(w, http.StatusBadRequest, "No post_id provided")
		return
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	post, err := pc.postService.GetPost(id)
	if err != nil {
		writeServiceError(w, err, "Post not found")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.PostInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	post, err := pc.postService.CreatePost(in)
	if err != nil {
		writeServiceError(w, err, "Post not found")
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

// Update handles a partial patch of a post's fields
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	var patch models.PostPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	post, err := pc.postService.UpdatePost(id, patch)
	if err != nil {
		writeServiceError(w, err, "Post not found")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// Delete handles removing a post
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	if err := pc.postService.DeletePost(id); err != nil {
		writeServiceError(w, err, "Post not found")
		return
	}
	writeDetail(w, http.StatusOK, "Post deleted")
}
