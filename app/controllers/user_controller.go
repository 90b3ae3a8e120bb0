package controllers

import (
	"encoding/json"
	"net/http"

	"postbox/app/models"
	"postbox/app/services"
)

// UserController handles HTTP requests for users
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// Index handles listing users with skip/limit paging
func (uc *UserController) Index(w http.ResponseWriter, r *http.Request) {
	skip, limit := pageParams(r)

	users, err := uc.userService.ListUsers(skip, limit)
	if err != nil {
		writeServiceError(w, err, "User not found")
		return
	}
	if users == nil {
		users = []*models.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

// Show handles retrieving a single user
func (uc *UserController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := uc.userService.GetUser(id)
	if err != nil {
		writeServiceError(w, err, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Create handles creating a new user
func (uc *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.UserInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	user, err := uc.userService.CreateUser(in)
	if err != nil {
		writeServiceError(w, err, "User not found")
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// Update handles a full replace of a user's fields
func (uc *UserController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var in models.UserInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	user, err := uc.userService.UpdateUser(id, in)
	if err != nil {
		writeServiceError(w, err, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Delete handles removing a user, subject to the delete policy
func (uc *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := uc.userService.DeleteUser(id); err != nil {
		writeServiceError(w, err, "User not found")
		return
	}
	writeDetail(w, http.StatusOK, "User deleted")
}
