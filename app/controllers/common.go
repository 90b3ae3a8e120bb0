package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"postbox/app/services"
	"postbox/app/validation"
)

// writeJSON writes data with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeDetail writes the {"detail": ...} error body used across the API.
func writeDetail(w http.ResponseWriter, status int, detail interface{}) {
	writeJSON(w, status, map[string]interface{}{"detail": detail})
}

// writeServiceError maps a service error onto the HTTP contract:
// 422 with the violation list, 404 with an entity-specific message,
// 400 for referential and delete-guard failures, 500 otherwise.
func writeServiceError(w http.ResponseWriter, err error, notFoundDetail string) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		writeDetail(w, http.StatusUnprocessableEntity, verrs)
	case errors.Is(err, services.ErrNotFound):
		writeDetail(w, http.StatusNotFound, notFoundDetail)
	case errors.Is(err, services.ErrInvalidReference):
		writeDetail(w, http.StatusBadRequest, "Author not found")
	case errors.Is(err, services.ErrConflict):
		writeDetail(w, http.StatusBadRequest, "Cannot delete user with associated posts")
	default:
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}

// pathID extracts the numeric {id} route variable.
func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}

// pageParams parses the skip and limit query parameters, falling back
// to the 0/10 defaults on absent or malformed values.
func pageParams(r *http.Request) (int, int) {
	skip := 0
	if raw := r.URL.Query().Get("skip"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			skip = v
		}
	}
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}
	return skip, limit
}
