package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"postbox/app/controllers"
	"postbox/app/middleware"
	"postbox/app/services"
)

// SetupRoutes defines the application's routes and returns a router.
func SetupRoutes(userService *services.UserService, postService *services.PostService) *mux.Router {
	router := mux.NewRouter().StrictSlash(true)

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.ContentTypeJSON)

	userController := controllers.NewUserController(userService)
	postController := controllers.NewPostController(postService)

	// User endpoints
	users := router.PathPrefix("/users").Subrouter()
	users.HandleFunc("", userController.Index).Methods("GET")
	users.HandleFunc("", userController.Create).Methods("POST")
	users.HandleFunc("/{id:[0-9]+}", userController.Show).Methods("GET")
	users.HandleFunc("/{id:[0-9]+}", userController.Update).Methods("PUT")
	users.HandleFunc("/{id:[0-9]+}", userController.Delete).Methods("DELETE")

	// Post endpoints
	posts := router.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("", postController.Create).Methods("POST")
	posts.HandleFunc("/search", postController.Search).Methods("GET")
	posts.HandleFunc("/{id:[0-9]+}", postController.Show).Methods("GET")
	posts.HandleFunc("/{id:[0-9]+}", postController.Update).Methods("PUT")
	posts.HandleFunc("/{id:[0-9]+}", postController.Delete).Methods("DELETE")

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
