package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

type Handlers struct {
	Challenges    *ChallengeHandler
	Users         *UserHandler
	Recipes       *RecipeHandler
	Notifications *NotificationHandler
}

// Register mounts the API on api, normally the /api/v1 subrouter. session
// guards the routes that need a logged in user; optional only resolves one.
func (hs *Handlers) Register(api *mux.Router, session, optional func(http.Handler) http.Handler) {
	api.HandleFunc("/users/register", hs.Users.Register).Methods("POST")
	api.HandleFunc("/users/login", hs.Users.Login).Methods("POST")

	api.HandleFunc("/recipes", hs.Recipes.GetRecipes).Methods("GET")
	api.HandleFunc("/recipes/tags", hs.Recipes.GetTags).Methods("GET")

	api.HandleFunc("/challenges", hs.Challenges.ListChallenges).Methods("GET")
	api.HandleFunc("/challenges/{id}/progress", hs.Challenges.GetProgress).Methods("GET")
	api.HandleFunc("/challenges/{id}/records", hs.Challenges.GetRecords).Methods("GET")
	api.HandleFunc("/challenges/{id}/calendar", hs.Challenges.GetCalendar).Methods("GET")
	api.Handle("/challenges/{id}", optional(http.HandlerFunc(hs.Challenges.GetChallenge))).Methods("GET")

	// -------------------------------------------------------------------------
	// SESSION ROUTES (REQUIRE A LOGGED IN USER)
	// -------------------------------------------------------------------------
	protected := api.PathPrefix("").Subrouter()
	protected.Use(session)

	protected.HandleFunc("/users/logout", hs.Users.Logout).Methods("POST")
	protected.HandleFunc("/user", hs.Users.GetProfile).Methods("GET")
	protected.HandleFunc("/user", hs.Users.UpdateProfile).Methods("PUT")
	protected.HandleFunc("/user/challenges", hs.Challenges.GetUserChallenges).Methods("GET")

	protected.HandleFunc("/challenges", hs.Challenges.CreateChallenge).Methods("POST")
	protected.HandleFunc("/challenges/{id}/enroll", hs.Challenges.Enroll).Methods("POST")
	protected.HandleFunc("/challenges/{id}/records", hs.Challenges.AddRecord).Methods("POST")

	protected.HandleFunc("/notifications", hs.Notifications.GetNotifications).Methods("GET")
	protected.HandleFunc("/notifications/unread-count", hs.Notifications.GetUnreadCount).Methods("GET")
	protected.HandleFunc("/notifications/{id}/read", hs.Notifications.MarkAsRead).Methods("PUT")
}
