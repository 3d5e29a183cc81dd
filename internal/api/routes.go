package api

import (
	"net/http"

	"github.com/fatih/color"
	"github.com/gorilla/mux"
	"github.com/kushalsrinivas/hyperthon/internal/handler"
	"github.com/kushalsrinivas/hyperthon/internal/middleware"
	"github.com/kushalsrinivas/hyperthon/internal/utils"
)

func SetupRouter(h *handler.Handler) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.OptionalWallet)

	authenticatedRoutes := r.PathPrefix("/").Subrouter()
	authenticatedRoutes.Use(middleware.WalletAuth)
	authenticatedRoutes.Use(middleware.LoggerMiddleware)

	// Root - API documentation
	r.HandleFunc("/", h.RootHandler).Methods(http.MethodGet)

	// Challenges
	r.HandleFunc("/challenges", h.GetChallenges).Methods(http.MethodGet)
	r.HandleFunc("/challenges/{id}", h.GetChallengeById).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/challenges", h.CreateChallenge).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/challenges/{id}/join", h.JoinChallenge).Methods(http.MethodPost)

	// User challenges
	r.HandleFunc("/users/{wallet}/challenges/active", h.GetUserActiveChallenges).Methods(http.MethodGet)

	// Logs / check-ins
	r.HandleFunc("/challenges/{id}/logs", h.GetChallengeLogs).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/challenges/{id}/logs", h.SubmitChallengeLog).Methods(http.MethodPost)

	// Challenge leaderboard
	r.HandleFunc("/challenges/{id}/leaderboard", h.GetChallengeLeaderboard).Methods(http.MethodGet)

	// Media
	r.HandleFunc("/media/{id}", h.GetMedia).Methods(http.MethodGet)

	// Live feed
	r.HandleFunc("/ws", h.Hub.ServeWS)

	// Health check
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
