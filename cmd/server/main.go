package main

import (
	"net/http"
	"os"

	"github.com/kushalsrinivas/hyperthon/internal/api"
	"github.com/kushalsrinivas/hyperthon/internal/config"
	"github.com/kushalsrinivas/hyperthon/internal/handler"
	"github.com/kushalsrinivas/hyperthon/internal/logger"
	"github.com/kushalsrinivas/hyperthon/internal/media"
	"github.com/kushalsrinivas/hyperthon/internal/middleware"
	"github.com/kushalsrinivas/hyperthon/internal/payment"
	"github.com/kushalsrinivas/hyperthon/internal/store"
	"github.com/kushalsrinivas/hyperthon/internal/ws"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// In-memory state: tout repart de zéro à chaque démarrage
	challenges := store.NewChallengeStore()
	logs := store.NewLogStore()
	mediaStore := media.NewStore()
	settler := payment.NewSimulatedSettler()

	// Live feed
	hub := ws.NewHub()
	go hub.Run()

	// Initialize routes
	h := handler.New(challenges, logs, mediaStore, hub, settler, cfg.MaxUploadBytes)
	router := api.SetupRouter(h)

	// Wrap router with CORS middleware
	handler := middleware.CORSMiddleware(cfg.AllowedOrigin)(router)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
