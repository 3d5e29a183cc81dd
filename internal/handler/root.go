package handler

import (
	"net/http"

	"github.com/kushalsrinivas/hyperthon/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func (h *Handler) RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "Hyperthon API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"challenges": []map[string]string{
				{"method": "GET", "path": "/challenges", "description": "Récupérer tous les challenges publics"},
				{"method": "GET", "path": "/challenges/{id}", "description": "Récupérer un challenge par ID"},
				{"method": "POST", "path": "/challenges", "description": "Créer un challenge (wallet requis)"},
				{"method": "POST", "path": "/challenges/{id}/join", "description": "Rejoindre un challenge (wallet requis)"},
				{"method": "GET", "path": "/users/{wallet}/challenges/active", "description": "Challenges actifs d'un wallet"},
			},
			"logs": []map[string]string{
				{"method": "GET", "path": "/challenges/{id}/logs", "description": "Check-ins d'un challenge"},
				{"method": "POST", "path": "/challenges/{id}/logs", "description": "Soumettre un check-in photo + légende (wallet requis)"},
				{"method": "GET", "path": "/challenges/{id}/leaderboard", "description": "Classement d'un challenge"},
			},
			"media": []map[string]string{
				{"method": "GET", "path": "/media/{id}", "description": "Image d'un check-in"},
			},
			"realtime": []map[string]string{
				{"method": "GET", "path": "/ws", "description": "Flux websocket des mutations"},
			},
			"health": []map[string]string{
				{"method": "GET", "path": "/health", "description": "Health check de l'API"},
			},
		},
		"documentation": map[string]string{
			"description": "API REST pour Hyperthon - challenges photo avec prize pool",
		},
	}

	utils.Success(w, routes)
}
