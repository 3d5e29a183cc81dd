package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/kushalsrinivas/hyperthon/internal/logger"
	"github.com/kushalsrinivas/hyperthon/internal/middleware"
	model "github.com/kushalsrinivas/hyperthon/internal/models"
	"github.com/kushalsrinivas/hyperthon/internal/utils"
)

// GetChallenges récupère tous les challenges publics
func (h *Handler) GetChallenges(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, h.Challenges.ListPublic())
}

// GetChallengeById récupère un challenge par son ID
func (h *Handler) GetChallengeById(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	challengeID := vars["id"]

	challenge, err := h.Challenges.Get(challengeID)
	if err != nil {
		storeError(w, err)
		return
	}

	utils.Success(w, challenge)
}

// CreateChallenge crée un nouveau challenge, le wallet courant en créateur
func (h *Handler) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	wallet, err := middleware.GetWalletFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "please connect your wallet first")
		return
	}

	var payload model.CreateChallengeRequest
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	challenge, err := h.Challenges.CreateChallenge(payload.Name, payload.Duration, payload.PrizePool, wallet)
	if err != nil {
		storeError(w, err)
		return
	}

	// Encaisser la mise simulée du créateur. Le settlement est un stub
	// détaché: son échec ne doit pas annuler la création.
	if h.Settler != nil && challenge.PrizePool > 0 {
		if settlementID, err := h.Settler.CollectFee(r.Context(), challenge.ID, wallet, challenge.PrizePool); err != nil {
			logger.Warning("fee collection failed for challenge %s: %v", challenge.ID, err)
		} else {
			logger.Info("collected creation fee, settlement %s", settlementID)
		}
	}

	h.Hub.Broadcast("challenge-created", challenge)
	utils.Success(w, challenge)
}

// JoinChallenge ajoute le wallet courant aux participants (idempotent)
func (h *Handler) JoinChallenge(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	challengeID := vars["id"]

	wallet, err := middleware.GetWalletFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "please connect your wallet first")
		return
	}

	challenge, err := h.Challenges.JoinChallenge(challengeID, wallet)
	if err != nil {
		storeError(w, err)
		return
	}

	h.Hub.Broadcast("challenge-joined", challenge)
	utils.Success(w, challenge)
}

// GetUserActiveChallenges récupère les challenges dont le wallet est participant
func (h *Handler) GetUserActiveChallenges(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	wallet := vars["wallet"]

	utils.Success(w, h.Challenges.ListActive(wallet))
}
