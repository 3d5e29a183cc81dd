package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/kushalsrinivas/hyperthon/internal/middleware"
	model "github.com/kushalsrinivas/hyperthon/internal/models"
	"github.com/kushalsrinivas/hyperthon/internal/utils"
)

// GetChallengeLogs récupère les check-ins d'un challenge, ordre chronologique
func (h *Handler) GetChallengeLogs(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	challengeID := vars["id"]

	if _, err := h.Challenges.Get(challengeID); err != nil {
		storeError(w, err)
		return
	}

	utils.Success(w, h.Logs.ListLogs(challengeID))
}

// SubmitChallengeLog enregistre un check-in photo + légende (multipart)
func (h *Handler) SubmitChallengeLog(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	challengeID := vars["id"]

	wallet, err := middleware.GetWalletFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "please connect your wallet first")
		return
	}

	if _, err := h.Challenges.Get(challengeID); err != nil {
		storeError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.MaxUploadBytes); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	caption := r.FormValue("caption")
	if strings.TrimSpace(caption) == "" {
		// Valider avant de stocker le blob: une commande échouée ne doit
		// laisser aucune trace, pas même une image orpheline.
		utils.ErrorSimple(w, http.StatusBadRequest, "please provide both an image and a caption")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "please provide both an image and a caption")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not read image", err)
		return
	}

	blob, err := h.Media.Put(data, header.Header.Get("Content-Type"))
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "please provide both an image and a caption")
		return
	}

	entry, err := h.Logs.SubmitLog(challengeID, wallet, model.ImageRef{ID: blob.ID, URL: blob.URL}, caption)
	if err != nil {
		storeError(w, err)
		return
	}

	// Le front rafraîchit logs et leaderboard sur cet événement
	h.Hub.Broadcast("log-submitted", map[string]interface{}{
		"log":         entry,
		"leaderboard": h.Logs.Leaderboard(challengeID),
	})

	utils.Success(w, entry)
}

// GetChallengeLeaderboard calcule le classement du challenge
func (h *Handler) GetChallengeLeaderboard(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	challengeID := vars["id"]

	if _, err := h.Challenges.Get(challengeID); err != nil {
		storeError(w, err)
		return
	}

	utils.Success(w, h.Logs.Leaderboard(challengeID))
}
