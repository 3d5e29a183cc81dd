package handler

import (
	"errors"
	"net/http"

	"github.com/kushalsrinivas/hyperthon/internal/media"
	"github.com/kushalsrinivas/hyperthon/internal/payment"
	"github.com/kushalsrinivas/hyperthon/internal/store"
	"github.com/kushalsrinivas/hyperthon/internal/utils"
	"github.com/kushalsrinivas/hyperthon/internal/ws"
)

// Handler porte les stores et collaborateurs; les routes sont des méthodes.
// Tout passe par cette struct, pas de singleton global.
type Handler struct {
	Challenges *store.ChallengeStore
	Logs       *store.LogStore
	Media      *media.Store
	Hub        *ws.Hub
	Settler    payment.Settler

	MaxUploadBytes int64
}

func New(challenges *store.ChallengeStore, logs *store.LogStore, mediaStore *media.Store, hub *ws.Hub, settler payment.Settler, maxUploadBytes int64) *Handler {
	return &Handler{
		Challenges:     challenges,
		Logs:           logs,
		Media:          mediaStore,
		Hub:            hub,
		Settler:        settler,
		MaxUploadBytes: maxUploadBytes,
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}

// storeError traduit les erreurs du store en status HTTP
func storeError(w http.ResponseWriter, err error) {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.ErrorSimple(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, store.ErrNotFound):
		utils.ErrorSimple(w, http.StatusNotFound, "challenge not found")
	default:
		utils.Error(w, http.StatusInternalServerError, "unexpected error", err)
	}
}
