package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/kushalsrinivas/hyperthon/internal/media"
	"github.com/kushalsrinivas/hyperthon/internal/utils"
)

// GetMedia sert les octets d'une image uploadée
func (h *Handler) GetMedia(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	blob, data, err := h.Media.Get(id)
	if err != nil {
		if errors.Is(err, media.ErrNotFound) {
			utils.ErrorSimple(w, http.StatusNotFound, "media not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not read media", err)
		return
	}

	w.Header().Set("Content-Type", blob.ContentType)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
