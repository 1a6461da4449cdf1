package api

import (
	"net/http"
)

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	writeJson(w, h.Engine.ValidateConfiguration(r.Context()))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	writeJson(w, h.Engine.State())
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	h.Engine.Reset()

	w.WriteHeader(http.StatusNoContent)
}
