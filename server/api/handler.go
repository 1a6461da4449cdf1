package api

import (
	"encoding/json"
	"net/http"

	"github.com/adrianliechti/flowgenius/config"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	*config.Config
}

func New(cfg *config.Config) (*Handler, error) {
	h := &Handler{
		Config: cfg,
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Post("/backgrounds", h.handleBackground)

	r.Get("/validate", h.handleValidate)

	r.Get("/state", h.handleState)
	r.Delete("/state", h.handleReset)
}

func writeJson(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	text := http.StatusText(code)

	if err != nil {
		text = err.Error()
	}

	json.NewEncoder(w).Encode(ErrorResponse{
		Error: text,
	})
}
