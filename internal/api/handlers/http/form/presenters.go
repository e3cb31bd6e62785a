package form

import (
	"errors"
	"log/slog"
	"net/http"

	"fireReport/pkg/e"

	"github.com/goccy/go-json"
)

const reportFilename = "parte-emergencia.pdf"

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	l.Error("handler error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)

	switch {
	case errors.Is(err, e.ErrNotFound), errors.Is(err, e.ErrUnknownSection):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, e.ErrNotConfirmed):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "reset requires confirmation"})
	case errors.Is(err, e.ErrInvalidInput), errors.Is(err, e.ErrInvalidCoordinates):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, e.ErrHistoryEdge):
		h.writeJSON(w, http.StatusConflict, map[string]string{"error": "nothing to undo or redo"})
	case errors.Is(err, e.ErrConflict):
		h.writeJSON(w, http.StatusConflict, map[string]string{"error": "conflict"})
	case errors.Is(err, e.ErrDeadline):
		h.writeJSON(w, http.StatusGatewayTimeout, map[string]string{"error": "deadline exceeded"})
	default:
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

// handleGeoError maps geocoding failures. Provider errors are upstream faults.
func (h *Handler) handleGeoError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, e.ErrNoResults):
		h.log(r).Info("geocoding found nothing", slog.Any("error", err))
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "No se encontraron resultados"})
	case errors.Is(err, e.ErrInternal):
		h.log(r).Error("geocoding provider failed", slog.Any("error", err))
		h.writeJSON(w, http.StatusBadGateway, map[string]string{"error": "geocoding provider unavailable"})
	default:
		h.handleError(w, r, err)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
