package system

import (
	"net/http"

	"log/slog"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handler struct {
	logger *slog.Logger
}

func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

func (h *Handler) SystemHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Metrics serves the default Prometheus registry.
func (h *Handler) Metrics() http.Handler {
	return promhttp.Handler()
}
