// Package metrics holds the Prometheus collectors of the form service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	namespace = "parte"

	storeUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "updates_total",
			Help:      "Total number of section updates applied to the form store",
		},
		[]string{"section"},
	)

	storeSavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "saves_total",
			Help:      "Total number of durable saves by result",
		},
		[]string{"result"},
	)

	storeHistoryMovesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "history_moves_total",
			Help:      "Undo and redo requests by direction and result",
		},
		[]string{"direction", "result"},
	)

	validationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "validation",
			Name:      "runs_total",
			Help:      "Document validations by outcome",
		},
		[]string{"result"},
	)

	reportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "report",
			Name:      "generated_total",
			Help:      "PDF report generations by outcome",
		},
		[]string{"result"},
	)

	geocodeRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "geocode",
			Name:      "requests_total",
			Help:      "Geocoding provider requests by kind and result",
		},
		[]string{"kind", "result"},
	)

	geocodeRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "geocode",
			Name:      "request_duration_seconds",
			Help:      "Duration of geocoding provider requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"kind"},
	)
)

func result(ok bool) string {
	if ok {
		return "ok"
	}
	return "error"
}

func RecordUpdate(section string) {
	storeUpdatesTotal.WithLabelValues(section).Inc()
}

func RecordSave(ok bool) {
	storeSavesTotal.WithLabelValues(result(ok)).Inc()
}

func RecordHistoryMove(direction string, moved bool) {
	r := "moved"
	if !moved {
		r = "edge"
	}
	storeHistoryMovesTotal.WithLabelValues(direction, r).Inc()
}

func RecordValidation(valid bool) {
	r := "valid"
	if !valid {
		r = "invalid"
	}
	validationsTotal.WithLabelValues(r).Inc()
}

// RecordReport takes one of "ok", "invalid" or "error".
func RecordReport(outcome string) {
	reportsTotal.WithLabelValues(outcome).Inc()
}

// RecordGeocode takes kind "search" or "reverse" and outcome "ok", "empty" or "error".
func RecordGeocode(kind, outcome string, took time.Duration) {
	geocodeRequestsTotal.WithLabelValues(kind, outcome).Inc()
	geocodeRequestDuration.WithLabelValues(kind).Observe(took.Seconds())
}
