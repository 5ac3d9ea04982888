package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	EventsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "events_created_total", Help: "Total events created"},
	)
	EventsUpdated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "events_updated_total", Help: "Total events updated"},
	)
	EventsDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "events_deleted_total", Help: "Total events deleted individually"},
	)
	EventsCleaned = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "events_cleaned_total", Help: "Total past events removed by cleanup"},
	)
	Logins = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "logins_total", Help: "Total successful logins"},
	)
)

func Register() {
	prometheus.MustRegister(EventsCreated, EventsUpdated, EventsDeleted, EventsCleaned, Logins)
}
