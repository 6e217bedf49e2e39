// Package metrics holds Prometheus instruments that are used across the
// site server.  All collectors are registered with the global registry, so
// importing this package in main.go is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	FormSubmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "form_submissions_total",
			Help: "Form submissions received, by form and outcome.",
		},
		[]string{"form", "outcome"},
	)

	ValidationFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "form_validation_failures_total",
			Help: "Individual validation rule failures, by form.",
		},
		[]string{"form"},
	)

	CateringQuotesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "catering_quotes_total",
			Help: "Catering cost estimates produced.",
		})

	NotificationsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "notifications_active",
			Help: "Notifications currently displayed in the stack.",
		})

	MenuSearchesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "menu_searches_total",
			Help: "Menu search queries served.",
		})
)

func init() {
	prometheus.MustRegister(
		FormSubmissionsTotal,
		ValidationFailuresTotal,
		CateringQuotesTotal,
		NotificationsActive,
		MenuSearchesTotal,
	)
}
