package services

import "github.com/prometheus/client_golang/prometheus"

var (
	recordsLogged = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "betterbite_records_logged_total",
			Help: "Consumption records logged, by goal type",
		},
		[]string{"goal_type"},
	)
	enrollmentsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "betterbite_enrollments_total",
			Help: "Challenge enrollments created",
		},
	)
	challengesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "betterbite_challenges_created_total",
			Help: "Custom challenges created",
		},
	)
	logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "betterbite_logins_total",
			Help: "Login attempts, by outcome",
		},
		[]string{"outcome"},
	)
)

// InitMetrics registers the domain counters. Call once from main.go.
func InitMetrics() {
	prometheus.MustRegister(recordsLogged)
	prometheus.MustRegister(enrollmentsCreated)
	prometheus.MustRegister(challengesCreated)
	prometheus.MustRegister(logins)
}
