package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	workoutLoggedGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "strongsight",
		Subsystem: "persistence",
		Name:      "last_workout_logged_timestamp_seconds",
		Help:      "Unix timestamp of the most recent workout persisted to the store.",
	})
	workoutsLoggedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "strongsight",
		Subsystem: "persistence",
		Name:      "workouts_logged_total",
		Help:      "Number of workout records persisted since process start.",
	})
	profilesCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "strongsight",
		Subsystem: "persistence",
		Name:      "profiles_created_total",
		Help:      "Number of user profiles created since process start.",
	})
)

func init() {
	prometheus.MustRegister(workoutLoggedGauge, workoutsLoggedTotal, profilesCreatedTotal)
}

// RecordWorkoutLogged updates the workout persistence watermark.
func RecordWorkoutLogged(ts time.Time) {
	workoutsLoggedTotal.Inc()
	if ts.IsZero() {
		return
	}
	workoutLoggedGauge.Set(float64(ts.Unix()))
}

// RecordProfileCreated counts a completed signup.
func RecordProfileCreated() {
	profilesCreatedTotal.Inc()
}
