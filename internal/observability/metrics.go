package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_api",
		Subsystem: "enrollment",
		Name:      "signups_total",
		Help:      "Number of successful activity signups, labeled by activity.",
	}, []string{"activity"})
	unregisterCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_api",
		Subsystem: "enrollment",
		Name:      "unregistrations_total",
		Help:      "Number of successful activity unregistrations, labeled by activity.",
	}, []string{"activity"})
	participantsGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "activities_api",
		Subsystem: "enrollment",
		Name:      "participants",
		Help:      "Current number of participants per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(signupCounter, unregisterCounter, participantsGauge)
}

// RecordSignup updates enrollment metrics after a successful signup.
func RecordSignup(activity string, participants int) {
	signupCounter.WithLabelValues(activity).Inc()
	participantsGauge.WithLabelValues(activity).Set(float64(participants))
}

// RecordUnregistration updates enrollment metrics after a successful unregistration.
func RecordUnregistration(activity string, participants int) {
	unregisterCounter.WithLabelValues(activity).Inc()
	participantsGauge.WithLabelValues(activity).Set(float64(participants))
}

// RecordRoster sets the participants gauge without counting an enrollment change.
// Used once at startup to publish the seeded roster sizes.
func RecordRoster(activity string, participants int) {
	participantsGauge.WithLabelValues(activity).Set(float64(participants))
}
