package notify

import "github.com/prometheus/client_golang/prometheus"

var (
	deliveredCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "activities_api",
		Subsystem: "notify",
		Name:      "emails_delivered_total",
		Help:      "Number of enrollment emails accepted by the SMTP server.",
	})

	failedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "activities_api",
		Subsystem: "notify",
		Name:      "emails_failed_total",
		Help:      "Number of enrollment emails whose submission failed.",
	})

	skippedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "activities_api",
		Subsystem: "notify",
		Name:      "emails_skipped_total",
		Help:      "Number of enrollment emails skipped because SMTP is not configured.",
	})

	droppedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "activities_api",
		Subsystem: "notify",
		Name:      "emails_dropped_total",
		Help:      "Number of enrollment emails dropped because the queue was full.",
	})

	sendDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "activities_api",
		Subsystem: "notify",
		Name:      "send_duration_seconds",
		Help:      "Time spent submitting one enrollment email.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10),
	})
)

func init() {
	prometheus.MustRegister(deliveredCounter, failedCounter, skippedCounter, droppedCounter, sendDuration)
}
