// Package metrics exposes Prometheus instrumentation for the send workflow,
// the mail dispatcher and the HTTP layer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Send outcomes recorded by the orchestrator.
const (
	SendSuccess        = "success"
	SendGroupNotFound  = "group_not_found"
	SendRecordFailed   = "record_failed"
	SendInternalFailed = "internal_error"
)

// Dispatch outcomes recorded by the dispatcher's background submission.
const (
	DispatchAccepted = "accepted"
	DispatchRejected = "rejected"
	DispatchDropped  = "dropped"
)

var (
	// sendTotal counts executeSend calls by outcome.
	sendTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bulkmail",
			Subsystem: "send",
			Name:      "requests_total",
			Help:      "Number of send workflow executions by outcome",
		},
		[]string{"outcome"},
	)

	// sendRecipients observes group sizes at dispatch time.
	sendRecipients = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "bulkmail",
			Subsystem: "send",
			Name:      "recipients",
			Help:      "Number of recipients per dispatched message",
			Buckets:   []float64{0, 1, 5, 10, 50, 100, 500, 1000},
		},
	)

	// dispatchTotal counts transport submissions.
	// Labels:
	// - transport: "sendgrid", "ses", "resend" or "log"
	// - outcome:   "accepted", "rejected" or "dropped"
	dispatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bulkmail",
			Subsystem: "dispatch",
			Name:      "submissions_total",
			Help:      "Outbound transport submissions by transport and outcome",
		},
		[]string{"transport", "outcome"},
	)

	// dispatchDuration tracks how long a transport takes to accept or reject.
	dispatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "bulkmail",
			Subsystem: "dispatch",
			Name:      "submission_duration_seconds",
			Help:      "Duration of outbound transport submissions",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"transport"},
	)

	// dispatchInFlight tracks submissions that have not yet returned.
	dispatchInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "bulkmail",
			Subsystem: "dispatch",
			Name:      "in_flight",
			Help:      "Submissions handed to the transport and not yet finished",
		},
	)

	// authOutcomes counts login and token verification results.
	authOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bulkmail",
			Subsystem: "auth",
			Name:      "outcomes_total",
			Help:      "Authentication outcomes by action and result",
		},
		[]string{"action", "result"},
	)
)

// IncSend records the outcome of one send workflow execution.
func IncSend(outcome string) { sendTotal.WithLabelValues(outcome).Inc() }

// ObserveRecipients records the recipient count of a dispatched message.
func ObserveRecipients(n int) { sendRecipients.Observe(float64(n)) }

// IncDispatch records a finished transport submission.
func IncDispatch(transport, outcome string) {
	dispatchTotal.WithLabelValues(transport, outcome).Inc()
}

// ObserveDispatchDuration records how long a submission took.
func ObserveDispatchDuration(transport string, seconds float64) {
	dispatchDuration.WithLabelValues(transport).Observe(seconds)
}

// DispatchStarted and DispatchFinished bracket one background submission.
func DispatchStarted()  { dispatchInFlight.Inc() }
func DispatchFinished() { dispatchInFlight.Dec() }

// IncAuthOutcome records a login/verify result ("success" or "failure").
func IncAuthOutcome(action, result string) {
	authOutcomes.WithLabelValues(action, result).Inc()
}
