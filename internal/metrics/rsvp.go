package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Result label values.
const (
	ResultOK       = "ok"
	ResultInvalid  = "invalid"
	ResultClosed   = "closed"
	ResultError    = "error"
	ResultSent     = "sent"
	ResultFailed   = "failed"
	ResultSkipped  = "skipped"
	ResultNotFound = "not_found"
)

// RSVPMetrics records submission and confirmation outcomes. A nil
// *RSVPMetrics is valid and records nothing.
type RSVPMetrics struct {
	submissions   *prometheus.CounterVec
	confirmations *prometheus.CounterVec
	sendDuration  *prometheus.HistogramVec
}

// NewRSVPMetrics registers the RSVP metrics on the provided registerer.
func NewRSVPMetrics(reg prometheus.Registerer) *RSVPMetrics {
	if reg == nil {
		return &RSVPMetrics{}
	}
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rsvp_submissions_total",
		Help: "RSVP submissions by result.",
	}, []string{"result"})
	confirmations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rsvp_confirmations_total",
		Help: "Confirmation trigger invocations by result.",
	}, []string{"result"})
	sendDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rsvp_confirmation_send_seconds",
		Help:    "Duration of confirmation email sends in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"result"})
	reg.MustRegister(submissions, confirmations, sendDuration)
	return &RSVPMetrics{
		submissions:   submissions,
		confirmations: confirmations,
		sendDuration:  sendDuration,
	}
}

// IncSubmission counts one submission with the given result.
func (m *RSVPMetrics) IncSubmission(result string) {
	if m == nil || m.submissions == nil {
		return
	}
	m.submissions.WithLabelValues(normalizeLabel(result)).Inc()
}

// IncConfirmation counts one confirmation trigger outcome.
func (m *RSVPMetrics) IncConfirmation(result string) {
	if m == nil || m.confirmations == nil {
		return
	}
	m.confirmations.WithLabelValues(normalizeLabel(result)).Inc()
}

// ObserveSend records how long a send attempt took.
func (m *RSVPMetrics) ObserveSend(result string, d time.Duration) {
	if m == nil || m.sendDuration == nil {
		return
	}
	m.sendDuration.WithLabelValues(normalizeLabel(result)).Observe(d.Seconds())
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
