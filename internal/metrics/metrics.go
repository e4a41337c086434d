package metrics

import (
	"time"

	"github.com/bnema/terabox-cookie-cli/internal/domain"
	"github.com/bnema/terabox-cookie-cli/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tbc"

// Recorder exports regeneration and login metrics to a Prometheus registry.
type Recorder struct {
	Regenerations      *prometheus.CounterVec
	RegenerateDuration *prometheus.HistogramVec
	LoginStates        *prometheus.CounterVec
	ForwardFailures    prometheus.Counter
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
}

var _ ports.Metrics = (*Recorder)(nil)

func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		Regenerations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "regenerations_total",
				Help:      "Cookie regenerations by outcome.",
			},
			[]string{"outcome"},
		),
		RegenerateDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "regeneration_duration_seconds",
				Help:      "Wall time of a cookie regeneration.",
				Buckets:   []float64{1, 2.5, 5, 10, 20, 30, 45, 60, 90, 120},
			},
			[]string{"outcome"},
		),
		LoginStates: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "login_state_transitions_total",
				Help:      "Login state machine transitions by target state.",
			},
			[]string{"state"},
		),
		ForwardFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "forward_failures_total",
				Help:      "Cookie strings the collector did not accept.",
			},
		),
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP API requests by route and status.",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP API latency by route.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

func (r *Recorder) ObserveRegeneration(outcome string, elapsed time.Duration) {
	r.Regenerations.WithLabelValues(outcome).Inc()
	r.RegenerateDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

func (r *Recorder) ObserveLoginState(state domain.LoginState) {
	r.LoginStates.WithLabelValues(string(state)).Inc()
}

func (r *Recorder) IncForwardFailure() {
	r.ForwardFailures.Inc()
}

func (r *Recorder) ObserveHTTP(method, route, status string, elapsed time.Duration) {
	r.HTTPRequests.WithLabelValues(method, route, status).Inc()
	r.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
