package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Run outcomes recorded by ObserveRun.
const (
	OutcomeCompleted = "completed"
	OutcomeCancelled = "cancelled"
	OutcomeFailed    = "failed"
)

const (
	namespace       = "stepviz"
	shutdownTimeout = 2 * time.Second
	readTimeout     = 5 * time.Second
)

// Metrics records step and run statistics per algorithm.
type Metrics struct {
	registry *prometheus.Registry
	steps    *prometheus.CounterVec
	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the stepviz collectors and the Go runtime collector
// on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_published_total",
			Help:      "Snapshots published or trace steps replayed.",
		}, []string{"algorithm"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Finished runs by outcome.",
		}, []string{"algorithm", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of runs.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 4, 8),
		}, []string{"algorithm"}),
	}
	m.registry.MustRegister(m.steps, m.runs, m.duration, collectors.NewGoCollector())

	return m
}

// Registry exposes the private registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ObserveStep counts one published snapshot or replayed step.
func (m *Metrics) ObserveStep(algorithm string) {
	m.steps.WithLabelValues(algorithm).Inc()
}

// ObserveRun records a finished run.
func (m *Metrics) ObserveRun(algorithm, outcome string, d time.Duration) {
	m.runs.WithLabelValues(algorithm, outcome).Inc()
	m.duration.WithLabelValues(algorithm).Observe(d.Seconds())
}

// Counting wraps a publisher so each call is counted before being forwarded.
// A nil next only counts.
func Counting[F any](m *Metrics, algorithm string, next func(F)) func(F) {
	c := m.steps.WithLabelValues(algorithm)

	return func(f F) {
		c.Inc()
		if next != nil {
			next(f)
		}
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done. It returns once the
// listener is bound; the returned address reflects the actual port.
// Serving errors after startup are reported through errc.
func (m *Metrics) Serve(ctx context.Context, addr string) (string, <-chan error, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", nil, fmt.Errorf("listen metrics %s: %w", addr, err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: readTimeout}

	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		if serveErr := srv.Serve(ln); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errc <- serveErr
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	return ln.Addr().String(), errc, nil
}
