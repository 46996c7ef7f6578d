package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"TechSentinel/internal/logger"
	"TechSentinel/internal/model"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	Registry *prometheus.Registry

	Analyses     *prometheus.CounterVec
	Signals      *prometheus.CounterVec
	Transitions  *prometheus.CounterVec
	ScanDuration prometheus.Histogram
	LastScan     prometheus.Gauge
	WatchedTotal prometheus.Gauge
}

// New creates and registers all collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Analyses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "techsentinel_analyses_total",
				Help: "Total number of symbol analyses",
			},
			[]string{"status"}, // status: success|fetch_error|input_error
		),
		Signals: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "techsentinel_signals_total",
				Help: "Signals produced, by label",
			},
			[]string{"signal"},
		),
		Transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "techsentinel_transitions_total",
				Help: "Trend or signal changes detected between scans",
			},
			[]string{"kind"}, // kind: trend|signal
		),
		ScanDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "techsentinel_scan_duration_seconds",
				Help:    "Watchlist scan duration in seconds",
				Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
			},
		),
		LastScan: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "techsentinel_last_scan_timestamp",
				Help: "Unix timestamp of the last completed scan",
			},
		),
		WatchedTotal: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "techsentinel_watched_symbols",
				Help: "Number of symbols in the watchlist",
			},
		),
	}
	m.Registry.MustRegister(
		m.Analyses,
		m.Signals,
		m.Transitions,
		m.ScanDuration,
		m.LastScan,
		m.WatchedTotal,
		collectors.NewGoCollector(),
	)
	return m
}

// ObserveSnapshot counts a successful analysis and its signal label.
func (m *Metrics) ObserveSnapshot(snap *model.AnalysisSnapshot) {
	m.Analyses.WithLabelValues("success").Inc()
	m.Signals.WithLabelValues(string(snap.Signal)).Inc()
}

// ObserveFailure counts a failed analysis.
func (m *Metrics) ObserveFailure(status string) {
	m.Analyses.WithLabelValues(status).Inc()
}

// ObserveTransition counts each label that moved.
func (m *Metrics) ObserveTransition(tr model.Transition) {
	if tr.TrendChanged() {
		m.Transitions.WithLabelValues("trend").Inc()
	}
	if tr.SignalChanged() {
		m.Transitions.WithLabelValues("signal").Inc()
	}
}

// ObserveScan records a completed scan.
func (m *Metrics) ObserveScan(start time.Time, symbols int) {
	m.ScanDuration.Observe(time.Since(start).Seconds())
	m.LastScan.Set(float64(time.Now().Unix()))
	m.WatchedTotal.Set(float64(symbols))
}

// Handler returns the HTTP handler serving /metrics and /healthz.
func (m *Metrics) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// Serve runs the metrics server on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string, log *logger.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           m.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("metrics server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
