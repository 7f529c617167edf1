package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Spin Metrics
var (
	SpinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinsTotal,
			Help: HelpTextSpinsTotal,
		},
		[]string{LabelOutcome},
	)

	SpinScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameSpinScore,
			Help:    HelpTextSpinScore,
			Buckets: SpinScoreBuckets,
		},
	)

	EvalCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEvalCacheLookups,
			Help: HelpTextEvalCacheLookups,
		},
		[]string{LabelResult},
	)

	SimulationSpins = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSimulationSpins,
			Help: HelpTextSimulationSpins,
		},
	)
)

// Pool Metrics
var (
	PoolBuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePoolBuildsTotal,
			Help: HelpTextPoolBuildsTotal,
		},
		[]string{LabelResult},
	)

	PoolBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNamePoolBuildDuration,
			Help:    HelpTextPoolBuildDuration,
			Buckets: BuildDurationBuckets,
		},
	)

	PoolBoards = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNamePoolBoards,
			Help: HelpTextPoolBoards,
		},
		[]string{LabelOutcome},
	)

	PoolAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePoolAttemptsTotal,
			Help: HelpTextPoolAttemptsTotal,
		},
		[]string{LabelOutcome},
	)

	ConfigGeneration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameConfigGeneration,
			Help: HelpTextConfigGeneration,
		},
	)
)
