package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/osse101/slotforge/internal/metrics"
)

// AdminMetricsResponse contains JSON-formatted metrics for the admin dashboard
type AdminMetricsResponse struct {
	HTTP   HTTPMetrics   `json:"http"`
	Spins  SpinMetrics   `json:"spins"`
	Pools  PoolMetrics   `json:"pools"`
	Engine EngineMetrics `json:"engine"`
}

type HTTPMetrics struct {
	RequestsTotalByStatus map[string]float64 `json:"requests_total_by_status"`
	AvgLatencyMs          float64            `json:"avg_latency_ms"`
	P95LatencyMs          float64            `json:"p95_latency_ms"`
	InFlight              float64            `json:"in_flight"`
}

type SpinMetrics struct {
	TotalByOutcome map[string]float64 `json:"total_by_outcome"`
	AvgScore       float64            `json:"avg_score"`
	P95Score       float64            `json:"p95_score"`
	Simulated      float64            `json:"simulated"`
}

type PoolMetrics struct {
	BuildsByResult    map[string]float64 `json:"builds_by_result"`
	BoardsByOutcome   map[string]float64 `json:"boards_by_outcome"`
	AttemptsByOutcome map[string]float64 `json:"attempts_by_outcome"`
	AvgBuildSeconds   float64            `json:"avg_build_seconds"`
}

type EngineMetrics struct {
	Generation    float64 `json:"generation"`
	CacheHits     float64 `json:"cache_hits"`
	CacheMisses   float64 `json:"cache_misses"`
	CacheHitRatio float64 `json:"cache_hit_ratio"`
}

// AdminMetricsHandler handles admin metrics requests
type AdminMetricsHandler struct {
	gatherer prometheus.Gatherer
}

// NewAdminMetricsHandler creates a new admin metrics handler. A nil gatherer
// reads the default registry.
func NewAdminMetricsHandler(gatherer prometheus.Gatherer) *AdminMetricsHandler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return &AdminMetricsHandler{gatherer: gatherer}
}

// HandleGetMetrics returns JSON-formatted metrics from Prometheus
// @Summary Admin metrics
// @Tags admin
// @Produce json
// @Success 200 {object} AdminMetricsResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/metrics [get]
func (h *AdminMetricsHandler) HandleGetMetrics(w http.ResponseWriter, r *http.Request) {
	resp, err := gatherMetrics(h.gatherer)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to gather metrics")
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

func gatherMetrics(g prometheus.Gatherer) (*AdminMetricsResponse, error) {
	metricFamilies, err := g.Gather()
	if err != nil {
		return nil, err
	}

	resp := &AdminMetricsResponse{
		HTTP:  HTTPMetrics{RequestsTotalByStatus: make(map[string]float64)},
		Spins: SpinMetrics{TotalByOutcome: make(map[string]float64)},
		Pools: PoolMetrics{
			BuildsByResult:    make(map[string]float64),
			BoardsByOutcome:   make(map[string]float64),
			AttemptsByOutcome: make(map[string]float64),
		},
	}

	for _, mf := range metricFamilies {
		switch mf.GetName() {
		case metrics.MetricNameHTTPRequestsTotal:
			sumByLabel(mf, metrics.LabelStatus, resp.HTTP.RequestsTotalByStatus)
		case metrics.MetricNameHTTPRequestDuration:
			// Calculate avg and p95 from histogram
			for _, m := range mf.GetMetric() {
				if hist := m.GetHistogram(); hist != nil {
					resp.HTTP.AvgLatencyMs = histogramMean(hist) * 1000
					resp.HTTP.P95LatencyMs = estimateQuantile(hist, 0.95) * 1000
				}
			}
		case metrics.MetricNameHTTPRequestsInFlight:
			for _, m := range mf.GetMetric() {
				resp.HTTP.InFlight += m.GetGauge().GetValue()
			}
		case metrics.MetricNameSpinsTotal:
			sumByLabel(mf, metrics.LabelOutcome, resp.Spins.TotalByOutcome)
		case metrics.MetricNameSpinScore:
			for _, m := range mf.GetMetric() {
				if hist := m.GetHistogram(); hist != nil {
					resp.Spins.AvgScore = histogramMean(hist)
					resp.Spins.P95Score = estimateQuantile(hist, 0.95)
				}
			}
		case metrics.MetricNameSimulationSpins:
			for _, m := range mf.GetMetric() {
				resp.Spins.Simulated += m.GetCounter().GetValue()
			}
		case metrics.MetricNamePoolBuildsTotal:
			sumByLabel(mf, metrics.LabelResult, resp.Pools.BuildsByResult)
		case metrics.MetricNamePoolBoards:
			for _, m := range mf.GetMetric() {
				if outcome := getLabelValue(m, metrics.LabelOutcome); outcome != "" {
					resp.Pools.BoardsByOutcome[outcome] = m.GetGauge().GetValue()
				}
			}
		case metrics.MetricNamePoolAttemptsTotal:
			sumByLabel(mf, metrics.LabelOutcome, resp.Pools.AttemptsByOutcome)
		case metrics.MetricNamePoolBuildDuration:
			for _, m := range mf.GetMetric() {
				if hist := m.GetHistogram(); hist != nil {
					resp.Pools.AvgBuildSeconds = histogramMean(hist)
				}
			}
		case metrics.MetricNameConfigGeneration:
			for _, m := range mf.GetMetric() {
				resp.Engine.Generation = m.GetGauge().GetValue()
			}
		case metrics.MetricNameEvalCacheLookups:
			for _, m := range mf.GetMetric() {
				switch getLabelValue(m, metrics.LabelResult) {
				case metrics.ResultHit:
					resp.Engine.CacheHits += m.GetCounter().GetValue()
				case metrics.ResultMiss:
					resp.Engine.CacheMisses += m.GetCounter().GetValue()
				}
			}
		}
	}

	if total := resp.Engine.CacheHits + resp.Engine.CacheMisses; total > 0 {
		resp.Engine.CacheHitRatio = resp.Engine.CacheHits / total
	}
	return resp, nil
}

// sumByLabel adds every counter in mf into out, keyed by label.
func sumByLabel(mf *dto.MetricFamily, label string, out map[string]float64) {
	for _, m := range mf.GetMetric() {
		if v := getLabelValue(m, label); v != "" {
			out[v] += m.GetCounter().GetValue()
		}
	}
}

func getLabelValue(m *dto.Metric, labelName string) string {
	for _, label := range m.GetLabel() {
		if label.GetName() == labelName {
			return label.GetValue()
		}
	}
	return ""
}

func histogramMean(hist *dto.Histogram) float64 {
	if hist.GetSampleCount() == 0 {
		return 0
	}
	return hist.GetSampleSum() / float64(hist.GetSampleCount())
}

// estimateQuantile approximates the given quantile from a histogram
func estimateQuantile(hist *dto.Histogram, quantile float64) float64 {
	totalCount := hist.GetSampleCount()
	if totalCount == 0 {
		return 0
	}

	targetCount := float64(totalCount) * quantile
	buckets := hist.GetBucket()
	for _, bucket := range buckets {
		if float64(bucket.GetCumulativeCount()) >= targetCount {
			return bucket.GetUpperBound()
		}
	}

	// If we reach here, return the last bucket's upper bound
	if len(buckets) > 0 {
		return buckets[len(buckets)-1].GetUpperBound()
	}
	return 0
}
