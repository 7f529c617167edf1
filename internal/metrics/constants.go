package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Slot metric names
const (
	MetricNameSpinsTotal        = "slot_spins_total"
	MetricNameSpinScore         = "slot_spin_score"
	MetricNamePoolBuildsTotal   = "slot_pool_builds_total"
	MetricNamePoolBuildDuration = "slot_pool_build_duration_seconds"
	MetricNamePoolBoards        = "slot_pool_boards"
	MetricNamePoolAttemptsTotal = "slot_pool_attempts_total"
	MetricNameEvalCacheLookups  = "slot_eval_cache_lookups_total"
	MetricNameSimulationSpins   = "slot_simulation_spins_total"
	MetricNameConfigGeneration  = "slot_config_generation"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Slot metric help text
const (
	HelpTextSpinsTotal        = "Total number of spins settled, by drawn outcome"
	HelpTextSpinScore         = "Distribution of settled spin scores in bet multiples"
	HelpTextPoolBuildsTotal   = "Total number of pool builds, by result"
	HelpTextPoolBuildDuration = "Pool build wall time in seconds"
	HelpTextPoolBoards        = "Boards held in the published pool for each outcome"
	HelpTextPoolAttemptsTotal = "Boards sampled while filling pools, by outcome"
	HelpTextEvalCacheLookups  = "Evaluation cache lookups, by hit or miss"
	HelpTextSimulationSpins   = "Total number of simulated spins"
	HelpTextConfigGeneration  = "Generation number of the active paytable snapshot"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
	LabelResult  = "result"
)

// Label values
const (
	ResultSuccess    = "success"
	ResultWarning    = "warning"
	ResultAborted    = "aborted"
	ResultStale      = "stale"
	ResultSuperseded = "superseded"
	ResultError      = "error"
	ResultHit        = "hit"
	ResultMiss       = "miss"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

var (
	HTTPLatencyBuckets   = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	SpinScoreBuckets     = []float64{0, 0.5, 1, 2, 5, 10, 20, 50, 100, 500}
	BuildDurationBuckets = []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60}
)
