package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Engine metric names
const (
	MetricNameOperationsTotal      = "profile_operations_total"
	MetricNameOperationDuration    = "profile_operation_duration_seconds"
	MetricNameProfilesBootstrapped = "profiles_bootstrapped_total"
	MetricNamePartialCommits       = "profile_partial_commits_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Engine metric help text
const (
	HelpTextOperationsTotal      = "Total number of profile operations dispatched"
	HelpTextOperationDuration    = "Profile operation latency in seconds"
	HelpTextProfilesBootstrapped = "Total number of profiles bootstrapped from templates"
	HelpTextPartialCommits       = "Total number of multi-profile commits that failed after a partial save"
)

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOperation = "operation"
	LabelOutcome   = "outcome"
	LabelProfile   = "profile"
)

// Outcome label values for the operations counter
const (
	OutcomeApplied  = "applied"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
