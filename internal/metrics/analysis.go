package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// AnalysesTotal counts completed analyses by resolved label.
	AnalysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "biaslens",
			Name:      "analyses_total",
			Help:      "Total number of completed bias analyses by overall label",
		},
		[]string{"label"},
	)

	// AnalysisDuration observes engine latency (scoring + resolution only,
	// excluding transport).
	AnalysisDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "biaslens",
			Name:      "analysis_duration_seconds",
			Help:      "Bias analysis duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	// PhraseMatchesTotal counts matched phrases by category.
	PhraseMatchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "biaslens",
			Name:      "phrase_matches_total",
			Help:      "Total number of matched keyword phrases by category",
		},
		[]string{"category"},
	)
)

// RegisterAnalysisMetrics registers analysis metrics with the default
// registry. Called explicitly from the composition root (no init()).
func RegisterAnalysisMetrics() {
	prometheus.MustRegister(AnalysesTotal)
	prometheus.MustRegister(AnalysisDuration)
	prometheus.MustRegister(PhraseMatchesTotal)
}
