package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ProcessedLinesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wescoco_processed_lines_total",
			Help: "Total number of input lines processed, by classification.",
		},
		[]string{"class"},
	)

	StandardLinesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wescoco_standard_lines_total",
			Help: "Total number of structured log lines, by log level.",
		},
		[]string{"level"},
	)

	BannerMatchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wescoco_banner_matches_total",
			Help: "Total number of startup banner lines matched, by pattern.",
		},
		[]string{"pattern"},
	)
)

func init() {
	prometheus.MustRegister(ProcessedLinesTotal)
	prometheus.MustRegister(StandardLinesTotal)
	prometheus.MustRegister(BannerMatchesTotal)
}
