package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	analysesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "resume_analyses_total",
		Help: "Total number of resume analyses performed",
	})

	matchRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "job_match_requests_total",
		Help: "Total number of job match requests served",
	})

	analyzeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "resume_analyze_duration_seconds",
		Help:    "Duration of resume analysis in seconds",
		Buckets: prometheus.DefBuckets,
	})
)
