package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CommentPagesFetched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ytscope_comment_pages_fetched_total",
			Help: "Total number of comment pages requested from the provider",
		},
		[]string{"status"},
	)

	CommentsCollected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ytscope_comments_collected_total",
			Help: "Total number of comment records collected",
		},
	)

	ExtractDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ytscope_extract_duration_seconds",
			Help:    "Duration of full extraction runs in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ytscope_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"api", "status"},
	)
)
