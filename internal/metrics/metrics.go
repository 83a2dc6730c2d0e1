// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "yttrending"

var (
	// UpstreamRequestsTotal tracks calls to the YouTube Data API.
	// Labels:
	//   - endpoint: videos, channels
	//   - status: ok, error
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Total number of YouTube Data API requests",
		},
		[]string{"endpoint", "status"},
	)

	// CacheEventsTotal tracks memo cache usage.
	// Labels:
	//   - cache: videos, subscribers
	//   - event: hit, miss, purge
	CacheEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_events_total",
			Help:      "Total number of memo cache events",
		},
		[]string{"cache", "event"},
	)
)

// Upstream endpoint constants.
const (
	EndpointVideos   = "videos"
	EndpointChannels = "channels"
)

// Upstream status constants.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Cache name constants.
const (
	CacheVideos      = "videos"
	CacheSubscribers = "subscribers"
)

// Cache event constants.
const (
	CacheEventHit   = "hit"
	CacheEventMiss  = "miss"
	CacheEventPurge = "purge"
)
