// Package trending composes the YouTube client with the dashboard's two
// memo caches.
package trending

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/yt-trending/internal/cache"
	"github.com/yt-trending/internal/metrics"
	"github.com/yt-trending/internal/models"
)

const (
	videosTTL      = 60 * time.Second
	subscribersTTL = 120 * time.Second
)

// Source is the upstream the service memoizes.
type Source interface {
	MostPopular(ctx context.Context, regionCode string, maxResults int) ([]models.Video, error)
	SubscriberCounts(ctx context.Context, channelIDs []string) map[string]int64
}

// Service wraps a Source with TTL memoization and a manual refresh. It
// implements the decorator pattern so the client stays cache-free.
type Service struct {
	source  Source
	keyBase string
	logger  *slog.Logger

	videos *cache.Store[[]models.Video]
	subs   *cache.Store[map[string]int64]
	group  singleflight.Group
}

// NewService creates a Service. apiKey participates in every memo key so a
// key rotation never serves stale results.
func NewService(source Source, apiKey string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		source:  source,
		keyBase: apiKey,
		logger:  logger,
		videos:  cache.New[[]models.Video](videosTTL),
		subs:    cache.New[map[string]int64](subscribersTTL),
	}
}

// Videos returns the most-popular chart for a region, memoized for 60
// seconds per (key, region, count). Errors are propagated undisguised and
// never cached.
func (s *Service) Videos(ctx context.Context, regionCode string, maxResults int) ([]models.Video, error) {
	key := s.keyBase + "|" + regionCode + "|" + strconv.Itoa(maxResults)
	if items, ok := s.videos.Get(key); ok {
		metrics.CacheEventsTotal.WithLabelValues(metrics.CacheVideos, metrics.CacheEventHit).Inc()
		return items, nil
	}
	metrics.CacheEventsTotal.WithLabelValues(metrics.CacheVideos, metrics.CacheEventMiss).Inc()

	// Coalesce concurrent recomputes for the same key.
	result, err, _ := s.group.Do("videos|"+key, func() (any, error) {
		if items, ok := s.videos.Get(key); ok {
			return items, nil
		}
		items, err := s.source.MostPopular(ctx, regionCode, maxResults)
		if err != nil {
			return nil, err
		}
		s.videos.Set(key, items)
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]models.Video), nil
}

// Subscribers returns subscriber counts for the given channel IDs,
// memoized for 120 seconds. The memo key is the full ID-list identity, so
// reuse only happens when the exact same list comes back.
func (s *Service) Subscribers(ctx context.Context, channelIDs []string) map[string]int64 {
	key := s.keyBase + "|" + strings.Join(channelIDs, ",")
	if counts, ok := s.subs.Get(key); ok {
		metrics.CacheEventsTotal.WithLabelValues(metrics.CacheSubscribers, metrics.CacheEventHit).Inc()
		return counts
	}
	metrics.CacheEventsTotal.WithLabelValues(metrics.CacheSubscribers, metrics.CacheEventMiss).Inc()

	result, _, _ := s.group.Do("subs|"+key, func() (any, error) {
		if counts, ok := s.subs.Get(key); ok {
			return counts, nil
		}
		counts := s.source.SubscriberCounts(ctx, channelIDs)
		s.subs.Set(key, counts)
		return counts, nil
	})
	return result.(map[string]int64)
}

// Refresh drops both memo caches so the next render refetches everything.
func (s *Service) Refresh() {
	s.videos.Purge()
	s.subs.Purge()
	metrics.CacheEventsTotal.WithLabelValues(metrics.CacheVideos, metrics.CacheEventPurge).Inc()
	metrics.CacheEventsTotal.WithLabelValues(metrics.CacheSubscribers, metrics.CacheEventPurge).Inc()
	s.logger.Info("memo caches purged")
}
