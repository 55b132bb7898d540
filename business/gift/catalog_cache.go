package gift

import (
	"context"
	"errors"
	"time"

	"whatoGift/domain"
	"whatoGift/pkg/logger"
	"whatoGift/pkg/metrics"
)

// SnapshotCache stores whole catalog snapshots.
type SnapshotCache interface {
	GetSnapshot(ctx context.Context) ([]domain.CatalogEntry, error)
	SetSnapshot(ctx context.Context, entries []domain.CatalogEntry, ttl time.Duration) error
}

type cachedCatalog struct {
	next  CatalogRepository
	cache SnapshotCache
	ttl   time.Duration
}

// NewCachedCatalog serves snapshots from cache when possible. Cache errors are
// logged and never fail a fetch.
func NewCachedCatalog(next CatalogRepository, cache SnapshotCache, ttl time.Duration) *cachedCatalog {
	return &cachedCatalog{
		next:  next,
		cache: cache,
		ttl:   ttl,
	}
}

func (c *cachedCatalog) FetchCatalogWithCompanies(ctx context.Context) ([]domain.CatalogEntry, error) {
	entries, err := c.cache.GetSnapshot(ctx)
	if err == nil {
		metrics.CatalogSnapshotFetches.WithLabelValues(metrics.SourceCache).Inc()
		return entries, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logger.Warn("Failed to read catalog snapshot cache", err)
	}

	entries, err = c.next.FetchCatalogWithCompanies(ctx)
	if err != nil {
		return nil, err
	}
	metrics.CatalogSnapshotFetches.WithLabelValues(metrics.SourceStore).Inc()

	if err := c.cache.SetSnapshot(ctx, entries, c.ttl); err != nil {
		logger.Warn("Failed to store catalog snapshot", err)
	}

	return entries, nil
}
