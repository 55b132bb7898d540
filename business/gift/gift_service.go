package gift

import (
	"context"
	"fmt"
	"time"

	"whatoGift/domain"
	"whatoGift/pkg/logger"
	"whatoGift/pkg/metrics"
)

// CatalogRepository contract interface
type CatalogRepository interface {
	FetchCatalogWithCompanies(ctx context.Context) ([]domain.CatalogEntry, error)
}

type giftService struct {
	catalogRepo CatalogRepository
}

func NewGiftService(catalogRepo CatalogRepository) *giftService {
	return &giftService{
		catalogRepo: catalogRepo,
	}
}

// FindSuitedGift filters one catalog snapshot against the profile and returns
// the matches nearest first. A failed catalog fetch fails the whole request.
func (s *giftService) FindSuitedGift(ctx context.Context, profile domain.RecipientProfile) ([]domain.RankedGift, error) {
	start := time.Now()
	defer func() {
		metrics.GiftRecommendLatency.Observe(time.Since(start).Seconds())
	}()

	if err := ctx.Err(); err != nil {
		logger.Error("context error when finding suited gift")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if profile.SearchRadius != nil && profile.RequesterLocation == nil {
		metrics.GiftRecommendRequests.WithLabelValues(metrics.OutcomeInvalidInput).Inc()
		return nil, domain.ErrLocationRequired
	}

	catalog, err := s.catalogRepo.FetchCatalogWithCompanies(ctx)
	if err != nil {
		logger.Error("Failed to fetch catalog snapshot", err)
		metrics.GiftRecommendRequests.WithLabelValues(metrics.OutcomeCatalogError).Inc()
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}

	c := newCriteria(profile)
	gifts := c.filter(catalog)
	rankByDistance(gifts)

	metrics.GiftRecommendRequests.WithLabelValues(metrics.OutcomeSuccess).Inc()
	metrics.GiftRecommendResults.Observe(float64(len(gifts)))
	logger.Debug("gift recommendation served", "catalog_size", len(catalog), "matches", len(gifts))

	return gifts, nil
}
