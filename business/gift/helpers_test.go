package gift

import (
	"context"

	"whatoGift/domain"

	"github.com/google/uuid"
)

// kmPerDegree is the length of one degree of longitude along the equator.
const kmPerDegree = earthRadiusKm * 3.141592653589793 / 180

var origin = domain.GeoPoint{Latitude: 0, Longitude: 0}

func ptr[T any](v T) *T {
	return &v
}

// pointEast returns a point km kilometres east of origin along the equator.
func pointEast(km float64) domain.GeoPoint {
	return domain.GeoPoint{Latitude: 0, Longitude: km / kmPerDegree}
}

type entryOption func(*domain.CatalogEntry)

func withPrice(p float64) entryOption {
	return func(e *domain.CatalogEntry) { e.ProductInfo.ProductPrice = p }
}

func withAges(min, max int) entryOption {
	return func(e *domain.CatalogEntry) {
		e.ProductInfo.MinimumAge = min
		e.ProductInfo.MaximumAge = max
	}
}

func withTags(tags ...string) entryOption {
	return func(e *domain.CatalogEntry) { e.ProductInfo.Tags = tags }
}

func withGender(female, male bool) entryOption {
	return func(e *domain.CatalogEntry) {
		e.ProductInfo.Gender = map[string]bool{domain.GenderFemale: female, domain.GenderMale: male}
	}
}

func withDistance(km float64) entryOption {
	return func(e *domain.CatalogEntry) { e.CompanyLocation = pointEast(km) }
}

func withOnline() entryOption {
	return func(e *domain.CatalogEntry) { e.ProductInfo.OnlineShopping = true }
}

// newEntry builds a unisex product priced 100 for ages 0-120, 1 km away.
func newEntry(name string, opts ...entryOption) domain.CatalogEntry {
	e := domain.CatalogEntry{
		ProductInfo: domain.ProductInfo{
			ProductID:    uuid.New(),
			CompanyID:    uuid.New(),
			ProductName:  name,
			ProductPrice: 100,
			MinimumAge:   0,
			MaximumAge:   120,
			Gender:       map[string]bool{domain.GenderFemale: true, domain.GenderMale: true},
			Tags:         []string{},
		},
		CompanyLocation: pointEast(1),
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func names(gifts []domain.RankedGift) []string {
	out := make([]string, 0, len(gifts))
	for _, g := range gifts {
		out = append(out, g.ProductInfo.ProductName)
	}
	return out
}

type fakeCatalogRepo struct {
	entries []domain.CatalogEntry
	err     error
	calls   int
}

func (f *fakeCatalogRepo) FetchCatalogWithCompanies(ctx context.Context) ([]domain.CatalogEntry, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.entries, nil
}
