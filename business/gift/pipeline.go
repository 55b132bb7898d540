package gift

import (
	"sort"

	"whatoGift/domain"
)

// criteria is a RecipientProfile resolved into the predicates it implies.
type criteria struct {
	minPrice *float64
	maxPrice *float64
	age      *int
	gender   string
	tags     tagSet
	radius   *float64
	origin   *domain.GeoPoint
}

func newCriteria(profile domain.RecipientProfile) criteria {
	return criteria{
		minPrice: ResolveMinPrice(profile.RelationshipLevel, profile.MinPrice),
		maxPrice: profile.MaxPrice,
		age:      profile.Age,
		gender:   profile.GenderTarget,
		tags:     newTagSet(ResolveTags(profile.Interests, profile.Events)),
		radius:   profile.SearchRadius,
		origin:   profile.RequesterLocation,
	}
}

// match runs the predicates in order and stops at the first failure. The
// distance is only computed for entries that reach the availability check.
func (c criteria) match(entry domain.CatalogEntry) (*float64, bool) {
	info := entry.ProductInfo

	if c.minPrice != nil && info.ProductPrice < *c.minPrice {
		return nil, false
	}

	if c.maxPrice != nil && info.ProductPrice >= *c.maxPrice {
		return nil, false
	}

	if c.age != nil && (*c.age < info.MinimumAge || *c.age >= info.MaximumAge) {
		return nil, false
	}

	if applicable, known := info.Gender[c.gender]; c.gender != "" && known && !applicable {
		return nil, false
	}

	if len(c.tags) > 0 && !c.tags.intersects(info.Tags) {
		return nil, false
	}

	if c.origin == nil {
		return nil, c.radius == nil
	}

	distance := Distance(*c.origin, entry.CompanyLocation)
	if info.OnlineShopping || c.radius == nil || *c.radius >= distance {
		return &distance, true
	}

	return nil, false
}

func (c criteria) filter(catalog []domain.CatalogEntry) []domain.RankedGift {
	gifts := make([]domain.RankedGift, 0)
	for _, entry := range catalog {
		distance, ok := c.match(entry)
		if !ok {
			continue
		}
		gifts = append(gifts, domain.RankedGift{
			ProductInfo: entry.ProductInfo,
			Distance:    distance,
		})
	}
	return gifts
}

// rankByDistance sorts nearest first. Ties and entries without a distance keep
// their catalog order.
func rankByDistance(gifts []domain.RankedGift) {
	sort.SliceStable(gifts, func(i, j int) bool {
		di, dj := gifts[i].Distance, gifts[j].Distance
		if di == nil || dj == nil {
			return false
		}
		return *di < *dj
	})
}
