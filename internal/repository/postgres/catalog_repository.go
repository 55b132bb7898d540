package postgres

import (
	"context"
	"fmt"

	"whatoGift/domain"

	"gorm.io/gorm"
)

// CatalogRepository reads the product catalog joined with owning companies.
type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{
		DB: db,
	}
}

// FetchCatalogWithCompanies loads every product with its company in one
// snapshot, ordered by creation time. Products whose company row is missing
// are skipped.
func (r *CatalogRepository) FetchCatalogWithCompanies(ctx context.Context) ([]domain.CatalogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var products []domain.Product
	err := r.DB.WithContext(ctx).
		InnerJoins("Company").
		Order("products.created_at, products.id").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	entries := make([]domain.CatalogEntry, 0, len(products))
	for _, p := range products {
		entries = append(entries, p.CatalogEntry())
	}

	return entries, nil
}
