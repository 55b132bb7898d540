package postgres

import (
	"context"
	"errors"
	"fmt"

	"whatoGift/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BrandRepository struct {
	DB *gorm.DB
}

func NewBrandRepository(db *gorm.DB) *BrandRepository {
	return &BrandRepository{
		DB: db,
	}
}

func (r *BrandRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Brand, error) {
	if err := ctx.Err(); err != nil {
		return domain.Brand{}, fmt.Errorf("context error: %w", err)
	}

	var brand domain.Brand

	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&brand).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Brand{}, fmt.Errorf("brand %w", domain.ErrNotFound)
		}
		return domain.Brand{}, fmt.Errorf("failed to find brand: %w", err)
	}

	return brand, nil
}

func (r *BrandRepository) FindAll(ctx context.Context) ([]domain.Brand, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var brands []domain.Brand
	err := r.DB.WithContext(ctx).Order("brand_name").Find(&brands).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find brands: %w", err)
	}

	return brands, nil
}
