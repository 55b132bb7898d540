package postgres

import (
	"context"
	"errors"
	"fmt"

	"whatoGift/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompanyRepository struct {
	DB *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{
		DB: db,
	}
}

func (r *CompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Company, error) {
	if err := ctx.Err(); err != nil {
		return domain.Company{}, fmt.Errorf("context error: %w", err)
	}

	var company domain.Company

	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Company{}, fmt.Errorf("company %w", domain.ErrNotFound)
		}
		return domain.Company{}, fmt.Errorf("failed to find company: %w", err)
	}

	return company, nil
}

func (r *CompanyRepository) FindAll(ctx context.Context) ([]domain.Company, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var companies []domain.Company
	err := r.DB.WithContext(ctx).Order("created_at").Find(&companies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find companies: %w", err)
	}

	return companies, nil
}
