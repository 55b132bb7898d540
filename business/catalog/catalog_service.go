package catalog

import (
	"context"
	"fmt"

	"whatoGift/domain"
	"whatoGift/pkg/logger"

	"github.com/google/uuid"
)

// CategoryRepository contract interface
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (domain.Category, error)
	FindAll(ctx context.Context) ([]domain.Category, error)
}

// BrandRepository contract interface
type BrandRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (domain.Brand, error)
	FindAll(ctx context.Context) ([]domain.Brand, error)
}

// ProductRepository contract interface
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]domain.Product, error)
}

type catalogService struct {
	categoryRepo CategoryRepository
	brandRepo    BrandRepository
	productRepo  ProductRepository
}

func NewCatalogService(categoryRepo CategoryRepository, brandRepo BrandRepository, productRepo ProductRepository) *catalogService {
	return &catalogService{
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
		productRepo:  productRepo,
	}
}

func (s *catalogService) GetAllCategories(ctx context.Context) ([]domain.Category, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all categories")
		return nil, fmt.Errorf("context error: %w", err)
	}

	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all categories", err)
		return nil, err
	}

	return categories, nil
}

func (s *catalogService) GetCategoryByID(ctx context.Context, id uuid.UUID) (domain.Category, error) {
	if id == uuid.Nil {
		logger.Error("Invalid category id")
		return domain.Category{}, fmt.Errorf("category %w", domain.ErrInvalidID)
	}

	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find category", err)
		return domain.Category{}, err
	}

	return category, nil
}

func (s *catalogService) GetAllBrands(ctx context.Context) ([]domain.Brand, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all brands")
		return nil, fmt.Errorf("context error: %w", err)
	}

	brands, err := s.brandRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all brands", err)
		return nil, err
	}

	return brands, nil
}

func (s *catalogService) GetBrandByID(ctx context.Context, id uuid.UUID) (domain.Brand, error) {
	if id == uuid.Nil {
		logger.Error("Invalid brand id")
		return domain.Brand{}, fmt.Errorf("brand %w", domain.ErrInvalidID)
	}

	brand, err := s.brandRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find brand", err)
		return domain.Brand{}, err
	}

	return brand, nil
}

func (s *catalogService) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all products")
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all products", err)
		return nil, err
	}

	return products, nil
}

func (s *catalogService) GetProductByID(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	if id == uuid.Nil {
		logger.Error("Invalid product id")
		return domain.Product{}, fmt.Errorf("product %w", domain.ErrInvalidID)
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find product", err)
		return domain.Product{}, err
	}

	return product, nil
}

// GetProductsByCategory checks the category exists before listing its products.
func (s *catalogService) GetProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]domain.Product, error) {
	if _, err := s.GetCategoryByID(ctx, categoryID); err != nil {
		return nil, err
	}

	products, err := s.productRepo.FindByCategory(ctx, categoryID)
	if err != nil {
		logger.Error("Failed to find products by category", err)
		return nil, err
	}

	return products, nil
}
