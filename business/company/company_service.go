package company

import (
	"context"
	"fmt"
	"sort"

	"whatoGift/business/gift"
	"whatoGift/domain"
	"whatoGift/pkg/logger"

	"github.com/google/uuid"
)

// CompanyRepository contract interface
type CompanyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (domain.Company, error)
	FindAll(ctx context.Context) ([]domain.Company, error)
}

type companyService struct {
	companyRepo CompanyRepository
}

func NewCompanyService(companyRepo CompanyRepository) *companyService {
	return &companyService{
		companyRepo: companyRepo,
	}
}

func (s *companyService) GetAllCompanies(ctx context.Context) ([]domain.Company, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all companies")
		return nil, fmt.Errorf("context error: %w", err)
	}

	companies, err := s.companyRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all companies", err)
		return nil, err
	}

	return companies, nil
}

func (s *companyService) GetCompanyByID(ctx context.Context, id uuid.UUID) (domain.Company, error) {
	if id == uuid.Nil {
		logger.Error("Invalid company id")
		return domain.Company{}, fmt.Errorf("company %w", domain.ErrInvalidID)
	}

	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find company", err)
		return domain.Company{}, err
	}

	return company, nil
}

// GetCompaniesByLocation returns every company with its distance in km from
// the caller, nearest first.
func (s *companyService) GetCompaniesByLocation(ctx context.Context, from domain.GeoPoint) ([]domain.CompanyDistance, error) {
	companies, err := s.GetAllCompanies(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CompanyDistance, 0, len(companies))
	for _, c := range companies {
		result = append(result, domain.CompanyDistance{
			Company:  c,
			Distance: gift.Distance(from, c.Location()),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Distance < result[j].Distance
	})

	return result, nil
}
