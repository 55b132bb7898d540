package company

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"whatoGift/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompanyRepo struct {
	companies []domain.Company
	err       error
}

func (f *fakeCompanyRepo) FindByID(ctx context.Context, id uuid.UUID) (domain.Company, error) {
	for _, c := range f.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Company{}, fmt.Errorf("company %w", domain.ErrNotFound)
}

func (f *fakeCompanyRepo) FindAll(ctx context.Context) ([]domain.Company, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.companies, nil
}

func TestGetCompaniesByLocation(t *testing.T) {
	repo := &fakeCompanyRepo{companies: []domain.Company{
		{ID: uuid.New(), CompanyName: "Tel Aviv Gifts", Latitude: 32.0853, Longitude: 34.7818},
		{ID: uuid.New(), CompanyName: "Negev Flowers", Latitude: 31.2600, Longitude: 34.8000},
		{ID: uuid.New(), CompanyName: "Haifa Clocks", Latitude: 32.7940, Longitude: 34.9896},
	}}
	svc := NewCompanyService(repo)

	// Beer Sheva
	got, err := svc.GetCompaniesByLocation(context.Background(), domain.GeoPoint{Latitude: 31.2573952, Longitude: 34.7897856})
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "Negev Flowers", got[0].Company.CompanyName)
	assert.Equal(t, "Tel Aviv Gifts", got[1].Company.CompanyName)
	assert.Equal(t, "Haifa Clocks", got[2].Company.CompanyName)
	assert.Less(t, got[0].Distance, 2.0)
	assert.InDelta(t, 92, got[1].Distance, 2)
}

func TestGetCompaniesByLocationRepositoryError(t *testing.T) {
	svc := NewCompanyService(&fakeCompanyRepo{err: errors.New("db down")})

	_, err := svc.GetCompaniesByLocation(context.Background(), domain.GeoPoint{})
	assert.EqualError(t, err, "db down")
}

func TestGetCompanyByID(t *testing.T) {
	id := uuid.New()
	svc := NewCompanyService(&fakeCompanyRepo{companies: []domain.Company{{ID: id, CompanyName: "Shop"}}})

	got, err := svc.GetCompanyByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Shop", got.CompanyName)

	_, err = svc.GetCompanyByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetCompanyByID(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}
