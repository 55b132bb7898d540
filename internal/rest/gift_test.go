package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"whatoGift/business/gift"
	"whatoGift/domain"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGiftService struct {
	profile domain.RecipientProfile
	gifts   []domain.RankedGift
	err     error
}

func (f *fakeGiftService) FindSuitedGift(ctx context.Context, profile domain.RecipientProfile) ([]domain.RankedGift, error) {
	f.profile = profile
	return f.gifts, f.err
}

type catalogStub []domain.CatalogEntry

func (s catalogStub) FetchCatalogWithCompanies(ctx context.Context) ([]domain.CatalogEntry, error) {
	return s, nil
}

type statusBody struct {
	Status  bool            `json:"status"`
	Message json.RawMessage `json:"message"`
}

func postGift(t *testing.T, h *GiftHandler, body string) (*httptest.ResponseRecorder, statusBody) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/gifts/find_suited_gift", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.FindSuitedGift(e.NewContext(req, rec)))

	var out statusBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec, out
}

func TestFindSuitedGiftNormalizesSentinels(t *testing.T) {
	svc := &fakeGiftService{gifts: []domain.RankedGift{}}
	h := NewGiftHandler(svc, time.Second)

	rec, out := postGift(t, h, `{
		"relationLevel": 2,
		"interests": ["shoes"],
		"events": ["birthday"],
		"minimumPrice": -1,
		"maximumPrice": 150,
		"age": -1,
		"genderTarget": "female",
		"locationRadius": 10,
		"location": {"latitude": 31.2573952, "longitude": 34.7897856}
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, out.Status)
	assert.JSONEq(t, `[]`, string(out.Message))

	p := svc.profile
	require.NotNil(t, p.RelationshipLevel)
	assert.Equal(t, 2, *p.RelationshipLevel)
	assert.Nil(t, p.MinPrice)
	require.NotNil(t, p.MaxPrice)
	assert.Equal(t, 150.0, *p.MaxPrice)
	assert.Nil(t, p.Age)
	assert.Equal(t, "female", p.GenderTarget)
	require.NotNil(t, p.SearchRadius)
	assert.Equal(t, 10.0, *p.SearchRadius)
	require.NotNil(t, p.RequesterLocation)
	assert.Equal(t, domain.GeoPoint{Latitude: 31.2573952, Longitude: 34.7897856}, *p.RequesterLocation)
	assert.Equal(t, []string{"shoes"}, p.Interests)
	assert.Equal(t, []string{"birthday"}, p.Events)
}

func TestFindSuitedGiftEmptyBody(t *testing.T) {
	svc := &fakeGiftService{}
	h := NewGiftHandler(svc, time.Second)

	rec, out := postGift(t, h, `{}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, out.Status)
	assert.Nil(t, svc.profile.MinPrice)
	assert.Nil(t, svc.profile.SearchRadius)
	assert.Nil(t, svc.profile.RequesterLocation)
}

func TestFindSuitedGiftBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"age": `},
		{"wrong type", `{"interests": "shoes"}`},
		{"latitude out of range", `{"location": {"latitude": 100, "longitude": 10}}`},
		{"longitude out of range", `{"location": {"latitude": 10, "longitude": -181}}`},
		{"missing longitude", `{"location": {"latitude": 10}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewGiftHandler(&fakeGiftService{}, time.Second)

			rec, out := postGift(t, h, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, out.Status)
		})
	}
}

func TestFindSuitedGiftServiceErrors(t *testing.T) {
	t.Run("location required", func(t *testing.T) {
		h := NewGiftHandler(&fakeGiftService{err: domain.ErrLocationRequired}, time.Second)

		rec, out := postGift(t, h, `{"locationRadius": 5}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, out.Status)
		assert.JSONEq(t, fmt.Sprintf("%q", domain.ErrLocationRequired.Error()), string(out.Message))
	})

	t.Run("catalog unavailable", func(t *testing.T) {
		err := fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, fmt.Errorf("connection refused"))
		h := NewGiftHandler(&fakeGiftService{err: err}, time.Second)

		rec, out := postGift(t, h, `{}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.False(t, out.Status)
		assert.Contains(t, string(out.Message), "connection refused")
	})
}

func TestFindSuitedGiftEndToEnd(t *testing.T) {
	// One km is about 0.008993 degrees of latitude.
	requester := domain.GeoPoint{Latitude: 31.25, Longitude: 34.79}
	p1 := domain.CatalogEntry{
		ProductInfo: domain.ProductInfo{
			ProductID: uuid.New(), ProductName: "P1", ProductPrice: 100,
			MinimumAge: 18, MaximumAge: 60, Tags: []string{"clocks"},
			Gender: map[string]bool{domain.GenderFemale: true, domain.GenderMale: true},
		},
		CompanyLocation: domain.GeoPoint{Latitude: 31.25 + 0.008993, Longitude: 34.79},
	}
	p2 := domain.CatalogEntry{
		ProductInfo: domain.ProductInfo{
			ProductID: uuid.New(), ProductName: "P2", ProductPrice: 200,
			MinimumAge: 18, MaximumAge: 60, Tags: []string{"flowers"}, OnlineShopping: true,
			Gender: map[string]bool{domain.GenderFemale: true, domain.GenderMale: true},
		},
		CompanyLocation: domain.GeoPoint{Latitude: 31.25 + 0.4497, Longitude: 34.79},
	}
	h := NewGiftHandler(gift.NewGiftService(catalogStub{p1, p2}), time.Second)

	rec, out := postGift(t, h, fmt.Sprintf(`{
		"minimumPrice": -1,
		"maximumPrice": 150,
		"age": 30,
		"events": ["wedding anniversary"],
		"locationRadius": 10,
		"location": {"latitude": %v, "longitude": %v}
	}`, requester.Latitude, requester.Longitude))

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, out.Status)

	var gifts []domain.RankedGift
	require.NoError(t, json.Unmarshal(out.Message, &gifts))
	require.Len(t, gifts, 1)
	assert.Equal(t, "P1", gifts[0].ProductInfo.ProductName)
	require.NotNil(t, gifts[0].Distance)
	assert.InDelta(t, 1, *gifts[0].Distance, 0.01)
}
