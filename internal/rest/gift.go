package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"whatoGift/domain"
	"whatoGift/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type GiftService interface {
	FindSuitedGift(ctx context.Context, profile domain.RecipientProfile) ([]domain.RankedGift, error)
}

type GiftHandler struct {
	giftService GiftService
	validator   *validator.Validate
	timeout     time.Duration
}

func NewGiftHandler(giftService GiftService, timeout time.Duration) *GiftHandler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &GiftHandler{
		giftService: giftService,
		validator:   validator.New(),
		timeout:     timeout,
	}
}

type LocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

func (l *LocationRequest) point() *domain.GeoPoint {
	if l == nil {
		return nil
	}
	return &domain.GeoPoint{Latitude: *l.Latitude, Longitude: *l.Longitude}
}

// FindSuitedGiftRequest bounds may be omitted, null or negative to mean
// "no constraint".
type FindSuitedGiftRequest struct {
	RelationLevel  *int             `json:"relationLevel"`
	Interests      []string         `json:"interests"`
	Events         []string         `json:"events"`
	MinimumPrice   *float64         `json:"minimumPrice"`
	MaximumPrice   *float64         `json:"maximumPrice"`
	Age            *int             `json:"age"`
	GenderTarget   string           `json:"genderTarget"`
	LocationRadius *float64         `json:"locationRadius"`
	Location       *LocationRequest `json:"location"`
}

func bounded[T int | float64](v *T) *T {
	if v == nil || *v < 0 {
		return nil
	}
	return v
}

func (r FindSuitedGiftRequest) profile() domain.RecipientProfile {
	return domain.RecipientProfile{
		RelationshipLevel: r.RelationLevel,
		Interests:         r.Interests,
		Events:            r.Events,
		MinPrice:          bounded(r.MinimumPrice),
		MaxPrice:          bounded(r.MaximumPrice),
		Age:               bounded(r.Age),
		GenderTarget:      r.GenderTarget,
		SearchRadius:      bounded(r.LocationRadius),
		RequesterLocation: r.Location.point(),
	}
}

func (h *GiftHandler) FindSuitedGift(c echo.Context) error {
	var req FindSuitedGiftRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: false, Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate gift request", err)
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: false, Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	gifts, err := h.giftService.FindSuitedGift(ctx, req.profile())
	if err != nil {
		if errors.Is(err, domain.ErrLocationRequired) {
			return c.JSON(http.StatusBadRequest, StatusResponse{Status: false, Message: err.Error()})
		}
		logger.Error("Failed to find suited gift", err)
		return c.JSON(http.StatusInternalServerError, StatusResponse{Status: false, Message: err.Error()})
	}

	return c.JSON(http.StatusOK, StatusResponse{Status: true, Message: gifts})
}
