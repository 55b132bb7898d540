package rest

import (
	"context"
	"net/http"
	"time"

	"whatoGift/domain"
	"whatoGift/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CompanyService interface {
	GetAllCompanies(ctx context.Context) ([]domain.Company, error)
	GetCompanyByID(ctx context.Context, id uuid.UUID) (domain.Company, error)
	GetCompaniesByLocation(ctx context.Context, from domain.GeoPoint) ([]domain.CompanyDistance, error)
}

type CompanyHandler struct {
	companyService CompanyService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewCompanyHandler(companyService CompanyService) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

func (h *CompanyHandler) GetAllCompanies(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	companies, err := h.companyService.GetAllCompanies(ctx)
	if err != nil {
		logger.Error("Failed to find all companies", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(companies))
}

func (h *CompanyHandler) GetCompanyByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid company id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	company, err := h.companyService.GetCompanyByID(ctx, id)
	if err != nil {
		return c.JSON(errorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(company))
}

func (h *CompanyHandler) GetCompaniesByLocation(c echo.Context) error {
	var req LocationRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: false, Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate location request", err)
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: false, Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	companies, err := h.companyService.GetCompaniesByLocation(ctx, *req.point())
	if err != nil {
		logger.Error("Failed to find companies by location", err)
		return c.JSON(http.StatusInternalServerError, StatusResponse{Status: false, Message: err.Error()})
	}

	return c.JSON(http.StatusOK, StatusResponse{Status: true, Message: companies})
}
