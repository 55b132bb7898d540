package router

import (
	"net/http"

	"whatoGift/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupGiftRoutes(api *echo.Group, handler *rest.GiftHandler) {
	gifts := api.Group("/gifts")

	gifts.POST("/find_suited_gift", handler.FindSuitedGift)
}

func SetupCatalogRoutes(api *echo.Group, handler *rest.CatalogHandler) {
	categories := api.Group("/categories")
	categories.GET("", handler.GetAllCategories)
	categories.GET("/:id", handler.GetCategoryByID)
	categories.GET("/:id/products", handler.GetProductsByCategory)

	brands := api.Group("/brands")
	brands.GET("", handler.GetAllBrands)
	brands.GET("/:id", handler.GetBrandByID)

	products := api.Group("/products")
	products.GET("", handler.GetAllProducts)
	products.GET("/:id", handler.GetProductByID)
}

func SetupCompanyRoutes(api *echo.Group, handler *rest.CompanyHandler) {
	companies := api.Group("/companies")

	companies.GET("", handler.GetAllCompanies)
	companies.GET("/:id", handler.GetCompanyByID)
	companies.POST("/by_location", handler.GetCompaniesByLocation)
}

func SetupOpsRoutes(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{"status": true})
	})
}
