package handler

import (
	"ongkir-api/internal/features/geo/service"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles HTTP requests for the geographic catalog.
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// ListProvinces godoc
// @Summary List provinces
// @Description Retrieves the full province list from the upstream catalog. Returns an empty list when the upstream is unavailable.
// @Tags geo
// @Produce json
// @Success 200 {array} domain.Province
// @Router /provinces [get]
func (h *CatalogHandler) ListProvinces(c *fiber.Ctx) error {
	return c.JSON(h.catalogService.ListProvinces(c.Context()))
}

// ListCities godoc
// @Summary List cities
// @Description Retrieves the city list, optionally filtered by province. Returns an empty list when the upstream is unavailable.
// @Tags geo
// @Produce json
// @Param province query string false "Province ID to filter by"
// @Success 200 {array} domain.City
// @Router /cities [get]
func (h *CatalogHandler) ListCities(c *fiber.Ctx) error {
	return c.JSON(h.catalogService.ListCities(c.Context(), c.Query("province")))
}
