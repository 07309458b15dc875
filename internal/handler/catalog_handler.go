package handler

import (
	"net/http"
	"strconv"

	"catering-service/internal/store"
	"catering-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CatalogHandler serves the read-only menu.
type CatalogHandler struct {
	catalog *store.CatalogStore
}

func NewCatalogHandler(catalog *store.CatalogStore) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListCategories returns all menu categories in display order
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	log := logger.FromContext(c)

	categories, err := h.catalog.Categories()
	if err != nil {
		log.Error("Failed to retrieve categories", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve categories",
		})
	}

	return c.JSON(http.StatusOK, categories)
}

// ListCategoryProducts returns the products of one category in display order.
// An empty list is a valid response for a category without products.
func (h *CatalogHandler) ListCategoryProducts(c echo.Context) error {
	log := logger.FromContext(c)

	categoryID, err := parseUintParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid category id"})
	}

	category, err := h.catalog.Category(categoryID)
	if err != nil {
		log.Error("Failed to retrieve category", zap.Uint("category_id", categoryID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve category"})
	}
	if category == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Category not found"})
	}

	products, err := h.catalog.ProductsByCategory(categoryID)
	if err != nil {
		log.Error("Failed to retrieve products", zap.Uint("category_id", categoryID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve products"})
	}

	return c.JSON(http.StatusOK, products)
}

// GetProduct returns a single product by ID
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	log := logger.FromContext(c)

	productID, err := parseUintParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	product, err := h.catalog.Product(productID)
	if err != nil {
		log.Error("Failed to retrieve product", zap.Uint("product_id", productID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve product"})
	}
	if product == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
	}

	return c.JSON(http.StatusOK, product)
}

func parseUintParam(c echo.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}

func parseUserIDParam(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("user_id"), 10, 64)
}
