package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"walletmart/internal/delivery/http/middleware"
	"walletmart/internal/delivery/http/response"
	"walletmart/internal/domain/entity"
	"walletmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ProductHandler holds dependencies for catalog handlers.
type ProductHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

type createProductRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	MRP         decimal.Decimal `json:"mrp"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"image_url"`
}

// CreateProduct lists a new product under the current merchant.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req *createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), userID, &usecase.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		MRP:         req.MRP,
		Stock:       req.Stock,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductPayload(product), "Product created successfully")
}

type updateProductRequest struct {
	Name        *string               `json:"name"`
	Description *string               `json:"description"`
	Price       *decimal.Decimal      `json:"price"`
	MRP         *decimal.Decimal      `json:"mrp"`
	Stock       *int                  `json:"stock"`
	Category    *string               `json:"category"`
	ImageURL    *string               `json:"image_url"`
	Status      *entity.ProductStatus `json:"status"`
}

// UpdateProduct applies partial changes to one of the merchant's products.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, err := pathID(c, "productID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	var req *updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), userID, productID, &usecase.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		MRP:         req.MRP,
		Stock:       req.Stock,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Status:      req.Status,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductPayload(product), "Product updated successfully")
}

// GetProduct retrieves a single product.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := pathID(c, "productID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductPayload(product), "Product retrieved successfully")
}

// ListProducts lists every active product, optionally filtered by category.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	var (
		products []*entity.Product
		err      error
	)

	if category := c.QueryParam("category"); category != "" {
		products, err = h.uc.ListByCategory(c.Request().Context(), category)
	} else {
		products, err = h.uc.ListProducts(c.Request().Context())
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductPayloads(products), "Products retrieved successfully")
}

// ListFeatured lists discounted products, biggest discount first.
func (h *ProductHandler) ListFeatured(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	products, err := h.uc.ListFeatured(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductPayloads(products), "Featured products retrieved successfully")
}

// Categories lists the distinct categories of active products.
func (h *ProductHandler) Categories(c echo.Context) error {
	categories, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "Categories retrieved successfully")
}

// ListMerchantProducts lists the current merchant's catalog, inactive
// entries included.
func (h *ProductHandler) ListMerchantProducts(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	products, err := h.uc.ListMerchantProducts(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductPayloads(products), "Merchant products retrieved successfully")
}
