package rest

import (
	"context"
	"net/http"
	"strings"
	"time"

	"smartShop/business/inventory"
	"smartShop/domain"
	"smartShop/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type InventoryService interface {
	CreateProduct(ctx context.Context, input inventory.ProductInput) (domain.Product, error)
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, id string, update inventory.ProductUpdate) (domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	AdjustStock(ctx context.Context, id string, delta int) (domain.Product, error)
	LowStock(ctx context.Context) ([]domain.Product, error)
	ImportShelf(ctx context.Context, imageURI string) ([]domain.Product, error)
}

type ProductHandler struct {
	inventoryService InventoryService
	validator        *validator.Validate
	timeout          time.Duration
}

func NewProductHandler(inventoryService InventoryService) *ProductHandler {
	return &ProductHandler{
		inventoryService: inventoryService,
		validator:        validator.New(),
		timeout:          10 * time.Second,
	}
}

type AdjustStockRequest struct {
	Delta int `json:"delta" validate:"required"`
}

type ImportShelfRequest struct {
	ImageURI string `json:"image_uri" validate:"required"`
}

func (h *ProductHandler) GetAllProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.inventoryService.ListProducts(ctx)
	if err != nil {
		logger.Error("Failed to find all products", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully get all products",
		"products": products,
	})
}

func (h *ProductHandler) GetProductByID(c echo.Context) error {
	productID := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product, err := h.inventoryService.GetProduct(ctx, productID)
	if err != nil {
		if err.Error() == "product not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully find product by id",
		"product": product,
	})
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req inventory.ProductInput

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate product request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	newProduct, err := h.inventoryService.CreateProduct(ctx, req)
	if err != nil {
		logger.Error("Failed to create product", err)
		if err.Error() == "product name is required" ||
			err.Error() == "product price must be greater than zero" ||
			err.Error() == "product stock cannot be negative" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "product successfully created",
		"product": newProduct,
	})
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	productID := c.Param("id")

	var req inventory.ProductUpdate
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updated, err := h.inventoryService.UpdateProduct(ctx, productID, req)
	if err != nil {
		logger.Error("Failed to update product", err)
		if strings.Contains(err.Error(), "product not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if err.Error() == "product name is required" ||
			err.Error() == "product price must be greater than zero" ||
			err.Error() == "product stock cannot be negative" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully update product",
		"product": updated,
	})
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	productID := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.inventoryService.DeleteProduct(ctx, productID); err != nil {
		logger.Error("Failed to delete product", err)
		if strings.Contains(err.Error(), "product not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "product successfully deleted",
		"product_id": productID,
	})
}

func (h *ProductHandler) AdjustStock(c echo.Context) error {
	productID := c.Param("id")

	var req AdjustStockRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate adjust stock request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product, err := h.inventoryService.AdjustStock(ctx, productID, req.Delta)
	if err != nil {
		logger.Error("Failed to adjust stock", err)
		if strings.Contains(err.Error(), "product not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if err.Error() == "stock cannot go negative" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully adjust stock",
		"product": product,
	})
}

func (h *ProductHandler) GetLowStock(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.inventoryService.LowStock(ctx)
	if err != nil {
		logger.Error("Failed to find low stock products", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully get low stock products",
		"products": products,
	})
}

func (h *ProductHandler) ImportShelf(c echo.Context) error {
	var req ImportShelfRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate import shelf request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	// vision analysis can take a while, give it more room than usual
	ctx, cancel := context.WithTimeout(c.Request().Context(), 60*time.Second)
	defer cancel()

	created, err := h.inventoryService.ImportShelf(ctx, req.ImageURI)
	if err != nil {
		logger.Error("Failed to import shelf photo", err)
		if err.Error() == "shelf analysis is not configured" {
			return c.JSON(http.StatusServiceUnavailable, ResponseError{Message: err.Error()})
		}
		if err.Error() == "image uri is required" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":  "shelf import complete",
		"products": created,
	})
}
