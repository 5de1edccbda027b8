package rest

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"smartShop/business/restock"
	"smartShop/domain"
	"smartShop/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type RestockService interface {
	AddRestock(ctx context.Context, input restock.RestockInput) (domain.Restock, error)
	History(ctx context.Context, productID string) ([]domain.Restock, error)
	ExpiringSoon(ctx context.Context, days int) ([]domain.Restock, error)
	Expired(ctx context.Context) ([]domain.Restock, error)
	Discard(ctx context.Context, restockID string) (domain.Restock, error)
}

type RestockHandler struct {
	restockService RestockService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewRestockHandler(restockService RestockService) *RestockHandler {
	return &RestockHandler{
		restockService: restockService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

func (h *RestockHandler) AddRestock(c echo.Context) error {
	var req restock.RestockInput

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate restock request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	entry, err := h.restockService.AddRestock(ctx, req)
	if err != nil {
		logger.Error("Failed to add restock", err)
		if err.Error() == "product id is required" ||
			err.Error() == "quantity must be greater than zero" ||
			err.Error() == "cost per unit cannot be negative" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		if strings.Contains(err.Error(), "product not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "restock successfully recorded",
		"restock": entry,
	})
}

func (h *RestockHandler) GetHistory(c echo.Context) error {
	productID := c.QueryParam("product_id")
	if productID == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "product_id query parameter is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	history, err := h.restockService.History(ctx, productID)
	if err != nil {
		logger.Error("Failed to find restock history", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully get restock history",
		"restocks": history,
	})
}

func (h *RestockHandler) GetExpiringSoon(c echo.Context) error {
	days := 0
	if daysStr := c.QueryParam("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil {
			logger.Error("Invalid days", err)
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		days = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	soon, err := h.restockService.ExpiringSoon(ctx, days)
	if err != nil {
		logger.Error("Failed to find expiring restocks", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully get expiring restocks",
		"restocks": soon,
	})
}

func (h *RestockHandler) GetExpired(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	expired, err := h.restockService.Expired(ctx)
	if err != nil {
		logger.Error("Failed to find expired restocks", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully get expired restocks",
		"restocks": expired,
	})
}

func (h *RestockHandler) Discard(c echo.Context) error {
	restockID := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	entry, err := h.restockService.Discard(ctx, restockID)
	if err != nil {
		logger.Error("Failed to discard restock", err)
		if strings.Contains(err.Error(), "restock not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "restock successfully discarded",
		"restock": entry,
	})
}
