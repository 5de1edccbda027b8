package rest

import (
	"context"
	"net/http"
	"time"

	"smartShop/business/shop"
	"smartShop/domain"
	"smartShop/pkg/logger"

	"github.com/labstack/echo/v4"
)

type ShopService interface {
	Get(ctx context.Context) (domain.ShopContext, error)
	Update(ctx context.Context, update shop.ContextUpdate) (domain.ShopContext, error)
}

type ShopHandler struct {
	shopService ShopService
	timeout     time.Duration
}

func NewShopHandler(shopService ShopService) *ShopHandler {
	return &ShopHandler{
		shopService: shopService,
		timeout:     10 * time.Second,
	}
}

func (h *ShopHandler) GetContext(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	shopCtx, err := h.shopService.Get(ctx)
	if err != nil {
		logger.Error("Failed to get shop context", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":      "successfully get shop context",
		"shop_context": shopCtx,
	})
}

func (h *ShopHandler) UpdateContext(c echo.Context) error {
	var req shop.ContextUpdate

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updated, err := h.shopService.Update(ctx, req)
	if err != nil {
		logger.Error("Failed to update shop context", err)
		if err.Error() == "time format must be 12 or 24" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":      "successfully update shop context",
		"shop_context": updated,
	})
}
