package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"smartShop/business/sales"
	"smartShop/domain"
	"smartShop/pkg/logger"

	"github.com/labstack/echo/v4"
)

type SalesService interface {
	RecordSale(ctx context.Context, amount float64, items []domain.SaleItemRequest) (domain.Sale, error)
	RecentSales(ctx context.Context, limit int) ([]domain.Sale, error)
	DailySummary(ctx context.Context) (sales.Summary, error)
}

type SalesHandler struct {
	salesService SalesService
	timeout      time.Duration
}

func NewSalesHandler(salesService SalesService) *SalesHandler {
	return &SalesHandler{
		salesService: salesService,
		timeout:      10 * time.Second,
	}
}

func (h *SalesHandler) GetRecentSales(c echo.Context) error {
	limit := 0
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			logger.Error("Invalid limit", err)
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		limit = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recent, err := h.salesService.RecentSales(ctx, limit)
	if err != nil {
		logger.Error("Failed to find recent sales", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get recent sales",
		"sales":   recent,
	})
}

func (h *SalesHandler) GetSummary(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	summary, err := h.salesService.DailySummary(ctx)
	if err != nil {
		logger.Error("Failed to build sales summary", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get sales summary",
		"summary": summary,
	})
}
