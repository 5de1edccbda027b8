package rest

import (
	"context"
	"net/http"
	"time"

	"smartShop/domain"
	"smartShop/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	SuggestionHandler struct {
		validate     *validator.Validate
		suggester    Suggester
		salesService SalesService
		timeout      time.Duration
	}

	Suggester interface {
		Suggest(ctx context.Context, amount float64) ([]domain.SuggestedCombination, error)
	}

	SuggestRequest struct {
		Amount float64 `json:"amount" validate:"required,gt=0"`
	}

	ConfirmSaleRequest struct {
		Amount float64                  `json:"amount" validate:"required,gt=0"`
		Items  []domain.SaleItemRequest `json:"items" validate:"required,min=1,dive"`
	}
)

func NewSuggestionHandler(suggester Suggester, salesService SalesService) *SuggestionHandler {
	return &SuggestionHandler{
		validate:     validator.New(),
		suggester:    suggester,
		salesService: salesService,
		timeout:      10 * time.Second,
	}
}

func (h *SuggestionHandler) Suggest(c echo.Context) error {
	var req SuggestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	suggestions, err := h.suggester.Suggest(ctx, req.Amount)
	if err != nil {
		logger.Error("Failed to suggest combinations", err)
		if err.Error() == "amount must be greater than zero" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(suggestions))
}

func (h *SuggestionHandler) Confirm(c echo.Context) error {
	var req ConfirmSaleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	sale, err := h.salesService.RecordSale(ctx, req.Amount, req.Items)
	if err != nil {
		logger.Error("Failed to record sale", err)
		if err.Error() == "amount must be greater than zero" ||
			err.Error() == "sale must contain at least one item" ||
			err.Error() == "item quantity must be greater than zero" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusUnprocessableEntity, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(sale))
}
