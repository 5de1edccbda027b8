package rest

import (
	"context"
	"net/http"
	"time"

	"smartShop/business/listen"
	"smartShop/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type ListenService interface {
	Listen(ctx context.Context, input listen.ListenInput) (listen.ListenResult, error)
}

type ListenHandler struct {
	listenService ListenService
	timeout       time.Duration
}

func NewListenHandler(listenService ListenService) *ListenHandler {
	return &ListenHandler{
		listenService: listenService,
		// transcription may call out to a remote model
		timeout: 30 * time.Second,
	}
}

func (h *ListenHandler) Listen(c echo.Context) error {
	var req listen.ListenInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.listenService.Listen(ctx, req)
	if err != nil {
		logger.Error("Failed to handle listen request", err)
		if err.Error() == "transcript or audio uri is required" ||
			err.Error() == "no amount found in transcript" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		if err.Error() == "speech transcription is not configured" {
			return c.JSON(http.StatusServiceUnavailable, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}
