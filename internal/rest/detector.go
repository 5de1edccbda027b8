package rest

import (
	"context"
	"net/http"
	"strings"
	"time"

	"smartShop/business/detector"
	"smartShop/domain"
	"smartShop/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	DetectorService interface {
		GetConfig(ctx context.Context) (domain.DetectorConfig, error)
		UpdateConfig(ctx context.Context, update detector.ConfigUpdate) (domain.DetectorConfig, error)
		RecordEvent(ctx context.Context, input detector.EventInput) (domain.DetectionEvent, error)
		Events(ctx context.Context) ([]domain.DetectionEvent, error)
		MarkEvent(ctx context.Context, eventID string, truePositive bool) (domain.DetectionEvent, error)
		Stats(ctx context.Context) (domain.DetectorStats, error)
		Pair(ctx context.Context) (string, error)
	}

	DetectorHandler struct {
		validate        *validator.Validate
		detectorService DetectorService
		timeout         time.Duration
	}

	MarkEventRequest struct {
		TruePositive *bool `json:"true_positive" validate:"required"`
	}
)

func NewDetectorHandler(detectorService DetectorService) *DetectorHandler {
	return &DetectorHandler{
		validate:        validator.New(),
		detectorService: detectorService,
		timeout:         10 * time.Second,
	}
}

func (h *DetectorHandler) GetConfig(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	cfg, err := h.detectorService.GetConfig(ctx)
	if err != nil {
		logger.Error("Failed to get detector config", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(cfg))
}

func (h *DetectorHandler) UpdateConfig(c echo.Context) error {
	var req detector.ConfigUpdate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	cfg, err := h.detectorService.UpdateConfig(ctx, req)
	if err != nil {
		logger.Error("Failed to update detector config", err)
		if strings.Contains(err.Error(), "must be between") ||
			err.Error() == "debounce cannot be negative" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(cfg))
}

func (h *DetectorHandler) RecordEvent(c echo.Context) error {
	var req detector.EventInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	event, err := h.detectorService.RecordEvent(ctx, req)
	if err != nil {
		logger.Error("Failed to record detection event", err)
		if strings.Contains(err.Error(), "must be between") {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(event))
}

func (h *DetectorHandler) GetEvents(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	events, err := h.detectorService.Events(ctx)
	if err != nil {
		logger.Error("Failed to get detection events", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(events))
}

func (h *DetectorHandler) MarkEvent(c echo.Context) error {
	eventID := c.Param("id")

	var req MarkEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	event, err := h.detectorService.MarkEvent(ctx, eventID, *req.TruePositive)
	if err != nil {
		logger.Error("Failed to mark detection event", err)
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(event))
}

func (h *DetectorHandler) GetStats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	stats, err := h.detectorService.Stats(ctx)
	if err != nil {
		logger.Error("Failed to get detector stats", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(stats))
}

func (h *DetectorHandler) Pair(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	code, err := h.detectorService.Pair(ctx)
	if err != nil {
		logger.Error("Failed to issue pairing code", err)
		if err.Error() == "pairing is not configured" {
			return c.JSON(http.StatusServiceUnavailable, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(map[string]string{
		"pairing_code": code,
	}))
}
