package rest

import (
	"context"
	"net/http"

	"smartShop/domain"

	"github.com/labstack/echo/v4"
)

type RecommenderAdminService interface {
	ConfigSnapshot(ctx context.Context) domain.RecommenderConfig
	SaveConfig(ctx context.Context, cfg domain.RecommenderConfig) error
}

type RecommenderAdminHandler struct {
	adminService RecommenderAdminService
}

func NewRecommenderAdminHandler(adminService RecommenderAdminService) *RecommenderAdminHandler {
	return &RecommenderAdminHandler{
		adminService: adminService,
	}
}

// GET /api/v1/admin/recommender/config
func (h *RecommenderAdminHandler) GetConfig(c echo.Context) error {
	ctx := c.Request().Context()

	cfg := h.adminService.ConfigSnapshot(ctx)

	return c.JSON(http.StatusOK, cfg)
}

// PUT /api/v1/admin/recommender/config
// body: RecommenderConfig JSON; zero fields keep the built-in defaults
func (h *RecommenderAdminHandler) UpsertConfig(c echo.Context) error {
	ctx := c.Request().Context()

	var body domain.RecommenderConfig
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid body: " + err.Error(),
		})
	}

	if err := h.adminService.SaveConfig(ctx, body); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "ok",
	})
}
