package router

import (
	"net/http"

	"smartShop/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)

	users.GET("/me", handler.Me, authRequired)
}

func SetupSuggestionRoutes(api *echo.Group, handler *rest.SuggestionHandler, authRequired echo.MiddlewareFunc) {
	suggestions := api.Group("/suggestions", authRequired)

	suggestions.POST("", handler.Suggest)
	suggestions.POST("/confirm", handler.Confirm)
}

func SetupListenRoutes(api *echo.Group, handler *rest.ListenHandler, authRequired echo.MiddlewareFunc) {
	api.POST("/listen", handler.Listen, authRequired)
}

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler, authRequired echo.MiddlewareFunc) {
	products := api.Group("/products", authRequired)

	products.GET("", handler.GetAllProducts)
	products.GET("/low-stock", handler.GetLowStock)
	products.GET("/:id", handler.GetProductByID)
	products.POST("", handler.CreateProduct)
	products.POST("/import-shelf", handler.ImportShelf)
	products.POST("/:id/stock", handler.AdjustStock)
	products.PUT("/:id", handler.UpdateProduct)
	products.DELETE("/:id", handler.DeleteProduct)
}

func SetupSalesRoutes(api *echo.Group, handler *rest.SalesHandler, authRequired echo.MiddlewareFunc) {
	sales := api.Group("/sales", authRequired)

	sales.GET("", handler.GetRecentSales)
	sales.GET("/summary", handler.GetSummary)
}

func SetupRestockRoutes(api *echo.Group, handler *rest.RestockHandler, authRequired echo.MiddlewareFunc) {
	restocks := api.Group("/restocks", authRequired)

	restocks.POST("", handler.AddRestock)
	restocks.GET("", handler.GetHistory)
	restocks.GET("/expiring", handler.GetExpiringSoon)
	restocks.GET("/expired", handler.GetExpired)
	restocks.POST("/:id/discard", handler.Discard)
}

func SetupShopRoutes(api *echo.Group, handler *rest.ShopHandler, authRequired echo.MiddlewareFunc) {
	shop := api.Group("/shop", authRequired)

	shop.GET("/context", handler.GetContext)
	shop.PUT("/context", handler.UpdateContext)
}

// SetupDetectorRoutes splits the detector surface in two: the owner-facing
// endpoints sit behind the usual auth, while event ingestion is called by the
// paired device itself and authenticates with its pairing code.
func SetupDetectorRoutes(api *echo.Group, handler *rest.DetectorHandler, authRequired, pairedDevice echo.MiddlewareFunc) {
	detector := api.Group("/detector")

	detector.GET("/config", handler.GetConfig, authRequired)
	detector.PUT("/config", handler.UpdateConfig, authRequired)
	detector.POST("/pair", handler.Pair, authRequired)
	detector.GET("/events", handler.GetEvents, authRequired)
	detector.POST("/events/:id/mark", handler.MarkEvent, authRequired)
	detector.GET("/stats", handler.GetStats, authRequired)

	detector.POST("/events", handler.RecordEvent, pairedDevice)
}

func SetupRecommenderAdminRoutes(api *echo.Group, handler *rest.RecommenderAdminHandler, authRequired, ownerOnly echo.MiddlewareFunc) {
	admin := api.Group("/admin/recommender", authRequired, ownerOnly)

	admin.GET("/config", handler.GetConfig)
	admin.PUT("/config", handler.UpsertConfig)
}

func SetupOpsRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
