package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polyforge/printdesk/internal/config"
	"github.com/polyforge/printdesk/internal/server/http/handlers"
	"github.com/polyforge/printdesk/internal/server/http/middleware"
)

// formOverhead leaves room for multipart framing and the text form fields on
// top of the model file itself.
const formOverhead = 1 << 20

// Setup configures gin router with handlers and middleware. The upload cap is
// enforced at the transport: request bodies beyond the configured limit fail
// during parsing, and multipart buffering in memory is bounded as well.
func Setup(facade handlers.PrintShopFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.MaxMultipartMemory = cfg.MaxUploadBytes

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.LimitRequestSize(cfg.MaxUploadBytes + formOverhead))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	analyzeHandler := handlers.NewAnalyzeHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade, cfg.MaxUploadBytes)

	api := engine.Group("/api")
	api.POST("/analyze-model", analyzeHandler.Analyze)
	api.POST("/orders", orderHandler.Create)
	api.GET("/orders", orderHandler.List)
	api.GET("/orders/:id", orderHandler.Get)
	api.PATCH("/orders/:id", orderHandler.Patch)

	return engine
}
