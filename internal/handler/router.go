package handler

import (
	"net/http"

	"lucky-draw/internal/handler/api"
	"lucky-draw/internal/handler/httperr"
	"lucky-draw/internal/handler/middleware"
	"lucky-draw/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const msgKeepAlive = "Server is alive"

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// NewRouter wires middleware and routes onto engine. reg may be nil when
// metrics are disabled.
func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, reg *prometheus.Registry, redemptionHandler *api.RedemptionHandler) {
	setupMiddleware(engine, cfg, logger, reg)
	setupRoutes(engine, cfg, reg, redemptionHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, reg *prometheus.Registry) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	if cfg.Metrics.Enabled && reg != nil {
		engine.Use(middleware.NewMetricsBuilder(reg).Build())
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, reg *prometheus.Registry, redemptionHandler *api.RedemptionHandler) {
	engine.GET("/keep-alive", keepAlive)

	if cfg.Metrics.Enabled && reg != nil {
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodPost, Path: "/check-order-number", Handler: redemptionHandler.CheckOrderNumber},
		{Method: http.MethodPost, Path: "/record-draw-result", Handler: redemptionHandler.RecordDrawResult},
	})

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, httperr.NewResponse(http.StatusNotFound, "Not found"))
	})
}

// @Summary Keep alive
// @Description Liveness probe used to keep the instance warm
// @Tags health
// @Produce plain
// @Success 200 {string} string "Server is alive"
// @Router /keep-alive [get]
func keepAlive(c *gin.Context) {
	c.String(http.StatusOK, msgKeepAlive)
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
