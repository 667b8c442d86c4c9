package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"

	"mask-ledger/internal/handler/api"
	"mask-ledger/internal/handler/middleware"
	"mask-ledger/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler registered on the engine.
type Handlers struct {
	User        *api.UserHandler
	Pharmacy    *api.PharmacyHandler
	Mask        *api.MaskHandler
	OpeningHour *api.OpeningHourHandler
	Transaction *api.TransactionHandler
	Search      *api.SearchHandler
}

// NewRouter installs middleware and routes. purchaseLimiter may be nil to
// disable rate limiting on POST /purchase/.
func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, purchaseLimiter *limiter.Limiter) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, purchaseLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, purchaseLimiter *limiter.Limiter) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	var purchaseMw []gin.HandlerFunc
	if purchaseLimiter != nil {
		purchaseMw = append(purchaseMw, middleware.RateLimit(purchaseLimiter))
	}

	root := engine.Group("")
	addRoutes(root, []route{
		{Method: http.MethodGet, Path: "/users/", Handler: h.User.List},
		{Method: http.MethodGet, Path: "/users/top/", Handler: h.User.Top},
		{Method: http.MethodGet, Path: "/pharmacies/", Handler: h.Pharmacy.List},
		{Method: http.MethodGet, Path: "/pharmacies/open/", Handler: h.Pharmacy.OpenAt},
		{Method: http.MethodGet, Path: "/pharmacies/mask-filter/", Handler: h.Pharmacy.FilterByMaskCount},
		{Method: http.MethodGet, Path: "/pharmacies/:id/masks/", Handler: h.Pharmacy.Masks},
		{Method: http.MethodGet, Path: "/opening-hours/", Handler: h.OpeningHour.List},
		{Method: http.MethodGet, Path: "/masks/", Handler: h.Mask.List},
		{Method: http.MethodGet, Path: "/transactions/", Handler: h.Transaction.List},
		{Method: http.MethodGet, Path: "/transactions/summary/", Handler: h.Transaction.Summary},
		{Method: http.MethodGet, Path: "/search/", Handler: h.Search.Search},
		{Method: http.MethodPost, Path: "/purchase/", Handler: h.Transaction.Purchase, Mw: purchaseMw},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
