package middleware

import (
	"log/slog"
	"slices"

	"mask-ledger/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware treats CORS_ALLOW_ORIGINS="*" as allow-all, which cannot
// be combined with credentials.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}
	slog.Info("CORS middleware initialized",
		"AllowOrigins", cfg.AllowOrigins,
		"AllowAllOrigins", corsCfg.AllowAllOrigins,
		"AllowMethods", cfg.AllowMethods)
	return cors.New(corsCfg)
}
