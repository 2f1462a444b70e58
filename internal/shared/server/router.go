package server

import (
	"github.com/gin-gonic/gin"

	"github.com/just-manoj/PathoAi-API/internal/analyses"
	"github.com/just-manoj/PathoAi-API/internal/shared/config"
	"github.com/just-manoj/PathoAi-API/internal/shared/server/middleware"
	"github.com/just-manoj/PathoAi-API/internal/shared/server/respond"
	"github.com/just-manoj/PathoAi-API/internal/usage"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	AnalysesHandler *analyses.Handler
	UsageHandler    *usage.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, deps RouterDeps) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	r.GET("/health", func(c *gin.Context) {
		respond.OK(c, cfg.AppName, gin.H{"ok": true})
	})
	deps.AnalysesHandler.RegisterRoutes(r)
	deps.UsageHandler.RegisterRoutes(r)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
