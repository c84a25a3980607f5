package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RouterConfig wires the handler and the CORS allow-list into the engine.
type RouterConfig struct {
	Handler      *Handler
	AllowOrigins []string
}

// NewRouter builds the gin engine. Recovery is installed explicitly instead
// of gin.Default so request logging stays with zap.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	corsCfg := cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "X-Requested-With"},
	}
	if len(origins) == 1 && origins[0] == "*" {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowOrigins = nil
	}
	router.Use(cors.New(corsCfg))

	router.GET("/healthcheck", cfg.Handler.HealthCheck)
	router.POST("/analyze", cfg.Handler.Analyze)
	router.POST("/rollback", cfg.Handler.Rollback)

	return router
}
