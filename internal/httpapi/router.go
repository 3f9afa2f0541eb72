// Package httpapi exposes the sky geometry engine over HTTP.
package httpapi

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/paleosky/paleosky/internal/catalog"
	"github.com/paleosky/paleosky/internal/config"
)

// SetupRouter creates and configures the Gin router.
func SetupRouter(cfg config.Config, cat *catalog.Catalog) *gin.Engine {
	router := gin.Default()

	// CORS: allow-all unless the environment narrows it.
	corsConfig := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))

	handler := NewHandler(cfg, cat)

	v1 := router.Group("/v1")
	v1.GET("/position", handler.GetPosition)
	v1.GET("/sky", handler.GetSky)
	v1.GET("/dawn", handler.GetDawn)
	v1.GET("/transit", handler.GetTransit)
	v1.GET("/alignment", handler.GetAlignment)

	router.GET("/healthz", handler.HealthCheck)

	return router
}
