// Package httpserver exposes the bot's status endpoint.
package httpserver

import (
	"net/http"
	"time"

	"schedule_notification_bot/internal/infra/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// New builds the HTTP server serving the status and health endpoints.
func New(cfg *config.AppConfig) *http.Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	corsHandler := cors.Default()
	router.Use(func(c *gin.Context) {
		corsHandler.HandlerFunc(c.Writer, c.Request)
		c.Next()
	})

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "running"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now(),
		})
	})

	return &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}
}
