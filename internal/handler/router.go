package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"booking-bot/internal/handler/api"
	"booking-bot/internal/handler/middleware"
	"booking-bot/internal/pkg/config"
)

func NewRouter(engine *gin.Engine, cfg config.Config, eventsHandler *api.EventsHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, eventsHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
}

func setupRoutes(engine *gin.Engine, eventsHandler *api.EventsHandler) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		apiGroup.POST("/events", eventsHandler.HandleEvent)
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
