package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"greencart/shophub/internal/config"
	"greencart/shophub/internal/handler/middleware"
)

func SetupRouter(
	cfg *config.Config,
	logger *zap.Logger,
	productHandler *ProductHandler,
	cartHandler *CartHandler,
	adHandler *AdHandler,
	challengeHandler *ChallengeHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORS))

	// Health check
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"message":   "Server is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	r.POST("/deliver-ad", adHandler.Deliver)

	r.GET("/products", productHandler.List)
	r.GET("/products/:id", productHandler.Get)

	r.POST("/game-challenge", challengeHandler.Play)

	r.GET("/cart/:userId", cartHandler.Get)
	r.POST("/cart/update", cartHandler.Update)

	return r
}
