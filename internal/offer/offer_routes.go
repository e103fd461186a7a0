package offer

import (
	"jobtrack/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	offers := r.Group("/offer")
	offers.Use(middleware.AuthMiddleware())
	{
		offers.GET("", middleware.RateLimitByUser(5, 10), handler.GetAll)
		offers.POST("", middleware.RateLimitByUser(1, 3), middleware.Idempotency(rdb), handler.Create)
		offers.GET("/:id", middleware.RateLimitByUser(5, 10), handler.GetByID)
		offers.PUT("/:id", middleware.RateLimitByUser(1, 3), handler.Update)
		offers.PATCH("/:id", middleware.RateLimitByUser(1, 3), handler.Update)
		offers.DELETE("/:id", middleware.RateLimitByUser(0.5, 1), handler.Delete)
	}
}
