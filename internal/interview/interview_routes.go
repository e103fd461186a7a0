package interview

import (
	"jobtrack/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	interviews := r.Group("/interview")
	interviews.Use(middleware.AuthMiddleware())
	{
		interviews.GET("", middleware.RateLimitByUser(5, 10), handler.GetAll)
		interviews.POST("", middleware.RateLimitByUser(1, 3), middleware.Idempotency(rdb), handler.Create)
		interviews.GET("/:id", middleware.RateLimitByUser(5, 10), handler.GetByID)
		interviews.PUT("/:id", middleware.RateLimitByUser(1, 3), handler.Update)
		interviews.PATCH("/:id", middleware.RateLimitByUser(1, 3), handler.Update)
		interviews.DELETE("/:id", middleware.RateLimitByUser(0.5, 1), handler.Delete)
	}
}
