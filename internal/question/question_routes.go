package question

import (
	"jobtrack/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	questions := r.Group("/question")
	questions.Use(middleware.AuthMiddleware())
	{
		questions.GET("", middleware.RateLimitByUser(5, 10), handler.GetAll)
		questions.POST("", middleware.RateLimitByUser(1, 3), middleware.Idempotency(rdb), handler.Create)
		questions.GET("/:id", middleware.RateLimitByUser(5, 10), handler.GetByID)
		questions.PUT("/:id", middleware.RateLimitByUser(1, 3), handler.Update)
		questions.PATCH("/:id", middleware.RateLimitByUser(1, 3), handler.Update)
		questions.DELETE("/:id", middleware.RateLimitByUser(0.5, 1), handler.Delete)
	}
}
