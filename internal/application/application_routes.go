package application

import (
	"jobtrack/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	applications := r.Group("/application")
	applications.Use(middleware.AuthMiddleware())
	{
		applications.GET("", middleware.RateLimitByUser(5, 10), handler.GetAll)
		applications.POST("", middleware.RateLimitByUser(1, 3), middleware.Idempotency(rdb), handler.Create)
		applications.GET("/:id", middleware.RateLimitByUser(5, 10), handler.GetByID)
		applications.PUT("/:id", middleware.RateLimitByUser(1, 3), handler.Update)
		applications.PATCH("/:id", middleware.RateLimitByUser(1, 3), handler.Update)
		applications.DELETE("/:id", middleware.RateLimitByUser(0.5, 1), handler.Delete)
	}
}
