package company

import (
	"jobtrack/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	companies := r.Group("/company")
	companies.Use(middleware.AuthMiddleware())
	{
		companies.GET("", middleware.RateLimitByUser(5, 10), handler.GetAll)
		companies.POST("", middleware.RateLimitByUser(1, 3), middleware.Idempotency(rdb), handler.Create)
		companies.GET("/:id", middleware.RateLimitByUser(5, 10), handler.GetByID)
		companies.PUT("/:id", middleware.RateLimitByUser(1, 3), handler.Update)
		companies.PATCH("/:id", middleware.RateLimitByUser(1, 3), handler.Update)
		companies.DELETE("/:id", middleware.RateLimitByUser(0.5, 1), handler.Delete)
	}
}
