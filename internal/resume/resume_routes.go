package resume

import (
	"jobtrack/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	resumes := r.Group("/resume")
	resumes.Use(middleware.AuthMiddleware())
	{
		resumes.GET("", middleware.RateLimitByUser(5, 10), handler.GetAll)
		resumes.POST("", middleware.RateLimitByUser(1, 3), middleware.Idempotency(rdb), handler.Create)
		resumes.GET("/:id", middleware.RateLimitByUser(5, 10), handler.GetByID)
		resumes.PUT("/:id", middleware.RateLimitByUser(1, 3), handler.Update)
		resumes.PATCH("/:id", middleware.RateLimitByUser(1, 3), handler.Update)
		resumes.DELETE("/:id", middleware.RateLimitByUser(0.5, 1), handler.Delete)
	}
}
