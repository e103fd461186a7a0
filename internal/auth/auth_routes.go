package auth

import (
	"jobtrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", middleware.RateLimitByIP(0.5, 3), handler.Register)
		auth.POST("/login", middleware.RateLimitByIP(0.5, 5), handler.Login)
		auth.POST("/refresh", handler.Refresh)
	}

	r.GET("/users", middleware.AuthMiddleware(), handler.ListUsers)
}
