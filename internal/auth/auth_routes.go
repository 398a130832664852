package auth

import (
	"go-benefits/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, svc Service) {
	authGroup := r.Group("/auth")
	authGroup.Use(middleware.RateLimitByIP(rate.Limit(5), 10))
	{
		authGroup.POST("/register", handler.Register)
		authGroup.POST("/login", handler.Login)
		authGroup.GET("/me", middleware.AuthMiddleware(svc), handler.GetMe)
	}
}
