package financial

import (
	"go-benefits/internal/authz"
	"go-benefits/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	auth middleware.Authenticator,
	authzService authz.Service,
) {
	financials := r.Group("/financials")
	financials.Use(middleware.AuthMiddleware(auth))
	{
		financials.POST("", authz.Require(authzService, authz.ResourceFinancial, authz.ActionCreate), handler.Create)
		financials.GET("", authz.Require(authzService, authz.ResourceFinancial, authz.ActionRead), handler.GetAll)
	}
}
