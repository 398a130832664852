package company

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
	companies := r.Group("/companies")
	companies.Use(middleware.AuthMiddleware(auth))
	{
		companies.GET("", authz.Require(authzService, authz.ResourceCompany, authz.ActionRead), handler.GetAll)
		companies.GET("/:id", authz.Require(authzService, authz.ResourceCompany, authz.ActionRead), handler.GetById)
		companies.POST("", authz.Require(authzService, authz.ResourceCompany, authz.ActionCreate), handler.Create)
	}
}
