package employee

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
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware(auth))
	{
		employees.GET("", authz.Require(authzService, authz.ResourceEmployee, authz.ActionRead), handler.GetAll)
		employees.GET("/:id", authz.Require(authzService, authz.ResourceEmployee, authz.ActionRead), handler.GetById)
		employees.POST("", authz.Require(authzService, authz.ResourceEmployee, authz.ActionCreate), handler.Create)
		employees.PUT("/:id", authz.Require(authzService, authz.ResourceEmployee, authz.ActionUpdate), handler.Update)
		employees.DELETE("/:id", authz.Require(authzService, authz.ResourceEmployee, authz.ActionDelete), handler.Delete)
	}
}
