package dashboard

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
	dash := r.Group("/dashboard")
	dash.Use(middleware.AuthMiddleware(auth))
	{
		dash.GET("/stats", authz.Require(authzService, authz.ResourceDashboard, authz.ActionRead), handler.GetStats)
	}
}
