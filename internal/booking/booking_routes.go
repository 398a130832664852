package booking

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
	bookings := r.Group("/bookings")
	bookings.Use(middleware.AuthMiddleware(auth))
	{
		bookings.POST("", authz.Require(authzService, authz.ResourceBooking, authz.ActionCreate), handler.Create)
		bookings.GET("", authz.Require(authzService, authz.ResourceBooking, authz.ActionRead), handler.GetAll)
		bookings.PUT("/:id/status", authz.Require(authzService, authz.ResourceBooking, authz.ActionUpdate), handler.UpdateStatus)
	}
}
