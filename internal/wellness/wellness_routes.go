package wellness

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
	partners := r.Group("/wellness-partners")
	{
		// The partner catalog is public. Reads need no token at all.
		partners.GET("", handler.GetAll)
		partners.GET("/:id", handler.GetById)

		partners.POST("",
			middleware.AuthMiddleware(auth),
			authz.Require(authzService, authz.ResourceWellnessPartner, authz.ActionCreate),
			handler.Create,
		)
		partners.PUT("/:id",
			middleware.AuthMiddleware(auth),
			authz.Require(authzService, authz.ResourceWellnessPartner, authz.ActionUpdate),
			handler.Update,
		)
	}
}
