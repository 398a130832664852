package claim

import (
	"go-benefits/internal/authz"
	"go-benefits/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	auth middleware.Authenticator,
	authzService authz.Service,
	rdb *redis.Client,
) {
	claims := r.Group("/claims")
	claims.Use(middleware.AuthMiddleware(auth))
	{
		claims.POST("",
			authz.Require(authzService, authz.ResourceClaim, authz.ActionCreate),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		claims.GET("", authz.Require(authzService, authz.ResourceClaim, authz.ActionRead), handler.GetAll)
		claims.GET("/:id", authz.Require(authzService, authz.ResourceClaim, authz.ActionRead), handler.GetById)
		claims.PUT("/:id/review", authz.Require(authzService, authz.ResourceClaim, authz.ActionReview), handler.Review)
	}
}
