package authz

import (
	"go-benefits/internal/identity"
	"go-benefits/internal/shared/apperror"
	"go-benefits/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Require is the route-level role gate. It assumes the auth middleware has
// already placed an Identity in the context.
func Require(svc Service, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := identity.FromContext(c)
		if !ok {
			response.Error(c, apperror.ErrUnauthorized.HTTPStatus, apperror.ErrUnauthorized.Code, apperror.ErrUnauthorized.Message, nil)
			c.Abort()
			return
		}

		if err := svc.Authorize(id, resource, action); err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
