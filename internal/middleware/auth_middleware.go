package middleware

import (
	"context"
	"net/http"
	"strings"

	"go-benefits/internal/identity"
	"go-benefits/internal/shared/apperror"
	"go-benefits/internal/shared/contextutil"
	"go-benefits/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Authenticator is a local interface so this package does not depend on the
// auth module. Anything with the Authenticate method fits.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (identity.Identity, error)
}

func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Token not found", nil)
			c.Abort()
			return
		}

		id, err := auth.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			c.Abort()
			return
		}

		identity.SetContext(c, id)

		ctx := contextutil.WithUserID(c.Request.Context(), id.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
