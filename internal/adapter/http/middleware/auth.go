// Package middleware holds the gin middleware shared by the route groups.
package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/usecase"
	"bahia_gestao/internal/usecase/interfaces"
	"bahia_gestao/pkg"

	"github.com/gin-gonic/gin"
)

const claimsKey = "auth.claims"

var (
	errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
	errForbidden       = pkg.NewDomainErrorSimple("FORBIDDEN", "Not allowed", http.StatusForbidden)
)

// Authenticate requires a valid, non-revoked bearer token and stores its
// claims on the context.
func Authenticate(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}
		claims, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, usecase.ErrUnauthenticated) {
				c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
				return
			}
			log.Printf("[auth][middleware] authenticate failed err=%v", err)
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireAdmin must run after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}
		if claims.Role != entities.RoleAdmin {
			log.Printf("[auth][middleware] forbidden user_id=%s role=%s path=%s", claims.UserID, claims.Role, c.FullPath())
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

func ClaimsFromContext(c *gin.Context) (interfaces.TokenClaims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return interfaces.TokenClaims{}, false
	}
	claims, ok := v.(interfaces.TokenClaims)
	return claims, ok
}

// SetClaims is used by tests that exercise handlers without the middleware.
func SetClaims(c *gin.Context, claims interfaces.TokenClaims) {
	c.Set(claimsKey, claims)
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
