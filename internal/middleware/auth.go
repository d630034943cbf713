package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kscst/vocational-training-backend/internal/model"
	"github.com/kscst/vocational-training-backend/internal/response"
	"github.com/kscst/vocational-training-backend/internal/service"
)

const (
	// ContextKeyPrincipal is the Gin context key for the authenticated principal.
	ContextKeyPrincipal = "principal"
)

// Authenticate resolves the request's credentials into a principal. Bearer
// tokens and Basic credentials are both accepted; Basic resolution follows
// the trainee, trainer, admin precedence and re-verifies approval status on
// every request.
func Authenticate(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrCredentialsMissing)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrCredentialsMissing)
			return
		}

		var (
			principal *service.Principal
			err       error
		)
		switch {
		case strings.EqualFold(parts[0], "bearer"):
			principal, err = authService.ValidateToken(parts[1])
			if err != nil {
				response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
				return
			}
		case strings.EqualFold(parts[0], "basic"):
			username, password, ok := c.Request.BasicAuth()
			if !ok {
				response.AbortFail(c, http.StatusUnauthorized, response.ErrCredentialsMissing)
				return
			}
			principal, err = authService.Authenticate(c.Request.Context(), username, password)
			if err != nil {
				if errors.Is(err, service.ErrNotApproved) {
					response.AbortFail(c, http.StatusUnauthorized, response.ErrNotApproved)
					return
				}
				response.AbortFail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
				return
			}
		default:
			response.AbortFail(c, http.StatusUnauthorized, response.ErrCredentialsMissing)
			return
		}

		c.Set(ContextKeyPrincipal, principal)
		c.Next()
	}
}

// RequireRole rejects principals whose role differs from the required one.
func RequireRole(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := GetPrincipal(c)
		if principal == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrCredentialsMissing)
			return
		}
		if principal.Role != role {
			response.AbortFail(c, http.StatusForbidden, response.ErrForbidden)
			return
		}
		c.Next()
	}
}

// GetPrincipal retrieves the authenticated principal from the Gin context.
func GetPrincipal(c *gin.Context) *service.Principal {
	val, exists := c.Get(ContextKeyPrincipal)
	if !exists {
		return nil
	}
	principal, ok := val.(*service.Principal)
	if !ok {
		return nil
	}
	return principal
}
