package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/workoflow/hrms-api/internal/services"
	"github.com/workoflow/hrms-api/pkg/utils"
)

// Context keys set by AuthRequired.
const (
	ContextUserID         = "user_id"
	ContextOrganizationID = "organization_id"
)

type AuthMiddleware struct {
	jwtService *services.JWTService
}

func NewAuthMiddleware(jwtService *services.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// AuthRequired validates the Bearer token and sets the user and organization
// ids on the request context. Missing, malformed and invalid tokens all
// produce the same 401 response.
func (m *AuthMiddleware) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Unauthenticated(c, "Authorization header is required")
			c.Abort()
			return
		}

		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || !strings.EqualFold(tokenParts[0], "bearer") {
			utils.Unauthenticated(c, "Invalid or missing token")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Validate(tokenParts[1])
		if err != nil {
			utils.Unauthenticated(c, "Invalid or missing token")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextOrganizationID, claims.OrganizationID)

		c.Next()
	}
}

// GetUserID returns the authenticated user's id from the gin context.
func GetUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// GetOrganizationID returns the authenticated user's organization id.
func GetOrganizationID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(ContextOrganizationID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
