package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey    = contextKey("userID")
	companyIDKey = contextKey("companyID")
)

// WithIdentity returns a copy of ctx carrying the caller's user and company ids.
func WithIdentity(ctx context.Context, userID, companyID string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, companyIDKey, companyID)
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	return stringFromContext(c, userIDKey)
}

// GetCompanyIDFromContext retrieves the caller's company ID from the Gin context.
func GetCompanyIDFromContext(c *gin.Context) (string, bool) {
	return stringFromContext(c, companyIDKey)
}

func stringFromContext(c *gin.Context, key contextKey) (string, bool) {
	if v, exists := c.Get(string(key)); exists {
		s, ok := v.(string)
		return s, ok && s != ""
	}
	if c.Request == nil {
		return "", false
	}
	s, ok := c.Request.Context().Value(key).(string)
	return s, ok && s != ""
}

// IdentityFromCtx returns the user and company ids stored by WithIdentity, or empty strings.
func IdentityFromCtx(ctx context.Context) (userID, companyID string) {
	userID, _ = ctx.Value(userIDKey).(string)
	companyID, _ = ctx.Value(companyIDKey).(string)
	return userID, companyID
}
