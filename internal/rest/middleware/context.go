package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/quotedesk/quotedesk/internal/types"
)

// RequestIDMiddleware stamps every request with a generated request id and
// seeds the tenant/user context used by logging and audit fields. The
// X-Tenant-ID and X-User-ID headers are honored when present; otherwise the
// defaults apply.
func RequestIDMiddleware(c *gin.Context) {
	ctx := c.Request.Context()

	requestID := types.GenerateUUIDWithPrefix(types.UUID_PREFIX_REQUEST)
	ctx = types.SetRequestID(ctx, requestID)
	c.Header(types.HeaderRequestID, requestID)

	tenantID := c.GetHeader(types.HeaderTenantID)
	if tenantID == "" {
		tenantID = types.DefaultTenantID
	}
	ctx = types.SetTenantID(ctx, tenantID)
	c.Set("tenant_id", tenantID)

	if userID := c.GetHeader(types.HeaderUserID); userID != "" {
		ctx = types.SetUserID(ctx, userID)
		c.Set("user_id", userID)
	}

	c.Request = c.Request.WithContext(ctx)
	c.Next()
}
