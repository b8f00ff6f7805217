package types

import "context"

type ContextKey string

const (
	CtxRequestID ContextKey = "ctx_request_id"
	CtxTenantID  ContextKey = "ctx_tenant_id"
	CtxUserID    ContextKey = "ctx_user_id"
)

// DefaultTenantID is used for single-tenant deployments and scripts where no
// tenant header is present.
const DefaultTenantID = "tenant_default"

func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, CtxRequestID, requestID)
}

func SetTenantID(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, CtxTenantID, tenantID)
}

func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, CtxUserID, userID)
}

func GetRequestID(ctx context.Context) string {
	return ctxValueString(ctx, CtxRequestID)
}

func GetTenantID(ctx context.Context) string {
	if v := ctxValueString(ctx, CtxTenantID); v != "" {
		return v
	}
	return DefaultTenantID
}

func GetUserID(ctx context.Context) string {
	return ctxValueString(ctx, CtxUserID)
}

func ctxValueString(ctx context.Context, key ContextKey) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}
