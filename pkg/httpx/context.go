package httpx

import "context"

type ctxKey string

const (
	// CtxKeyUserID carries the verified account id of the caller, attached by
	// AuthnMiddleware.
	CtxKeyUserID ctxKey = "user_id"

	// CtxKeyProfileID carries the id of the account a /{id} route targets,
	// attached by the resource-loader step.
	CtxKeyProfileID ctxKey = "profile_id"
)

// UserIDFromCtx returns the authenticated account id, or "" when the request
// did not pass the authentication gate.
func UserIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}

// ProfileIDFromCtx returns the loaded target account id, or "".
func ProfileIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyProfileID).(string); ok {
		return v
	}
	return ""
}
