package appctx

import "context"

type requestContextKey struct{}

// WithRequestContext stores rc in ctx.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// FromContext returns the RequestContext stored in ctx, or nil.
func FromContext(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(requestContextKey{}).(*RequestContext)
	return rc
}

// ForRequest returns the open RequestContext carried by ctx, or a new one
// when ctx carries none or the carried one was already committed.
func ForRequest(ctx context.Context) *RequestContext {
	if rc := FromContext(ctx); rc != nil && !rc.Committed() {
		return rc
	}
	return New(ctx)
}
