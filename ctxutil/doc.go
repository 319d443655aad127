// Package ctxutil carries request-scoped values (trace id, outgoing request
// id, user id) on context.Context for logging and tracing.
//
//	ctx, traceID := ctxutil.EnsureTraceID(ctx)
//	ctx, reqID := ctxutil.EnsureRequestID(ctx)
package ctxutil
