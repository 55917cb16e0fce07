// Package requestcontext provides HTTP-independent context accessors for
// request-scoped values.
//
// Middleware sets these values; the guard and services read them. Keeping the
// package free of net/http lets domain code stay transport-agnostic.
//
// Usage in services (read values):
//
//	requestID := requestcontext.RequestID(ctx)
//	proof := requestcontext.Proof(ctx)
//
// Usage in middleware (set values):
//
//	ctx = requestcontext.WithRequestID(ctx, requestID)
//	ctx = requestcontext.WithProof(ctx, proof)
//
// Usage in tests (inject values):
//
//	ctx = requestcontext.WithTime(ctx, fixedTime)
package requestcontext

import (
	"context"
	"time"
)

// CallProof is the credential the transport extracted from the enclosing
// invocation: the bytes the caller authorized and the detached credential
// proving it (an Ed25519 signature or a bearer token, depending on the
// configured authenticator).
type CallProof struct {
	// Payload is the canonical byte representation of the call, as signed.
	Payload []byte
	// Credential is the proof material: a raw signature or a compact token.
	Credential string
}

// IsZero reports whether no proof accompanied the invocation.
func (p CallProof) IsZero() bool {
	return len(p.Payload) == 0 && p.Credential == ""
}

// Context key types (unexported for encapsulation).
type (
	requestIDKey   struct{}
	requestTimeKey struct{}
	proofKey       struct{}
)

// Exported context keys for tests that need context.WithValue directly.
var (
	ContextKeyRequestID   = requestIDKey{}
	ContextKeyRequestTime = requestTimeKey{}
	ContextKeyProof       = proofKey{}
)

// RequestID retrieves the request ID from the context.
func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return reqID
	}
	return ""
}

// WithRequestID injects a request ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// Proof retrieves the invocation's call proof from the context. Returns the
// zero value when the transport attached none.
func Proof(ctx context.Context) CallProof {
	if p, ok := ctx.Value(ContextKeyProof).(CallProof); ok {
		return p
	}
	return CallProof{}
}

// WithProof injects a call proof into the context.
func WithProof(ctx context.Context, proof CallProof) context.Context {
	return context.WithValue(ctx, ContextKeyProof, proof)
}

// Now retrieves the request-scoped time from context. Falls back to
// time.Now() for non-HTTP contexts (workers, CLI, tests).
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ContextKeyRequestTime).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context. Useful for service unit
// tests that don't run the full HTTP middleware chain.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyRequestTime, t)
}
