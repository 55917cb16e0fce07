// Package auth verifies that an invocation was actually authorized by the
// principal it claims to come from. Role membership is a separate concern;
// see the guard for how the two checks compose.
package auth

import (
	"context"

	"warden/pkg/domain"
	"warden/pkg/requestcontext"
)

// Authenticator checks a call proof against a claimed principal. Verify
// returns nil only when the proof demonstrably originates from the
// principal's credential; any other outcome is an Unauthenticated-coded
// error.
type Authenticator interface {
	Verify(ctx context.Context, principal domain.Principal, proof requestcontext.CallProof) error
}
