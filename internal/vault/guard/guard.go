// Package guard enforces the two preconditions of privileged vault
// operations: the claimed caller holds the required role, and the invocation
// was cryptographically authorized by that caller.
//
// The checks stay separate on purpose. A caller is a plain argument and may
// claim any identity, so role membership says nothing about authenticity and
// a valid signature says nothing about privilege. Callers of the guard run
// RequireRole first to fail cheaply before touching the authenticator.
package guard

import (
	"context"

	"warden/internal/vault/auth"
	"warden/pkg/domain"
	dErrors "warden/pkg/domain-errors"
	"warden/pkg/requestcontext"
)

// RoleReader is the slice of the registry the guard consumes.
type RoleReader interface {
	GetAdmin(ctx context.Context) (domain.Principal, error)
	HasRole(ctx context.Context, account domain.Principal, role domain.Role) (bool, error)
}

// Guard composes the role check with the authentication collaborator.
type Guard struct {
	roles RoleReader
	authn auth.Authenticator
}

// New constructs a guard.
func New(roles RoleReader, authn auth.Authenticator) *Guard {
	return &Guard{roles: roles, authn: authn}
}

// RequireRole fails with MissingRole unless caller holds role.
//
// For the admin role, governing power flows solely from the admin singleton:
// the check passes exactly when caller is the stored admin. Explicit
// grant records for the admin role remain visible through HasRole but confer
// nothing here, so a revoked convenience marker can never lock out the admin
// and a granted one can never mint a second admin.
func (g *Guard) RequireRole(ctx context.Context, caller domain.Principal, role domain.Role) error {
	if role == domain.RoleAdmin {
		admin, err := g.roles.GetAdmin(ctx)
		if err != nil {
			return err
		}
		if caller != admin {
			return dErrors.New(dErrors.CodeMissingRole, "caller is not the vault admin")
		}
		return nil
	}

	ok, err := g.roles.HasRole(ctx, caller, role)
	if err != nil {
		return err
	}
	if !ok {
		return dErrors.New(dErrors.CodeMissingRole, "caller does not hold role "+role.String())
	}
	return nil
}

// RequireAuthenticated fails with UnauthenticatedCaller unless the enclosing
// invocation's proof verifies against the claimed caller. The proof is
// carried in the context by the transport layer.
func (g *Guard) RequireAuthenticated(ctx context.Context, caller domain.Principal) error {
	proof := requestcontext.Proof(ctx)
	if proof.IsZero() {
		return dErrors.New(dErrors.CodeUnauthenticated, "call carries no proof of authorization")
	}
	return g.authn.Verify(ctx, caller, proof)
}
