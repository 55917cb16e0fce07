// Package registry owns all role state: the admin singleton and the sparse
// (role, principal) membership relation. It holds no in-memory copy between
// calls; every operation reads or writes the durable store.
package registry

import (
	"context"
	"errors"

	"warden/internal/vault/models"
	"warden/internal/vault/store"
	"warden/pkg/domain"
	dErrors "warden/pkg/domain-errors"
	"warden/pkg/platform/sentinel"
)

// Registry is the role state owner. Safe for the host's single-writer-per-call
// model; cross-call serialization is the store's concern.
type Registry struct {
	kv store.KV
}

// New constructs a registry over the given durable store.
func New(kv store.KV) *Registry {
	return &Registry{kv: kv}
}

// SetAdmin writes the admin singleton. Fails with AlreadyInitialized when the
// singleton exists; it is never cleared or reassigned afterwards.
func (r *Registry) SetAdmin(ctx context.Context, admin domain.Principal) error {
	exists, err := r.kv.Has(ctx, models.AdminKey())
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "check admin record")
	}
	if exists {
		return dErrors.New(dErrors.CodeAlreadyInitialized, "vault already initialized")
	}
	if err := r.kv.Set(ctx, models.AdminKey(), []byte(admin)); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "write admin record")
	}
	return nil
}

// GetAdmin reads the admin singleton. Fails with NotInitialized when the
// vault was never bootstrapped.
func (r *Registry) GetAdmin(ctx context.Context) (domain.Principal, error) {
	value, err := r.kv.Get(ctx, models.AdminKey())
	if errors.Is(err, sentinel.ErrNotFound) {
		return "", dErrors.New(dErrors.CodeNotInitialized, "vault not initialized")
	}
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "read admin record")
	}
	return domain.Principal(value), nil
}

// Grant idempotently records that account holds role.
func (r *Registry) Grant(ctx context.Context, account domain.Principal, role domain.Role) error {
	if err := r.kv.Set(ctx, models.GrantKey(role, account), models.GrantMarker); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "write role grant")
	}
	return nil
}

// Revoke idempotently removes account's membership in role. Revoking an
// absent grant is a no-op, not an error.
func (r *Registry) Revoke(ctx context.Context, account domain.Principal, role domain.Role) error {
	if err := r.kv.Delete(ctx, models.GrantKey(role, account)); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "delete role grant")
	}
	return nil
}

// HasRole reports whether account holds role. Pure lookup: false for any
// pair never granted, including principals never seen before.
func (r *Registry) HasRole(ctx context.Context, account domain.Principal, role domain.Role) (bool, error) {
	ok, err := r.kv.Has(ctx, models.GrantKey(role, account))
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "read role grant")
	}
	return ok, nil
}
