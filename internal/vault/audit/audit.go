// Package audit records role-state changes so the vault's authorization
// history stays reconstructible outside the store itself.
package audit

import (
	"context"
	"time"

	"warden/pkg/domain"
)

// Action names a role-state change.
type Action string

const (
	ActionVaultInitialized Action = "vault_initialized"
	ActionRoleGranted      Action = "role_granted"
	ActionRoleRevoked      Action = "role_revoked"
)

// Event captures one successful mutation. Keep it transport-agnostic so
// publishers can fan out to any sink.
type Event struct {
	ID        string           `json:"id"`
	Action    Action           `json:"action"`
	Actor     domain.Principal `json:"actor,omitempty"`
	Account   domain.Principal `json:"account"`
	Role      domain.Role      `json:"role,omitempty"`
	RequestID string           `json:"request_id,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

// Publisher emits audit events. Emit is best-effort from the caller's point
// of view: the registry write is the source of truth, so services log emit
// failures without failing the operation.
type Publisher interface {
	Emit(ctx context.Context, event Event) error
	Close()
}
