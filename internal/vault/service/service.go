// Package service is the public operation surface of the vault: the only
// externally invokable composition of guard and registry. The domain moves
// through two states, Uninitialized and Active; Initialize is the single
// irreversible transition between them.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"warden/internal/vault/audit"
	vaultmetrics "warden/internal/vault/metrics"
	"warden/pkg/domain"
	dErrors "warden/pkg/domain-errors"
	"warden/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks RoleRegistry,Guard

// RoleRegistry is the slice of the registry the facade consumes.
type RoleRegistry interface {
	SetAdmin(ctx context.Context, admin domain.Principal) error
	GetAdmin(ctx context.Context) (domain.Principal, error)
	Grant(ctx context.Context, account domain.Principal, role domain.Role) error
	Revoke(ctx context.Context, account domain.Principal, role domain.Role) error
	HasRole(ctx context.Context, account domain.Principal, role domain.Role) (bool, error)
}

// Guard enforces the privileged-call preconditions.
type Guard interface {
	RequireRole(ctx context.Context, caller domain.Principal, role domain.Role) error
	RequireAuthenticated(ctx context.Context, caller domain.Principal) error
}

// Service composes guard and registry into the vault facade. Every failure
// aborts the whole call; no operation leaves partial state behind.
type Service struct {
	registry RoleRegistry
	guard    Guard
	logger   *slog.Logger
	metrics  *vaultmetrics.Metrics
	auditor  audit.Publisher
	tracer   trace.Tracer
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets a logger for operation outcomes.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *vaultmetrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithAuditPublisher sets the audit sink for role-state changes.
func WithAuditPublisher(p audit.Publisher) Option {
	return func(s *Service) { s.auditor = p }
}

// New constructs the vault facade.
func New(registry RoleRegistry, guard Guard, opts ...Option) *Service {
	s := &Service{
		registry: registry,
		guard:    guard,
		tracer:   otel.Tracer("warden/vault"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize bootstraps the vault with its admin principal and records the
// conventional admin grant marker. Fails with AlreadyInitialized on any call
// after the first; the stored admin is never reassigned.
//
// The singleton write commits last. If the marker write fails, nothing is
// committed; if the singleton write fails, the stray marker confers no power
// because governance flows from the singleton alone. Either way a failed call
// never leaves an admin behind.
func (s *Service) Initialize(ctx context.Context, admin domain.Principal) error {
	ctx, span := s.tracer.Start(ctx, "vault.Initialize")
	defer span.End()
	defer s.observe("initialize", time.Now())

	if _, err := s.registry.GetAdmin(ctx); err == nil {
		return s.fail(ctx, span, "initialize",
			dErrors.New(dErrors.CodeAlreadyInitialized, "vault already initialized"))
	} else if !dErrors.HasCode(err, dErrors.CodeNotInitialized) {
		return s.fail(ctx, span, "initialize", err)
	}

	// Convenience marker only: governing power flows from the singleton.
	if err := s.registry.Grant(ctx, admin, domain.RoleAdmin); err != nil {
		return s.fail(ctx, span, "initialize", err)
	}
	if err := s.registry.SetAdmin(ctx, admin); err != nil {
		return s.fail(ctx, span, "initialize", err)
	}

	s.emit(ctx, audit.Event{
		Action:  audit.ActionVaultInitialized,
		Account: admin,
	})
	s.log(ctx, "vault initialized", "admin", admin.String())
	return nil
}

// GrantRole records that account holds role. Only the admin may call it, and
// the invocation must be authenticated as the admin. Granting an
// already-held role is idempotent.
func (s *Service) GrantRole(ctx context.Context, caller, account domain.Principal, role domain.Role) error {
	ctx, span := s.tracer.Start(ctx, "vault.GrantRole",
		trace.WithAttributes(attribute.String("role", role.String())))
	defer span.End()
	defer s.observe("grant_role", time.Now())

	if err := s.requireAdminCaller(ctx, caller); err != nil {
		return s.fail(ctx, span, "grant_role", err)
	}
	if err := s.registry.Grant(ctx, account, role); err != nil {
		return s.fail(ctx, span, "grant_role", err)
	}

	if s.metrics != nil {
		s.metrics.RolesGranted.Inc()
	}
	s.emit(ctx, audit.Event{
		Action:  audit.ActionRoleGranted,
		Actor:   caller,
		Account: account,
		Role:    role,
	})
	s.log(ctx, "role granted", "account", account.String(), "role", role.String())
	return nil
}

// RevokeRole removes account's membership in role under the same guard
// sequence as GrantRole. Revoking an absent grant is a no-op.
func (s *Service) RevokeRole(ctx context.Context, caller, account domain.Principal, role domain.Role) error {
	ctx, span := s.tracer.Start(ctx, "vault.RevokeRole",
		trace.WithAttributes(attribute.String("role", role.String())))
	defer span.End()
	defer s.observe("revoke_role", time.Now())

	if err := s.requireAdminCaller(ctx, caller); err != nil {
		return s.fail(ctx, span, "revoke_role", err)
	}
	if err := s.registry.Revoke(ctx, account, role); err != nil {
		return s.fail(ctx, span, "revoke_role", err)
	}

	if s.metrics != nil {
		s.metrics.RolesRevoked.Inc()
	}
	s.emit(ctx, audit.Event{
		Action:  audit.ActionRoleRevoked,
		Actor:   caller,
		Account: account,
		Role:    role,
	})
	s.log(ctx, "role revoked", "account", account.String(), "role", role.String())
	return nil
}

// HasRole reports whether account holds role. Pure query, callable in any
// domain state.
func (s *Service) HasRole(ctx context.Context, account domain.Principal, role domain.Role) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "vault.HasRole")
	defer span.End()
	defer s.observe("has_role", time.Now())

	return s.registry.HasRole(ctx, account, role)
}

// GetAdmin returns the stored admin principal. Fails with NotInitialized
// before bootstrap.
func (s *Service) GetAdmin(ctx context.Context) (domain.Principal, error) {
	ctx, span := s.tracer.Start(ctx, "vault.GetAdmin")
	defer span.End()
	defer s.observe("get_admin", time.Now())

	return s.registry.GetAdmin(ctx)
}

// requireAdminCaller runs the privileged-call guard sequence: role membership
// first (the cheap local read), then proof of authorship.
func (s *Service) requireAdminCaller(ctx context.Context, caller domain.Principal) error {
	if err := s.guard.RequireRole(ctx, caller, domain.RoleAdmin); err != nil {
		if s.metrics != nil && dErrors.HasCode(err, dErrors.CodeMissingRole) {
			s.metrics.IncGuardFailure("missing_role")
		}
		return err
	}
	if err := s.guard.RequireAuthenticated(ctx, caller); err != nil {
		if s.metrics != nil {
			s.metrics.IncGuardFailure("unauthenticated")
		}
		return err
	}
	return nil
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.auditor == nil {
		return
	}
	event.ID = uuid.NewString()
	event.RequestID = requestcontext.RequestID(ctx)
	event.Timestamp = requestcontext.Now(ctx).UTC()
	if err := s.auditor.Emit(ctx, event); err != nil && s.logger != nil {
		// The registry write is the source of truth; audit loss is logged,
		// not propagated.
		s.logger.ErrorContext(ctx, "audit emit failed",
			"action", string(event.Action),
			"error", err,
		)
	}
}

func (s *Service) fail(ctx context.Context, span trace.Span, operation string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, string(dErrors.CodeOf(err)))
	if s.logger != nil {
		s.logger.WarnContext(ctx, "vault operation rejected",
			"operation", operation,
			"code", string(dErrors.CodeOf(err)),
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	return err
}

func (s *Service) observe(operation string, start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveOperation(operation, start)
	}
}

func (s *Service) log(ctx context.Context, msg string, args ...any) {
	if s.logger != nil {
		args = append(args, "request_id", requestcontext.RequestID(ctx))
		s.logger.InfoContext(ctx, msg, args...)
	}
}
