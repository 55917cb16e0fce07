package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"warden/internal/vault/audit"
	"warden/internal/vault/service"
	"warden/internal/vault/service/mocks"
	"warden/pkg/domain"
	dErrors "warden/pkg/domain-errors"
)

const (
	caller  = domain.Principal("caller-principal")
	account = domain.Principal("account-principal")
)

func TestGrantRoleGuardSequence(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockRoleRegistry(ctrl)
	guard := mocks.NewMockGuard(ctrl)
	auditor := audit.NewMemoryPublisher()
	svc := service.New(registry, guard, service.WithAuditPublisher(auditor))
	ctx := context.Background()

	// Role check runs before authentication so an unprivileged caller fails
	// without touching the authenticator.
	gomock.InOrder(
		guard.EXPECT().RequireRole(gomock.Any(), caller, domain.RoleAdmin).Return(nil),
		guard.EXPECT().RequireAuthenticated(gomock.Any(), caller).Return(nil),
		registry.EXPECT().Grant(gomock.Any(), account, domain.RoleOperator).Return(nil),
	)

	require.NoError(t, svc.GrantRole(ctx, caller, account, domain.RoleOperator))

	events := auditor.Events()
	require.Len(t, events, 1)
	assert.Equal(t, audit.ActionRoleGranted, events[0].Action)
	assert.Equal(t, caller, events[0].Actor)
	assert.Equal(t, account, events[0].Account)
	assert.Equal(t, domain.RoleOperator, events[0].Role)
	assert.NotEmpty(t, events[0].ID)
}

func TestGrantRoleMissingRoleSkipsAuthenticator(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockRoleRegistry(ctrl)
	guard := mocks.NewMockGuard(ctrl)
	auditor := audit.NewMemoryPublisher()
	svc := service.New(registry, guard, service.WithAuditPublisher(auditor))

	guard.EXPECT().
		RequireRole(gomock.Any(), caller, domain.RoleAdmin).
		Return(dErrors.New(dErrors.CodeMissingRole, "caller is not the vault admin"))
	// No RequireAuthenticated, no Grant: the call aborts at the first check.

	err := svc.GrantRole(context.Background(), caller, account, domain.RoleOperator)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeMissingRole))
	assert.Empty(t, auditor.Events())
}

func TestGrantRoleUnauthenticatedCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockRoleRegistry(ctrl)
	guard := mocks.NewMockGuard(ctrl)
	auditor := audit.NewMemoryPublisher()
	svc := service.New(registry, guard, service.WithAuditPublisher(auditor))

	gomock.InOrder(
		guard.EXPECT().RequireRole(gomock.Any(), caller, domain.RoleAdmin).Return(nil),
		guard.EXPECT().
			RequireAuthenticated(gomock.Any(), caller).
			Return(dErrors.New(dErrors.CodeUnauthenticated, "signature does not match caller")),
	)

	err := svc.GrantRole(context.Background(), caller, account, domain.RoleOperator)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthenticated))
	assert.Empty(t, auditor.Events())
}

func TestRevokeRoleGuardSequence(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockRoleRegistry(ctrl)
	guard := mocks.NewMockGuard(ctrl)
	svc := service.New(registry, guard)

	gomock.InOrder(
		guard.EXPECT().RequireRole(gomock.Any(), caller, domain.RoleAdmin).Return(nil),
		guard.EXPECT().RequireAuthenticated(gomock.Any(), caller).Return(nil),
		registry.EXPECT().Revoke(gomock.Any(), account, domain.RoleOperator).Return(nil),
	)

	require.NoError(t, svc.RevokeRole(context.Background(), caller, account, domain.RoleOperator))
}

func TestInitializeWritesSingletonLast(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockRoleRegistry(ctrl)
	guard := mocks.NewMockGuard(ctrl)
	auditor := audit.NewMemoryPublisher()
	svc := service.New(registry, guard, service.WithAuditPublisher(auditor))

	// The marker precedes the singleton so a failed call never commits an
	// admin.
	gomock.InOrder(
		registry.EXPECT().
			GetAdmin(gomock.Any()).
			Return(domain.Principal(""), dErrors.New(dErrors.CodeNotInitialized, "vault not initialized")),
		registry.EXPECT().Grant(gomock.Any(), caller, domain.RoleAdmin).Return(nil),
		registry.EXPECT().SetAdmin(gomock.Any(), caller).Return(nil),
	)

	require.NoError(t, svc.Initialize(context.Background(), caller))

	events := auditor.Events()
	require.Len(t, events, 1)
	assert.Equal(t, audit.ActionVaultInitialized, events[0].Action)
}

func TestInitializeAlreadyInitialized(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockRoleRegistry(ctrl)
	guard := mocks.NewMockGuard(ctrl)
	auditor := audit.NewMemoryPublisher()
	svc := service.New(registry, guard, service.WithAuditPublisher(auditor))

	// An existing admin aborts the call before any write: no Grant, no
	// SetAdmin.
	registry.EXPECT().GetAdmin(gomock.Any()).Return(caller, nil)

	err := svc.Initialize(context.Background(), account)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeAlreadyInitialized))
	assert.Empty(t, auditor.Events())
}

func TestInitializeMarkerFailureCommitsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockRoleRegistry(ctrl)
	guard := mocks.NewMockGuard(ctrl)
	auditor := audit.NewMemoryPublisher()
	svc := service.New(registry, guard, service.WithAuditPublisher(auditor))

	gomock.InOrder(
		registry.EXPECT().
			GetAdmin(gomock.Any()).
			Return(domain.Principal(""), dErrors.New(dErrors.CodeNotInitialized, "vault not initialized")),
		registry.EXPECT().
			Grant(gomock.Any(), caller, domain.RoleAdmin).
			Return(dErrors.Wrap(errors.New("connection refused"), dErrors.CodeInternal, "write role grant")),
	)
	// No SetAdmin: the singleton must not be written after a failed marker.

	err := svc.Initialize(context.Background(), caller)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	assert.Empty(t, auditor.Events())
}

func TestRegistryFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockRoleRegistry(ctrl)
	guard := mocks.NewMockGuard(ctrl)
	svc := service.New(registry, guard)

	storeErr := dErrors.Wrap(errors.New("connection refused"), dErrors.CodeInternal, "write role grant")
	gomock.InOrder(
		guard.EXPECT().RequireRole(gomock.Any(), caller, domain.RoleAdmin).Return(nil),
		guard.EXPECT().RequireAuthenticated(gomock.Any(), caller).Return(nil),
		registry.EXPECT().Grant(gomock.Any(), account, domain.RoleOperator).Return(storeErr),
	)

	err := svc.GrantRole(context.Background(), caller, account, domain.RoleOperator)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
}
