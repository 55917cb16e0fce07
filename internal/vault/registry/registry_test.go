package registry_test

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/suite"

	"warden/internal/vault/registry"
	"warden/internal/vault/store"
	"warden/pkg/domain"
	dErrors "warden/pkg/domain-errors"
	"warden/pkg/testutil"
)

type RegistrySuite struct {
	suite.Suite
	registry *registry.Registry
	ctx      context.Context
}

func (s *RegistrySuite) SetupTest() {
	s.registry = registry.New(store.NewMemory())
	s.ctx = context.Background()
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

func (s *RegistrySuite) newPrincipal() domain.Principal {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	s.Require().NoError(err)
	return domain.PrincipalFromKey(pub)
}

func (s *RegistrySuite) TestAdminSingleton() {
	admin := s.newPrincipal()

	s.Run("get before set fails NotInitialized", func() {
		_, err := s.registry.GetAdmin(s.ctx)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotInitialized))
	})

	s.Run("set then get returns the principal", func() {
		s.Require().NoError(s.registry.SetAdmin(s.ctx, admin))

		got, err := s.registry.GetAdmin(s.ctx)
		s.Require().NoError(err)
		s.Equal(admin, got)
	})

	s.Run("second set fails AlreadyInitialized and leaves the record unchanged", func() {
		other := s.newPrincipal()
		err := s.registry.SetAdmin(s.ctx, other)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeAlreadyInitialized))

		got, err := s.registry.GetAdmin(s.ctx)
		s.Require().NoError(err)
		s.Equal(admin, got)
	})
}

func (s *RegistrySuite) TestGrantRevokeIdempotent() {
	account := s.newPrincipal()

	ok, err := s.registry.HasRole(s.ctx, account, domain.RoleOperator)
	s.Require().NoError(err)
	s.False(ok)

	s.Require().NoError(s.registry.Grant(s.ctx, account, domain.RoleOperator))
	s.Require().NoError(s.registry.Grant(s.ctx, account, domain.RoleOperator)) // idempotent

	ok, err = s.registry.HasRole(s.ctx, account, domain.RoleOperator)
	s.Require().NoError(err)
	s.True(ok)

	s.Require().NoError(s.registry.Revoke(s.ctx, account, domain.RoleOperator))
	s.Require().NoError(s.registry.Revoke(s.ctx, account, domain.RoleOperator)) // no-op

	ok, err = s.registry.HasRole(s.ctx, account, domain.RoleOperator)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *RegistrySuite) TestRolesAreIndependent() {
	account := s.newPrincipal()

	s.Require().NoError(s.registry.Grant(s.ctx, account, domain.RoleOperator))
	s.Require().NoError(s.registry.Grant(s.ctx, account, domain.RoleTreasurer))

	s.Require().NoError(s.registry.Revoke(s.ctx, account, domain.RoleOperator))

	ok, err := s.registry.HasRole(s.ctx, account, domain.RoleTreasurer)
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.registry.HasRole(s.ctx, account, domain.RoleOperator)
	s.Require().NoError(err)
	s.False(ok)
}

func TestBootstrapScenario(t *testing.T) {
	ctx := context.Background()
	reg := registry.New(store.NewMemory())

	pub, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	admin := domain.PrincipalFromKey(pub)

	testutil.Given(t, "a fresh registry with no admin", func(t *testing.T) {
		if _, err := reg.GetAdmin(ctx); !dErrors.HasCode(err, dErrors.CodeNotInitialized) {
			t.Fatalf("expected NotInitialized, got %v", err)
		}
	})
	testutil.When(t, "the admin singleton is written", func(t *testing.T) {
		if err := reg.SetAdmin(ctx, admin); err != nil {
			t.Fatal(err)
		}
	})
	testutil.Then(t, "the admin reads back and cannot be replaced", func(t *testing.T) {
		got, err := reg.GetAdmin(ctx)
		if err != nil || got != admin {
			t.Fatalf("got %v, %v", got, err)
		}
		if err := reg.SetAdmin(ctx, admin); !dErrors.HasCode(err, dErrors.CodeAlreadyInitialized) {
			t.Fatalf("expected AlreadyInitialized, got %v", err)
		}
	})
}

func (s *RegistrySuite) TestHasRoleIsPure() {
	account := s.newPrincipal()
	s.Require().NoError(s.registry.Grant(s.ctx, account, domain.RoleTreasurer))

	for range 3 {
		ok, err := s.registry.HasRole(s.ctx, account, domain.RoleTreasurer)
		s.Require().NoError(err)
		s.True(ok)
	}
}
