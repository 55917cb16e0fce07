//go:build integration

package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"warden/internal/vault/store"
	"warden/pkg/platform/sentinel"
	"warden/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.Postgres
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
	s.Require().NoError(s.store.EnsureSchema(context.Background()))
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "vault_state"))
}

func (s *PostgresStoreSuite) TestGetSetRoundTrip() {
	ctx := context.Background()

	_, err := s.store.Get(ctx, "admin")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)

	s.Require().NoError(s.store.Set(ctx, "admin", []byte("principal-a")))

	value, err := s.store.Get(ctx, "admin")
	s.Require().NoError(err)
	s.Equal([]byte("principal-a"), value)
}

func (s *PostgresStoreSuite) TestSetIsUpsert() {
	ctx := context.Background()

	s.Require().NoError(s.store.Set(ctx, "k", []byte("one")))
	s.Require().NoError(s.store.Set(ctx, "k", []byte("two")))

	value, err := s.store.Get(ctx, "k")
	s.Require().NoError(err)
	s.Equal([]byte("two"), value)
}

func (s *PostgresStoreSuite) TestHasAndDelete() {
	ctx := context.Background()

	ok, err := s.store.Has(ctx, "grant/operator/p1")
	s.Require().NoError(err)
	s.False(ok)

	s.Require().NoError(s.store.Set(ctx, "grant/operator/p1", []byte{1}))

	ok, err = s.store.Has(ctx, "grant/operator/p1")
	s.Require().NoError(err)
	s.True(ok)

	s.Require().NoError(s.store.Delete(ctx, "grant/operator/p1"))
	s.Require().NoError(s.store.Delete(ctx, "grant/operator/p1")) // idempotent

	ok, err = s.store.Has(ctx, "grant/operator/p1")
	s.Require().NoError(err)
	s.False(ok)
}
