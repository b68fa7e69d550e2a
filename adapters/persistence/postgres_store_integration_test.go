package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/khoahotran/professional-ladder/internal/domain/profile"
	"github.com/khoahotran/professional-ladder/pkg/logger"
)

type PostgresStoreIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	testLogger  logger.Logger
}

func (s *PostgresStoreIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()
	s.testLogger = logger.NewNopLogger()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	if err := MigratePostgres(dsn, "../../migrations", s.testLogger); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool
}

func (s *PostgresStoreIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestPostgresStoreIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(PostgresStoreIntegrationTestSuite))
}

func (s *PostgresStoreIntegrationTestSuite) Test_GetSetUpsert() {
	exerciseStore(s.T(), NewPostgresStore(s.dbPool), "user_pg@example.com")
}

func (s *PostgresStoreIntegrationTestSuite) Test_ProfileRoundTrip() {
	ctx := context.Background()
	repo := NewProfileRepo(NewPostgresStore(s.dbPool), s.testLogger)

	p := profile.New()
	p.PersonalInfo.Name = "Grace"
	_, err := p.Add(profile.Certificate{Name: "CKA", Issuer: "CNCF"}, profile.NewClockIDs())
	s.Require().NoError(err)

	s.Require().NoError(repo.Save(ctx, "grace@example.com", p))

	got, err := repo.Load(ctx, "grace@example.com")
	s.Require().NoError(err)
	s.Equal(p, got)
}
