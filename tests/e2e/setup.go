//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"lucky-draw/cmd/bootstrap"
	"lucky-draw/cmd/bootstrap/components"
	"lucky-draw/internal/infra/db"
	"lucky-draw/internal/pkg/config"
	"lucky-draw/internal/usecase/commands"
	"lucky-draw/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "draw"
	pgPassword = "drawpass"
	pgPort     = "5432/tcp"

	schemaFile = "migrations/001_initial_schema.sql"
)

var (
	pgOnce      sync.Once
	pgContainer testcontainers.Container
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// SharedSuite boots one Postgres container per process and a fresh database
// per suite. Sub-tests start from empty orders and draw_results tables.
type SharedSuite struct {
	suite.Suite
	Router  *gin.Engine
	DB      *pgxpool.Pool
	Config  config.Config
	Imports commands.OrderImportCommands
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	info := startPostgres(t)
	pool, dbConfig := createDatabase(t, info)
	require.NoError(t, applySchema(pool), "applying schema")

	router, cfg, imports := startApp(t, dbConfig, pool)

	s.DB = pool
	s.Router = router
	s.Config = cfg
	s.Imports = imports
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "resetting database")
}

func startPostgres(t *testing.T) ContainerInfo {
	pgOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		var err error
		pgContainer, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{pgPort},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
				Cmd: []string{
					"postgres",
					"-c", "fsync=off",
					"-c", "synchronous_commit=off",
					"-c", "full_page_writes=off",
					"-c", "max_connections=200",
				},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return adminDSN(ContainerInfo{Host: host, Port: port})
				}).WithStartupTimeout(time.Minute),
				Labels: map[string]string{"purpose": "lucky-draw-e2e"},
			},
			Started: true,
		})
		require.NoError(t, err, "starting postgres container")
	})
	require.NotNil(t, pgContainer, "postgres container did not start")

	ctx := context.Background()
	port, err := pgContainer.MappedPort(ctx, nat.Port(pgPort))
	require.NoError(t, err)
	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	return ContainerInfo{Host: host, Port: port}
}

func adminDSN(info ContainerInfo) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		pgUser, pgPassword, info.Host, info.Port.Port())
}

func createDatabase(t *testing.T, info ContainerInfo) (*pgxpool.Pool, config.DBConfig) {
	name := "draw_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN(info))
	require.NoError(t, err, "connecting as admin")
	defer admin.Close()

	// CREATE DATABASE fails while template1 is in use by a parallel process.
	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == 5 {
			break
		}
		slog.Warn("create database retry", "attempt", attempt, "error", err)
		time.Sleep(time.Duration(attempt) * 300 * time.Millisecond)
	}
	require.NoError(t, err, "creating test database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN(info))
		if err != nil {
			slog.Warn("drop database skipped", "database", name, "error", err)
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("drop database failed", "database", name, "error", err)
		}
	})

	dbConfig := config.DBConfig{
		Host:     info.Host,
		Port:     info.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "Asia/Tokyo",
	}
	pool, closePool, err := db.Connect(dbConfig)
	require.NoError(t, err, "connecting to test database")
	t.Cleanup(closePool)
	return pool, dbConfig
}

// applySchema runs the initial migration directly. The atlas CLI is not
// available inside the test process.
func applySchema(pool *pgxpool.Pool) error {
	path, err := findUp(schemaFile)
	if err != nil {
		return err
	}
	sql, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("apply %s: %w", path, err)
	}
	return nil
}

// findUp resolves rel against the working directory and its parents, since
// go test runs each package from its own directory.
func findUp(rel string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, rel)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s not found above working directory", rel)
		}
		dir = parent
	}
}

func startApp(t *testing.T, dbConfig config.DBConfig, pool *pgxpool.Pool) (*gin.Engine, config.Config, commands.OrderImportCommands) {
	cfg := config.NewTestConfig()
	cfg.DB = dbConfig

	var (
		router  *gin.Engine
		loaded  config.Config
		imports commands.OrderImportCommands
	)
	app := fx.New(
		fx.Provide(func() *pgxpool.Pool { return pool }),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.ConfigModule(cfg),
		bootstrap.LoggerModule,
		bootstrap.MetricsModule,
		components.PostgresModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router, &loaded, &imports),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "starting fx app")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("stopping fx app", "error", err)
		}
	})
	return router, loaded, imports
}
