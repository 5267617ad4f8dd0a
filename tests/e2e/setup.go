//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"room-booking/cmd/bootstrap"
	"room-booking/cmd/bootstrap/components"
	"room-booking/internal/infra/db"
	"room-booking/internal/pkg/config"
	"room-booking/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	testUser     = "test"
	testPassword = "testpass"

	postgresPort nat.Port = "5432/tcp"
	redisPort    nat.Port = "6379/tcp"
)

// テストプロセス内で共有するコンテナ。終了時の削除は ryuk に任せる
var (
	postgresContainer sharedContainer
	redisContainer    sharedContainer
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

func (c ContainerInfo) Addr() string {
	return net.JoinHostPort(c.Host, c.Port.Port())
}

type sharedContainer struct {
	once sync.Once
	info ContainerInfo
	err  error
}

func (s *sharedContainer) start(req testcontainers.ContainerRequest, port nat.Port) (ContainerInfo, error) {
	s.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		if err != nil {
			s.err = fmt.Errorf("start %s: %w", req.Image, err)
			return
		}
		host, err := c.Host(ctx)
		if err != nil {
			s.err = err
			return
		}
		mapped, err := c.MappedPort(ctx, port)
		if err != nil {
			s.err = err
			return
		}
		s.info = ContainerInfo{Host: host, Port: mapped}
	})
	return s.info, s.err
}

func postgresRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{string(postgresPort)},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       "postgres",
		},
		// データをRAMに載せてI/O削減
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
		Cmd: []string{
			"postgres",
			"-c", "fsync=off",
			"-c", "full_page_writes=off",
			"-c", "synchronous_commit=off",
			"-c", "max_connections=200",
		},
		WaitingFor: wait.ForSQL(postgresPort, "pgx", func(host string, port nat.Port) string {
			return adminDSN(ContainerInfo{Host: host, Port: port})
		}).WithStartupTimeout(60 * time.Second),
		Labels: map[string]string{"purpose": "e2e-tests", "app": "room-booking"},
	}
}

func redisRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{string(redisPort)},
		Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		Labels:       map[string]string{"purpose": "e2e-tests", "app": "room-booking"},
	}
}

func adminDSN(pg ContainerInfo) string {
	return fmt.Sprintf("postgres://%s:%s@%s/postgres?sslmode=disable", testUser, testPassword, pg.Addr())
}

// ------------------------------------------------------------
// 各テストスイート用にセットアップ
// ------------------------------------------------------------
type environment struct {
	pool   *pgxpool.Pool
	cache  *redis.Client
	router *gin.Engine
	cfg    config.Config
}

func setupE2EEnvironment(t *testing.T) environment {
	gin.SetMode(gin.TestMode)

	pg, err := postgresContainer.start(postgresRequest(), postgresPort)
	require.NoError(t, err, "PostgreSQLコンテナの起動に失敗")
	rd, err := redisContainer.start(redisRequest(), redisPort)
	require.NoError(t, err, "Redisコンテナの起動に失敗")

	pool, dbConfig := prepareDatabase(t, pg)

	cfg := config.NewTestConfig()
	cfg.DB = dbConfig
	cfg.Redis.Addr = rd.Addr()
	// スイートごとにキー空間を分ける
	cfg.Redis.Prefix = "e2e:" + dbConfig.DBName

	cache := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	t.Cleanup(func() { _ = cache.Close() })

	router, app := buildE2EApp(pool, cfg)
	require.NotNil(t, router, "Routerのセットアップに失敗")
	stopOnCleanup(t, app)

	slog.Info("E2E環境の準備が完了しました", "postgres", pg.Addr(), "redis", rd.Addr(), "database", dbConfig.DBName)

	return environment{pool: pool, cache: cache, router: router, cfg: cfg}
}

func stopOnCleanup(t *testing.T, app *fx.App) {
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})
}

// ------------------------------------------------------------
// スイート専用のデータベースを作成してマイグレーションする
// ------------------------------------------------------------
func prepareDatabase(t *testing.T, pg ContainerInfo) (*pgxpool.Pool, config.DBConfig) {
	dbName := "testdb_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN(pg))
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	var createErr error
	for attempt := range 5 {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
		}
		if _, createErr = admin.Exec(ctx, "CREATE DATABASE "+dbName); createErr == nil {
			break
		}
		slog.Warn("データベース作成を再試行中", "attempt", attempt+1, "error", createErr.Error())
	}
	require.NoError(t, createErr, "テスト用データベースの作成に失敗")

	t.Cleanup(func() { dropDatabase(pg, dbName) })

	dbConfig := config.DBConfig{
		Host:     pg.Host,
		Port:     pg.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "Asia/Tokyo",
	}
	require.NoError(t, db.Migrate(dbConfig), "データベースマイグレーションに失敗")

	pool, _, err := db.Connect(dbConfig)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(pool.Close)

	return pool, dbConfig
}

func dropDatabase(pg ContainerInfo, dbName string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN(pg))
	if err != nil {
		slog.Warn("クリーンアップ用のデータベース接続に失敗しました", "database", dbName, "error", err.Error())
		return
	}
	defer admin.Close()

	if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
		slog.Warn("テストデータベースの削除に失敗しました", "database", dbName, "error", err.Error())
	}
}

// ------------------------------------------------------------
// E2Eテスト用アプリケーション構築
// AMQP は未設定なので Noop のパブリッシャーが使われる
// ------------------------------------------------------------
func buildE2EApp(pool *pgxpool.Pool, cfg config.Config) (*gin.Engine, *fx.App) {
	var router *gin.Engine

	app := fx.New(
		fx.Module("testdb", fx.Provide(func() *pgxpool.Pool { return pool })),
		fx.Module("testconfig",
			fx.Provide(
				func() config.Config { return cfg },
				func(c config.Config) config.LogConfig { return c.Log },
				func(c config.Config) config.BookingConfig { return c.Booking },
				func(c config.Config) config.RedisConfig { return c.Redis },
				func(c config.Config) config.AMQPConfig { return c.AMQP },
			),
		),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.CacheModule,
		bootstrap.MessagingModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router),
		fx.NopLogger,
	)
	startApp(app)

	return router, app
}

// buildWebApp wires the front-end against a running api.
func buildWebApp(apiURL string) (*gin.Engine, config.WebConfig, *fx.App) {
	var router *gin.Engine
	cfg := config.NewTestWebConfig(apiURL)

	app := fx.New(
		fx.Module("testconfig/web",
			fx.Provide(
				func() config.WebConfig { return cfg },
				func(c config.WebConfig) config.LogConfig { return c.Log },
				func(c config.WebConfig) config.BookingConfig { return c.Booking },
				func(c config.WebConfig) config.APIClientConfig { return c.API },
				func(c config.WebConfig) config.CookieConfig { return c.Cookie },
			),
		),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		components.WebModule,

		fx.Populate(&router),
		fx.NopLogger,
	)
	startApp(app)

	return router, cfg, app
}

func startApp(app *fx.App) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}
}

// flushCache drops the suite's availability entries so cached slots never
// outlive the rows ResetDB truncated.
func flushCache(ctx context.Context, rdb *redis.Client, prefix string) error {
	iter := rdb.Scan(ctx, 0, prefix+":*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil || len(keys) == 0 {
		return err
	}
	return rdb.Del(ctx, keys...).Err()
}

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Config config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	env := setupE2EEnvironment(t)
	s.DB = env.pool
	s.Cache = env.cache
	s.Router = env.router
	s.Config = env.cfg
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "Failed to reset database state")
	require.NoError(s.T(), flushCache(context.Background(), s.Cache, s.Config.Redis.Prefix), "Failed to flush cache")
}

// FullStackSuite also serves the api over HTTP and runs the web front-end against it.
type FullStackSuite struct {
	SharedSuite
	APIServer *httptest.Server
	WebRouter *gin.Engine
	WebConfig config.WebConfig
}

func (s *FullStackSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())

	s.APIServer = httptest.NewServer(s.Router)
	s.T().Cleanup(s.APIServer.Close)

	router, cfg, app := buildWebApp(s.APIServer.URL)
	stopOnCleanup(s.T(), app)
	s.WebRouter = router
	s.WebConfig = cfg
}
