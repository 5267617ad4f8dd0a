package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, API base URL), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// - optional infrastructure (Redis, AMQP) is disabled when its address is empty
// -----------------------------------------------------------------------------

// Config is the configuration of the api binary.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Booking BookingConfig
	Redis   RedisConfig
	AMQP    AMQPConfig
}

// WebConfig is the configuration of the web front-end binary.
type WebConfig struct {
	Server  ServerConfig
	Log     LogConfig
	API     APIClientConfig
	Cookie  CookieConfig
	Booking BookingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
	// 起動時に埋め込みマイグレーションを適用する（ローカル・単一インスタンス向け）
	MigrateOnStart bool `envconfig:"DB_MIGRATE_ON_START" default:"false"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

type BookingConfig struct {
	// 今日から何日先まで空き状況を返すか
	AvailabilityDays int    `envconfig:"BOOKING_AVAILABILITY_DAYS" default:"30"`
	TimeZone         string `envconfig:"BOOKING_TIMEZONE" default:"Asia/Tokyo"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	TTL      time.Duration `envconfig:"CACHE_TTL" default:"5m"`
	Prefix   string        `envconfig:"CACHE_PREFIX" default:"room-booking"`
}

type AMQPConfig struct {
	URL         string        `envconfig:"AMQP_URL"`
	Queue       string        `envconfig:"AMQP_QUEUE" default:"booking.confirmed"`
	DialTimeout time.Duration `envconfig:"AMQP_DIAL_TIMEOUT" default:"2s"`
	BufferSize  int           `envconfig:"AMQP_BUFFER_SIZE" default:"256"`
}

type APIClientConfig struct {
	BaseURL string        `envconfig:"API_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"API_TIMEOUT" default:"10s"`
}

type CookieConfig struct {
	Domain   string        `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool          `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string        `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
	MaxAge   time.Duration `envconfig:"COOKIE_MAX_AGE" default:"24h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	// .env はローカル開発用、無くても良い
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func LoadWebConfig() (WebConfig, error) {
	_ = godotenv.Load()

	var cfg WebConfig
	err := envconfig.Process("", &cfg)
	if err != nil {
		return WebConfig{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// LoadDBConfig reads only the DB_* settings, for the migration runner.
func LoadDBConfig() (DBConfig, error) {
	_ = godotenv.Load()

	var cfg DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return DBConfig{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
		},
		Log: testLogConfig(),
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Booking: BookingConfig{
			AvailabilityDays: 30,
			TimeZone:         "Asia/Tokyo",
		},
		Redis: RedisConfig{TTL: time.Minute, Prefix: "room-booking-test"},
		AMQP:  AMQPConfig{Queue: "booking.confirmed", DialTimeout: 2 * time.Second, BufferSize: 256},
	}
}

func NewTestWebConfig(baseURL string) WebConfig {
	return WebConfig{
		Server: ServerConfig{Port: "8890"},
		Log:    testLogConfig(),
		API: APIClientConfig{
			BaseURL: baseURL,
			Timeout: 5 * time.Second,
		},
		Cookie: CookieConfig{SameSite: "Lax", MaxAge: time.Hour},
		Booking: BookingConfig{
			AvailabilityDays: 30,
			TimeZone:         "Asia/Tokyo",
		},
	}
}

func testLogConfig() LogConfig {
	return LogConfig{
		Level:          "error", // Error level only for tests
		TimeZone:       "Asia/Tokyo",
		TimeFormat:     "2006-01-02 15:04:05.000",
		TimeZoneOffset: 32400,
	}
}
