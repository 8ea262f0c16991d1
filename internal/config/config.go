package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Matching MatchingConfig
}

type AppConfig struct {
	AppName        string
	Environment    string
	HTTPPort       string
	MigrationsDir  string
	MaxUploadBytes int
	SeedSampleData bool
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

// Enabled reports whether a Postgres host is configured. Without one the
// server keeps profiles in memory.
func (c DatabaseConfig) Enabled() bool {
	return c.DBHost != ""
}

// DSN renders the keyword/value connection string pgx parses.
func (c DatabaseConfig) DSN() string {
	port := c.DBPort
	if port == "" {
		port = "5432"
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, port, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

type MatchingConfig struct {
	TopN        int
	MaxFeatures int
}

const (
	defaultMaxUploadBytes = 5 << 20
	defaultTopN           = 10
	defaultMaxFeatures    = 500
)

var errMissingRequiredEnv = errors.New("missing required environment variables")

// env reads variables and records every missing or malformed key.
type env struct {
	missing []string
	invalid []string
}

func (e *env) req(key string) string {
	v := e.opt(key)
	if v == "" {
		e.missing = append(e.missing, key)
	}
	return v
}

func (e *env) opt(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func (e *env) optInt(key string, def int) int {
	raw := e.opt(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		e.invalid = append(e.invalid, key)
		return def
	}
	return v
}

func (e *env) optDuration(key string, def time.Duration) time.Duration {
	raw := e.opt(key)
	if raw == "" {
		return def
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	// bare integers are seconds
	if v, err := strconv.Atoi(raw); err == nil && v > 0 {
		return time.Duration(v) * time.Second
	}
	e.invalid = append(e.invalid, key)
	return def
}

func (e *env) err() error {
	if len(e.missing) > 0 {
		return fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(e.missing, ", "))
	}
	if len(e.invalid) > 0 {
		return fmt.Errorf("invalid environment variables: %s", strings.Join(e.invalid, ", "))
	}
	return nil
}

func Load() (Config, error) {
	_ = godotenv.Load()

	e := &env{}
	cfg := Config{
		App:      loadApp(e),
		Database: loadDatabase(e),
		Redis:    loadRedis(e),
		JWT:      loadJWT(e),
		Matching: MatchingConfig{
			TopN:        e.optInt("MATCH_TOP_N", defaultTopN),
			MaxFeatures: e.optInt("MATCH_MAX_FEATURES", defaultMaxFeatures),
		},
	}
	if err := e.err(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDatabase reads only the DB_* keys and MIGRATIONS_DIR; the CLI uses it
// to run migrations without the server's required settings. An empty dir
// means the embedded migrations.
func LoadDatabase() (DatabaseConfig, string, error) {
	_ = godotenv.Load()

	e := &env{}
	db := loadDatabase(e)
	dir := e.opt("MIGRATIONS_DIR")
	if err := e.err(); err != nil {
		return DatabaseConfig{}, "", err
	}
	return db, dir, nil
}

func loadApp(e *env) AppConfig {
	return AppConfig{
		AppName:        e.req("APP_NAME"),
		Environment:    e.req("APP_ENV"),
		HTTPPort:       e.req("HTTP_PORT"),
		MigrationsDir:  e.opt("MIGRATIONS_DIR"),
		MaxUploadBytes: e.optInt("MAX_UPLOAD_BYTES", defaultMaxUploadBytes),
		SeedSampleData: strings.EqualFold(e.opt("SEED_SAMPLE_DATA"), "true"),
	}
}

func loadDatabase(e *env) DatabaseConfig {
	db := DatabaseConfig{
		DBHost:         e.opt("DB_HOST"),
		DBPort:         e.opt("DB_PORT"),
		DBName:         e.opt("DB_NAME"),
		DBUser:         e.opt("DB_USER"),
		DBPassword:     e.opt("DB_PASSWORD"),
		DBSSLMode:      e.opt("DB_SSL_MODE"),
		ConnectTimeout: e.optDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:   int32(e.optInt("DB_POOL_MAX_CONNS", 10)),
		PoolMinConns:   int32(e.optInt("DB_POOL_MIN_CONNS", 1)),

		PoolMaxConnLifetime:   e.optDuration("DB_POOL_MAX_CONN_LIFETIME", time.Hour),
		PoolMaxConnIdleTime:   e.optDuration("DB_POOL_MAX_CONN_IDLE_TIME", 30*time.Minute),
		PoolHealthCheckPeriod: e.optDuration("DB_POOL_HEALTH_CHECK_PERIOD", time.Minute),
	}
	if db.DBSSLMode == "" {
		db.DBSSLMode = "disable"
	}
	return db
}

func loadRedis(e *env) RedisConfig {
	return RedisConfig{
		Host:     e.opt("REDIS_HOST"),
		Port:     e.opt("REDIS_PORT"),
		Password: e.opt("REDIS_PASSWORD"),
		TTL:      e.optDuration("REDIS_TTL", 600*time.Second),
	}
}

func loadJWT(e *env) JWTConfig {
	return JWTConfig{
		AccessSecret:     e.opt("JWT_ACCESS_SECRET"),
		RefreshSecret:    e.opt("JWT_REFRESH_SECRET"),
		AccessExpiresIn:  e.optDuration("JWT_ACCESS_EXPIRES_IN", 15*time.Minute),
		RefreshExpiresIn: e.optDuration("JWT_REFRESH_EXPIRES_IN", 7*24*time.Hour),
	}
}
