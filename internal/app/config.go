package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	dbpkg "github.com/sigc-piloto/sigc-backend/internal/data/db"
	"github.com/sigc-piloto/sigc-backend/internal/observability"
)

const envPrefix = "SIGC"

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

type Config struct {
	Port    string
	LogMode string

	DB dbpkg.Config

	CORSOrigins []string
	CacheTTL    time.Duration
	Redis       RedisConfig

	MetricsEnabled bool
	Otel           observability.OtelConfig
}

// legacyEnv lists unprefixed variable names accepted alongside SIGC_*.
var legacyEnv = map[string][]string{
	"port":               {"PORT"},
	"log_mode":           {"LOG_MODE"},
	"postgres.host":      {"POSTGRES_HOST"},
	"postgres.port":      {"POSTGRES_PORT"},
	"postgres.user":      {"POSTGRES_USER"},
	"postgres.password":  {"POSTGRES_PASSWORD"},
	"postgres.name":      {"POSTGRES_NAME", "POSTGRES_DB"},
	"postgres.sslmode":   {"POSTGRES_SSLMODE"},
	"postgres.dsn":       {"DATABASE_URL"},
	"redis.addr":         {"REDIS_ADDR"},
	"redis.password":     {"REDIS_PASSWORD"},
	"cors.allow_origins": {"CORS_ALLOW_ORIGINS"},
	"otel.enabled":       {"OTEL_ENABLED"},
	"otel.endpoint":      {"OTEL_EXPORTER_OTLP_ENDPOINT"},
	"otel.service_name":  {"OTEL_SERVICE_NAME"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8000")
	v.SetDefault("log_mode", "development")
	v.SetDefault("db.driver", dbpkg.DriverPostgres)
	v.SetDefault("db.sqlite_path", "sigc.db")
	v.SetDefault("db.max_open_conns", 0)
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.name", "sigc")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.dsn", "")
	v.SetDefault("cors.allow_origins", []string{})
	v.SetDefault("cache.ttl", 5*time.Minute)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "sigc")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("otel.enabled", false)
	v.SetDefault("otel.service_name", "sigc-backend")
	v.SetDefault("otel.environment", "")
	v.SetDefault("otel.endpoint", "")
	v.SetDefault("otel.insecure", true)
	v.SetDefault("otel.sample_ratio", 1.0)
}

// LoadDotEnv reads .env files into the process environment when they exist.
// Variables already set win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// NewViper builds a viper instance with defaults and env bindings. configFile
// is optional; a missing file is an error only when explicitly named.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, names := range legacyEnv {
		prefixed := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(append([]string{key, prefixed}, names...)...); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if configFile = strings.TrimSpace(configFile); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("sigc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}
	return v, nil
}

// autoMigrate is on by default only for SQLite. A Postgres target may be an
// existing SIGC database whose pry_tipo column is the typ_pry_tipo enum, and
// AutoMigrate would alter it to varchar; such deployments opt in explicitly.
func autoMigrate(v *viper.Viper) bool {
	if v.IsSet("db.auto_migrate") {
		return v.GetBool("db.auto_migrate")
	}
	return strings.EqualFold(strings.TrimSpace(v.GetString("db.driver")), dbpkg.DriverSQLite)
}

func ConfigFromViper(v *viper.Viper) Config {
	return Config{
		Port:    strings.TrimSpace(v.GetString("port")),
		LogMode: strings.TrimSpace(v.GetString("log_mode")),
		DB: dbpkg.Config{
			Driver:       v.GetString("db.driver"),
			DSN:          v.GetString("postgres.dsn"),
			Host:         v.GetString("postgres.host"),
			Port:         v.GetString("postgres.port"),
			User:         v.GetString("postgres.user"),
			Password:     v.GetString("postgres.password"),
			Name:         v.GetString("postgres.name"),
			SSLMode:      v.GetString("postgres.sslmode"),
			SQLitePath:   v.GetString("db.sqlite_path"),
			MaxOpenConns: v.GetInt("db.max_open_conns"),
			AutoMigrate:  autoMigrate(v),
		},
		CORSOrigins: splitList(v.GetStringSlice("cors.allow_origins")),
		CacheTTL:    v.GetDuration("cache.ttl"),
		Redis: RedisConfig{
			Addr:     strings.TrimSpace(v.GetString("redis.addr")),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			Prefix:   v.GetString("redis.prefix"),
		},
		MetricsEnabled: v.GetBool("metrics.enabled"),
		Otel: observability.OtelConfig{
			Enabled:     v.GetBool("otel.enabled"),
			ServiceName: v.GetString("otel.service_name"),
			Environment: v.GetString("otel.environment"),
			Endpoint:    v.GetString("otel.endpoint"),
			Insecure:    v.GetBool("otel.insecure"),
			SampleRatio: v.GetFloat64("otel.sample_ratio"),
		},
	}
}

// LoadConfig resolves defaults, the optional config file and the environment.
func LoadConfig(configFile string) (Config, error) {
	v, err := NewViper(configFile)
	if err != nil {
		return Config{}, err
	}
	return ConfigFromViper(v), nil
}

// splitList accepts YAML lists as well as comma separated env values.
func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
