package db

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/sigc-piloto/sigc-backend/internal/platform/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config selects and parameterizes the storage engine.
type Config struct {
	Driver       string
	DSN          string
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	SQLitePath   string
	MaxOpenConns int
	AutoMigrate  bool
}

// PostgresDSN builds a connection URL unless an explicit DSN is configured.
func (c Config) PostgresDSN() string {
	if dsn := strings.TrimSpace(c.DSN); dsn != "" {
		return dsn
	}
	sslMode := strings.TrimSpace(c.SSLMode)
	if sslMode == "" {
		sslMode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%s", c.Host, c.Port),
		Path:     "/" + c.Name,
		RawQuery: "sslmode=" + url.QueryEscape(sslMode),
	}
	return u.String()
}

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
	cfg Config
}

func NewPostgresService(logg *logger.Logger, cfg Config) (*PostgresService, error) {
	if logg == nil {
		logg = logger.Nop()
	}
	serviceLog := logg.With("service", "PostgresService")

	var dialector gorm.Dialector
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", DriverPostgres:
		serviceLog.Info("Connecting to Postgres...", "host", cfg.Host, "name", cfg.Name)
		dialector = postgres.Open(cfg.PostgresDSN())
	case DriverSQLite:
		path := strings.TrimSpace(cfg.SQLitePath)
		if path == "" {
			path = "sigc.db"
		}
		serviceLog.Info("Opening SQLite database...", "path", path)
		dialector = sqlite.Open(SQLiteDSN(path))
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}

	db, err := Open(dialector, logg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Driver, err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("get sql db: %w", err)
		}
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	return &PostgresService{db: db, log: serviceLog, cfg: cfg}, nil
}

// Open creates a gorm handle whose logs go through zap. Driver errors are left
// untranslated so constraint messages reach the caller.
func Open(dialector gorm.Dialector, logg *logger.Logger) (*gorm.DB, error) {
	gormLog := gormLogger.Discard
	if logg != nil {
		gormLog = gormLogger.New(
			zap.NewStdLog(logg.SugaredLogger.Desugar()),
			gormLogger.Config{
				SlowThreshold:             1 * time.Second,
				LogLevel:                  gormLogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		)
	}
	return gorm.Open(dialector, &gorm.Config{
		Logger: gormLog,
	})
}

// SQLiteDSN enables foreign keys, which SQLite leaves off by default.
func SQLiteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

func (s *PostgresService) DB() *gorm.DB { return s.db }

// AutoMigrateAll creates or updates the schema when enabled in config.
func (s *PostgresService) AutoMigrateAll() error {
	if !s.cfg.AutoMigrate {
		s.log.Info("Auto migration disabled")
		return nil
	}
	return AutoMigrateAll(s.db)
}

// Ping runs SELECT 1 and returns the scanned rows.
func (s *PostgresService) Ping(ctx context.Context) ([]int, error) {
	return Ping(ctx, s.db)
}

func Ping(ctx context.Context, db *gorm.DB) ([]int, error) {
	var out []int
	if err := db.WithContext(ctx).Raw("SELECT 1").Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresService) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
