package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	migrate "github.com/rubenv/sql-migrate"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/johnquangdev/reunicheck/internal/domain/entities"
	"github.com/johnquangdev/reunicheck/migrations"
	"github.com/johnquangdev/reunicheck/pkg/config"
)

// Models lists every persisted entity, in dependency order
var Models = []interface{}{
	&entities.User{},
	&entities.Meeting{},
	&entities.Question{},
	&entities.Answer{},
	&entities.AnalysisResult{},
	&entities.LLMUsage{},
}

// NewDB opens the database selected by DB_DRIVER
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.Database.Driver {
	case "sqlite":
		return NewSQLiteDB(cfg.Database.SQLitePath, gormConfig(cfg))
	default:
		return NewPostgresDB(cfg)
	}
}

func gormConfig(cfg *config.Config) *gorm.Config {
	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.IsProduction() {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	return &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// NewPostgresDB creates a new PostgreSQL database connection using GORM
func NewPostgresDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.GetDatabaseDSN()

	// Open connection
	db, err := gorm.Open(postgres.Open(dsn), gormConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get generic database object to configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Connection pool settings
	sqlDB.SetMaxOpenConns(cfg.Database.MaxConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MinConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := waitForDB(sqlDB, cfg.Database.ConnectTimeout); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("✅ Database connected successfully")

	return db, nil
}

// NewSQLiteDB opens a SQLite database file, used for local runs and tests
func NewSQLiteDB(path string, gormCfg *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// waitForDB pings until the database answers or the timeout elapses.
// Only the startup probe retries; request paths never do.
func waitForDB(sqlDB *sql.DB, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 500 * time.Millisecond
	policy.MaxElapsedTime = timeout

	ping := func() error {
		return sqlDB.PingContext(ctx)
	}
	notify := func(err error, next time.Duration) {
		log.Printf("⏳ Database not ready (%v), retrying in %s", err, next)
	}

	return backoff.RetryNotify(ping, backoff.WithContext(policy, ctx), notify)
}

// AutoMigrate brings the schema up to date. PostgreSQL uses the embedded
// sql-migrate files; SQLite falls back to GORM's model migration.
func AutoMigrate(db *gorm.DB) error {
	if db.Dialector.Name() == "sqlite" {
		log.Println("🔄 Migrating SQLite schema from models...")
		if err := db.AutoMigrate(Models...); err != nil {
			return fmt.Errorf("failed to auto-migrate models: %w", err)
		}
		return nil
	}

	log.Println("🔄 Applying embedded migrations using sql-migrate...")

	source := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrations.FS,
		Root:       ".",
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get db connection during migrate up, error: %v", err)
	}

	n, err := migrate.Exec(sqlDB, "postgres", source, migrate.Up)
	if err != nil {
		return fmt.Errorf("failed to apply migration, error: %v", err)
	}

	log.Printf("✅ Applied %d migrations!\n", n)
	return nil
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	log.Println("✅ Database connection closed")
	return nil
}
