package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/mattn/go-sqlite3"

	"github.com/rs/zerolog"
	sqldblogger "github.com/simukti/sqldb-logger"
	"github.com/simukti/sqldb-logger/logadapter/zerologadapter"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"go.opentelemetry.io/otel"
)

type DB struct {
	*sql.DB
	QueryBuilder *squirrel.StatementBuilderType
}

// Open sets up the SQLite handle with otel instrumentation and zerolog
// query logging, then brings the schema up to date.
func Open(path string, migrationsPath string) (*DB, error) {
	sqlDB, err := otelsql.Open("sqlite3", path,
		otelsql.WithDBSystem("sqlite"),
		otelsql.WithDBName("taskapp"),
		otelsql.WithTracerProvider(otel.GetTracerProvider()),
	)

	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	logger := zerolog.New(os.Stdout)
	logged := sqldblogger.OpenDriver(path, sqlDB.Driver(), zerologadapter.New(logger))

	// A single connection keeps in-memory databases coherent and avoids
	// SQLITE_BUSY between concurrent writers.
	logged.SetMaxOpenConns(1)
	logged.SetMaxIdleConns(1)
	logged.SetConnMaxLifetime(5 * time.Minute)

	if _, err := logged.Exec("PRAGMA foreign_keys = ON"); err != nil {
		logged.Close()
		return nil, err
	}

	if migrationsPath != "" {
		if err := RunMigrations(logged, migrationsPath); err != nil {
			logged.Close()
			return nil, err
		}
	}

	builder := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

	return &DB{
		DB:           logged,
		QueryBuilder: &builder,
	}, nil
}

func RunMigrations(db *sql.DB, migrationsPath string) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})

	if err != nil {
		return fmt.Errorf("creating migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://"+migrationsPath,
		"sqlite3",
		driver,
	)
	if err != nil {
		return fmt.Errorf("creating migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("running migrations: %w", err)
	}

	return nil
}
