package database

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/db-agama/kajian-manager/internal/config"
	"github.com/db-agama/kajian-manager/internal/domain"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

//go:embed migrations/*/*.sql
var migrations embed.FS

func init() {
	// sqlx hanya mengenal nama driver "sqlite3"
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// Open membuka satu koneksi database yang dipakai sepanjang umur proses.
// Kegagalan apa pun dikembalikan sebagai *domain.ConnectionError.
func Open(cfg *config.Config) (*sqlx.DB, error) {
	switch cfg.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, &domain.ConnectionError{Err: fmt.Errorf("driver database tidak didukung: %q", cfg.Database.Driver)}
	}

	db, err := sqlx.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, &domain.ConnectionError{Err: err}
	}

	// tidak ada pool: satu koneksi, tidak ada akses bersamaan
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open belum benar-benar terhubung ke database, jadi perlu ping
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, &domain.ConnectionError{Err: err}
	}

	if cfg.Database.Driver == DriverSQLite {
		for _, pragma := range []string{"PRAGMA foreign_keys = ON", "PRAGMA busy_timeout = 5000"} {
			if _, err := db.ExecContext(ctx, pragma); err != nil {
				_ = db.Close()
				return nil, &domain.ConnectionError{Err: err}
			}
		}
	}

	return db, nil
}

// Migrate menerapkan semua migrasi yang belum dijalankan.
func Migrate(db *sqlx.DB, driver string) error {
	return RunMigrations(context.Background(), db, driver, "up")
}

// RunMigrations menjalankan perintah goose (up, down, status, version, reset, ...).
func RunMigrations(ctx context.Context, db *sqlx.DB, driver string, command string, args ...string) error {
	dir, dialect, err := migrationTarget(driver)
	if err != nil {
		return err
	}

	goose.SetBaseFS(migrations)
	goose.SetLogger(&gooseLogger{logger: slog.Default()})
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}

	return goose.RunContext(ctx, command, db.DB, dir, args...)
}

func migrationTarget(driver string) (dir string, dialect string, err error) {
	switch driver {
	case DriverPostgres:
		return "migrations/postgres", "postgres", nil
	case DriverSQLite:
		return "migrations/sqlite", "sqlite3", nil
	default:
		return "", "", fmt.Errorf("driver database tidak didukung: %q", driver)
	}
}

type gooseLogger struct {
	logger *slog.Logger
}

func (l *gooseLogger) Printf(format string, v ...any) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "migrate")
}

func (l *gooseLogger) Fatalf(format string, v ...any) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "migrate")
	os.Exit(1)
}
