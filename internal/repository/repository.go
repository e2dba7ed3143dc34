package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/db-agama/kajian-manager/internal/config"
	"github.com/db-agama/kajian-manager/internal/credential"
	"github.com/db-agama/kajian-manager/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Repository struct {
	cfg    *config.Config
	db     *sqlx.DB
	hasher *credential.Hasher
}

func NewRepository(cfg *config.Config, db *sqlx.DB, hasher *credential.Hasher) *Repository {
	return &Repository{
		cfg:    cfg,
		db:     db,
		hasher: hasher,
	}
}

func (r *Repository) queryTimeout() time.Duration {
	return time.Duration(r.cfg.Database.QueryTimeout) * time.Second
}

// withTx menjalankan fn dalam satu transaksi: commit jika fn sukses,
// rollback jika tidak, sehingga tidak ada perubahan setengah jadi.
func (r *Repository) withTx(fn func(ctx context.Context, tx *sqlx.Tx) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(ctx, tx); err != nil {
		return err
	}

	return tx.Commit()
}

// storeError menerjemahkan error driver menjadi error domain.
func storeError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotFound):
		return err
	case isUniqueViolation(err):
		return &domain.StoreError{Op: op, Err: domain.ErrUsernameTaken}
	default:
		return &domain.StoreError{Op: op, Err: err}
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "accounts_username_key"
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(sqliteErr.Error(), "accounts.username")
	}

	return false
}

func checkAffected(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// escapeLike meloloskan karakter wildcard LIKE dari input pengguna.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
