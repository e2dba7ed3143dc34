// Package testutil menyiapkan database sqlite sementara untuk pengujian.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/db-agama/kajian-manager/internal/config"
	"github.com/db-agama/kajian-manager/internal/credential"
	"github.com/db-agama/kajian-manager/internal/database"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

func Config(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.Environment = "test"
	cfg.Database.Driver = database.DriverSQLite
	cfg.Database.DSN = filepath.Join(t.TempDir(), "kajian.db")
	cfg.Database.ConnectTimeout = 5
	cfg.Database.QueryTimeout = 5
	cfg.Database.TransactionTimeout = 5
	cfg.InitialAdmin.Username = "admin"
	cfg.InitialAdmin.Password = "admin-rahasia"
	cfg.InitialAdmin.FullName = "Administrator"
	cfg.Password.Algorithm = string(credential.AlgorithmBcrypt)
	cfg.Password.BcryptCost = bcrypt.MinCost

	return cfg
}

// PrepareDB membuka database sqlite baru yang sudah dimigrasi dan menutupnya
// di akhir pengujian.
func PrepareDB(t *testing.T, cfg *config.Config) *sqlx.DB {
	t.Helper()

	db, err := database.Open(cfg)
	if err != nil {
		t.Fatalf("gagal membuka database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db, cfg.Database.Driver); err != nil {
		t.Fatalf("gagal migrasi database: %v", err)
	}

	return db
}

func Hasher(t *testing.T, cfg *config.Config) *credential.Hasher {
	t.Helper()

	h, err := credential.NewHasher(credential.Algorithm(cfg.Password.Algorithm), cfg.Password.BcryptCost)
	if err != nil {
		t.Fatalf("gagal membuat hasher: %v", err)
	}
	return h
}
