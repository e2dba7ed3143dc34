package main

import (
	"log/slog"
	"os"

	"github.com/db-agama/kajian-manager/internal/config"
	"github.com/db-agama/kajian-manager/internal/console"
	"github.com/db-agama/kajian-manager/internal/credential"
	"github.com/db-agama/kajian-manager/internal/database"
	"github.com/db-agama/kajian-manager/internal/repository"
	"github.com/db-agama/kajian-manager/internal/service"
)

func main() {
	/**********************************************
	 * membuat logger
	 **********************************************/
	// stdout dipakai oleh console, log ditulis ke stderr
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * memuat konfigurasi
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("gagal memuat konfigurasi", "error", err)
		os.Exit(1)
	}

	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Log.Level}))
	slog.SetDefault(logger)

	/**********************************************
	 * koneksi database
	 **********************************************/
	db, err := database.Open(cfg)
	if err != nil {
		logger.Error("gagal terhubung ke database", "driver", cfg.Database.Driver, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db, cfg.Database.Driver); err != nil {
			logger.Error("gagal menjalankan migrasi", "error", err)
			return
		}
	}

	/**********************************************
	 * membuat repository dan service
	 **********************************************/
	hasher, err := credential.NewHasher(credential.Algorithm(cfg.Password.Algorithm), cfg.Password.BcryptCost)
	if err != nil {
		logger.Error("gagal membuat hasher password", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, db, hasher)

	svc, err := service.NewService(cfg, repo)
	if err != nil {
		logger.Error("gagal membuat service", "error", err)
		return
	}

	/**********************************************
	 * memastikan administrator awal ada
	 **********************************************/
	if err := svc.EnsureInitialAdmin(); err != nil {
		logger.Error("gagal membuat administrator awal", "error", err)
		return
	}

	/**********************************************
	 * menjalankan console
	 **********************************************/
	if err := console.New(svc, os.Stdin, os.Stdout).Run(); err != nil {
		logger.Error("console berhenti dengan error", "error", err)
	}
}
