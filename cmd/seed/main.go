package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/db-agama/kajian-manager/internal/config"
	"github.com/db-agama/kajian-manager/internal/credential"
	"github.com/db-agama/kajian-manager/internal/database"
	"github.com/db-agama/kajian-manager/internal/repository"
	"github.com/db-agama/kajian-manager/internal/seed"
	"github.com/db-agama/kajian-manager/internal/service"
)

func main() {
	var op int
	var n int
	var file string

	flag.IntVar(&op, "op", 0, "operasi yang dijalankan (1: pengguna acak, 2: jadwal acak, 3: impor jadwal dari CSV)")
	flag.IntVar(&n, "n", 5, "jumlah data yang dimasukkan")
	flag.StringVar(&file, "file", "", "file CSV untuk operasi 3")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// membaca konfigurasi
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("gagal memuat konfigurasi", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := database.Open(cfg)
	if err != nil {
		logger.Error("gagal terhubung ke database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db, cfg.Database.Driver); err != nil {
		logger.Error("gagal menjalankan migrasi", "error", err)
		return
	}

	hasher, err := credential.NewHasher(credential.Algorithm(cfg.Password.Algorithm), cfg.Password.BcryptCost)
	if err != nil {
		logger.Error("gagal membuat hasher password", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, db, hasher)

	// menjalankan operasi
	switch op {
	case 0:
		slog.Error("operasi belum ditentukan")
	case 1:
		if n <= 0 {
			slog.Error("jumlah pengguna tidak valid")
			return
		}
		if cfg.Seed.User.Password == "" {
			slog.Error("SEED_USER_PASSWORD wajib diisi untuk operasi ini")
			return
		}

		cnt := seed.SeedAccounts(repo, n, cfg.Seed.User.Password)
		slog.Info("pengguna berhasil dimasukkan", slog.Int("count", cnt))
	case 2:
		if n <= 0 {
			slog.Error("jumlah jadwal tidak valid")
			return
		}

		cnt := seed.SeedScheduleEntries(repo, n)
		slog.Info("jadwal berhasil dimasukkan", slog.Int("count", cnt))
	case 3:
		if file == "" {
			slog.Error("file CSV belum ditentukan, gunakan -file")
			return
		}

		svc, err := service.NewService(cfg, repo)
		if err != nil {
			slog.Error("gagal membuat service", "error", err)
			return
		}
		if err := svc.EnsureInitialAdmin(); err != nil {
			slog.Error("gagal membuat administrator awal", "error", err)
			return
		}

		// impor dijalankan atas nama administrator awal
		session, err := svc.Login(service.LoginInput{Username: cfg.InitialAdmin.Username, Password: cfg.InitialAdmin.Password})
		if err != nil {
			slog.Error("gagal login sebagai administrator awal", "error", err)
			return
		}

		cnt, err := seed.ImportScheduleEntries(svc, session, file)
		if err != nil {
			slog.Error("impor berhenti", slog.Int("count", cnt), "error", err)
			return
		}
		slog.Info("jadwal berhasil diimpor", slog.Int("count", cnt))
	default:
		slog.Error("operasi tidak valid")
	}
}
