package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/db-agama/kajian-manager/internal/config"
	"github.com/db-agama/kajian-manager/internal/database"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Penggunaan: %s [up|down|status|version|reset]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	command, args := "up", flag.Args()
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	switch command {
	case "up", "down", "status", "version", "reset":
	default:
		flag.Usage()
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("gagal memuat konfigurasi", "error", err)
		os.Exit(1)
	}

	db, err := database.Open(cfg)
	if err != nil {
		logger.Error("gagal terhubung ke database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.RunMigrations(context.Background(), db, cfg.Database.Driver, command, args...); err != nil {
		logger.Error("migrasi gagal", "command", command, "error", err)
		return
	}

	logger.Info("migrasi selesai", "command", command)
}
