// Package seed mengisi database dengan data contoh untuk keperluan
// pengembangan.
package seed

import (
	"log/slog"
	"os"

	"github.com/db-agama/kajian-manager/internal/domain"
	"github.com/db-agama/kajian-manager/internal/repository"
	"github.com/db-agama/kajian-manager/internal/service"
	"github.com/db-agama/kajian-manager/internal/utils"
)

// SeedAccounts memasukkan n akun petugas acak dengan password yang sama dan
// mengembalikan jumlah yang berhasil dimasukkan.
func SeedAccounts(r *repository.Repository, n int, password string) int {
	cnt := 0
	for i := 0; i < n; i++ {
		name := utils.GenerateRandomName()
		username := utils.GenerateUsernameFromName(name)

		if _, err := r.CreateAccount(name, username, password, domain.RoleStaff); err != nil {
			slog.Error("gagal memasukkan pengguna", "username", username, "error", err)
			continue
		}

		cnt++
	}

	return cnt
}

func SeedScheduleEntries(r *repository.Repository, n int) int {
	cnt := 0
	for i := 0; i < n; i++ {
		entry := utils.GenerateRandomScheduleEntry()
		if err := r.CreateScheduleEntry(entry); err != nil {
			slog.Error("gagal memasukkan jadwal", "error", err)
			continue
		}

		cnt++
	}

	return cnt
}

// ImportScheduleEntries membaca file CSV hasil ekspor dan memasukkannya atas
// nama session.
func ImportScheduleEntries(svc *service.Service, session *domain.Session, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	return svc.ImportScheduleEntries(session, file)
}
