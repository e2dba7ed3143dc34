package service

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/db-agama/kajian-manager/internal/domain"
)

type LoginInput struct {
	Username string `validate:"required" label:"Username"`
	Password string `validate:"required" label:"Password"`
}

// Login memverifikasi kredensial dan mengembalikan session baru. Hash lama
// diperbarui ke algoritma saat ini tanpa menggagalkan login.
func (s *Service) Login(input LoginInput) (*domain.Session, error) {
	input.Username = strings.TrimSpace(input.Username)
	if err := s.validateStruct(input); err != nil {
		return nil, err
	}

	account, err := s.repository.Authenticate(input.Username, input.Password)
	if err != nil {
		return nil, err
	}

	if s.repository.NeedsRehash(account) {
		if err := s.repository.RehashPassword(account.ID, input.Password); err != nil {
			slog.Warn("gagal memperbarui hash password", "username", account.Username, "error", err)
		}
	}
	account.PasswordHash = ""

	slog.Info("pengguna login", "username", account.Username, "role", account.Role)
	return domain.NewSession(account), nil
}

// EnsureInitialAdmin membuat administrator awal dari konfigurasi jika
// username-nya belum dipakai.
func (s *Service) EnsureInitialAdmin() error {
	admin := s.config.InitialAdmin
	if err := s.checkPasswordLength(admin.Password); err != nil {
		return err
	}

	_, err := s.repository.CreateAccount(admin.FullName, admin.Username, admin.Password, domain.RoleAdministrator)
	switch {
	case err == nil:
		slog.Info("administrator awal dibuat", "username", admin.Username)
		return nil
	case errors.Is(err, domain.ErrUsernameTaken):
		// sudah ada, tidak perlu diapa-apakan
		return nil
	default:
		return err
	}
}
