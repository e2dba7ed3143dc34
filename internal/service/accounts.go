package service

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/db-agama/kajian-manager/internal/credential"
	"github.com/db-agama/kajian-manager/internal/domain"
	"github.com/db-agama/kajian-manager/internal/policy"
)

const passwordMismatch = "Password dan konfirmasi tidak cocok."

type AccountInput struct {
	Name            string      `validate:"required,max=100" label:"Nama"`
	Username        string      `validate:"required,max=50" label:"Username"`
	Password        string      `validate:"required" label:"Password"`
	PasswordConfirm string      `label:"Konfirmasi password"`
	Role            domain.Role `validate:"required,oneof=admin petugas" label:"Role"`
}

// AccountUpdateInput sama dengan AccountInput, tetapi Password bernilai nil
// berarti password lama dipertahankan.
type AccountUpdateInput struct {
	Name            string      `validate:"required,max=100" label:"Nama"`
	Username        string      `validate:"required,max=50" label:"Username"`
	Password        *string     `label:"Password"`
	PasswordConfirm string      `label:"Konfirmasi password"`
	Role            domain.Role `validate:"required,oneof=admin petugas" label:"Role"`
}

// checkPasswordLength menolak password yang lebih panjang dari batas bcrypt.
func (s *Service) checkPasswordLength(password string) error {
	if credential.Algorithm(s.config.Password.Algorithm) != credential.AlgorithmBcrypt {
		return nil
	}
	if len(password) > credential.BcryptMaxPasswordBytes {
		return invalid("Password", fmt.Sprintf("Password maksimal %d byte.", credential.BcryptMaxPasswordBytes))
	}
	return nil
}

func (s *Service) ListAccounts(session *domain.Session) ([]*domain.Account, error) {
	if err := policy.Authorize(session, policy.AccountRead); err != nil {
		return nil, err
	}

	return s.repository.GetAllAccounts()
}

func (s *Service) GetAccount(session *domain.Session, id int64) (*domain.Account, error) {
	if err := policy.Authorize(session, policy.AccountRead); err != nil {
		return nil, err
	}

	return s.repository.GetAccountByID(id)
}

func (s *Service) CreateAccount(session *domain.Session, input AccountInput) (*domain.Account, error) {
	if err := policy.Authorize(session, policy.AccountCreate); err != nil {
		return nil, err
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Username = strings.TrimSpace(input.Username)
	if err := s.validateStruct(input); err != nil {
		return nil, err
	}
	if err := s.checkPasswordLength(input.Password); err != nil {
		return nil, err
	}
	if input.Password != input.PasswordConfirm {
		return nil, invalid("Konfirmasi password", passwordMismatch)
	}

	account, err := s.repository.CreateAccount(input.Name, input.Username, input.Password, input.Role)
	if err != nil {
		return nil, err
	}
	account.PasswordHash = ""

	slog.Info("pengguna dibuat", "by", session.Account.Username, "username", account.Username, "role", account.Role)
	return account, nil
}

// UpdateAccount mengubah akun id. Jika yang diubah adalah akun yang sedang
// login, session ikut diperbarui.
func (s *Service) UpdateAccount(session *domain.Session, id int64, input AccountUpdateInput) (*domain.Account, error) {
	if err := policy.Authorize(session, policy.AccountUpdate); err != nil {
		return nil, err
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Username = strings.TrimSpace(input.Username)
	if err := s.validateStruct(input); err != nil {
		return nil, err
	}
	if input.Password != nil {
		if *input.Password == "" {
			return nil, invalid("Password", "Password tidak boleh kosong.")
		}
		if err := s.checkPasswordLength(*input.Password); err != nil {
			return nil, err
		}
		if *input.Password != input.PasswordConfirm {
			return nil, invalid("Konfirmasi password", passwordMismatch)
		}
	}

	account, err := s.repository.UpdateAccount(id, input.Name, input.Username, input.Password, input.Role)
	if err != nil {
		return nil, err
	}
	account.PasswordHash = ""

	if id == session.Account.ID {
		session.Account.Name = account.Name
		session.Account.Username = account.Username
		session.Account.Role = account.Role
	}

	slog.Info("pengguna diubah", "by", session.Account.Username, "id", id, "password_changed", input.Password != nil)
	return account, nil
}

func (s *Service) DeleteAccount(session *domain.Session, id int64) error {
	if err := policy.CanDeleteAccount(session, id); err != nil {
		return err
	}

	if err := s.repository.DeleteAccount(id); err != nil {
		return err
	}

	slog.Info("pengguna dihapus", "by", session.Account.Username, "id", id)
	return nil
}
