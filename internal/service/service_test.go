package service

import (
	"testing"

	"github.com/db-agama/kajian-manager/internal/domain"
	"github.com/db-agama/kajian-manager/internal/repository"
	"github.com/db-agama/kajian-manager/internal/testutil"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc   *Service
	db    *sqlx.DB
	admin *domain.Session
}

func setup(t *testing.T) *fixture {
	t.Helper()

	cfg := testutil.Config(t)
	db := testutil.PrepareDB(t, cfg)
	repo := repository.NewRepository(cfg, db, testutil.Hasher(t, cfg))

	svc, err := NewService(cfg, repo)
	require.NoError(t, err)
	require.NoError(t, svc.EnsureInitialAdmin())

	admin, err := svc.Login(LoginInput{Username: cfg.InitialAdmin.Username, Password: cfg.InitialAdmin.Password})
	require.NoError(t, err)

	return &fixture{svc: svc, db: db, admin: admin}
}

// staff membuat akun petugas baru lalu login sebagai akun tersebut.
func (f *fixture) staff(t *testing.T, username string) *domain.Session {
	t.Helper()

	_, err := f.svc.CreateAccount(f.admin, AccountInput{
		Name:            "Petugas " + username,
		Username:        username,
		Password:        "rahasia",
		PasswordConfirm: "rahasia",
		Role:            domain.RoleStaff,
	})
	require.NoError(t, err)

	session, err := f.svc.Login(LoginInput{Username: username, Password: "rahasia"})
	require.NoError(t, err)
	return session
}

func requireValidationError(t *testing.T, err error, field string) {
	t.Helper()

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, field, validationErr.Field)
	require.NotEmpty(t, validationErr.Message)
}
