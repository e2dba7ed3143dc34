package service

import (
	"strings"
	"testing"

	"github.com/db-agama/kajian-manager/internal/credential"
	"github.com/db-agama/kajian-manager/internal/domain"
	"github.com/db-agama/kajian-manager/internal/repository"
	"github.com/db-agama/kajian-manager/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	f := setup(t)

	assert.True(t, f.admin.Authenticated())
	assert.Equal(t, "admin", f.admin.Account.Username)
	assert.Equal(t, domain.RoleAdministrator, f.admin.Account.Role)
	assert.Empty(t, f.admin.Account.PasswordHash)

	session, err := f.svc.Login(LoginInput{Username: "admin", Password: "salah"})
	assert.Nil(t, session)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	session, err = f.svc.Login(LoginInput{Username: "tidak-ada", Password: "salah"})
	assert.Nil(t, session)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = f.svc.Login(LoginInput{Username: "   ", Password: "rahasia"})
	requireValidationError(t, err, "Username")

	_, err = f.svc.Login(LoginInput{Username: "admin"})
	requireValidationError(t, err, "Password")
}

func TestLoginUpgradesLegacyHash(t *testing.T) {
	f := setup(t)
	f.staff(t, "ahmad")

	legacy, err := credential.NewHasher(credential.AlgorithmArgon2id, 0)
	require.NoError(t, err)
	hash, err := legacy.Hash("rahasia")
	require.NoError(t, err)

	_, err = f.db.Exec(f.db.Rebind("UPDATE accounts SET password_hash = ? WHERE username = ?"), hash, "ahmad")
	require.NoError(t, err)

	_, err = f.svc.Login(LoginInput{Username: "ahmad", Password: "rahasia"})
	require.NoError(t, err)

	var stored string
	require.NoError(t, f.db.Get(&stored, f.db.Rebind("SELECT password_hash FROM accounts WHERE username = ?"), "ahmad"))
	assert.True(t, strings.HasPrefix(stored, "$2a$"), stored)

	_, err = f.svc.Login(LoginInput{Username: "ahmad", Password: "rahasia"})
	assert.NoError(t, err)
}

func TestEnsureInitialAdminIsIdempotent(t *testing.T) {
	f := setup(t)

	require.NoError(t, f.svc.EnsureInitialAdmin())
	require.NoError(t, f.svc.EnsureInitialAdmin())

	accounts, err := f.svc.ListAccounts(f.admin)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestEnsureInitialAdminRejectsLongPassword(t *testing.T) {
	cfg := testutil.Config(t)
	cfg.InitialAdmin.Password = strings.Repeat("a", 80)
	db := testutil.PrepareDB(t, cfg)
	repo := repository.NewRepository(cfg, db, testutil.Hasher(t, cfg))

	svc, err := NewService(cfg, repo)
	require.NoError(t, err)

	requireValidationError(t, svc.EnsureInitialAdmin(), "Password")
}
