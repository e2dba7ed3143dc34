package repository

import (
	"strings"
	"testing"

	"github.com/db-agama/kajian-manager/internal/domain"
	"github.com/db-agama/kajian-manager/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) *Repository {
	t.Helper()

	cfg := testutil.Config(t)
	db := testutil.PrepareDB(t, cfg)
	return NewRepository(cfg, db, testutil.Hasher(t, cfg))
}

func storedHash(t *testing.T, r *Repository, id int64) string {
	t.Helper()

	var hash string
	require.NoError(t, r.db.Get(&hash, r.db.Rebind("SELECT password_hash FROM accounts WHERE id = ?"), id))
	return hash
}

func TestAuthenticate(t *testing.T) {
	r := setup(t)

	created, err := r.CreateAccount("Ahmad", "ahmad", "rahasia", domain.RoleStaff)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.NotEqual(t, "rahasia", created.PasswordHash)

	account, err := r.Authenticate("ahmad", "rahasia")
	require.NoError(t, err)
	assert.Equal(t, created.ID, account.ID)
	assert.Equal(t, "Ahmad", account.Name)
	assert.Equal(t, domain.RoleStaff, account.Role)

	unknownUser, unknownErr := r.Authenticate("tidak-ada", "rahasia")
	wrongPassword, wrongErr := r.Authenticate("ahmad", "salah")

	// kedua kasus tidak bisa dibedakan oleh pemanggil
	assert.Nil(t, unknownUser)
	assert.Nil(t, wrongPassword)
	assert.Equal(t, domain.ErrInvalidCredentials, unknownErr)
	assert.Equal(t, domain.ErrInvalidCredentials, wrongErr)
}

func TestAuthenticateCorruptHash(t *testing.T) {
	r := setup(t)

	created, err := r.CreateAccount("Ahmad", "ahmad", "rahasia", domain.RoleStaff)
	require.NoError(t, err)

	_, err = r.db.Exec(r.db.Rebind("UPDATE accounts SET password_hash = ? WHERE id = ?"), "$2a$10$rusak", created.ID)
	require.NoError(t, err)

	account, err := r.Authenticate("ahmad", "rahasia")
	assert.Nil(t, account)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestGetAllAccountsOrderedByID(t *testing.T) {
	r := setup(t)

	for _, username := range []string{"zaid", "abdullah", "muhammad"} {
		_, err := r.CreateAccount(username, username, "rahasia", domain.RoleStaff)
		require.NoError(t, err)
	}

	accounts, err := r.GetAllAccounts()
	require.NoError(t, err)
	require.Len(t, accounts, 3)

	assert.Equal(t, "zaid", accounts[0].Username)
	assert.Equal(t, "abdullah", accounts[1].Username)
	assert.Equal(t, "muhammad", accounts[2].Username)
	for i, account := range accounts {
		assert.Empty(t, account.PasswordHash)
		if i > 0 {
			assert.Greater(t, account.ID, accounts[i-1].ID)
		}
	}
}

func TestCreateAccountDuplicateUsername(t *testing.T) {
	r := setup(t)

	_, err := r.CreateAccount("Ahmad", "ahmad", "rahasia", domain.RoleStaff)
	require.NoError(t, err)

	_, err = r.CreateAccount("Ahmad Lain", "ahmad", "lain", domain.RoleAdministrator)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	var storeErr *domain.StoreError
	assert.ErrorAs(t, err, &storeErr)

	accounts, err := r.GetAllAccounts()
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestUpdateAccountKeepsPassword(t *testing.T) {
	r := setup(t)

	created, err := r.CreateAccount("Ahmad", "ahmad", "rahasia", domain.RoleStaff)
	require.NoError(t, err)
	before := storedHash(t, r, created.ID)

	updated, err := r.UpdateAccount(created.ID, "Ahmad Fauzi", "fauzi", nil, domain.RoleAdministrator)
	require.NoError(t, err)
	assert.Equal(t, "fauzi", updated.Username)

	assert.Equal(t, before, storedHash(t, r, created.ID))

	account, err := r.Authenticate("fauzi", "rahasia")
	require.NoError(t, err)
	assert.Equal(t, "Ahmad Fauzi", account.Name)
	assert.Equal(t, domain.RoleAdministrator, account.Role)
}

func TestUpdateAccountChangesPassword(t *testing.T) {
	r := setup(t)

	created, err := r.CreateAccount("Ahmad", "ahmad", "rahasia", domain.RoleStaff)
	require.NoError(t, err)

	password := "baru"
	_, err = r.UpdateAccount(created.ID, "Ahmad", "ahmad", &password, domain.RoleStaff)
	require.NoError(t, err)

	_, err = r.Authenticate("ahmad", "rahasia")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = r.Authenticate("ahmad", "baru")
	assert.NoError(t, err)
}

func TestUpdateAccountErrors(t *testing.T) {
	r := setup(t)

	first, err := r.CreateAccount("Ahmad", "ahmad", "rahasia", domain.RoleStaff)
	require.NoError(t, err)
	_, err = r.CreateAccount("Bilal", "bilal", "rahasia", domain.RoleStaff)
	require.NoError(t, err)

	_, err = r.UpdateAccount(first.ID, "Ahmad", "bilal", nil, domain.RoleStaff)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	_, err = r.UpdateAccount(9999, "Siapa", "siapa", nil, domain.RoleStaff)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	account, err := r.GetAccountByID(first.ID)
	require.NoError(t, err)
	assert.Equal(t, "ahmad", account.Username)
}

func TestDeleteAccount(t *testing.T) {
	r := setup(t)

	created, err := r.CreateAccount("Ahmad", "ahmad", "rahasia", domain.RoleStaff)
	require.NoError(t, err)

	require.NoError(t, r.DeleteAccount(created.ID))
	assert.ErrorIs(t, r.DeleteAccount(created.ID), domain.ErrNotFound)

	_, err = r.GetAccountByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRehashPassword(t *testing.T) {
	r := setup(t)

	created, err := r.CreateAccount("Ahmad", "ahmad", "rahasia", domain.RoleStaff)
	require.NoError(t, err)
	before := storedHash(t, r, created.ID)

	require.NoError(t, r.RehashPassword(created.ID, "rahasia"))
	assert.NotEqual(t, before, storedHash(t, r, created.ID))

	_, err = r.Authenticate("ahmad", "rahasia")
	assert.NoError(t, err)
}

func TestHashFailureIsStoreError(t *testing.T) {
	r := setup(t)

	// bcrypt menolak password lebih dari 72 byte
	_, err := r.CreateAccount("Ahmad", "ahmad", strings.Repeat("a", 80), domain.RoleStaff)

	var storeErr *domain.StoreError
	assert.ErrorAs(t, err, &storeErr)

	accounts, err := r.GetAllAccounts()
	require.NoError(t, err)
	assert.Empty(t, accounts)
}
