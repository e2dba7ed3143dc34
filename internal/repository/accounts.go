package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/db-agama/kajian-manager/internal/domain"
	"github.com/jmoiron/sqlx"
)

// Authenticate melakukan satu pencarian berdasarkan username lalu satu
// verifikasi hash. Username yang tidak ada dan password yang salah sama-sama
// menghasilkan domain.ErrInvalidCredentials.
func (r *Repository) Authenticate(username, password string) (*domain.Account, error) {
	account, err := r.getAccountByUsername(username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.hasher.VerifyDummy(password)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, storeError("mencari pengguna", err)
	}

	if !r.hasher.Verify(password, account.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	return account, nil
}

func (r *Repository) getAccountByUsername(username string) (*domain.Account, error) {
	query := `
		SELECT id, name, username, password_hash, role
		FROM accounts WHERE username = ?
	`

	ctx, cancel := context.WithTimeout(context.Background(), r.queryTimeout())
	defer cancel()

	account := &domain.Account{}
	if err := r.db.GetContext(ctx, account, r.db.Rebind(query), username); err != nil {
		return nil, err
	}

	return account, nil
}

func (r *Repository) GetAccountByID(id int64) (*domain.Account, error) {
	query := `
		SELECT id, name, username, role
		FROM accounts WHERE id = ?
	`

	ctx, cancel := context.WithTimeout(context.Background(), r.queryTimeout())
	defer cancel()

	account := &domain.Account{}
	if err := r.db.GetContext(ctx, account, r.db.Rebind(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storeError("mengambil pengguna", err)
	}

	return account, nil
}

// GetAllAccounts mengembalikan semua akun urut berdasarkan id. Hash password
// tidak ikut dibaca.
func (r *Repository) GetAllAccounts() ([]*domain.Account, error) {
	query := `
		SELECT id, name, username, role
		FROM accounts ORDER BY id ASC
	`

	ctx, cancel := context.WithTimeout(context.Background(), r.queryTimeout())
	defer cancel()

	accounts := make([]*domain.Account, 0)
	if err := r.db.SelectContext(ctx, &accounts, query); err != nil {
		return nil, storeError("mengambil daftar pengguna", err)
	}

	return accounts, nil
}

func (r *Repository) CreateAccount(name, username, password string, role domain.Role) (*domain.Account, error) {
	passwordHash, err := r.hasher.Hash(password)
	if err != nil {
		return nil, storeError("membuat hash password", err)
	}

	account := &domain.Account{
		Name:         name,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}

	query := `
		INSERT INTO accounts (name, username, password_hash, role)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`

	err = r.withTx(func(ctx context.Context, tx *sqlx.Tx) error {
		args := []any{account.Name, account.Username, account.PasswordHash, string(account.Role)}
		return tx.QueryRowxContext(ctx, tx.Rebind(query), args...).Scan(&account.ID)
	})
	if err != nil {
		return nil, storeError("membuat pengguna", err)
	}

	return account, nil
}

// UpdateAccount mengubah data akun. password bernilai nil berarti hash yang
// tersimpan dipertahankan.
func (r *Repository) UpdateAccount(id int64, name, username string, password *string, role domain.Role) (*domain.Account, error) {
	account := &domain.Account{
		ID:       id,
		Name:     name,
		Username: username,
		Role:     role,
	}

	query := `
		UPDATE accounts SET name = ?, username = ?, role = ?
		WHERE id = ?
	`
	args := []any{name, username, string(role), id}

	if password != nil {
		passwordHash, err := r.hasher.Hash(*password)
		if err != nil {
			return nil, storeError("membuat hash password", err)
		}
		account.PasswordHash = passwordHash

		query = `
			UPDATE accounts SET name = ?, username = ?, role = ?, password_hash = ?
			WHERE id = ?
		`
		args = []any{name, username, string(role), passwordHash, id}
	}

	err := r.withTx(func(ctx context.Context, tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, tx.Rebind(query), args...)
		if err != nil {
			return err
		}
		return checkAffected(res.RowsAffected())
	})
	if err != nil {
		return nil, storeError("mengubah pengguna", err)
	}

	return account, nil
}

// RehashPassword mengganti hash password dengan hash baru dari algoritma saat ini.
func (r *Repository) RehashPassword(id int64, password string) error {
	passwordHash, err := r.hasher.Hash(password)
	if err != nil {
		return storeError("membuat hash password", err)
	}

	query := `
		UPDATE accounts SET password_hash = ? WHERE id = ?
	`

	err = r.withTx(func(ctx context.Context, tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, tx.Rebind(query), passwordHash, id)
		if err != nil {
			return err
		}
		return checkAffected(res.RowsAffected())
	})

	return storeError("memperbarui hash password", err)
}

func (r *Repository) DeleteAccount(id int64) error {
	query := `
		DELETE FROM accounts WHERE id = ?
	`

	err := r.withTx(func(ctx context.Context, tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, tx.Rebind(query), id)
		if err != nil {
			return err
		}
		return checkAffected(res.RowsAffected())
	})

	return storeError("menghapus pengguna", err)
}

func (r *Repository) NeedsRehash(account *domain.Account) bool {
	return r.hasher.NeedsRehash(account.PasswordHash)
}
