package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("username atau password salah")
	ErrUnauthenticated    = errors.New("belum login")
	ErrPermissionDenied   = errors.New("akses ditolak")
	ErrSelfDeletion       = fmt.Errorf("%w: tidak bisa menghapus pengguna yang sedang login", ErrPermissionDenied)
	ErrNotFound           = errors.New("data tidak ditemukan")
	ErrUsernameTaken      = errors.New("username sudah digunakan")
)

// ValidationError dikembalikan ketika isian form tidak valid. Tidak ada
// perubahan data yang terjadi.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StoreError membungkus penolakan dari database (pelanggaran constraint dsb).
// Pesannya ditampilkan apa adanya ke pengguna.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("gagal %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ConnectionError terjadi saat koneksi database tidak dapat dibuka. Fatal.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("gagal koneksi ke database: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}
