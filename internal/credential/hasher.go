package credential

import (
	"fmt"
	"strings"

	"github.com/alexedwards/argon2id"
	"golang.org/x/crypto/bcrypt"
)

type Algorithm string

const (
	AlgorithmBcrypt   Algorithm = "bcrypt"
	AlgorithmArgon2id Algorithm = "argon2id"
)

const argon2idPrefix = "$argon2id$"

// BcryptMaxPasswordBytes adalah panjang password maksimal yang diterima bcrypt.
const BcryptMaxPasswordBytes = 72

// batas parameter argon2id pada hash tersimpan; hash dengan parameter di atas
// ini dianggap rusak
const (
	maxArgon2Memory      = 256 * 1024 // KiB
	maxArgon2Iterations  = 16
	maxArgon2Parallelism = 64
)

// Hasher membuat dan memverifikasi hash password. Setiap pemanggilan Hash
// memakai salt baru, sehingga password yang sama menghasilkan hash berbeda.
type Hasher struct {
	algorithm    Algorithm
	bcryptCost   int
	argon2Params *argon2id.Params

	// dipakai untuk menyamakan biaya verifikasi saat username tidak ditemukan
	dummyHash string
}

func NewHasher(algorithm Algorithm, bcryptCost int) (*Hasher, error) {
	switch algorithm {
	case AlgorithmBcrypt:
		if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
			return nil, fmt.Errorf("bcrypt cost harus di antara %d dan %d", bcrypt.MinCost, bcrypt.MaxCost)
		}
	case AlgorithmArgon2id:
	default:
		return nil, fmt.Errorf("algoritma password tidak dikenal: %q", algorithm)
	}

	h := &Hasher{
		algorithm:    algorithm,
		bcryptCost:   bcryptCost,
		argon2Params: argon2id.DefaultParams,
	}

	dummyHash, err := h.Hash("kajian-dummy-password")
	if err != nil {
		return nil, err
	}
	h.dummyHash = dummyHash

	return h, nil
}

func (h *Hasher) Algorithm() Algorithm {
	return h.algorithm
}

func (h *Hasher) Hash(plaintext string) (string, error) {
	switch h.algorithm {
	case AlgorithmArgon2id:
		return argon2id.CreateHash(plaintext, h.argon2Params)
	default:
		hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.bcryptCost)
		if err != nil {
			return "", err
		}
		return string(hash), nil
	}
}

// Verify mengembalikan true hanya jika plaintext adalah password asal hash.
// Hash yang rusak atau tidak dikenali selalu dianggap gagal.
func (h *Hasher) Verify(plaintext, hash string) (ok bool) {
	defer func() {
		// argon2 panic untuk parameter yang tidak masuk akal, mis. t=0
		if recover() != nil {
			ok = false
		}
	}()

	switch {
	case strings.HasPrefix(hash, argon2idPrefix):
		if !argon2ParamsWithinLimits(hash) {
			return false
		}
		match, err := argon2id.ComparePasswordAndHash(plaintext, hash)
		return err == nil && match
	case isBcryptHash(hash):
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
	default:
		return false
	}
}

// VerifyDummy menjalankan satu verifikasi yang pasti gagal. Dipakai agar
// username yang tidak ada dan password yang salah memakan waktu yang serupa.
func (h *Hasher) VerifyDummy(plaintext string) {
	_ = h.Verify(plaintext, h.dummyHash)
}

// NeedsRehash melaporkan hash yang dibuat dengan algoritma atau cost lama.
func (h *Hasher) NeedsRehash(hash string) bool {
	switch h.algorithm {
	case AlgorithmArgon2id:
		return !strings.HasPrefix(hash, argon2idPrefix)
	default:
		if !isBcryptHash(hash) {
			return true
		}
		cost, err := bcrypt.Cost([]byte(hash))
		return err != nil || cost != h.bcryptCost
	}
}

func argon2ParamsWithinLimits(hash string) bool {
	params, _, _, err := argon2id.DecodeHash(hash)
	if err != nil {
		return false
	}
	return params.Memory <= maxArgon2Memory &&
		params.Iterations <= maxArgon2Iterations &&
		params.Parallelism <= maxArgon2Parallelism
}

func isBcryptHash(hash string) bool {
	return strings.HasPrefix(hash, "$2a$") || strings.HasPrefix(hash, "$2b$") || strings.HasPrefix(hash, "$2y$")
}
