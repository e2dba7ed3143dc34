package credential

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHashers(t *testing.T) map[string]*Hasher {
	t.Helper()

	bcryptHasher, err := NewHasher(AlgorithmBcrypt, bcrypt.MinCost)
	require.NoError(t, err)
	argonHasher, err := NewHasher(AlgorithmArgon2id, bcrypt.MinCost)
	require.NoError(t, err)

	return map[string]*Hasher{
		"bcrypt":   bcryptHasher,
		"argon2id": argonHasher,
	}
}

func TestHashAndVerify(t *testing.T) {
	for name, h := range newTestHashers(t) {
		t.Run(name, func(t *testing.T) {
			for _, password := range []string{"rahasia", "p@ssw0rd dengan spasi", "ü-ñ-漢字", " "} {
				hash, err := h.Hash(password)
				require.NoError(t, err)
				assert.NotEmpty(t, hash)
				assert.NotContains(t, hash, password)
				assert.True(t, h.Verify(password, hash), "password %q harus cocok", password)
				assert.False(t, h.Verify(password+"x", hash))
			}
		})
	}
}

func TestHashUsesFreshSalt(t *testing.T) {
	for name, h := range newTestHashers(t) {
		t.Run(name, func(t *testing.T) {
			first, err := h.Hash("sama")
			require.NoError(t, err)
			second, err := h.Hash("sama")
			require.NoError(t, err)

			assert.NotEqual(t, first, second)
			assert.True(t, h.Verify("sama", first))
			assert.True(t, h.Verify("sama", second))
		})
	}
}

func TestVerifyAcceptsBothAlgorithms(t *testing.T) {
	hashers := newTestHashers(t)

	argonHash, err := hashers["argon2id"].Hash("rahasia")
	require.NoError(t, err)
	bcryptHash, err := hashers["bcrypt"].Hash("rahasia")
	require.NoError(t, err)

	assert.True(t, hashers["bcrypt"].Verify("rahasia", argonHash))
	assert.True(t, hashers["argon2id"].Verify("rahasia", bcryptHash))
}

func TestVerifyMalformedHash(t *testing.T) {
	h := newTestHashers(t)["bcrypt"]

	tests := []struct {
		name string
		hash string
	}{
		{name: "empty", hash: ""},
		{name: "plaintext", hash: "rahasia"},
		{name: "truncated bcrypt", hash: "$2a$10$abc"},
		{name: "truncated argon2id", hash: "$argon2id$v=19$m=65536"},
		{name: "argon2id zero iterations", hash: "$argon2id$v=19$m=65536,t=0,p=2$c2FsdHNhbHRzYWx0$a2V5a2V5a2V5a2V5a2V5a2V5"},
		{name: "argon2id bad base64", hash: "$argon2id$v=19$m=65536,t=1,p=2$!!!$!!!"},
		{name: "unknown scheme", hash: "$1$saltsalt$hashhashhash"},
		{name: "argon2id huge memory", hash: "$argon2id$v=19$m=4294967295,t=1,p=2$c2FsdHNhbHRzYWx0$a2V5a2V5a2V5a2V5a2V5a2V5"},
		{name: "argon2id huge iterations", hash: "$argon2id$v=19$m=65536,t=4294967295,p=2$c2FsdHNhbHRzYWx0$a2V5a2V5a2V5a2V5a2V5a2V5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, h.Verify("rahasia", tt.hash))
			})
		})
	}
}

func TestNeedsRehash(t *testing.T) {
	hashers := newTestHashers(t)

	bcryptHash, err := hashers["bcrypt"].Hash("rahasia")
	require.NoError(t, err)
	argonHash, err := hashers["argon2id"].Hash("rahasia")
	require.NoError(t, err)

	assert.False(t, hashers["bcrypt"].NeedsRehash(bcryptHash))
	assert.True(t, hashers["bcrypt"].NeedsRehash(argonHash))
	assert.False(t, hashers["argon2id"].NeedsRehash(argonHash))
	assert.True(t, hashers["argon2id"].NeedsRehash(bcryptHash))

	costlier, err := NewHasher(AlgorithmBcrypt, bcrypt.MinCost+1)
	require.NoError(t, err)
	assert.True(t, costlier.NeedsRehash(bcryptHash))
}

func TestNewHasherRejectsUnknownAlgorithm(t *testing.T) {
	_, err := NewHasher("md5", bcrypt.DefaultCost)
	assert.Error(t, err)

	_, err = NewHasher(AlgorithmBcrypt, 100)
	assert.Error(t, err)
}

func TestVerifyRejectsOversizedArgon2Params(t *testing.T) {
	h := newTestHashers(t)["argon2id"]

	hash, err := h.Hash("rahasia")
	require.NoError(t, err)
	require.True(t, h.Verify("rahasia", hash))

	// parameter yang sama, hanya memori diganti menjadi sangat besar
	i := strings.Index(hash, "m=")
	j := strings.Index(hash[i:], ",")
	corrupt := hash[:i] + "m=4294967295" + hash[i+j:]

	assert.False(t, h.Verify("rahasia", corrupt))
}
