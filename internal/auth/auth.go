// Package auth hashes and verifies API keys with Argon2id.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for new hashes.
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024 // 64 MB
	argon2Threads = 4
	argon2KeyLen  = 32
	saltLen       = 16
)

// ErrInvalidHash is returned for strings that are not encoded Argon2id
// hashes.
var ErrInvalidHash = errors.New("invalid argon2id hash")

// HashPrefix starts every hash produced by HashKey.
const HashPrefix = "$argon2id$v=19$"

// HashKey returns an encoded Argon2id hash of key:
// $argon2id$v=19$m=65536,t=1,p=4$salt$hash
func HashKey(key string) (string, error) {
	if key == "" {
		return "", errors.New("hash key: empty key")
	}

	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(key), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	return fmt.Sprintf("%sm=%d,t=%d,p=%d$%s$%s",
		HashPrefix,
		argon2Memory, argon2Time, argon2Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// VerifyKey reports whether key matches the encoded hash, using the
// parameters stored in the hash.
func VerifyKey(key, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false, fmt.Errorf("%w: unsupported version %q", ErrInvalidHash, parts[2])
	}

	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false, fmt.Errorf("%w: parameters: %v", ErrInvalidHash, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("%w: salt: %v", ErrInvalidHash, err)
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(want) == 0 {
		return false, fmt.Errorf("%w: hash", ErrInvalidHash)
	}

	got := argon2.IDKey([]byte(key), salt, time, memory, threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(want, got) == 1, nil
}

// IsHash reports whether s looks like an encoded Argon2id hash.
func IsHash(s string) bool {
	return strings.HasPrefix(s, "$argon2id$")
}

// Verifier checks API keys against either a plain key or a hash.
type Verifier struct {
	plain string
	hash  string
}

// NewVerifier returns a Verifier. Either argument may be empty.
func NewVerifier(plain, hash string) *Verifier {
	return &Verifier{plain: plain, hash: hash}
}

// Enabled reports whether any key is configured.
func (v *Verifier) Enabled() bool {
	return v != nil && (v.plain != "" || v.hash != "")
}

// Check reports whether key is accepted.
func (v *Verifier) Check(key string) bool {
	if !v.Enabled() || key == "" {
		return false
	}
	if v.plain != "" && subtle.ConstantTimeCompare([]byte(key), []byte(v.plain)) == 1 {
		return true
	}
	if v.hash != "" {
		ok, err := VerifyKey(key, v.hash)
		return err == nil && ok
	}
	return false
}
