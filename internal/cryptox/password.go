// Package cryptox holds the password primitives of the credential store:
// salt generation, argon2id hashing, constant-time verification and the
// password strength policy applied at account creation.
package cryptox

import (
	"crypto/subtle"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	SaltSize = 16
	HashSize = 32

	// MinPasswordLength is the shortest password accepted on signup.
	MinPasswordLength = 8

	// PasswordSpecials lists the characters that satisfy the special-character rule.
	PasswordSpecials = "!@#?"
)

// NewSalt returns a fresh random salt.
func NewSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

// HashPassword derives the stored hash for password and salt with argon2id.
func HashPassword(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, HashSize)
}

// VerifyPassword reports whether password hashes to hash under salt.
func VerifyPassword(password, salt, hash []byte) bool {
	candidate := HashPassword(password, salt)
	defer common.WipeByteArray(candidate)
	return subtle.ConstantTimeCompare(candidate, hash) == 1
}

// IsStrongPassword checks the signup policy: at least MinPasswordLength
// characters with an upper-case letter, a lower-case letter, a digit and one
// of PasswordSpecials.
func IsStrongPassword(password []byte) bool {
	s := string(password)
	if len([]rune(s)) < MinPasswordLength {
		return false
	}

	var upper, lower, digit, special bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(PasswordSpecials, r):
			special = true
		}
	}
	return upper && lower && digit && special
}
