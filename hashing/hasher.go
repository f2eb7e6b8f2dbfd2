package hashing

import "strings"

// MethodName identifies a password-hashing method.
// Using a named string type prevents accidental confusion with plain strings.
type MethodName string

const (
	// MethodBcrypt selects the bcrypt driver.
	MethodBcrypt MethodName = "bcrypt"
	// MethodMD5Crypt selects crypt(3) md5crypt ($1$). Legacy only.
	MethodMD5Crypt MethodName = "md5crypt"
	// MethodSHA256Crypt selects crypt(3) sha256crypt ($5$).
	MethodSHA256Crypt MethodName = "sha256crypt"
	// MethodSHA512Crypt selects crypt(3) sha512crypt ($6$).
	MethodSHA512Crypt MethodName = "sha512crypt"
	// MethodYescrypt selects crypt(3) yescrypt ($y$). Requires libxcrypt.
	MethodYescrypt MethodName = "yescrypt"
	// MethodPlaintext selects the no-op plaintext driver. Test use only.
	MethodPlaintext MethodName = "plaintext"
)

// Hasher is the core interface satisfied by all password-hashing drivers.
//
// All implementations must be safe for concurrent use by multiple goroutines.
type Hasher interface {
	// Make hashes a plaintext password and returns the encoded hash string.
	// A fresh random salt is generated for every call, so two calls with the
	// same password produce different outputs.
	Make(password string) (string, error)

	// Check verifies that password matches the previously encoded hash.
	// Returns (true, nil) on match, (false, nil) on mismatch, or
	// (false, err) if the hash is structurally invalid or was produced by a
	// different method.
	//
	// Comparison is performed in constant time.
	Check(password, hash string) (bool, error)

	// NeedsRehash returns true when the hash should be re-created with the
	// hasher's current configuration, e.g. because it encodes a weaker cost.
	// Callers should re-hash the password on the next successful login when
	// this returns true.
	NeedsRehash(hash string) (bool, error)

	// Info extracts metadata from an encoded hash string without verifying
	// it. Useful for auditing and migration tooling.
	Info(hash string) (HashInfo, error)

	// Method returns the MethodName implemented by this hasher.
	Method() MethodName
}

// HashInfo carries metadata parsed from an encoded hash string.
type HashInfo struct {
	// Method is the hashing method that produced the hash.
	Method MethodName

	// Params holds method-specific fields extracted from the hash string.
	//
	// For bcrypt:
	//   "cost" → int
	//
	// For crypt(3) methods:
	//   "prefix" → string (e.g. "$6$")
	//   "salt"   → string
	//   "rounds" → int    (only when the hash carries an explicit rounds= parameter)
	Params map[string]any
}

// cryptPrefixes maps each crypt(3)-backed method to its setting prefix.
var cryptPrefixes = map[MethodName]string{
	MethodMD5Crypt:    "$1$",
	MethodSHA256Crypt: "$5$",
	MethodSHA512Crypt: "$6$",
	MethodYescrypt:    "$y$",
}

// MethodForPrefix returns the [MethodName] whose setting strings start with
// prefix (e.g. "$6$" → sha512crypt). The second return value is false when
// the prefix is not recognised.
func MethodForPrefix(prefix string) (MethodName, bool) {
	for method, p := range cryptPrefixes {
		if p == prefix {
			return method, true
		}
	}
	if strings.HasPrefix(prefix, "$2") {
		return MethodBcrypt, true
	}
	return "", false
}

// DetectMethod inspects a hash string and returns the [MethodName] that
// produced it. It is a prefix heuristic and does not verify the hash itself.
//
// The second return value is false when the hash format is not recognised.
func DetectMethod(hash string) (MethodName, bool) {
	switch {
	case strings.HasPrefix(hash, "$1$"):
		return MethodMD5Crypt, true
	case strings.HasPrefix(hash, "$5$"):
		return MethodSHA256Crypt, true
	case strings.HasPrefix(hash, "$6$"):
		return MethodSHA512Crypt, true
	// $7$ is scrypt in libxcrypt, reported as the yescrypt family.
	case strings.HasPrefix(hash, "$y$"), strings.HasPrefix(hash, "$7$"):
		return MethodYescrypt, true
	// bcrypt hashes start with $2a$, $2b$, or $2y$
	case strings.HasPrefix(hash, "$2a$"),
		strings.HasPrefix(hash, "$2b$"),
		strings.HasPrefix(hash, "$2y$"):
		return MethodBcrypt, true
	case strings.HasPrefix(hash, plaintextPrefix),
		strings.HasPrefix(hash, weakPlaintextPrefix):
		return MethodPlaintext, true
	default:
		return "", false
	}
}
