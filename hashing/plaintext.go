package hashing

import (
	"crypto/subtle"
	"strings"
)

const (
	plaintextPrefix     = "{PLAINTEXT}"
	weakPlaintextPrefix = "{WEAK-PLAINTEXT}"
)

// PlaintextHasher is a [Hasher] that does not hash at all. It exists for
// constructing throwaway credential sets, e.g. when validating seed data,
// and for unit tests that should not spend time in a real hash function.
// Never use it for real credentials.
//
// Make produces "{PLAINTEXT}<password>". Check additionally accepts the
// "{WEAK-PLAINTEXT}" prefix with the same semantics; such values report
// true from NeedsRehash, which lets tests exercise the machinery that
// upgrades weak hashes into strong ones.
type PlaintextHasher struct{}

// Method returns [MethodPlaintext].
func (PlaintextHasher) Method() MethodName { return MethodPlaintext }

// Make returns password with the "{PLAINTEXT}" marker prefix. It never fails.
func (PlaintextHasher) Make(password string) (string, error) {
	return plaintextPrefix + password, nil
}

// Check verifies password against a "{PLAINTEXT}" or "{WEAK-PLAINTEXT}" value.
func (PlaintextHasher) Check(password, hash string) (bool, error) {
	stored, ok := cutPlaintextPrefix(hash)
	if !ok {
		return false, ErrMethodMismatch
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1, nil
}

// NeedsRehash reports true for "{WEAK-PLAINTEXT}" values and false for
// "{PLAINTEXT}" ones.
func (PlaintextHasher) NeedsRehash(hash string) (bool, error) {
	if _, ok := cutPlaintextPrefix(hash); !ok {
		return false, ErrMethodMismatch
	}
	return strings.HasPrefix(hash, weakPlaintextPrefix), nil
}

// Info reports the marker prefix carried by the value.
func (PlaintextHasher) Info(hash string) (HashInfo, error) {
	if _, ok := cutPlaintextPrefix(hash); !ok {
		return HashInfo{}, ErrMethodMismatch
	}
	prefix := plaintextPrefix
	if strings.HasPrefix(hash, weakPlaintextPrefix) {
		prefix = weakPlaintextPrefix
	}
	return HashInfo{
		Method: MethodPlaintext,
		Params: map[string]any{"prefix": prefix},
	}, nil
}

func cutPlaintextPrefix(hash string) (string, bool) {
	if rest, ok := strings.CutPrefix(hash, plaintextPrefix); ok {
		return rest, true
	}
	return strings.CutPrefix(hash, weakPlaintextPrefix)
}
