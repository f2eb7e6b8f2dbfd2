package hashing

import (
	"crypto/subtle"
	"fmt"
	"strconv"
	"strings"

	"github.com/hasbyte1/go-crypt-utils/cryptutil"
)

// CryptHasher hashes passwords through the system crypt(3) library.
//
// Salt generation and hashing are delegated entirely to the cryptutil shim;
// cost parameters are whatever the library defaults to for the configured
// method. Verification re-hashes the password against the stored hash, the
// way crypt(3) is designed to be used.
//
// # Thread safety
//
// CryptHasher is immutable after construction and safe for concurrent use;
// the underlying shim uses call-private scratch state.
type CryptHasher struct {
	method MethodName
	prefix string
}

// NewCryptHasher constructs a CryptHasher for one of the crypt(3)-backed
// methods ([MethodSHA512Crypt], [MethodSHA256Crypt], [MethodYescrypt], or
// [MethodMD5Crypt]). Returns [ErrInvalidOption] for any other method.
//
// Whether the method is actually usable depends on how the linked library
// was built; an unsupported method surfaces as an error from Make.
func NewCryptHasher(method MethodName) (*CryptHasher, error) {
	prefix, ok := cryptPrefixes[method]
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a crypt(3) method", ErrInvalidOption, method)
	}
	return &CryptHasher{method: method, prefix: prefix}, nil
}

// NewPreferredCryptHasher probes the linked library and constructs a
// CryptHasher for the method the library itself prefers. This is the
// recommended constructor for new credential stores: it fails fast when the
// library is missing required capabilities, and it tracks the distribution's
// hash policy instead of pinning one.
func NewPreferredCryptHasher() (*CryptHasher, error) {
	if err := cryptutil.Probe(); err != nil {
		return nil, err
	}
	method, ok := MethodForPrefix(cryptutil.PreferredMethod())
	if !ok {
		// A future libcrypt may prefer a method this package does not know
		// yet; sha512crypt is supported by every build we target.
		method = MethodSHA512Crypt
	}
	return NewCryptHasher(method)
}

// Method returns the configured crypt(3) method.
func (h *CryptHasher) Method() MethodName { return h.method }

// Prefix returns the setting prefix for the configured method, e.g. "$6$".
func (h *CryptHasher) Prefix() string { return h.prefix }

// Make generates a fresh setting for the configured method and hashes
// password against it.
func (h *CryptHasher) Make(password string) (string, error) {
	setting, err := cryptutil.GenerateSalt(h.prefix)
	if err != nil {
		return "", err
	}
	return cryptutil.Hash(password, setting)
}

// Check verifies that password matches the stored crypt(3) hash by
// re-hashing against it: the library reads method, cost, and salt back out
// of the hash string, so a matching password reproduces the hash exactly.
func (h *CryptHasher) Check(password, hash string) (bool, error) {
	if err := h.requireOwnMethod(hash); err != nil {
		return false, err
	}
	computed, err := cryptutil.Hash(password, hash)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1, nil
}

// NeedsRehash reports false for any structurally valid hash of the
// configured method: cost parameters live with the library, not with this
// driver, so there is nothing to compare. Cross-method staleness is the
// [Manager]'s concern.
func (h *CryptHasher) NeedsRehash(hash string) (bool, error) {
	if err := h.requireOwnMethod(hash); err != nil {
		return false, err
	}
	if _, err := parseCryptHash(hash); err != nil {
		return false, err
	}
	return false, nil
}

// Info parses the Modular Crypt Format hash and returns its fields.
//
// Returned [HashInfo].Params:
//   - "prefix" → string
//   - "salt"   → string
//   - "rounds" → int (only when the hash carries an explicit rounds= parameter)
func (h *CryptHasher) Info(hash string) (HashInfo, error) {
	if err := h.requireOwnMethod(hash); err != nil {
		return HashInfo{}, err
	}
	params, err := parseCryptHash(hash)
	if err != nil {
		return HashInfo{}, err
	}
	return HashInfo{Method: h.method, Params: params}, nil
}

func (h *CryptHasher) requireOwnMethod(hash string) error {
	detected, ok := DetectMethod(hash)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidHash, hash)
	}
	if detected != h.method {
		return fmt.Errorf("%w: hash is %s, not %s", ErrMethodMismatch, detected, h.method)
	}
	return nil
}

// parseCryptHash splits a Modular Crypt Format hash into its fields.
//
// Expected shape: "$<id>[$<param>...]$<salt>$<digest>", e.g.
//
//	$6$WgyXDmZg5NBRHhPr$k0Yu87...
//	$6$rounds=100000$WgyXDmZg5NBRHhPr$Fc3Yl9...
//	$y$j9T$F5Jx5fExrKuPp53xLKQ..$X9br4hfj...
func parseCryptHash(hash string) (map[string]any, error) {
	parts := strings.Split(hash, "$")
	// Leading "$" yields an empty first element.
	if len(parts) < 4 || parts[0] != "" {
		return nil, fmt.Errorf("%w: %q is not in Modular Crypt Format", ErrInvalidHash, hash)
	}
	digest := parts[len(parts)-1]
	salt := parts[len(parts)-2]
	if digest == "" {
		return nil, fmt.Errorf("%w: %q has an empty digest segment", ErrInvalidHash, hash)
	}

	params := map[string]any{
		"prefix": "$" + parts[1] + "$",
		"salt":   salt,
	}
	for _, segment := range parts[2 : len(parts)-2] {
		if value, ok := strings.CutPrefix(segment, "rounds="); ok {
			rounds, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("%w: malformed rounds parameter %q", ErrInvalidHash, segment)
			}
			params["rounds"] = rounds
		}
	}
	return params, nil
}
