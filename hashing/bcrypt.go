package hashing

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the bcrypt work factor used by [DefaultBcryptOptions].
// At cost 12, hashing takes roughly 250 ms on a modern server CPU.
const DefaultBcryptCost = 12

// BcryptOptions configures a [BcryptHasher].
type BcryptOptions struct {
	// Cost is the bcrypt work factor (logarithmic).
	// Valid range: [bcrypt.MinCost (4), bcrypt.MaxCost (31)].
	Cost int
}

// DefaultBcryptOptions returns BcryptOptions with [DefaultBcryptCost].
func DefaultBcryptOptions() BcryptOptions {
	return BcryptOptions{Cost: DefaultBcryptCost}
}

// BcryptHasher hashes passwords with bcrypt. Unlike [CryptHasher] it does
// not go through the system library, so bcrypt hashes verify identically on
// every platform. Bcrypt stores its own 128-bit random salt inside the hash.
//
// Note that bcrypt truncates passwords longer than 72 bytes.
//
// # Thread safety
//
// BcryptHasher is immutable after construction and safe for concurrent use.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher constructs a BcryptHasher with the provided options.
// Returns [ErrInvalidOption] if Cost is outside [bcrypt.MinCost, bcrypt.MaxCost].
func NewBcryptHasher(opts BcryptOptions) (*BcryptHasher, error) {
	if opts.Cost < bcrypt.MinCost || opts.Cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: bcrypt cost %d must be in [%d, %d]",
			ErrInvalidOption, opts.Cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &BcryptHasher{cost: opts.Cost}, nil
}

// Method returns [MethodBcrypt].
func (h *BcryptHasher) Method() MethodName { return MethodBcrypt }

// Cost returns the configured bcrypt work factor.
func (h *BcryptHasher) Cost() int { return h.cost }

// Make hashes password with bcrypt and returns the Modular Crypt Format
// string (e.g. "$2a$12$...").
func (h *BcryptHasher) Make(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hashing: bcrypt: %w", err)
	}
	return string(hash), nil
}

// Check verifies that password matches the bcrypt-encoded hash.
// Returns (false, nil) on mismatch.
func (h *BcryptHasher) Check(password, hash string) (bool, error) {
	if err := h.requireBcrypt(hash); err != nil {
		return false, err
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	return true, nil
}

// NeedsRehash returns true when the work factor encoded in hash differs
// from the hasher's configured cost.
func (h *BcryptHasher) NeedsRehash(hash string) (bool, error) {
	if err := h.requireBcrypt(hash); err != nil {
		return false, err
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	return cost != h.cost, nil
}

// Info extracts the work factor from a bcrypt hash string.
//
// Returned [HashInfo].Params:
//   - "cost" → int
func (h *BcryptHasher) Info(hash string) (HashInfo, error) {
	if err := h.requireBcrypt(hash); err != nil {
		return HashInfo{}, err
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return HashInfo{}, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	return HashInfo{
		Method: MethodBcrypt,
		Params: map[string]any{"cost": cost},
	}, nil
}

func (h *BcryptHasher) requireBcrypt(hash string) error {
	detected, ok := DetectMethod(hash)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidHash, hash)
	}
	if detected != MethodBcrypt {
		return fmt.Errorf("%w: hash is %s, not bcrypt", ErrMethodMismatch, detected)
	}
	return nil
}
