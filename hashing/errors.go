package hashing

import "errors"

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons:
//
//	ok, err := hasher.Check(password, hash)
//	if errors.Is(err, hashing.ErrInvalidHash) {
//	    // hash string is malformed
//	}
var (
	// ErrInvalidHash is returned when a hash string cannot be parsed because
	// it has an unrecognised format or missing fields.
	ErrInvalidHash = errors.New("hashing: invalid or unrecognised hash string")

	// ErrInvalidOption is returned when a constructor is called with a value
	// outside the allowed range, e.g. a method that is not crypt(3)-backed
	// or a bcrypt cost above the maximum.
	ErrInvalidOption = errors.New("hashing: invalid option value")

	// ErrMethodNotFound is returned by [Manager.Hasher] and indirectly by
	// the Manager's hashing operations when the requested method has not
	// been registered.
	ErrMethodNotFound = errors.New("hashing: method not registered")

	// ErrEmptyMethodName is returned by [Manager.Register] when the supplied
	// method name is an empty string.
	ErrEmptyMethodName = errors.New("hashing: method name must not be empty")

	// ErrNilHasher is returned by [Manager.Register] when a nil [Hasher] is
	// supplied.
	ErrNilHasher = errors.New("hashing: hasher must not be nil")

	// ErrMethodMismatch is returned by a [Hasher]'s Check, NeedsRehash, or
	// Info method when the hash string was produced by a different method
	// than the one implemented by that hasher.
	ErrMethodMismatch = errors.New("hashing: hash was produced by a different method")
)
