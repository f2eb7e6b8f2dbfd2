package cryptutil

import "errors"

// Sentinel errors returned by the shim.
//
// Use [errors.Is] for comparisons:
//
//	_, err := cryptutil.Hash(phrase, setting)
//	if errors.Is(err, cryptutil.ErrHashFailed) {
//	    // the library rejected the setting or failed internally
//	}
var (
	// ErrMissingFeature is returned by [Probe] when the linked library was
	// compiled without a capability this package requires. It is fatal:
	// callers should abort initialization rather than attempt operations.
	ErrMissingFeature = errors.New("cryptutil: libcrypt is missing a required feature")

	// ErrHashFailed is returned by [Hash] when the library's hash primitive
	// reports an error, e.g. a malformed setting string or an unsupported or
	// disabled hashing method.
	ErrHashFailed = errors.New("cryptutil: hashing failed")

	// ErrSaltFailed is returned by [GenerateSalt] when the library's salt
	// primitive reports an error, e.g. an invalid method prefix.
	ErrSaltFailed = errors.New("cryptutil: salt generation failed")
)
