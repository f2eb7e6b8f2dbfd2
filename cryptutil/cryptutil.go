package cryptutil

import (
	"fmt"
	"strings"
)

// featureTest is swapped out in tests to simulate a library built without
// the required capabilities.
var featureTest = llFeatureTest

// Probe reports whether the linked crypt library carries every capability
// this package depends on (default-prefix and auto-entropy salt generation).
//
// It returns nil when the library is fully capable, and an error wrapping
// [ErrMissingFeature] that names the missing capability otherwise. Probe is
// a pure function of how the library dependency was built: it has no side
// effects and is safe to call any number of times. Call it once at process
// start so a misbuilt library fails fast instead of at first use.
func Probe() error {
	return featureTest()
}

// Hash computes the crypt(3) hash of phrase against setting and returns the
// formatted hash string (method prefix, salt, and digest).
//
// The setting is opaque to this package: it is handed to the library
// unmodified, empty or not, and the library's error reporting is the only
// validation performed. Each call uses private scratch state, so Hash is
// safe for concurrent use. The returned string is an independent copy; no
// intermediate buffer holding the digest outlives the call.
//
// Hash serves both creation and verification:
//
//	hash, err := cryptutil.Hash(phrase, setting)    // create
//	again, err := cryptutil.Hash(phrase, storedHash) // verify: again == storedHash
//
// On failure it returns "" and an error wrapping [ErrHashFailed].
func Hash(phrase, setting string) (string, error) {
	result, err := llCrypt(phrase, setting)
	if err != nil {
		return "", err
	}
	// libcrypt signals some failures in-band with a "*" token instead of
	// a NULL return.
	if result == "" || strings.HasPrefix(result, "*") {
		return "", fmt.Errorf("%w: library returned failure token %q", ErrHashFailed, result)
	}
	return result, nil
}

// GenerateSalt produces a fresh random setting string for the hashing method
// identified by prefix, suitable for a subsequent [Hash] call.
//
// An empty prefix means "no preference": it is mapped to the absent value
// rather than passed through, and the library selects its preferred method.
// This is a deliberate distinction; the library itself does not tell an
// empty prefix apart from a missing one. Entropy source and cost parameter
// are left at the library defaults.
//
// GenerateSalt uses a private output buffer per call and is safe for
// concurrent use. On failure it returns "" and an error wrapping
// [ErrSaltFailed].
func GenerateSalt(prefix string) (string, error) {
	setting, err := llGenerateSalt(prefix)
	if err != nil {
		return "", err
	}
	if setting == "" {
		return "", fmt.Errorf("%w: library returned an empty setting", ErrSaltFailed)
	}
	return setting, nil
}

// PreferredMethod returns the method prefix (e.g. "$6$" or "$y$") that the
// linked library would pick when [GenerateSalt] is called with an empty
// prefix. Useful for detecting stored hashes that predate the library's
// current preference.
func PreferredMethod() string {
	return llPreferredMethod()
}
