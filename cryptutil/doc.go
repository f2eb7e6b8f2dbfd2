// Package cryptutil is a thin shim over the system crypt(3) password-hashing
// library (libcrypt / libxcrypt).
//
// # Architecture
//
// The package exposes exactly four operations:
//
//   - [Probe] verifies that the linked library was built with the
//     salt-generation capabilities this package depends on.
//   - [Hash] computes a crypt(3) hash of a phrase against a setting string.
//   - [GenerateSalt] produces a fresh setting string for a given method prefix.
//   - [PreferredMethod] reports the method prefix the library considers best.
//
// No cryptography is implemented here. Algorithm selection, salt format, and
// cost parameters all belong to the underlying library; the setting string is
// treated as opaque and passed through unmodified. Likewise the package does
// no validation of its inputs: the library's own error reporting is the sole
// validation layer.
//
// # Quick start
//
//	if err := cryptutil.Probe(); err != nil {
//	    log.Fatal(err) // libcrypt lacks a required capability
//	}
//
//	setting, _ := cryptutil.GenerateSalt("")          // library default method
//	hash, _    := cryptutil.Hash("hunter2", setting)  // "$6$<salt>$<digest>"
//
//	// To verify, re-hash against the stored hash: crypt(3) reads the
//	// algorithm, cost, and salt back out of the full hash string.
//	again, _ := cryptutil.Hash("hunter2", hash)
//	ok := again == hash
//
// # Build modes
//
// On Linux with cgo enabled the package links against libcrypt and calls the
// reentrant primitives crypt_r(3) and crypt_gensalt_rn(3). Every call uses
// its own zero-initialized scratch state, so concurrent calls from multiple
// goroutines never share mutable memory and no locking is performed.
//
// On every other platform, and when cgo is disabled, a pure-Go fallback
// supports the md5crypt ($1$), sha256crypt ($5$), and sha512crypt ($6$)
// methods. The operation set and error contract are identical.
//
// # Errors
//
// All failures wrap one of three sentinels: [ErrMissingFeature],
// [ErrHashFailed], or [ErrSaltFailed]. Compare with [errors.Is]. The package
// never returns an ambiguous empty string in place of an error, never
// retries, and never logs.
package cryptutil
