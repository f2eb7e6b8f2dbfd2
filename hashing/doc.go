// Package hashing provides password hashing and verification on top of the
// system crypt(3) library, in the Modular Crypt Format used by /etc/shadow
// and LDAP userPassword attributes.
//
// # Architecture
//
// The central abstraction is the [Hasher] interface. Three drivers ship with
// this package:
//
//   - [CryptHasher] — crypt(3) methods (sha512crypt, sha256crypt, yescrypt,
//     md5crypt) delegated to the cryptutil shim
//   - [BcryptHasher] — bcrypt via golang.org/x/crypto
//   - [PlaintextHasher] — a no-op driver for seed validation and unit tests
//
// All three implement [Hasher], so callers can depend on the interface
// rather than a concrete type.
//
// The [Manager] is a named method registry and dispatcher. Register one or
// more [Hasher] implementations, designate a default method, then delegate
// all hashing operations through the Manager.
//
// # Quick start
//
//	m, err := hashing.NewDefaultManager() // probes libcrypt, registers crypt + bcrypt drivers
//	if err != nil { log.Fatal(err) }
//
//	hash, _ := m.Make("my-secret-password")
//	ok, _   := m.CheckWithDetect("my-secret-password", hash) // true
//
// # Hash migration
//
// Call [Manager.NeedsRehash] on every successful login. It returns true when
// the stored hash was produced by a different method than the current
// default, which is how hashes predating a libcrypt upgrade get flagged.
// Re-hash and persist immediately:
//
//	ok, _ := m.CheckWithDetect(password, storedHash)
//	if ok {
//	    if needs, _ := m.NeedsRehash(storedHash); needs {
//	        newHash, _ := m.Make(password)
//	        persist(userID, newHash)
//	    }
//	}
//
// # LDAP interoperability
//
// Directory servers store hashes with an RFC 2307 scheme prefix, e.g.
// "{CRYPT}$6$...". Use [ForLDAP] and [ParseLDAP] to convert between the bare
// Modular Crypt Format strings this package produces and that representation.
package hashing
