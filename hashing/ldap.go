package hashing

import "strings"

// LDAP directory servers store password hashes in the RFC 2307 userPassword
// convention: a "{SCHEME}" marker followed by the scheme-specific value.
// crypt(3) and bcrypt hashes both travel under the "{CRYPT}" scheme.

// SchemeCrypt is the RFC 2307 scheme marker for crypt(3)-format hashes.
const SchemeCrypt = "CRYPT"

// ForLDAP converts a Modular Crypt Format hash into an LDAP userPassword
// value by prepending the "{CRYPT}" scheme marker. Values that already carry
// a scheme marker (including the plaintext markers produced by
// [PlaintextHasher]) are returned unchanged.
func ForLDAP(hash string) string {
	if strings.HasPrefix(hash, "{") {
		return hash
	}
	return "{" + SchemeCrypt + "}" + hash
}

// ParseLDAP splits an LDAP userPassword value into its scheme marker and the
// scheme-specific remainder. For "{CRYPT}$6$..." it returns ("CRYPT",
// "$6$...", true). The last return value is false when the value carries no
// well-formed scheme marker, in which case rest is the input unchanged.
func ParseLDAP(value string) (scheme, rest string, ok bool) {
	if !strings.HasPrefix(value, "{") {
		return "", value, false
	}
	end := strings.IndexByte(value, '}')
	if end <= 1 {
		return "", value, false
	}
	return value[1:end], value[end+1:], true
}
