//go:build !(linux && cgo)

package cryptutil

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/GehirnInc/crypt"
	"github.com/GehirnInc/crypt/md5_crypt"
	"github.com/GehirnInc/crypt/sha256_crypt"
	"github.com/GehirnInc/crypt/sha512_crypt"
)

// Pure-Go rendition of the shim for platforms without libcrypt. It supports
// the md5crypt, sha256crypt, and sha512crypt methods with the same operation
// set and error contract as the cgo build.

const fallbackPreferredMethod = "$6$"

var fallbackCrypters = map[string]func() crypt.Crypter{
	"$1$": md5_crypt.New,
	"$5$": sha256_crypt.New,
	"$6$": sha512_crypt.New,
}

func llFeatureTest() error {
	// Salt generation is implemented in this package, so both required
	// capabilities are always present.
	return nil
}

func llPreferredMethod() string {
	return fallbackPreferredMethod
}

func llCrypt(phrase, setting string) (string, error) {
	newCrypter, ok := fallbackCrypters[methodPrefix(setting)]
	if !ok {
		return "", fmt.Errorf("%w: unsupported setting %q", ErrHashFailed, setting)
	}
	result, err := newCrypter().Generate([]byte(phrase), []byte(setting))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHashFailed, err)
	}
	return result, nil
}

func llGenerateSalt(prefix string) (string, error) {
	if prefix == "" {
		prefix = fallbackPreferredMethod
	}
	if _, ok := fallbackCrypters[prefix]; !ok {
		return "", fmt.Errorf("%w: unsupported prefix %q", ErrSaltFailed, prefix)
	}
	saltLen := 16
	if prefix == "$1$" {
		// md5crypt reads at most 8 salt characters.
		saltLen = 8
	}
	salt, err := randomSaltString(saltLen)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSaltFailed, err)
	}
	return prefix + salt, nil
}

// saltAlphabet is the crypt(3) base64 alphabet used for salt characters.
const saltAlphabet = "./0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

func randomSaltString(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = saltAlphabet[int(b[i])&63]
	}
	return string(b), nil
}

// methodPrefix extracts the "$id$" prefix from a setting or hash string.
// Returns "" when the string does not start with a dollar-delimited method id.
func methodPrefix(setting string) string {
	if len(setting) < 3 || setting[0] != '$' {
		return ""
	}
	i := strings.IndexByte(setting[1:], '$')
	if i < 0 {
		return ""
	}
	return setting[:i+2]
}
