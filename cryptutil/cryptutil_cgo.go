//go:build linux && cgo

package cryptutil

/*
#cgo LDFLAGS: -lcrypt
#define _GNU_SOURCE
#include <crypt.h>
#include <stdlib.h>
#include <string.h>

// Tests for the libxcrypt capabilities this package requires.
// Returns NULL on success, a static error message otherwise.
static const char* shim_feature_test(void) {
#ifndef CRYPT_GENSALT_IMPLEMENTS_DEFAULT_PREFIX
	return "libcrypt does not support CRYPT_GENSALT_IMPLEMENTS_DEFAULT_PREFIX";
#endif
#ifndef CRYPT_GENSALT_IMPLEMENTS_AUTO_ENTROPY
	return "libcrypt does not support CRYPT_GENSALT_IMPLEMENTS_AUTO_ENTROPY";
#endif
	return NULL;
}

// Calls crypt_r(3) with stack-allocated scratch state and returns a
// heap-allocated copy of the output, or NULL on failure. The scratch state
// is private to the call, which keeps concurrent hashing race-free.
static char* shim_crypt_r(const char* phrase, const char* setting) {
	struct crypt_data data;
	memset(&data, 0, sizeof(struct crypt_data));

	char* result = crypt_r(phrase, setting, &data);
	if (result == NULL) {
		return NULL;
	}
	// data lives on the stack; copy the output out before it is reclaimed.
	return strdup(data.output);
}

// Calls crypt_gensalt_rn(3) with a stack-allocated output buffer, requesting
// the default entropy source (NULL) and default cost (0). An empty prefix is
// mapped to NULL so the library autoselects its preferred method.
static char* shim_gensalt_rn(const char* prefix) {
	if (strlen(prefix) == 0) {
		prefix = NULL;
	}

	char buf[CRYPT_GENSALT_OUTPUT_SIZE];
	char* result = crypt_gensalt_rn(prefix, 0, NULL, 0, buf, sizeof(buf));
	if (result == NULL) {
		return NULL;
	}
	// Copy the full documented output window; the Go string conversion
	// stops at the NUL terminator.
	return strndup(buf, CRYPT_GENSALT_OUTPUT_SIZE);
}
*/
import "C"

import (
	"fmt"
	"unsafe"
)

func llFeatureTest() error {
	// Static message, not freed.
	message := C.GoString(C.shim_feature_test())
	if message == "" {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrMissingFeature, message)
}

func llPreferredMethod() string {
	return C.GoString(C.crypt_preferred_method())
}

func llCrypt(phrase, setting string) (string, error) {
	phraseInput := C.CString(phrase)
	defer C.free(unsafe.Pointer(phraseInput))

	settingInput := C.CString(setting)
	defer C.free(unsafe.Pointer(settingInput))

	output, errno := C.shim_crypt_r(phraseInput, settingInput)
	if output == nil {
		if errno != nil {
			return "", fmt.Errorf("%w: crypt_r: %v", ErrHashFailed, errno)
		}
		return "", fmt.Errorf("%w: crypt_r returned NULL", ErrHashFailed)
	}
	defer C.free(unsafe.Pointer(output))

	return C.GoString(output), nil
}

func llGenerateSalt(prefix string) (string, error) {
	prefixInput := C.CString(prefix)
	defer C.free(unsafe.Pointer(prefixInput))

	output, errno := C.shim_gensalt_rn(prefixInput)
	if output == nil {
		if errno != nil {
			return "", fmt.Errorf("%w: crypt_gensalt_rn: %v", ErrSaltFailed, errno)
		}
		return "", fmt.Errorf("%w: crypt_gensalt_rn returned NULL", ErrSaltFailed)
	}
	defer C.free(unsafe.Pointer(output))

	return C.GoString(output), nil
}
