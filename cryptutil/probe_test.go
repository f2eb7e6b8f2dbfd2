package cryptutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// White-box test: the real feature test depends on how libcrypt was built,
// so a missing capability is simulated by swapping the probe seam.

func TestProbe_MissingFeature(t *testing.T) {
	original := featureTest
	defer func() { featureTest = original }()

	featureTest = func() error {
		return fmt.Errorf("%w: libcrypt does not support CRYPT_GENSALT_IMPLEMENTS_AUTO_ENTROPY",
			ErrMissingFeature)
	}

	err := Probe()
	if !errors.Is(err, ErrMissingFeature) {
		t.Fatalf("expected ErrMissingFeature, got %v", err)
	}
	if !strings.Contains(err.Error(), "CRYPT_GENSALT_IMPLEMENTS_AUTO_ENTROPY") {
		t.Errorf("error %q does not name the missing feature", err)
	}
}

func TestProbe_UsesFeatureTestResult(t *testing.T) {
	original := featureTest
	defer func() { featureTest = original }()

	featureTest = func() error { return nil }
	if err := Probe(); err != nil {
		t.Errorf("Probe with passing feature test: %v", err)
	}
}
