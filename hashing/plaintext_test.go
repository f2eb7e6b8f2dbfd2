package hashing_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-crypt-utils/hashing"
)

func TestPlaintextHasher_MakeCheck(t *testing.T) {
	var h hashing.PlaintextHasher

	hash, err := h.Make("password")
	if err != nil {
		t.Fatalf("Make: %v", err)
	}
	if hash != "{PLAINTEXT}password" {
		t.Fatalf("Make = %q, want {PLAINTEXT}password", hash)
	}

	ok, err := h.Check("password", hash)
	if err != nil || !ok {
		t.Errorf("Check(correct) = %v, %v; want true, nil", ok, err)
	}
	ok, err = h.Check("other", hash)
	if err != nil || ok {
		t.Errorf("Check(wrong) = %v, %v; want false, nil", ok, err)
	}
}

func TestPlaintextHasher_AcceptsWeakPrefix(t *testing.T) {
	var h hashing.PlaintextHasher

	ok, err := h.Check("password", "{WEAK-PLAINTEXT}password")
	if err != nil || !ok {
		t.Errorf("Check = %v, %v; want true, nil", ok, err)
	}

	// Weak values want an upgrade, regular ones do not.
	needs, err := h.NeedsRehash("{WEAK-PLAINTEXT}password")
	if err != nil || !needs {
		t.Errorf("NeedsRehash(weak) = %v, %v; want true, nil", needs, err)
	}
	needs, err = h.NeedsRehash("{PLAINTEXT}password")
	if err != nil || needs {
		t.Errorf("NeedsRehash(regular) = %v, %v; want false, nil", needs, err)
	}
}

func TestPlaintextHasher_RejectsForeignHashes(t *testing.T) {
	var h hashing.PlaintextHasher
	for _, hash := range []string{"$6$salt$digest", "password", ""} {
		if _, err := h.Check("password", hash); !errors.Is(err, hashing.ErrMethodMismatch) {
			t.Errorf("Check(%q): expected ErrMethodMismatch, got %v", hash, err)
		}
	}
}

func TestPlaintextHasher_Info(t *testing.T) {
	var h hashing.PlaintextHasher
	info, err := h.Info("{WEAK-PLAINTEXT}x")
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	if info.Method != hashing.MethodPlaintext {
		t.Errorf("Method = %q, want plaintext", info.Method)
	}
	if info.Params["prefix"] != "{WEAK-PLAINTEXT}" {
		t.Errorf("prefix = %v, want {WEAK-PLAINTEXT}", info.Params["prefix"])
	}
}
