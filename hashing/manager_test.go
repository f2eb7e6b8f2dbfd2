package hashing_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/hasbyte1/go-crypt-utils/hashing"
)

// newTestManager returns a Manager with a sha512crypt default, plus bcrypt
// (at minimum cost) and plaintext hashers for cross-method tests.
func newTestManager(tb testing.TB) *hashing.Manager {
	tb.Helper()
	m := hashing.NewManager(hashing.MethodSHA512Crypt)
	cryptH, _ := hashing.NewCryptHasher(hashing.MethodSHA512Crypt)
	bcryptH, _ := hashing.NewBcryptHasher(hashing.BcryptOptions{Cost: testBcryptCost})
	_ = m.Register(hashing.MethodSHA512Crypt, cryptH)
	_ = m.Register(hashing.MethodBcrypt, bcryptH)
	_ = m.Register(hashing.MethodPlaintext, hashing.PlaintextHasher{})
	return m
}

// ──────────────────────────────────────────────────────────────────────────────
// NewDefaultManager
// ──────────────────────────────────────────────────────────────────────────────

func TestNewDefaultManager(t *testing.T) {
	m, err := hashing.NewDefaultManager()
	if err != nil {
		t.Fatalf("NewDefaultManager: %v", err)
	}

	for _, method := range []hashing.MethodName{
		hashing.MethodSHA512Crypt,
		hashing.MethodSHA256Crypt,
		hashing.MethodBcrypt,
	} {
		if !m.Has(method) {
			t.Errorf("method %q not registered", method)
		}
	}
	if !m.Has(m.Default()) {
		t.Errorf("default method %q has no registered hasher", m.Default())
	}
}

func TestNewDefaultManager_MakeCheck(t *testing.T) {
	m, err := hashing.NewDefaultManager()
	if err != nil {
		t.Fatalf("NewDefaultManager: %v", err)
	}
	hash, err := m.Make("default-manager-password")
	if err != nil {
		t.Fatalf("Make: %v", err)
	}
	ok, err := m.CheckWithDetect("default-manager-password", hash)
	if err != nil {
		t.Fatalf("CheckWithDetect: %v", err)
	}
	if !ok {
		t.Error("CheckWithDetect returned false for correct password")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register / SetDefault
// ──────────────────────────────────────────────────────────────────────────────

func TestManager_Register_EmptyName(t *testing.T) {
	m := hashing.NewManager(hashing.MethodSHA512Crypt)
	if err := m.Register("", hashing.PlaintextHasher{}); !errors.Is(err, hashing.ErrEmptyMethodName) {
		t.Errorf("expected ErrEmptyMethodName, got %v", err)
	}
}

func TestManager_Register_NilHasher(t *testing.T) {
	m := hashing.NewManager(hashing.MethodSHA512Crypt)
	if err := m.Register("custom", nil); !errors.Is(err, hashing.ErrNilHasher) {
		t.Errorf("expected ErrNilHasher, got %v", err)
	}
}

func TestManager_SetDefault(t *testing.T) {
	m := newTestManager(t)
	if err := m.SetDefault(hashing.MethodBcrypt); err != nil {
		t.Fatalf("SetDefault: %v", err)
	}
	if m.Default() != hashing.MethodBcrypt {
		t.Errorf("Default() = %q, want bcrypt", m.Default())
	}

	if err := m.SetDefault("not-registered"); !errors.Is(err, hashing.ErrMethodNotFound) {
		t.Errorf("expected ErrMethodNotFound, got %v", err)
	}
}

func TestManager_Hasher_NotFound(t *testing.T) {
	m := hashing.NewManager(hashing.MethodSHA512Crypt)
	if _, err := m.Hasher(hashing.MethodBcrypt); !errors.Is(err, hashing.ErrMethodNotFound) {
		t.Errorf("expected ErrMethodNotFound, got %v", err)
	}
}

func TestManager_Make_UnregisteredDefault(t *testing.T) {
	m := hashing.NewManager(hashing.MethodYescrypt)
	if _, err := m.Make("password"); !errors.Is(err, hashing.ErrMethodNotFound) {
		t.Errorf("expected ErrMethodNotFound, got %v", err)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Cross-method dispatch
// ──────────────────────────────────────────────────────────────────────────────

func TestManager_CheckWithDetect_AcrossMethods(t *testing.T) {
	m := newTestManager(t)

	hashes := make(map[hashing.MethodName]string)
	for _, method := range []hashing.MethodName{
		hashing.MethodSHA512Crypt,
		hashing.MethodBcrypt,
		hashing.MethodPlaintext,
	} {
		h, err := m.Hasher(method)
		if err != nil {
			t.Fatalf("Hasher(%q): %v", method, err)
		}
		hash, err := h.Make("shared password")
		if err != nil {
			t.Fatalf("Make via %q: %v", method, err)
		}
		hashes[method] = hash
	}

	for method, hash := range hashes {
		ok, err := m.CheckWithDetect("shared password", hash)
		if err != nil {
			t.Errorf("CheckWithDetect(%q hash): %v", method, err)
			continue
		}
		if !ok {
			t.Errorf("CheckWithDetect(%q hash) = false, want true", method)
		}
	}
}

func TestManager_CheckWithDetect_UnrecognisedHash(t *testing.T) {
	m := newTestManager(t)
	if _, err := m.CheckWithDetect("password", "argle-bargle"); !errors.Is(err, hashing.ErrInvalidHash) {
		t.Errorf("expected ErrInvalidHash, got %v", err)
	}
}

func TestManager_NeedsRehash(t *testing.T) {
	m := newTestManager(t)

	// A hash in the current default method is fine as-is.
	fresh, err := m.Make("password")
	if err != nil {
		t.Fatalf("Make: %v", err)
	}
	needs, err := m.NeedsRehash(fresh)
	if err != nil {
		t.Fatalf("NeedsRehash: %v", err)
	}
	if needs {
		t.Error("fresh default-method hash should not need a rehash")
	}

	// A hash from any other method is stale by definition.
	bcryptH, _ := m.Hasher(hashing.MethodBcrypt)
	legacy, err := bcryptH.Make("password")
	if err != nil {
		t.Fatalf("bcrypt Make: %v", err)
	}
	needs, err = m.NeedsRehash(legacy)
	if err != nil {
		t.Fatalf("NeedsRehash: %v", err)
	}
	if !needs {
		t.Error("non-default-method hash should need a rehash")
	}

	if _, err := m.NeedsRehash("unrecognised"); !errors.Is(err, hashing.ErrInvalidHash) {
		t.Errorf("expected ErrInvalidHash, got %v", err)
	}
}

func TestManager_Info(t *testing.T) {
	m := newTestManager(t)
	hash, err := m.Make("password")
	if err != nil {
		t.Fatalf("Make: %v", err)
	}
	info, err := m.Info(hash)
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	if info.Method != hashing.MethodSHA512Crypt {
		t.Errorf("Method = %q, want sha512crypt", info.Method)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrency
// ──────────────────────────────────────────────────────────────────────────────

func TestManager_ConcurrentMakeCheck(t *testing.T) {
	m := newTestManager(t)
	const goroutines = 8
	var wg sync.WaitGroup
	wg.Add(goroutines)
	errs := make(chan error, goroutines)

	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			hash, err := m.Make("concurrent-pw")
			if err != nil {
				errs <- err
				return
			}
			ok, err := m.CheckWithDetect("concurrent-pw", hash)
			if err != nil {
				errs <- err
				return
			}
			if !ok {
				errs <- errors.New("Check returned false for correct password")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestManager_ConcurrentRegisterAndRead(t *testing.T) {
	m := newTestManager(t)
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 10; i++ {
			h, _ := hashing.NewBcryptHasher(hashing.BcryptOptions{Cost: testBcryptCost})
			_ = m.Register(hashing.MethodBcrypt, h)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 10; i++ {
			_, _ = m.Hasher(hashing.MethodBcrypt)
			_ = m.Has(hashing.MethodBcrypt)
			_ = m.Default()
		}
	}()

	wg.Wait()
}
