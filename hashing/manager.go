package hashing

import (
	"fmt"
	"sync"

	"github.com/hasbyte1/go-crypt-utils/cryptutil"
)

// Manager is a thread-safe method registry and dispatcher for password
// hashing. Register one or more named [Hasher] implementations, nominate a
// default method, and call [Manager.Make] / [Manager.Check] /
// [Manager.NeedsRehash] through the Manager for day-to-day operations.
//
// # Thread safety
//
// All Manager methods are safe for concurrent use. A [sync.RWMutex]
// serialises writes (Register, SetDefault) while allowing concurrent reads.
type Manager struct {
	mu      sync.RWMutex
	hashers map[MethodName]Hasher
	def     MethodName
}

// NewManager creates an empty Manager with the given default method name.
// Hashers must be registered with [Manager.Register] before any hashing
// operation is invoked.
//
// Use [NewDefaultManager] for the batteries-included variant.
func NewManager(defaultMethod MethodName) *Manager {
	return &Manager{
		hashers: make(map[MethodName]Hasher),
		def:     defaultMethod,
	}
}

// NewDefaultManager probes the system crypt library, then creates a Manager
// with the sha512crypt, sha256crypt, and bcrypt drivers registered, plus the
// library's preferred crypt method when that is a different one (e.g.
// yescrypt on current libxcrypt). The default method is the library's
// preference, so stored hashes in any older format are reported stale by
// [Manager.NeedsRehash].
//
// It fails when the linked library is missing required capabilities; callers
// should treat that as fatal at startup.
func NewDefaultManager() (*Manager, error) {
	preferred, err := NewPreferredCryptHasher()
	if err != nil {
		return nil, err
	}

	m := NewManager(preferred.Method())
	_ = m.Register(preferred.Method(), preferred)

	for _, method := range []MethodName{MethodSHA512Crypt, MethodSHA256Crypt} {
		if m.Has(method) {
			continue
		}
		h, err := NewCryptHasher(method)
		if err != nil {
			return nil, err
		}
		_ = m.Register(method, h)
	}

	bcryptH, err := NewBcryptHasher(DefaultBcryptOptions())
	if err != nil {
		return nil, err
	}
	_ = m.Register(MethodBcrypt, bcryptH)

	return m, nil
}

// Register adds or replaces a named hasher. It is safe to call while other
// goroutines are using the Manager.
func (m *Manager) Register(name MethodName, h Hasher) error {
	if name == "" {
		return ErrEmptyMethodName
	}
	if h == nil {
		return ErrNilHasher
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hashers[name] = h
	return nil
}

// Hasher returns the [Hasher] registered under name, or [ErrMethodNotFound]
// if no such method has been registered.
func (m *Manager) Hasher(name MethodName) (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.hashers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMethodNotFound, name)
	}
	return h, nil
}

// SetDefault changes the method used by [Manager.Make], [Manager.Check], and
// [Manager.NeedsRehash]. The named method must already be registered.
func (m *Manager) SetDefault(name MethodName) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.hashers[name]; !ok {
		return fmt.Errorf("%w: %q; call Register first", ErrMethodNotFound, name)
	}
	m.def = name
	return nil
}

// Default returns the name of the currently configured default method.
func (m *Manager) Default() MethodName {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.def
}

// Has reports whether a hasher for the given method is registered.
func (m *Manager) Has(name MethodName) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.hashers[name]
	return ok
}

// Make hashes password using the default method.
func (m *Manager) Make(password string) (string, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return "", err
	}
	return h.Make(password)
}

// Check verifies password against hash using the default method. To verify
// a hash produced by a specific other method, use [Manager.CheckWithDetect]
// or resolve the hasher via [Manager.Hasher].
func (m *Manager) Check(password, hash string) (bool, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return false, err
	}
	return h.Check(password, hash)
}

// CheckWithDetect verifies password against hash by detecting which method
// produced the hash. This is the right call when hashes from several
// methods coexist, e.g. while a credential store migrates from sha512crypt
// to yescrypt.
//
// Returns [ErrMethodNotFound] if the detected method is not registered and
// [ErrInvalidHash] if the hash format is unrecognised.
func (m *Manager) CheckWithDetect(password, hash string) (bool, error) {
	h, err := m.resolveByHash(hash)
	if err != nil {
		return false, err
	}
	return h.Check(password, hash)
}

// NeedsRehash reports whether hash should be re-created.
//
// It returns true when the hash was produced by a different method than the
// current default (a weak or legacy hash in a migrating store), or by the
// default method with weaker parameters than currently configured.
func (m *Manager) NeedsRehash(hash string) (bool, error) {
	detected, ok := DetectMethod(hash)
	if !ok {
		return false, ErrInvalidHash
	}

	m.mu.RLock()
	def := m.def
	m.mu.RUnlock()

	if detected != def {
		return true, nil
	}
	h, err := m.Hasher(detected)
	if err != nil {
		return false, err
	}
	return h.NeedsRehash(hash)
}

// Info extracts metadata from hash by detecting which method produced it.
func (m *Manager) Info(hash string) (HashInfo, error) {
	h, err := m.resolveByHash(hash)
	if err != nil {
		return HashInfo{}, err
	}
	return h.Info(hash)
}

// PreferredMethod reports the crypt method the linked system library would
// choose on its own, independent of the Manager's configured default.
func (m *Manager) PreferredMethod() (MethodName, bool) {
	return MethodForPrefix(cryptutil.PreferredMethod())
}

func (m *Manager) resolveDefault() (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.hashers[m.def]
	if !ok {
		return nil, fmt.Errorf("%w: default method %q has not been registered",
			ErrMethodNotFound, m.def)
	}
	return h, nil
}

func (m *Manager) resolveByHash(hash string) (Hasher, error) {
	name, ok := DetectMethod(hash)
	if !ok {
		return nil, ErrInvalidHash
	}
	return m.Hasher(name)
}
