package cryptutil_test

import (
	"testing"

	"github.com/hasbyte1/go-crypt-utils/cryptutil"
)

// Note: crypt(3) methods are intentionally slow; the sha512crypt benchmarks
// measure the library's default cost, not shim overhead.

func BenchmarkHash_SHA512Crypt(b *testing.B) {
	setting, err := cryptutil.GenerateSalt("$6$")
	if err != nil {
		b.Fatalf("GenerateSalt: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cryptutil.Hash("bench-password", setting)
	}
}

func BenchmarkGenerateSalt_Default(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = cryptutil.GenerateSalt("")
	}
}

func BenchmarkGenerateSalt_SHA512Crypt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = cryptutil.GenerateSalt("$6$")
	}
}

func BenchmarkProbe(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = cryptutil.Probe()
	}
}
