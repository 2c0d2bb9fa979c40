package common

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte("Secret#1")
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

func TestGenerateRandByteArray_Length(t *testing.T) {
	for _, n := range []int{0, 1, 16, 32} {
		if got := GenerateRandByteArray(n); len(got) != n {
			t.Fatalf("expected length %d, got %d", n, len(got))
		}
	}
}

func TestGenerateRandByteArray_EntropyHint(t *testing.T) {
	a := GenerateRandByteArray(32)
	b := GenerateRandByteArray(32)
	if bytes.Equal(a, b) {
		t.Logf("warning: two GenerateRandByteArray(32) results are identical; extremely unlikely")
	}
}

func TestStorageErrorWrapsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("%w: %w", ErrStorage, cause)

	if !errors.Is(err, ErrStorage) || !errors.Is(err, cause) {
		t.Fatalf("expected both sentinel and cause to match, got %v", err)
	}
}
