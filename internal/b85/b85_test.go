package b85_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reoring/gokata/internal/b85"
)

func TestEncode_KnownVector(t *testing.T) {
	// RFC 1924 base85 of "hello" (matches the reference Python b85encode).
	if got := b85.Encode([]byte("hello")); got != "Xk~0{Zv" {
		t.Fatalf("Encode(hello) = %q", got)
	}
	if got := b85.Encode(nil); got != "" {
		t.Fatalf("Encode(nil) = %q", got)
	}
}

func TestRoundTrip_AllTailLengths(t *testing.T) {
	for n := 0; n <= 9; n++ {
		src := make([]byte, n)
		for i := range src {
			src[i] = byte(0xf0 + i)
		}
		enc := b85.Encode(src)
		dec, err := b85.Decode(enc)
		if err != nil {
			t.Fatalf("n=%d: decode err: %v", n, err)
		}
		if !bytes.Equal(src, dec) {
			t.Fatalf("n=%d: got %x, want %x", n, dec, src)
		}
	}
}

func TestEncode_NoColon(t *testing.T) {
	// The alphabet excludes ':' so base85 output can never be mistaken for
	// the "<encoding>:<text>" form.
	for b := 0; b < 256; b++ {
		enc := b85.Encode([]byte{byte(b), byte(255 - b), byte(b)})
		if strings.ContainsRune(enc, ':') {
			t.Fatalf("byte %#x produced ':' in %q", b, enc)
		}
	}
}

func TestDecode_Invalid(t *testing.T) {
	if _, err := b85.Decode("abcdef"); err == nil { // 6 % 5 == 1
		t.Fatalf("expected error for impossible length")
	}
	if _, err := b85.Decode("ab:cd"); err == nil {
		t.Fatalf("expected error for byte outside the alphabet")
	}
	if _, err := b85.Decode("~~~~~"); err == nil {
		t.Fatalf("expected overflow error for the all-~ group")
	}
}
