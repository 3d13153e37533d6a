package filters

import (
	"bytes"
	"encoding/base64"
	"testing"
)

// TestBase64DecodeBasic tests decoding of a padded payload
func TestBase64DecodeBasic(t *testing.T) {
	decoded, err := Base64Decode([]byte("SGVsbG8="))
	if err != nil {
		t.Fatalf("Base64Decode failed: %v", err)
	}

	if !bytes.Equal(decoded, []byte("Hello")) {
		t.Errorf("decoded data doesn't match\ngot:  %q\nwant: %q", decoded, "Hello")
	}
}

// TestBase64DecodeWhitespace tests that wrapped payloads decode
func TestBase64DecodeWhitespace(t *testing.T) {
	decoded, err := Base64Decode([]byte("  SGVs\r\n\tbG8=\n"))
	if err != nil {
		t.Fatalf("Base64Decode failed: %v", err)
	}

	if string(decoded) != "Hello" {
		t.Errorf("got %q, want %q", decoded, "Hello")
	}
}

// TestBase64DecodeNoPadding tests that missing padding is tolerated
func TestBase64DecodeNoPadding(t *testing.T) {
	decoded, err := Base64Decode([]byte("SGVsbG8"))
	if err != nil {
		t.Fatalf("Base64Decode failed: %v", err)
	}

	if string(decoded) != "Hello" {
		t.Errorf("got %q, want %q", decoded, "Hello")
	}
}

// TestBase64DecodeExactLength tests that the reported length is exact
func TestBase64DecodeExactLength(t *testing.T) {
	for n := 0; n < 17; n++ {
		src := bytes.Repeat([]byte{0xAB}, n)
		enc := base64.StdEncoding.EncodeToString(src)

		decoded, err := Base64DecodeString(enc)
		if err != nil {
			t.Fatalf("n=%d: Base64DecodeString failed: %v", n, err)
		}
		if len(decoded) != n {
			t.Errorf("n=%d: decoded length = %d", n, len(decoded))
		}
	}
}

// TestBase64DecodeInvalid tests that bad characters are rejected
func TestBase64DecodeInvalid(t *testing.T) {
	if _, err := Base64Decode([]byte("SGV*bG8=")); err == nil {
		t.Error("expected error for invalid character")
	}
}

// TestBase64DecodeEmpty tests empty input
func TestBase64DecodeEmpty(t *testing.T) {
	decoded, err := Base64Decode(nil)
	if err != nil {
		t.Fatalf("Base64Decode failed: %v", err)
	}
	if len(decoded) != 0 {
		t.Errorf("expected empty output, got %d bytes", len(decoded))
	}
}
