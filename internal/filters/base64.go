package filters

import (
	"bytes"
	"encoding/base64"
	"fmt"
)

// Base64Decode decodes standard-alphabet base64 data.
// Whitespace is ignored and trailing padding is optional. The returned
// slice has exactly the decoded length.
func Base64Decode(data []byte) ([]byte, error) {
	compact := make([]byte, 0, len(data))
	for _, c := range data {
		if isWhitespace(c) {
			continue
		}
		compact = append(compact, c)
	}
	compact = bytes.TrimRight(compact, "=")

	out := make([]byte, base64.RawStdEncoding.DecodedLen(len(compact)))
	n, err := base64.RawStdEncoding.Decode(out, compact)
	if err != nil {
		return nil, fmt.Errorf("base64: %w", err)
	}
	return out[:n], nil
}

// Base64DecodeString is Base64Decode for string input.
func Base64DecodeString(s string) ([]byte, error) {
	return Base64Decode([]byte(s))
}

// isWhitespace reports whether c is whitespace in the XML text sense.
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == 0
}
