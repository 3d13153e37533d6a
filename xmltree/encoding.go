package xmltree

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding names reported by Sniff.
const (
	EncodingUTF8    = "utf-8"
	EncodingUTF16LE = "utf-16le"
	EncodingUTF16BE = "utf-16be"
)

// Sniff guesses the transfer encoding from the first bytes of a document.
func Sniff(head []byte) string {
	switch {
	case bytes.HasPrefix(head, []byte{0xFF, 0xFE}):
		return EncodingUTF16LE
	case bytes.HasPrefix(head, []byte{0xFE, 0xFF}):
		return EncodingUTF16BE
	case bytes.HasPrefix(head, []byte{0xEF, 0xBB, 0xBF}):
		return EncodingUTF8
	case bytes.HasPrefix(head, []byte{'<', 0x00, '?', 0x00}):
		return EncodingUTF16LE
	case bytes.HasPrefix(head, []byte{0x00, '<', 0x00, '?'}):
		return EncodingUTF16BE
	default:
		return EncodingUTF8
	}
}

// IsUTF16 reports whether enc is one of the UTF-16 encodings.
func IsUTF16(enc string) bool {
	return enc == EncodingUTF16LE || enc == EncodingUTF16BE
}

// utf8Reader wraps r so that it yields UTF-8 for the given sniffed
// encoding. A byte-order mark in the stream overrides the sniffed value.
func utf8Reader(r io.Reader, enc string) io.Reader {
	var fallback transform.Transformer
	switch enc {
	case EncodingUTF16LE:
		fallback = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	case EncodingUTF16BE:
		fallback = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	default:
		fallback = transform.Nop
	}
	return transform.NewReader(r, unicode.BOMOverride(fallback))
}

// charsetReader is installed as xml.Decoder.CharsetReader. The stream has
// already been transcoded to UTF-8, so a UTF-16 declaration needs no
// further work; anything else goes through the charset registry.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	l := strings.ToLower(strings.TrimSpace(label))
	if strings.HasPrefix(l, "utf-16") || l == "utf-8" || l == "utf8" {
		return input, nil
	}
	return charset.NewReaderLabel(l, input)
}
