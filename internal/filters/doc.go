// Package filters provides the low-level payload codecs used by the
// Analysis Studio reader.
//
// Sample payloads are base64-encoded arrays of little-endian IEEE-754
// 32-bit floats. Decoding is a two step process:
//
//	raw, err := filters.Base64Decode(payload)
//	values, err := filters.DecodeFloat32LE(raw, count)
//
// # Base64
//
// Base64Decode accepts the standard alphabet, ignores whitespace (XML
// text often wraps long payloads), and tolerates missing padding. The
// returned slice length is the exact decoded length, so callers can
// validate it against the declared sample count.
//
// # Float arrays
//
// FloatReader is an index-advancing cursor over a byte buffer. Every
// read is bounds-checked; no unsafe reinterpretation of the buffer is
// performed.
package filters
