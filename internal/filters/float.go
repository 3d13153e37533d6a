package filters

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// FloatReader reads IEEE-754 32-bit little-endian floats from a byte
// buffer, advancing an internal offset.
type FloatReader struct {
	buf []byte
	off int
}

// NewFloatReader returns a reader positioned at the start of buf.
func NewFloatReader(buf []byte) *FloatReader {
	return &FloatReader{buf: buf}
}

// Remaining returns the number of whole floats left in the buffer.
func (r *FloatReader) Remaining() int {
	return (len(r.buf) - r.off) / 4
}

// Next returns the next float. It returns io.ErrUnexpectedEOF when fewer
// than four bytes remain.
func (r *FloatReader) Next() (float32, error) {
	if len(r.buf)-r.off < 4 {
		return 0, io.ErrUnexpectedEOF
	}
	bits := binary.LittleEndian.Uint32(r.buf[r.off : r.off+4])
	r.off += 4
	return math.Float32frombits(bits), nil
}

// DecodeFloat32LE reads exactly count floats from data and widens them
// to float64. Extra trailing bytes are ignored; callers that need an
// exact length check must compare len(data) themselves.
func DecodeFloat32LE(data []byte, count int) ([]float64, error) {
	if count < 0 {
		return nil, fmt.Errorf("float32le: negative count %d", count)
	}
	r := NewFloatReader(data)
	if r.Remaining() < count {
		return nil, fmt.Errorf("float32le: need %d values, have %d: %w", count, r.Remaining(), io.ErrUnexpectedEOF)
	}

	out := make([]float64, count)
	for i := range out {
		v, err := r.Next()
		if err != nil {
			return nil, err
		}
		out[i] = float64(v)
	}
	return out, nil
}

// EncodeFloat32LE is the inverse of DecodeFloat32LE.
func EncodeFloat32LE(values []float32) []byte {
	out := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(out[4*i:], math.Float32bits(v))
	}
	return out
}
