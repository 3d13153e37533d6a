package axd

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedDocument is returned when the input is not parseable XML
	// or has no root element.
	ErrMalformedDocument = errors.New("axd: malformed document")

	// ErrUnsupportedFileType is returned when the root element is not an
	// IR 1.0 Document.
	ErrUnsupportedFileType = errors.New("axd: unsupported file type")

	// ErrEmptyResult is returned when a valid document yields no images
	// and no spectra.
	ErrEmptyResult = errors.New("axd: no images or spectra decoded")

	// ErrPayloadSizeMismatch is reported for a channel or spectrum whose
	// decoded payload length disagrees with its declared sample count.
	ErrPayloadSizeMismatch = errors.New("axd: payload size mismatch")
)

// Warning describes a channel or spectrum that was skipped.
type Warning struct {
	// Source names the item, e.g. `HeightMap 2 "Height"`.
	Source string
	Err    error
}

// String returns a single-line description.
func (w Warning) String() string {
	return fmt.Sprintf("%s: %v", w.Source, w.Err)
}

func payloadMismatch(got, count int) error {
	return fmt.Errorf("%w: decoded %d bytes, want %d (%d float32 values)",
		ErrPayloadSizeMismatch, got, 4*count, count)
}
