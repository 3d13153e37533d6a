// Package anasys provides a fluent API for decoding Analysis Studio XML
// (.axd) files into calibrated height-map images and point spectra.
//
// Basic usage:
//
//	ds, warnings, err := anasys.Open("scan.axd").Dataset()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", anasys.FormatWarnings(warnings))
//	}
//
// With options:
//
//	ds, _, err := anasys.Open("scan.axd").
//	    SkipSpectra().
//	    Interpolation(raster.Key).
//	    Logger(slog.Default()).
//	    Dataset()
//
// For lower-level access to the parsed document, use the axd package.
package anasys

import (
	"io"

	"github.com/tsawler/anasys/axd"
	"github.com/tsawler/anasys/format"
	"github.com/tsawler/anasys/model"
)

// Open returns an Extractor for the named file. Nothing is read until a
// terminal operation such as Dataset is called.
//
// Example:
//
//	ds, warnings, err := anasys.Open("scan.axd").Dataset()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader returns an Extractor that decodes the document read from r.
// The reader is read to EOF by the first terminal operation and the
// buffered document is reused by later ones.
//
// Example:
//
//	f, _ := os.Open("scan.axd")
//	defer f.Close()
//	ds, warnings, err := anasys.FromReader(f).Dataset()
func FromReader(r io.Reader) *Extractor {
	return &Extractor{
		source:  &source{r: r},
		options: defaultOptions(),
	}
}

// Detect reports the format implied by filename.
func Detect(filename string) format.Format {
	return format.Detect(filename)
}

// Score rates how likely the named file with leading bytes head is an
// Analysis Studio document. See format.Score.
func Score(filename string, head []byte) int {
	return format.Score(filename, head)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustDataset is a helper that wraps a call to Dataset and panics if the
// error is non-nil. It discards warnings.
//
// Example:
//
//	ds := anasys.MustDataset(anasys.Open("scan.axd").Dataset())
func MustDataset(ds *model.Dataset, _ []Warning, err error) *model.Dataset {
	if err != nil {
		panic(err)
	}
	return ds
}

// Importer is the name recorded in dataset provenance.
const Importer = axd.ImporterName
