package anasys

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/tsawler/anasys/axd"
	"github.com/tsawler/anasys/format"
	"github.com/tsawler/anasys/model"
	"github.com/tsawler/anasys/raster"
)

// Extractor provides a fluent interface for decoding .axd documents.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source: a filename, or a reader passed to FromReader
	filename string
	source   *source

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// source buffers a reader passed to FromReader so that every terminal
// operation, on every Extractor derived from it, sees the whole document.
type source struct {
	once sync.Once
	r    io.Reader
	data []byte
	err  error
}

// bytes reads the underlying reader on first use.
func (s *source) bytes() ([]byte, error) {
	s.once.Do(func() {
		s.data, s.err = io.ReadAll(s.r)
		s.r = nil
	})
	return s.data, s.err
}

// clone creates a shallow copy of the Extractor with a copy of options.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		source:   e.source,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// SkipHeightMaps configures the extractor to ignore height-map channels.
//
// Example:
//
//	ds, _, err := anasys.Open("scan.axd").SkipHeightMaps().Dataset()
func (e *Extractor) SkipHeightMaps() *Extractor {
	newExt := e.clone()
	newExt.options.skipHeightMaps = true
	return newExt
}

// SkipSpectra configures the extractor to ignore rendered spectra.
func (e *Extractor) SkipSpectra() *Extractor {
	newExt := e.clone()
	newExt.options.skipSpectra = true
	return newExt
}

// Interpolation selects the resampling kernel used for oblique scans.
//
// Example:
//
//	ds, _, err := anasys.Open("scan.axd").Interpolation(raster.Linear).Dataset()
func (e *Extractor) Interpolation(interp raster.Interpolation) *Extractor {
	newExt := e.clone()
	newExt.options.interpolation = interp
	return newExt
}

// InterpolationName is Interpolation taking a kernel name such as
// "bspline", "key" or "linear". An unknown name fails the terminal
// operation.
func (e *Extractor) InterpolationName(name string) *Extractor {
	newExt := e.clone()
	interp, err := raster.ParseInterpolation(name)
	if err != nil && newExt.err == nil {
		newExt.err = err
	}
	newExt.options.interpolation = interp
	return newExt
}

// Logger routes debug and warning events to l. By default nothing is
// logged.
func (e *Extractor) Logger(l *slog.Logger) *Extractor {
	newExt := e.clone()
	newExt.options.logger = l
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// config converts the options to the reader configuration.
func (e *Extractor) config() axd.Config {
	return axd.Config{
		SkipHeightMaps: e.options.skipHeightMaps,
		SkipSpectra:    e.options.skipSpectra,
		Interpolation:  e.options.interpolation,
		Logger:         e.options.logger,
	}
}

// open parses the configured source.
func (e *Extractor) open() (*axd.Reader, error) {
	if e.source != nil {
		data, err := e.source.bytes()
		if err != nil {
			return nil, fmt.Errorf("reading document: %w", err)
		}
		return axd.NewReader(bytes.NewReader(data))
	}
	if e.filename == "" {
		return nil, errors.New("no filename specified")
	}
	if format.Detect(e.filename) != format.AXD {
		e.logger().Debug("unexpected file extension", "file", e.filename)
	}
	return axd.Open(e.filename)
}

func (e *Extractor) logger() *slog.Logger {
	if e.options.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.options.logger
}

// Dataset decodes the document into images and spectra.
//
// Returns the dataset, warnings for channels or spectra that were
// skipped, and an error if the document as a whole could not be decoded:
// ErrMalformedDocument, ErrUnsupportedFileType or ErrEmptyResult.
//
// Example:
//
//	ds, warnings, err := anasys.Open("scan.axd").Dataset()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", anasys.FormatWarnings(warnings))
//	}
func (e *Extractor) Dataset() (*model.Dataset, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	r, err := e.open()
	if err != nil {
		return nil, nil, err
	}
	defer r.Close()

	ds, warnings, err := r.Dataset(e.config())
	if err != nil {
		if e.filename != "" {
			return nil, warnings, fmt.Errorf("%s: %w", e.filename, err)
		}
		return nil, warnings, err
	}
	return ds, warnings, nil
}

// Images decodes only the height-map images.
func (e *Extractor) Images() ([]*model.Image, []Warning, error) {
	ds, warnings, err := e.SkipSpectra().Dataset()
	if err != nil {
		return nil, warnings, err
	}
	return ds.Images, warnings, nil
}

// Spectra decodes only the spectra. The aggregate collection comes first.
func (e *Extractor) Spectra() ([]*model.SpectraCollection, []Warning, error) {
	ds, warnings, err := e.SkipHeightMaps().Dataset()
	if err != nil {
		return nil, warnings, err
	}
	return ds.Spectra, warnings, nil
}
