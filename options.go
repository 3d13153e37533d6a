package anasys

import (
	"log/slog"

	"github.com/tsawler/anasys/raster"
)

// ExtractOptions holds configuration for decoding.
type ExtractOptions struct {
	skipHeightMaps bool
	skipSpectra    bool

	// Resampling kernel for oblique scans
	interpolation raster.Interpolation

	logger *slog.Logger
}

// defaultOptions returns the default decoding options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		skipHeightMaps: false,
		skipSpectra:    false,
		interpolation:  raster.BSpline,
		logger:         nil, // discard
	}
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	return ExtractOptions{
		skipHeightMaps: o.skipHeightMaps,
		skipSpectra:    o.skipSpectra,
		interpolation:  o.interpolation,
		logger:         o.logger,
	}
}
