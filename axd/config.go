package axd

import (
	"log/slog"

	"github.com/tsawler/anasys/raster"
)

// Config controls what Reader.Dataset decodes.
type Config struct {
	SkipHeightMaps bool
	SkipSpectra    bool

	// Interpolation is the kernel used for oblique scans. The zero value
	// is raster.BSpline.
	Interpolation raster.Interpolation

	// Logger receives debug and warning events. Nil discards them.
	Logger *slog.Logger
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
