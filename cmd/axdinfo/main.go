// Command axdinfo inspects Analysis Studio XML (.axd) files.
//
//	axdinfo [flags] <scan.axd>...
//
// For each file it prints the detection score, the decoded images and
// spectra, and any skipped items. It can also write grayscale previews
// of every image and an XLSX summary.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/anasys"
	"github.com/tsawler/anasys/format"
	"github.com/tsawler/anasys/model"
	"github.com/tsawler/anasys/preview"
	"github.com/tsawler/anasys/report"
)

type config struct {
	Inputs []string

	Verbose    bool
	Meta       bool
	PreviewDir string
	PreviewExt string
	MaxSize    int
	Workbook   string
	NoImages   bool
	NoSpectra  bool
	Interp     string
}

func main() {
	cfg := parseFlags()

	if len(cfg.Inputs) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(cfg, os.Stdout, logger); err != nil {
		fmt.Fprintf(os.Stderr, "axdinfo: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() *config {
	cfg := &config{}

	flag.BoolVar(&cfg.Verbose, "v", false, "verbose (debug) logging")
	flag.BoolVar(&cfg.Meta, "meta", false, "print image metadata")
	flag.StringVar(&cfg.PreviewDir, "preview", "", "write a grayscale preview of every image into `dir`")
	flag.StringVar(&cfg.PreviewExt, "preview-format", "png", "preview format: png, tiff")
	flag.IntVar(&cfg.MaxSize, "max", 512, "longest preview side in pixels (0 keeps the raster size)")
	flag.StringVar(&cfg.Workbook, "xlsx", "", "write an XLSX summary to `file` (one file only)")
	flag.BoolVar(&cfg.NoImages, "no-images", false, "skip height maps")
	flag.BoolVar(&cfg.NoSpectra, "no-spectra", false, "skip spectra")
	flag.StringVar(&cfg.Interp, "interp", "bspline", "oblique resampling: bspline, key, linear")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: axdinfo [flags] <scan.axd>...\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  axdinfo scan.axd\n")
		fmt.Fprintf(os.Stderr, "  axdinfo -preview out -preview-format tiff -max 0 scan.axd\n")
		fmt.Fprintf(os.Stderr, "  axdinfo -xlsx summary.xlsx -no-images scan.axd\n")
	}

	flag.Parse()
	cfg.Inputs = flag.Args()
	return cfg
}

func run(cfg *config, w io.Writer, logger *slog.Logger) error {
	if cfg.Workbook != "" && len(cfg.Inputs) > 1 {
		return fmt.Errorf("-xlsx takes a single input, got %d", len(cfg.Inputs))
	}
	if cfg.PreviewDir != "" {
		if _, err := preview.FormatFromExt("x." + cfg.PreviewExt); err != nil {
			return err
		}
		if err := os.MkdirAll(cfg.PreviewDir, 0o755); err != nil {
			return fmt.Errorf("creating preview directory: %w", err)
		}
	}

	failed := 0
	for _, input := range cfg.Inputs {
		if err := inspect(cfg, input, w, logger); err != nil {
			logger.Error("decode failed", "file", input, "error", err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(cfg.Inputs))
	}
	return nil
}

func inspect(cfg *config, input string, w io.Writer, logger *slog.Logger) error {
	fmt.Fprintf(w, "== %s\n", input)
	fmt.Fprintf(w, "score: %d\n", score(input))

	ext := anasys.Open(input).
		InterpolationName(cfg.Interp).
		Logger(logger)
	if cfg.NoImages {
		ext = ext.SkipHeightMaps()
	}
	if cfg.NoSpectra {
		ext = ext.SkipSpectra()
	}

	ds, warnings, err := ext.Dataset()
	for _, warn := range warnings {
		fmt.Fprintf(w, "skipped: %s\n", warn)
	}
	if err != nil {
		return err
	}

	printImages(w, ds, cfg.Meta)
	printSpectra(w, ds)

	if cfg.PreviewDir != "" {
		if err := writePreviews(cfg, ds, logger); err != nil {
			return err
		}
	}
	if cfg.Workbook != "" {
		if err := writeWorkbook(cfg.Workbook, ds); err != nil {
			return err
		}
		logger.Info("wrote workbook", "file", cfg.Workbook)
	}
	return nil
}

func score(input string) int {
	f, err := os.Open(input)
	if err != nil {
		return format.Score(input, nil)
	}
	defer f.Close()
	return format.ScoreReader(input, f)
}

func printImages(w io.Writer, ds *model.Dataset, meta bool) {
	fmt.Fprintf(w, "images: %d\n", len(ds.Images))
	for _, img := range ds.Images {
		r := img.Raster
		lo, hi, _ := r.MinMax()
		fmt.Fprintf(w, "  [%d] %s: %dx%d px, %.4g x %.4g %s at (%.4g, %.4g), z %.4g..%.4g %s\n",
			img.Index, img.Title, r.XRes, r.YRes,
			r.XReal, r.YReal, r.XYUnit, r.XOffset, r.YOffset,
			lo, hi, r.ZUnit)
		if meta {
			img.Meta.Each(func(key, value string) {
				fmt.Fprintf(w, "      %s = %s\n", key, value)
			})
		}
	}
}

func printSpectra(w io.Writer, ds *model.Dataset) {
	all := ds.AllSpectra()
	if all == nil {
		fmt.Fprintf(w, "spectra: 0\n")
		return
	}
	fmt.Fprintf(w, "spectra: %d\n", all.Len())
	for _, c := range ds.Spectra {
		if c.Index == 0 {
			continue
		}
		for _, sp := range c.Spectra {
			xs := sp.XValues()
			fmt.Fprintf(w, "  [%d] %s: %d points, %.6g..%.6g cm-1 (step %.4g), %s at (%.4g, %.4g) m\n",
				c.Index, sp.Title, sp.Len(), xs[0], xs[len(xs)-1], sp.Step(),
				sp.YLabel, sp.X, sp.Y)
		}
	}
}

func writePreviews(cfg *config, ds *model.Dataset, logger *slog.Logger) error {
	ext := "." + strings.ToLower(cfg.PreviewExt)
	for _, img := range ds.Images {
		path := filepath.Join(cfg.PreviewDir, preview.FileName(img, ext))
		if err := preview.WriteFile(path, img.Raster, preview.Options{MaxSize: cfg.MaxSize}); err != nil {
			return err
		}
		logger.Debug("wrote preview", "file", path)
	}
	return nil
}

func writeWorkbook(path string, ds *model.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating workbook: %w", err)
	}
	if err := report.WriteWorkbook(ds, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
