// Package report writes decoded datasets to XLSX workbooks.
package report

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/anasys/model"
)

// Sheet names
const (
	SheetImages       = "Images"
	SheetMetadata     = "Metadata"
	SheetSpectra      = "Spectra"
	SheetSpectrumData = "Spectrum Data"
)

var (
	imageHeader    = []any{"Index", "Title", "XRes", "YRes", "XReal (m)", "YReal (m)", "XOffset (m)", "YOffset (m)", "Z Unit", "Min", "Max", "Mean", "Masked"}
	metadataHeader = []any{"Index", "Title", "Key", "Value"}
	spectraHeader  = []any{"Index", "Title", "Y Label", "X (m)", "Y (m)", "Points", "Start (cm⁻¹)", "Step (cm⁻¹)"}
)

// WriteWorkbook writes a summary of ds to w as an XLSX workbook with one
// sheet each for images, image metadata and spectra, plus the spectrum
// samples of the aggregate collection.
func WriteWorkbook(ds *model.Dataset, w io.Writer) error {
	f, err := Workbook(ds)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("report: writing workbook: %w", err)
	}
	return nil
}

// Workbook builds the workbook in memory. The caller must Close it.
func Workbook(ds *model.Dataset) (*excelize.File, error) {
	f := excelize.NewFile()
	b := &builder{f: f}

	b.images(ds)
	b.metadata(ds)
	b.spectra(ds)
	b.spectrumData(ds)

	// NewFile starts with a default sheet we never use
	if b.err == nil {
		b.err = f.DeleteSheet("Sheet1")
	}
	if b.err == nil {
		idx, err := f.GetSheetIndex(SheetImages)
		if err != nil {
			b.err = err
		} else {
			f.SetActiveSheet(idx)
		}
	}
	if b.err == nil {
		b.err = f.SetDocProps(&excelize.DocProperties{
			Title:       filepath.Base(ds.Provenance.Filename),
			Creator:     ds.Provenance.Importer,
			Description: ds.Provenance.Filename,
		})
	}
	if b.err != nil {
		f.Close()
		return nil, fmt.Errorf("report: %w", b.err)
	}
	return f, nil
}

// builder records the first excelize error and turns later calls into
// no-ops.
type builder struct {
	f     *excelize.File
	err   error
	bold  int
	sheet string
	row   int
}

func (b *builder) begin(sheet string, header []any) {
	if b.err != nil {
		return
	}
	if _, b.err = b.f.NewSheet(sheet); b.err != nil {
		return
	}
	if b.bold == 0 {
		b.bold, b.err = b.f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if b.err != nil {
			return
		}
	}
	b.sheet, b.row = sheet, 0
	b.append(header)
	if b.err == nil && len(header) > 0 {
		end, _ := excelize.CoordinatesToCellName(len(header), 1)
		b.err = b.f.SetCellStyle(sheet, "A1", end, b.bold)
	}
	if b.err == nil {
		b.err = b.f.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		})
	}
}

func (b *builder) append(values []any) {
	if b.err != nil {
		return
	}
	b.row++
	cell, err := excelize.CoordinatesToCellName(1, b.row)
	if err != nil {
		b.err = err
		return
	}
	b.err = b.f.SetSheetRow(b.sheet, cell, &values)
}

func (b *builder) images(ds *model.Dataset) {
	b.begin(SheetImages, imageHeader)
	for _, img := range ds.Images {
		r := img.Raster
		lo, hi, _ := r.MinMax()
		masked := 0
		for _, m := range r.Mask {
			if m {
				masked++
			}
		}
		b.append([]any{
			img.Index, img.Title, r.XRes, r.YRes,
			r.XReal, r.YReal, r.XOffset, r.YOffset,
			r.ZUnit, lo, hi, r.Mean(), masked,
		})
	}
}

func (b *builder) metadata(ds *model.Dataset) {
	b.begin(SheetMetadata, metadataHeader)
	for _, img := range ds.Images {
		img.Meta.Each(func(key, value string) {
			b.append([]any{img.Index, img.Title, key, value})
		})
	}
}

func (b *builder) spectra(ds *model.Dataset) {
	b.begin(SheetSpectra, spectraHeader)
	for _, c := range ds.Spectra {
		if c.Index == 0 {
			continue
		}
		for _, sp := range c.Spectra {
			b.append([]any{c.Index, sp.Title, sp.YLabel, sp.X, sp.Y, sp.Len(), sp.Offset, sp.Step()})
		}
	}
}

// spectrumData lays the aggregate out as column pairs: wavenumber and
// value for each spectrum.
func (b *builder) spectrumData(ds *model.Dataset) {
	all := ds.AllSpectra()
	if all == nil || all.Len() == 0 {
		return
	}

	header := make([]any, 0, 2*all.Len())
	longest := 0
	for _, sp := range all.Spectra {
		header = append(header, sp.Title+" "+model.WavenumberLabel, sp.Title+" "+sp.YLabel)
		longest = max(longest, sp.Len())
	}
	b.begin(SheetSpectrumData, header)

	xs := make([][]float64, all.Len())
	for i, sp := range all.Spectra {
		xs[i] = sp.XValues()
	}
	for k := 0; k < longest; k++ {
		row := make([]any, 2*all.Len())
		for i, sp := range all.Spectra {
			if k < sp.Len() {
				row[2*i] = xs[i][k]
				row[2*i+1] = sp.Data[k]
			}
		}
		b.append(row)
	}
}
