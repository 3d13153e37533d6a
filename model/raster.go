package model

import "math"

// Raster is a calibrated rectangular grid of samples.
type Raster struct {
	XRes, YRes int // pixels per row, number of rows

	XReal, YReal     float64 // physical extents in meters
	XOffset, YOffset float64 // physical top-left offset in meters

	XYUnit string
	ZUnit  string

	// Data is row-major: Data[row*XRes+col].
	Data []float64

	// Mask marks pixels that lie outside the source footprint of a
	// rotated raster. It is nil for rasters that were not resampled.
	Mask []bool
}

// NewRaster allocates a zero-filled raster
func NewRaster(xres, yres int, xreal, yreal float64) *Raster {
	return &Raster{
		XRes:   xres,
		YRes:   yres,
		XReal:  xreal,
		YReal:  yreal,
		XYUnit: "m",
		ZUnit:  "m",
		Data:   make([]float64, xres*yres),
	}
}

// At returns the sample at column col and row row
func (r *Raster) At(col, row int) float64 {
	return r.Data[row*r.XRes+col]
}

// Set stores the sample at column col and row row
func (r *Raster) Set(col, row int, v float64) {
	r.Data[row*r.XRes+col] = v
}

// Row returns a slice aliasing row row
func (r *Raster) Row(row int) []float64 {
	return r.Data[row*r.XRes : (row+1)*r.XRes]
}

// Clone returns a deep copy
func (r *Raster) Clone() *Raster {
	c := *r
	c.Data = append([]float64(nil), r.Data...)
	if r.Mask != nil {
		c.Mask = append([]bool(nil), r.Mask...)
	}
	return &c
}

// Multiply scales every sample by k
func (r *Raster) Multiply(k float64) {
	for i := range r.Data {
		r.Data[i] *= k
	}
}

// DX returns the physical pixel width
func (r *Raster) DX() float64 {
	if r.XRes == 0 {
		return 0
	}
	return r.XReal / float64(r.XRes)
}

// DY returns the physical pixel height
func (r *Raster) DY() float64 {
	if r.YRes == 0 {
		return 0
	}
	return r.YReal / float64(r.YRes)
}

// Masked reports whether the pixel at index i is outside the footprint
func (r *Raster) Masked(i int) bool {
	return r.Mask != nil && r.Mask[i]
}

// Mean returns the average of all finite, unmasked samples
func (r *Raster) Mean() float64 {
	var sum float64
	var n int
	for i, v := range r.Data {
		if r.Masked(i) || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// MinMax returns the range of all finite, unmasked samples. ok is false
// when there are none.
func (r *Raster) MinMax() (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for i, v := range r.Data {
		if r.Masked(i) || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
		ok = true
	}
	if !ok {
		return 0, 0, false
	}
	return lo, hi, true
}
