package raster

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/tsawler/anasys/model"
)

// Footprint returns the bounding box, centered on the origin, of a
// w x h rectangle rotated by angle radians.
func Footprint(w, h, angle float64) model.BBox {
	rot := mgl64.Rotate2D(angle)
	hw, hh := w/2, h/2

	corners := make([]model.Point, 0, 4)
	for _, c := range []mgl64.Vec2{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}} {
		v := rot.Mul2x1(c)
		corners = append(corners, model.Point{X: v.X(), Y: v.Y()})
	}
	return model.BBoxOf(corners...)
}

// ErrGeometry is returned by Rotate when the raster's physical extents
// cannot be mapped onto a canvas.
var ErrGeometry = errors.New("raster: invalid geometry")

// Canvas budget for Rotate: at most canvasScale output pixels per source
// pixel, but never fewer than minCanvas in total.
const (
	canvasScale = 4
	minCanvas   = 1 << 16
)

// Rotate returns r rotated by angle radians onto an expanded canvas that
// holds the whole rotated footprint without clipping. Output pixels are
// square with the smaller of the source pixel dimensions, enlarged when
// needed to keep the canvas within budget. Canvas pixels outside the
// footprint are set to the source mean and flagged in Mask. Physical
// offsets are left at zero for the caller to assign.
func Rotate(r *model.Raster, angle float64, interp Interpolation) (*model.Raster, error) {
	if r.XRes == 0 || r.YRes == 0 {
		return r.Clone(), nil
	}

	dx, dy := r.DX(), r.DY()
	if !finite(angle) || !finite(dx) || !finite(dy) {
		return nil, fmt.Errorf("%w: angle %g, pixel %g x %g", ErrGeometry, angle, dx, dy)
	}
	q := math.Min(dx, dy)
	if q <= 0 {
		// No usable physical calibration; rotate in pixel space.
		dx, dy, q = 1, 1, 1
	}
	srcW, srcH := dx*float64(r.XRes), dy*float64(r.YRes)

	fp := Footprint(srcW, srcH, angle)
	w, h := fp.Width(), fp.Height()
	if !finite(w*h) {
		return nil, fmt.Errorf("%w: footprint %g x %g", ErrGeometry, w, h)
	}

	budget := float64(max(canvasScale*len(r.Data), minCanvas))
	q = math.Max(q, math.Sqrt(w*h/budget))
	q = math.Max(q, math.Max(w, h)/budget)
	xres := canvasSize(w, q)
	yres := canvasSize(h, q)

	out := model.NewRaster(xres, yres, float64(xres)*q, float64(yres)*q)
	out.XYUnit = r.XYUnit
	out.ZUnit = r.ZUnit
	out.Mask = make([]bool, xres*yres)

	fill := r.Mean()
	inv := mgl64.Rotate2D(-angle)
	s := newSampler(r, interp)

	maxX := float64(r.XRes) - 0.5
	maxY := float64(r.YRes) - 0.5
	for row := 0; row < yres; row++ {
		py := out.YReal/2 - (float64(row)+0.5)*q
		for col := 0; col < xres; col++ {
			px := (float64(col)+0.5)*q - out.XReal/2
			v := inv.Mul2x1(mgl64.Vec2{px, py})

			sx := (v.X()+srcW/2)/dx - 0.5
			sy := (srcH/2-v.Y())/dy - 0.5

			i := row*xres + col
			if sx < -0.5 || sx > maxX || sy < -0.5 || sy > maxY {
				out.Data[i] = fill
				out.Mask[i] = true
				continue
			}
			out.Data[i] = s.at(sx, sy)
		}
	}
	return out, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func canvasSize(extent, pixel float64) int {
	n := int(math.Ceil(extent/pixel - 1e-6))
	if n < 1 {
		n = 1
	}
	return n
}
