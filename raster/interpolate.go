package raster

import (
	"fmt"
	"math"
	"strings"

	"github.com/tsawler/anasys/model"
)

// Interpolation selects the resampling kernel used by Rotate.
type Interpolation int

const (
	// BSpline is interpolating cubic B-spline resampling. Samples are
	// prefiltered so the spline passes through the original values.
	BSpline Interpolation = iota
	// Key is the Keys cubic convolution kernel (a = -0.5, Catmull-Rom).
	Key
	// Linear is bilinear interpolation.
	Linear
)

// String returns the string representation of the interpolation.
func (i Interpolation) String() string {
	switch i {
	case BSpline:
		return "bspline"
	case Key:
		return "key"
	case Linear:
		return "linear"
	default:
		return fmt.Sprintf("Interpolation(%d)", int(i))
	}
}

// ParseInterpolation maps a name to an Interpolation.
func ParseInterpolation(s string) (Interpolation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bspline", "b-spline", "":
		return BSpline, nil
	case "key", "keys", "catmullrom", "catmull-rom":
		return Key, nil
	case "linear", "bilinear":
		return Linear, nil
	}
	return BSpline, fmt.Errorf("unknown interpolation %q", s)
}

// splinePole is the single pole of the cubic B-spline prefilter.
var splinePole = math.Sqrt(3) - 2

// sampler evaluates a raster at fractional pixel coordinates, where
// (0, 0) is the center of the top-left pixel.
type sampler struct {
	xres, yres int
	coef       []float64
	interp     Interpolation
}

func newSampler(r *model.Raster, interp Interpolation) *sampler {
	s := &sampler{
		xres:   r.XRes,
		yres:   r.YRes,
		coef:   append([]float64(nil), r.Data...),
		interp: interp,
	}
	if interp == BSpline {
		prefilter2D(s.coef, s.xres, s.yres)
	}
	return s
}

func (s *sampler) at(x, y float64) float64 {
	fx, fy := math.Floor(x), math.Floor(y)
	ix, iy := int(fx), int(fy)
	tx, ty := x-fx, y-fy

	var wx, wy [4]float64
	first, taps := -1, 4
	switch s.interp {
	case Linear:
		first, taps = 0, 2
		wx[0], wx[1] = 1-tx, tx
		wy[0], wy[1] = 1-ty, ty
	case Key:
		wx = keyWeights(tx)
		wy = keyWeights(ty)
	default:
		wx = splineWeights(tx)
		wy = splineWeights(ty)
	}

	var sum float64
	for j := 0; j < taps; j++ {
		row := mirror(iy+first+j, s.yres) * s.xres
		var line float64
		for i := 0; i < taps; i++ {
			line += wx[i] * s.coef[row+mirror(ix+first+i, s.xres)]
		}
		sum += wy[j] * line
	}
	return sum
}

// splineWeights returns the cubic B-spline weights for offsets -1..2.
func splineWeights(t float64) [4]float64 {
	u := 1 - t
	t2, t3 := t*t, t*t*t
	return [4]float64{
		u * u * u / 6,
		(3*t3 - 6*t2 + 4) / 6,
		(-3*t3 + 3*t2 + 3*t + 1) / 6,
		t3 / 6,
	}
}

// keyWeights returns the Keys cubic convolution weights for offsets -1..2.
func keyWeights(t float64) [4]float64 {
	const a = -0.5
	near := func(d float64) float64 {
		return (a+2)*d*d*d - (a+3)*d*d + 1
	}
	far := func(d float64) float64 {
		return a*d*d*d - 5*a*d*d + 8*a*d - 4*a
	}
	return [4]float64{far(1 + t), near(t), near(1 - t), far(2 - t)}
}

// mirror folds i into [0, n) with whole-sample symmetric boundaries.
func mirror(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2*n - 2
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - i
	}
	return i
}

// prefilter2D converts samples to cubic B-spline coefficients in place,
// first along rows, then along columns.
func prefilter2D(data []float64, xres, yres int) {
	for row := 0; row < yres; row++ {
		prefilter(data[row*xres : (row+1)*xres])
	}
	col := make([]float64, yres)
	for c := 0; c < xres; c++ {
		for row := 0; row < yres; row++ {
			col[row] = data[row*xres+c]
		}
		prefilter(col)
		for row := 0; row < yres; row++ {
			data[row*xres+c] = col[row]
		}
	}
}

// prefilter applies the recursive causal/anticausal filter pair of the
// cubic B-spline to one line.
func prefilter(c []float64) {
	n := len(c)
	if n < 2 {
		return
	}
	z := splinePole
	gain := (1 - z) * (1 - 1/z)

	for i := range c {
		c[i] *= gain
	}
	c[0] = causalInit(c, z)
	for i := 1; i < n; i++ {
		c[i] += z * c[i-1]
	}
	c[n-1] = (z / (z*z - 1)) * (z*c[n-2] + c[n-1])
	for i := n - 2; i >= 0; i-- {
		c[i] = z * (c[i+1] - c[i])
	}
}

func causalInit(c []float64, z float64) float64 {
	const tolerance = 1e-12
	n := len(c)

	horizon := int(math.Ceil(math.Log(tolerance) / math.Log(math.Abs(z))))
	if horizon < n {
		zn := z
		sum := c[0]
		for i := 1; i < horizon; i++ {
			sum += zn * c[i]
			zn *= z
		}
		return sum
	}

	zn := z
	iz := 1 / z
	z2n := math.Pow(z, float64(n-1))
	sum := c[0] + z2n*c[n-1]
	z2n *= z2n * iz
	for i := 1; i <= n-2; i++ {
		sum += (zn + z2n) * c[i]
		zn *= z
		z2n *= iz
	}
	return sum / (1 - zn*zn)
}
