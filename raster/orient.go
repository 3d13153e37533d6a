package raster

import "github.com/tsawler/anasys/model"

// FlipVertical reverses the row order in place.
func FlipVertical(r *model.Raster) {
	for top, bottom := 0, r.YRes-1; top < bottom; top, bottom = top+1, bottom-1 {
		a, b := r.Row(top), r.Row(bottom)
		for i := range a {
			a[i], b[i] = b[i], a[i]
		}
		if r.Mask != nil {
			swapMaskRows(r, top, bottom)
		}
	}
}

// FlipHorizontal reverses the column order of every row in place.
func FlipHorizontal(r *model.Raster) {
	for row := 0; row < r.YRes; row++ {
		line := r.Row(row)
		for i, j := 0, len(line)-1; i < j; i, j = i+1, j-1 {
			line[i], line[j] = line[j], line[i]
		}
		if r.Mask != nil {
			m := r.Mask[row*r.XRes : (row+1)*r.XRes]
			for i, j := 0, len(m)-1; i < j; i, j = i+1, j-1 {
				m[i], m[j] = m[j], m[i]
			}
		}
	}
}

func swapMaskRows(r *model.Raster, a, b int) {
	ma := r.Mask[a*r.XRes : (a+1)*r.XRes]
	mb := r.Mask[b*r.XRes : (b+1)*r.XRes]
	for i := range ma {
		ma[i], mb[i] = mb[i], ma[i]
	}
}

// Rotate90 returns r rotated by a quarter turn. Counterclockwise moves
// the top-right corner to the top-left; clockwise moves the top-left
// corner to the top-right. Resolution and physical extents are swapped.
func Rotate90(r *model.Raster, clockwise bool) *model.Raster {
	out := &model.Raster{
		XRes:    r.YRes,
		YRes:    r.XRes,
		XReal:   r.YReal,
		YReal:   r.XReal,
		XOffset: r.XOffset,
		YOffset: r.YOffset,
		XYUnit:  r.XYUnit,
		ZUnit:   r.ZUnit,
		Data:    make([]float64, len(r.Data)),
	}
	if r.Mask != nil {
		out.Mask = make([]bool, len(r.Mask))
	}

	for row := 0; row < r.YRes; row++ {
		for col := 0; col < r.XRes; col++ {
			var dc, dr int
			if clockwise {
				dc, dr = r.YRes-1-row, col
			} else {
				dc, dr = row, r.XRes-1-col
			}
			src := row*r.XRes + col
			dst := dr*out.XRes + dc
			out.Data[dst] = r.Data[src]
			if r.Mask != nil {
				out.Mask[dst] = r.Mask[src]
			}
		}
	}
	return out
}
