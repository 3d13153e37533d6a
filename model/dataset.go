package model

import (
	"slices"
	"sort"
)

// ObliqueIndexOffset is added to a channel index to key the rotated
// image of an oblique scan.
const ObliqueIndexOffset = 1000000

// Image is one calibrated raster emitted for a height-map channel.
type Image struct {
	Index  int
	Title  string
	Raster *Raster
	Meta   *Metadata
}

// Provenance records where a dataset came from.
type Provenance struct {
	Filename string
	Importer string
}

// Dataset is the output of one import call.
type Dataset struct {
	Images     []*Image
	Spectra    []*SpectraCollection
	Provenance Provenance
}

// NewDataset creates an empty dataset
func NewDataset() *Dataset {
	return &Dataset{}
}

// AddImage inserts an image after every image with an Index no greater
// than its own, keeping Images ordered by Index.
func (d *Dataset) AddImage(img *Image) {
	i := sort.Search(len(d.Images), func(i int) bool {
		return d.Images[i].Index > img.Index
	})
	d.Images = slices.Insert(d.Images, i, img)
}

// AddSpectra inserts a collection, keeping Spectra ordered by Index
func (d *Dataset) AddSpectra(c *SpectraCollection) {
	i := sort.Search(len(d.Spectra), func(i int) bool {
		return d.Spectra[i].Index > c.Index
	})
	d.Spectra = slices.Insert(d.Spectra, i, c)
}

// Image returns the image stored under index
func (d *Dataset) Image(index int) *Image {
	for _, img := range d.Images {
		if img.Index == index {
			return img
		}
	}
	return nil
}

// SpectraAt returns the collection stored under index
func (d *Dataset) SpectraAt(index int) *SpectraCollection {
	for _, c := range d.Spectra {
		if c.Index == index {
			return c
		}
	}
	return nil
}

// AllSpectra returns the aggregate collection, or nil if the document
// produced no spectra.
func (d *Dataset) AllSpectra() *SpectraCollection {
	return d.SpectraAt(0)
}

// IsEmpty returns true if nothing was decoded
func (d *Dataset) IsEmpty() bool {
	return len(d.Images) == 0 && len(d.Spectra) == 0
}
