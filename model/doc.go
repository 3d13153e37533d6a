// Package model provides the host-neutral representation of a decoded
// Analysis Studio document.
//
// The reader packages never touch a host application's container types.
// They produce these plain values, and a host adapter maps them into its
// own data fields, spectra objects and metadata stores.
//
// # Dataset
//
// A [Dataset] is the bundle produced by one import call:
//
//	ds.Images    // calibrated height-map rasters, ordered by Index
//	ds.Spectra   // spectra collections, the "All Spectra" aggregate first
//	ds.Provenance
//
// # Images and rasters
//
// Each [Image] pairs a [Raster] (pixel grid plus physical calibration)
// with a title and a [Metadata] map. Rasters are row-major, row 0 first,
// with values stored as float64.
//
// Physical extents and offsets are in meters. The z unit is carried as a
// string exactly as the file declares it (default "m").
//
// # Spectra
//
// A [Spectrum] is a 1D array of samples with a linear wavenumber axis.
// Spectra are grouped in [SpectraCollection] values; index 0 is always the
// document-wide aggregate when any spectrum was decoded.
//
// # Geometry
//
// [Point] and [BBox] support the footprint calculations used when a
// raster is rotated onto an expanded canvas.
package model
