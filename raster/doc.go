// Package raster implements the orientation transforms applied to decoded
// height maps.
//
// All functions operate on [model.Raster] values. Flips work in place;
// rotations return a new raster.
//
//   - [FlipVertical], [FlipHorizontal] mirror rows or columns
//   - [Rotate90] rotates by a quarter turn, swapping the physical extents
//   - [Rotate] rotates by an arbitrary angle onto a canvas large enough to
//     hold the whole rotated footprint, resampling with an [Interpolation]
//
// Angles are in radians; positive angles turn the image counterclockwise
// as displayed (row 0 at the top).
package raster
