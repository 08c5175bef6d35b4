// Package grid resamples and pads 2D velocity/density models onto the
// uniform, tileable grids a finite-difference solver requires.
//
// What:
//
//   - Model wraps a rectangular [][]float32 grid indexed (x, z): x is the
//     horizontal sample index, z the depth index.
//   - Resample maps a model sampled at (dx, dz) onto a new uniform spacing
//     via bilinear interpolation, preserving the physical extent.
//   - Pad / PadToMultiple grow a model (or a co-registered family of
//     models) to the nearest dimensions divisible by a tiling multiple,
//     centering the margin and replicating edge samples by default.
//
// Why:
//
//   - FD solvers need one spacing along both axes; field models rarely
//     arrive that way.
//   - Padded dimensions must divide evenly across the process grid chosen
//     by decomp.Suggest, and edge replication keeps the margin free of
//     artificial impedance contrasts.
//   - Velocity and density must stay aligned sample-for-sample, so the
//     identical padding geometry is applied to every model in a family.
//
// Complexity:
//
//   - Resample:      O(nx_new×nz_new) time, O(nx_new×nz_new) memory.
//   - Pad:           O(nx_pad×nz_pad) time and memory per model.
//
// Errors:
//
//   - ErrEmptyModel: input model has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrSpacing: a grid spacing is zero or negative.
//   - ErrBadMultiple: tiling multiple is < 1.
//   - ErrShapeMismatch: models handed to PadToMultiple differ in shape.
//   - ErrBadPadMode: unknown padding mode.
//
// No function in this package mutates its input; every stage returns a
// freshly allocated model.
package grid
