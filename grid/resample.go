package grid

import "math"

// Resample maps a model sampled at spacings (dx, dz) onto a single uniform
// spacing target, via bilinear interpolation over the original axes.
//
// Behavior:
//  1. If dx == target and dz == target the model is already on the target
//     grid; a copy of the input is returned with no interpolation error.
//  2. Otherwise the original physical axes are xOld[i] = i·dx and
//     zOld[j] = j·dz. The new sample counts are chosen so the new grid
//     covers the same physical extent:
//     nxNew = round(xOld[last]/target) + 1, nzNew likewise.
//  3. Every new coordinate (i·target, j·target) is evaluated with a
//     bilinear interpolant of the original samples. Coordinates that land
//     outside the original axes (possible through the rounding above) are
//     clamped to the boundary value, so the output is always fully
//     populated.
//
// Returns ErrEmptyModel for a model without samples and ErrSpacing for a
// non-positive dx, dz or target.
// Complexity: O(nxNew×nzNew) time and memory.
func Resample(m Model, dx, dz, target float64) (Model, error) {
	if m.NX() == 0 || m.NZ() == 0 {
		return nil, ErrEmptyModel
	}
	if dx <= 0 || dz <= 0 || target <= 0 {
		return nil, ErrSpacing
	}
	if dx == target && dz == target {
		return m.Clone(), nil
	}

	nxOld, nzOld := m.NX(), m.NZ()
	xLast := float64(nxOld-1) * dx
	zLast := float64(nzOld-1) * dz
	nxNew := int(math.Round(xLast/target)) + 1
	nzNew := int(math.Round(zLast/target)) + 1

	out := make(Model, nxNew)
	for i := 0; i < nxNew; i++ {
		out[i] = make([]float32, nzNew)
		// Lower cell corner and fractional offset along x.
		ix0, ix1, tx := locate(float64(i)*target, dx, nxOld)
		for j := 0; j < nzNew; j++ {
			iz0, iz1, tz := locate(float64(j)*target, dz, nzOld)
			v00 := m[ix0][iz0]
			v10 := m[ix1][iz0]
			v01 := m[ix0][iz1]
			v11 := m[ix1][iz1]
			w0 := v00 + float32(tx)*(v10-v00)
			w1 := v01 + float32(tx)*(v11-v01)
			out[i][j] = w0 + float32(tz)*(w1-w0)
		}
	}

	return out, nil
}

// locate maps a physical coordinate onto the cell of a uniform axis with n
// samples at spacing d. It returns the two bracketing sample indices and
// the fractional position between them, clamped to [0,1] — queries beyond
// either axis end extend the boundary value. For a single-sample axis both
// indices are 0 and the fraction collapses to 0.
func locate(coord, d float64, n int) (lo, hi int, frac float64) {
	if n < 2 {
		return 0, 0, 0
	}
	pos := coord / d
	lo = int(math.Floor(pos))
	if lo < 0 {
		lo = 0
	}
	if lo > n-2 {
		lo = n - 2
	}
	frac = pos - float64(lo)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	return lo, lo + 1, frac
}
