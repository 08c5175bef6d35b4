package grid

import "fmt"

// padGeometry computes the padded dimensions and per-side offsets that grow
// an nx×nz grid to the smallest multiple-divisible shape. The margin is
// centered: before = pad/2, after = pad-before, so an odd leftover sample
// lands on the high-index side.
func padGeometry(nx, nz, multiple int) (nxPad, nzPad int, off PadOffsets) {
	nxPad = (nx + multiple - 1) / multiple * multiple
	nzPad = (nz + multiple - 1) / multiple * multiple
	padX := nxPad - nx
	padZ := nzPad - nz
	off.Left = padX / 2
	off.Right = padX - off.Left
	off.Top = padZ / 2
	off.Bottom = padZ - off.Top

	return nxPad, nzPad, off
}

// applyPad grows m by the given geometry, filling added samples per mode.
// The caller guarantees the model is non-empty and the mode is known.
func applyPad(m Model, nxPad, nzPad int, off PadOffsets, mode PadMode) Model {
	nx, nz := m.NX(), m.NZ()
	out := Zeros(nxPad, nzPad)
	for x := 0; x < nxPad; x++ {
		sx := x - off.Left
		outsideX := sx < 0 || sx >= nx
		if outsideX {
			if mode == PadZero {
				continue
			}
			sx = clampIndex(sx, nx)
		}
		for z := 0; z < nzPad; z++ {
			sz := z - off.Top
			if sz < 0 || sz >= nz {
				if mode == PadZero {
					continue
				}
				sz = clampIndex(sz, nz)
			}
			out[x][z] = m[sx][sz]
		}
	}

	return out
}

// clampIndex limits i to the valid sample range [0, n-1].
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}

	return i
}

// Pad grows one model so both dimensions are the smallest multiples of
// multiple at or above the current shape, and reports the per-side offsets
// that were added. PadEdge replicates boundary samples into the margin;
// PadZero fills it with zeros.
//
// Returns ErrEmptyModel, ErrBadMultiple or ErrBadPadMode on invalid input.
// The input model is never mutated.
// Complexity: O(nxPad×nzPad) time and memory.
func Pad(m Model, multiple int, mode PadMode) (Model, PadOffsets, error) {
	if m.NX() == 0 || m.NZ() == 0 {
		return nil, PadOffsets{}, ErrEmptyModel
	}
	if multiple < 1 {
		return nil, PadOffsets{}, ErrBadMultiple
	}
	if mode != PadEdge && mode != PadZero {
		return nil, PadOffsets{}, ErrBadPadMode
	}
	nxPad, nzPad, off := padGeometry(m.NX(), m.NZ(), multiple)

	return applyPad(m, nxPad, nzPad, off, mode), off, nil
}

// PadToMultiple applies the identical padding geometry to a family of
// co-registered models (e.g. a velocity/density pair), so their samples
// continue to align index-for-index after padding. The geometry is that of
// Pad on the shared shape.
//
// All models must share one shape; a mismatch is reported with both shapes
// wrapped around ErrShapeMismatch. Returns the padded models in input
// order.
// Complexity: O(k×nxPad×nzPad) for k models.
func PadToMultiple(models []Model, multiple int, mode PadMode) ([]Model, error) {
	if len(models) == 0 || models[0].NX() == 0 || models[0].NZ() == 0 {
		return nil, ErrEmptyModel
	}
	if multiple < 1 {
		return nil, ErrBadMultiple
	}
	if mode != PadEdge && mode != PadZero {
		return nil, ErrBadPadMode
	}
	nx, nz := models[0].NX(), models[0].NZ()
	for i, m := range models[1:] {
		if m.NX() != nx || m.NZ() != nz {
			return nil, fmt.Errorf("grid: model %d is %dx%d, model 0 is %dx%d: %w",
				i+1, m.NX(), m.NZ(), nx, nz, ErrShapeMismatch)
		}
	}

	nxPad, nzPad, off := padGeometry(nx, nz, multiple)
	out := make([]Model, len(models))
	for i, m := range models {
		out[i] = applyPad(m, nxPad, nzPad, off, mode)
	}

	return out, nil
}
