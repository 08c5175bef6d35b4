// Package grid defines core types and sentinel errors for the grid
// subpackage of github.com/seiskit/sofiprep.
package grid

import (
	"errors"

	"github.com/chewxy/math32"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyModel indicates the input model has no rows or no columns.
	ErrEmptyModel = errors.New("grid: model must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all model rows must have the same length")
	// ErrSpacing indicates a zero or negative grid spacing.
	ErrSpacing = errors.New("grid: spacing must be strictly positive")
	// ErrBadMultiple indicates a tiling multiple smaller than 1.
	ErrBadMultiple = errors.New("grid: multiple must be >= 1")
	// ErrShapeMismatch indicates co-padded models of differing shapes.
	ErrShapeMismatch = errors.New("grid: models must share an identical shape")
	// ErrBadPadMode indicates an unknown padding mode.
	ErrBadPadMode = errors.New("grid: unknown padding mode")
)

// PadMode selects how samples added by padding are filled.
type PadMode int

const (
	// PadEdge replicates the nearest boundary sample outward. This is the
	// recommended mode for wave-propagation models: the margin carries no
	// artificial impedance contrast.
	PadEdge PadMode = iota
	// PadZero fills added samples with zero.
	PadZero
)

// PadOffsets records how many samples padding added on each side.
// Left/Right extend the x axis, Top/Bottom the z axis, so that
// Left+Right = nxPad-nx and Top+Bottom = nzPad-nz.
type PadOffsets struct {
	Left, Right int
	Top, Bottom int
}

// Model is a rectangular 2D float32 grid indexed as Model[x][z]:
// x grows to the right, z grows downward. Single precision matches the
// element type the solver consumes end to end.
type Model [][]float32

// NewModel constructs a Model from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyModel if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(nx×nz) time and memory.
func NewModel(values [][]float32) (Model, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyModel
	}
	nz := len(values[0])
	for _, col := range values {
		if len(col) != nz {
			return nil, ErrNonRectangular
		}
	}
	m := make(Model, len(values))
	for x := range values {
		m[x] = make([]float32, nz)
		copy(m[x], values[x])
	}

	return m, nil
}

// Zeros returns an nx×nz model of zero samples.
func Zeros(nx, nz int) Model {
	m := make(Model, nx)
	for x := range m {
		m[x] = make([]float32, nz)
	}

	return m
}

// Uniform returns an nx×nz model with every sample set to v.
func Uniform(nx, nz int, v float32) Model {
	m := Zeros(nx, nz)
	for x := range m {
		for z := range m[x] {
			m[x][z] = v
		}
	}

	return m
}

// NX reports the number of samples along the x axis.
func (m Model) NX() int { return len(m) }

// NZ reports the number of samples along the z axis.
func (m Model) NZ() int {
	if len(m) == 0 {
		return 0
	}

	return len(m[0])
}

// Clone returns a deep copy of the model.
// Complexity: O(nx×nz).
func (m Model) Clone() Model {
	out := make(Model, len(m))
	for x := range m {
		out[x] = make([]float32, len(m[x]))
		copy(out[x], m[x])
	}

	return out
}

// MinMax returns the smallest and largest sample value in the model.
// Both are 0 for an empty model.
// Complexity: O(nx×nz).
func (m Model) MinMax() (lo, hi float32) {
	if m.NX() == 0 || m.NZ() == 0 {
		return 0, 0
	}
	lo, hi = m[0][0], m[0][0]
	for x := range m {
		for _, v := range m[x] {
			lo = math32.Min(lo, v)
			hi = math32.Max(hi, v)
		}
	}

	return lo, hi
}
