package grid_test

import (
	"fmt"

	"github.com/seiskit/sofiprep/grid"
)

// //////////////////////////////////////////////////////////////////////////////
// ExamplePad
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A 17×33 velocity model must be tiled by 16 before decomposition.
//
// Effect:
//
//	pad of 15 per axis, split 7 before / 8 after — any odd leftover
//	sample lands on the high-index side.
//
// Complexity: O(nxPad×nzPad) time and memory.
func ExamplePad() {
	vp := grid.Uniform(17, 33, 3500) // constant 3500 m/s block
	padded, off, err := grid.Pad(vp, 16, grid.PadEdge)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("shape=%dx%d\noffsets=%+v\n", padded.NX(), padded.NZ(), off)
	// Output:
	// shape=32x48
	// offsets={Left:7 Right:8 Top:7 Bottom:8}
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleResample
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A model sampled every 20 m must run on a 10 m grid. The physical
//	extent (40 m per axis) is preserved; sample counts grow to match.
//
// Complexity: O(nxNew×nzNew) time and memory.
func ExampleResample() {
	m := grid.Model{
		{1500, 1500, 2000},
		{1500, 1800, 2000},
		{1500, 1800, 2200},
	}
	out, err := grid.Resample(m, 20, 20, 10)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("shape=%dx%d\nmidpoint=%.0f\n", out.NX(), out.NZ(), out[1][1])
	// Output:
	// shape=5x5
	// midpoint=1575
}
