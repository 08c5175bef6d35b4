package decomp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seiskit/sofiprep/decomp"
)

// TestSuggest_SofiScenario pins the reference case: a 512×256 grid on 16
// cores with FW=40 and FDORDER=4 must pick 4×2 ranks with 2 threads each.
func TestSuggest_SofiScenario(t *testing.T) {
	l, err := decomp.Suggest(512, 256, 16, 40, 4)
	require.NoError(t, err)

	assert.Equal(t, decomp.Layout{
		ProcsX:         4,
		ProcsZ:         2,
		ThreadsPerProc: 2,
		TotalProcs:     8,
	}, l, "min_block=88 admits at most 4×2 on this grid")
}

// TestSuggest_Errors rejects malformed inputs before the search runs.
func TestSuggest_Errors(t *testing.T) {
	cases := []struct {
		name                   string
		nx, nz, cores, fw, ord int
		err                    error
	}{
		{"ZeroNX", 0, 256, 8, 40, 4, decomp.ErrBadGrid},
		{"NegativeNZ", 512, -1, 8, 40, 4, decomp.ErrBadGrid},
		{"ZeroCores", 512, 256, 0, 40, 4, decomp.ErrBadCores},
		{"NegativeBoundary", 512, 256, 8, -1, 4, decomp.ErrBadConstraint},
		{"NegativeOrder", 512, 256, 8, 40, -4, decomp.ErrBadConstraint},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decomp.Suggest(tc.nx, tc.nz, tc.cores, tc.fw, tc.ord)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestSuggest_Fallback verifies the degenerate single-process layout when
// no multi-process split is feasible.
func TestSuggest_Fallback(t *testing.T) {
	// A prime-sized grid divides only by 1; every core folds into threads.
	l, err := decomp.Suggest(509, 251, 12, 10, 2)
	require.NoError(t, err)
	assert.Equal(t, decomp.Layout{ProcsX: 1, ProcsZ: 1, ThreadsPerProc: 12, TotalProcs: 1}, l,
		"prime dimensions admit only the 1×1 layout")

	// Even the whole grid is smaller than min_block: still 1×1, never an error.
	l, err = decomp.Suggest(32, 32, 4, 40, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, l.TotalProcs, "infeasible constraints degrade to a single process")
}

// TestSuggest_Invariants sweeps a spread of inputs and asserts the three
// layout guarantees: divisibility, minimum block size, and maximality.
func TestSuggest_Invariants(t *testing.T) {
	cases := []struct {
		nx, nz, cores, fw, ord int
	}{
		{512, 256, 16, 40, 4},
		{512, 512, 64, 20, 2},
		{960, 480, 48, 30, 8},
		{256, 256, 1, 10, 4},
		{1024, 128, 100, 0, 0},
		{300, 200, 25, 15, 5},
	}
	for _, tc := range cases {
		l, err := decomp.Suggest(tc.nx, tc.nz, tc.cores, tc.fw, tc.ord)
		require.NoError(t, err)

		minBlock := decomp.MinBlock(tc.fw, tc.ord)
		assert.Equal(t, l.ProcsX*l.ProcsZ, l.TotalProcs, "TotalProcs must equal ProcsX·ProcsZ")
		assert.LessOrEqual(t, l.TotalProcs, tc.cores, "budget must be respected")
		assert.GreaterOrEqual(t, l.ThreadsPerProc, 1, "at least one thread per rank")

		if l.TotalProcs > 1 {
			assert.Zero(t, tc.nx%l.ProcsX, "nx must divide evenly across ranks")
			assert.Zero(t, tc.nz%l.ProcsZ, "nz must divide evenly across ranks")
			assert.GreaterOrEqual(t, tc.nx/l.ProcsX, minBlock, "local nx below min block")
			assert.GreaterOrEqual(t, tc.nz/l.ProcsZ, minBlock, "local nz below min block")
		}

		// Maximality: no feasible pair may beat the returned layout.
		for fx := 1; fx <= tc.cores; fx++ {
			for fy := 1; fx*fy <= tc.cores; fy++ {
				if tc.nx%fx != 0 || tc.nz%fy != 0 {
					continue
				}
				if tc.nx/fx < minBlock || tc.nz/fy < minBlock {
					continue
				}
				assert.LessOrEqual(t, fx*fy, l.TotalProcs,
					"feasible %dx%d beats returned layout for %+v", fx, fy, tc)
			}
		}
	}
}

// TestSuggest_ThreadFolding checks that spare cores become threads.
func TestSuggest_ThreadFolding(t *testing.T) {
	// 64×64 grid, min_block 16: at most 4×4=16 ranks (local 16×16), and
	// with 33 cores the 17 spare cores yield 33/16 = 2 threads per rank.
	l, err := decomp.Suggest(64, 64, 33, 6, 2)
	require.NoError(t, err)

	assert.Equal(t, 16, l.TotalProcs)
	assert.Equal(t, 2, l.ThreadsPerProc, "leftover cores fold into per-rank threads")
}

// TestMinBlock pins the constraint formula.
func TestMinBlock(t *testing.T) {
	assert.Equal(t, 88, decomp.MinBlock(40, 4))
	assert.Equal(t, 0, decomp.MinBlock(0, 0))
}
