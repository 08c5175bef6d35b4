package decomp

import "errors"

// Sentinel errors for decomposition inputs.
var (
	// ErrBadGrid indicates a non-positive grid dimension.
	ErrBadGrid = errors.New("decomp: nx and nz must be >= 1")
	// ErrBadCores indicates a non-positive core budget.
	ErrBadCores = errors.New("decomp: maxCores must be >= 1")
	// ErrBadConstraint indicates a negative boundary width or stencil order.
	ErrBadConstraint = errors.New("decomp: boundaryWidth and stencilOrder must be >= 0")
)

// Layout is one process-grid decomposition: ProcsX×ProcsZ ranks, each
// running ThreadsPerProc threads. Immutable once produced.
//
// For any layout with TotalProcs > 1 returned by Suggest:
//
//	nx % ProcsX == 0, nz % ProcsZ == 0
//	nx/ProcsX >= MinBlock(fw, order), nz/ProcsZ >= MinBlock(fw, order)
type Layout struct {
	ProcsX, ProcsZ int
	ThreadsPerProc int
	TotalProcs     int
}

// MinBlock returns the smallest admissible subdomain side length for the
// given absorbing-boundary width and finite-difference half-stencil width,
// in samples: 2·boundaryWidth + 2·stencilOrder. A subdomain narrower than
// this cannot hold both its interior stencil halo and its boundary layer
// without the two overlapping.
func MinBlock(boundaryWidth, stencilOrder int) int {
	return 2*boundaryWidth + 2*stencilOrder
}

// Suggest performs an exhaustive, deterministic search for the process
// grid that maximizes the number of ranks used:
//
//  1. For every candidate process count nproc = 1..maxCores, and every
//     factor pair (fx, fy) with fx·fy == nproc, fx ascending:
//     reject if fx does not divide nx or fy does not divide nz
//     (every rank must own an equal-size subdomain);
//     reject if a local dimension falls below MinBlock.
//  2. Keep the feasible pair with the largest fx·fy; earlier candidates
//     win ties, so the smallest nproc and lexicographically first fx is
//     returned among equals.
//  3. If nothing is feasible, fall back to the 1×1 single-process layout.
//     Suggest never fails for positive dimensions and budget.
//
// Leftover cores fold into threads: ThreadsPerProc = max(1, maxCores/total).
//
// Complexity: O(maxCores²) worst case, independent of nx and nz.
func Suggest(nx, nz, maxCores, boundaryWidth, stencilOrder int) (Layout, error) {
	if nx < 1 || nz < 1 {
		return Layout{}, ErrBadGrid
	}
	if maxCores < 1 {
		return Layout{}, ErrBadCores
	}
	if boundaryWidth < 0 || stencilOrder < 0 {
		return Layout{}, ErrBadConstraint
	}

	minBlock := MinBlock(boundaryWidth, stencilOrder)
	bestX, bestY := 1, 1
	bestProcs := 1

	for nproc := 1; nproc <= maxCores; nproc++ {
		for fx := 1; fx <= nproc; fx++ {
			if nproc%fx != 0 {
				continue
			}
			fy := nproc / fx
			if nx%fx != 0 || nz%fy != 0 {
				continue
			}
			if nx/fx < minBlock || nz/fy < minBlock {
				continue
			}
			if fx*fy > bestProcs {
				bestX, bestY = fx, fy
				bestProcs = fx * fy
			}
		}
	}

	return Layout{
		ProcsX:         bestX,
		ProcsZ:         bestY,
		ThreadsPerProc: max(1, maxCores/bestProcs),
		TotalProcs:     bestProcs,
	}, nil
}
