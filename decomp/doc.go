// Package decomp selects a safe process-grid factorization for a 2D
// finite-difference run.
//
// What:
//
//   - Suggest searches every process count up to a core budget for the
//     (NPROCX, NPROCY) factor pair that evenly divides the grid, keeps
//     every local subdomain at or above the minimum block size, and uses
//     the most processes.
//   - MinBlock derives that minimum from the absorbing-boundary width and
//     the finite-difference half-stencil width: a narrower subdomain
//     cannot hold both its halo and its boundary layer without overlap.
//   - Leftover cores fold into per-process threads rather than going idle.
//
// Why:
//
//   - SOFI2D requires every rank to own an equal-size subdomain; a layout
//     that violates divisibility or the minimum block silently corrupts
//     the stencil exchange.
//   - Picking the layout by hand is error-prone; the feasible set is tiny
//     and cheap to enumerate exhaustively.
//
// Complexity:
//
//   - Suggest: O(maxCores²) worst case, independent of grid size.
//
// Errors:
//
//   - ErrBadGrid: nx or nz is not positive.
//   - ErrBadCores: the core budget is not positive.
//   - ErrBadConstraint: boundary width or stencil order is negative.
//
// Suggest never fails for well-formed inputs: when no multi-process layout
// is feasible it falls back to the degenerate (1,1) single-process layout.
package decomp
