// Package sofiprep prepares finite-difference simulation inputs for the
// SOFI2D 2D wave-propagation solver — from a raw velocity/density model to
// the grid, decomposition, geometry and control files a run consumes.
//
// 🚀 What is sofiprep?
//
//	A small toolkit that brings together:
//		• Grid processing: resample a model onto a uniform spacing, pad it
//		  to a tiling multiple with edge replication
//		• Domain decomposition: pick a safe NPROCX×NPROCY process grid for
//		  a core budget, honoring stencil and absorbing-boundary constraints
//		• Control files: assemble and write the ordered SOFI2D parameter file
//		• Geometry: write source.dat / receiver.dat spreads
//		• Model I/O: raw float32 binaries in the layout SOFI2D reads
//		• Plots: quick-look heatmaps of models with geometry overlays
//
// ✨ Why choose sofiprep?
//
//   - Pure computations – every pipeline stage is a pure function of its
//     inputs; nothing retains state between calls
//   - Safe partitions – the decomposer never proposes a layout that starves
//     a subdomain below its stencil halo and boundary layer
//   - Pure Go – no cgo, no solver, no MPI runtime required
//
// The pipeline, in the order a preparation run consumes it:
//
//	grid/    — Model, Resample, Pad, PadToMultiple
//	decomp/  — Suggest: the NPROCX×NPROCY search
//	config/  — ordered key/value control-file document
//	geom/    — source and receiver file writers/readers
//	modelio/ — float32 binary model read/write
//	plot/    — heatmap and depth-profile rendering
//
// Quick ASCII sketch of a prepared grid:
//
//	┌───────────── nx (padded, NPROCX·local_nx) ─────────────┐
//	│ absorbing frame (FW samples)                            │
//	│   ┌─────────────────────────────────────────────┐       │
//	│   │ interior, local blocks ≥ 2·FW + 2·FDORDER   │       │
//	│   └─────────────────────────────────────────────┘       │
//	└──────────────────────────────────────────────────────────┘
//
// Dive into each package's doc.go for contracts, complexity and errors.
//
//	go get github.com/seiskit/sofiprep
package sofiprep
