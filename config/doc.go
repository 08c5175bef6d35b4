// Package config assembles and serializes the SOFI2D simulation control
// file: a flat JSON object whose keys keep their insertion order and whose
// section banners are pseudo-entries with the value "comment".
//
// What:
//
//   - Document is an ordered list of key/value string entries with a
//     MarshalJSON that preserves order (encoding/json maps cannot).
//   - Config groups the SOFI2D parameter sections — domain decomposition,
//     FD order, grid, time stepping, wave equation, source, model,
//     boundary, snapshots, receiver, seismograms, logging — each with the
//     solver's documented defaults.
//   - Default(nx, ny, dh) builds a complete configuration around mandatory
//     grid parameters; ApplyLayout folds a decomp.Layout into NPROCX and
//     NPROCY.
//
// Why:
//
//   - SOFI2D reads its parameter file top to bottom and its reference
//     documentation is ordered; emitting keys in canonical order keeps the
//     file diffable against the shipped examples.
//
// Errors:
//
//   - ErrDuplicateKey: a key was added to a Document twice.
//
// The package performs no I/O besides Document.WriteFile / WriteTo.
package config
