// Package geom writes and reads the SOFI2D acquisition-geometry files:
// source.dat (fixed-width, seven columns per shot) and receiver.dat
// (two columns of meter coordinates). It also builds evenly spaced
// receiver spreads between two endpoints.
//
// All coordinates are physical distances in meters, matching the spacing
// convention of the grid package.
package geom

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Sentinel errors for geometry files.
var (
	// ErrLengthMismatch indicates receiver x and z slices of differing length.
	ErrLengthMismatch = errors.New("geom: rec x and z must have the same length")
	// ErrBadCount indicates a non-positive receiver count.
	ErrBadCount = errors.New("geom: receiver count must be >= 1")
	// ErrBadFormat indicates a malformed receiver.dat row.
	ErrBadFormat = errors.New("geom: receiver.dat format error: expected at least two columns (x z)")
)

// Source is one shot definition: position, onset delay, center frequency
// and amplitude. Azimuth and source type are emitted with the solver's
// default values (0.0 and explosive=1).
type Source struct {
	X, Z       float64 // position in meters
	Delay      float64 // onset delay TD in seconds
	CenterFreq float64 // FC in Hz
	Amplitude  float64 // AMP
}

// sourceType 1 is an explosive source, the default for every written shot.
const sourceType = 1.0

// WriteSources emits one fixed-width line per source:
//
//	XSRC  ZSRC  TD  FC  AMP  SOURCE_AZIMUTH  SOURCE_TYPE
//
// Columns are 10 characters wide, space separated, no tabs, no blank lines
// — the exact shape SOFI2D's source reader expects.
func WriteSources(w io.Writer, sources []Source) error {
	for i, s := range sources {
		_, err := fmt.Fprintf(w, "%10.2f %10.2f %10.2f %10.2f %10.2f %10.2f %10.2f\n",
			s.X, s.Z, s.Delay, s.CenterFreq, s.Amplitude, 0.0, sourceType)
		if err != nil {
			return fmt.Errorf("geom: write source %d: %w", i, err)
		}
	}

	return nil
}

// WriteSourcesFile writes source.dat at path.
func WriteSourcesFile(path string, sources []Source) error {
	return writeFile(path, func(w io.Writer) error { return WriteSources(w, sources) })
}

// WriteReceivers emits one "x z" line per receiver with six decimals.
// Returns ErrLengthMismatch if the coordinate slices differ in length.
func WriteReceivers(w io.Writer, recX, recZ []float64) error {
	if len(recX) != len(recZ) {
		return ErrLengthMismatch
	}
	for i := range recX {
		if _, err := fmt.Fprintf(w, "%.6f %.6f\n", recX[i], recZ[i]); err != nil {
			return fmt.Errorf("geom: write receiver %d: %w", i, err)
		}
	}

	return nil
}

// WriteReceiversFile writes receiver.dat at path.
func WriteReceiversFile(path string, recX, recZ []float64) error {
	return writeFile(path, func(w io.Writer) error { return WriteReceivers(w, recX, recZ) })
}

// ReadReceivers parses a receiver.dat stream: two leading float columns
// per non-blank line, extra columns ignored. A malformed row is reported
// with its line number wrapped around ErrBadFormat.
func ReadReceivers(r io.Reader) (recX, recZ []float64, err error) {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, nil, fmt.Errorf("geom: line %d: %w", line, ErrBadFormat)
		}
		x, errX := strconv.ParseFloat(fields[0], 64)
		z, errZ := strconv.ParseFloat(fields[1], 64)
		if errX != nil || errZ != nil {
			return nil, nil, fmt.Errorf("geom: line %d: %w", line, ErrBadFormat)
		}
		recX = append(recX, x)
		recZ = append(recZ, z)
	}
	if err = sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("geom: read receivers: %w", err)
	}

	return recX, recZ, nil
}

// ReadReceiversFile reads receiver.dat from path.
func ReadReceiversFile(path string) (recX, recZ []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("geom: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadReceivers(f)
}

// ReceiverLine places n receivers evenly between (x1,z1) and (x2,z2),
// endpoints included. n == 1 yields the first endpoint alone.
// Returns ErrBadCount for n < 1.
func ReceiverLine(x1, z1, x2, z2 float64, n int) (recX, recZ []float64, err error) {
	if n < 1 {
		return nil, nil, ErrBadCount
	}
	if n == 1 {
		return []float64{x1}, []float64{z1}, nil
	}
	recX = floats.Span(make([]float64, n), x1, x2)
	recZ = floats.Span(make([]float64, n), z1, z2)

	return recX, recZ, nil
}

// writeFile creates path and streams body into it.
func writeFile(path string, body func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("geom: create %s: %w", path, err)
	}
	if err = body(f); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
