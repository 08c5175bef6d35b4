// Package modelio reads and writes models as raw little-endian float32
// streams — the binary layout SOFI2D loads with READMOD=1. Samples are
// row-major with x outermost: all z samples of column x=0, then x=1, ...
//
// The stream carries no header; the caller supplies the dimensions when
// reading, exactly as the solver does via NX/NY in its parameter file.
package modelio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/seiskit/sofiprep/grid"
)

// Sentinel errors for binary model streams.
var (
	// ErrBadDims indicates non-positive read dimensions.
	ErrBadDims = errors.New("modelio: nx and nz must be >= 1")
	// ErrShortStream indicates the stream ended before nx×nz samples.
	ErrShortStream = errors.New("modelio: stream shorter than nx*nz samples")
)

// Write streams the model as raw little-endian float32 values.
// Complexity: O(nx×nz).
func Write(w io.Writer, m grid.Model) error {
	if m.NX() == 0 || m.NZ() == 0 {
		return grid.ErrEmptyModel
	}
	bw := bufio.NewWriter(w)
	for x := range m {
		if err := binary.Write(bw, binary.LittleEndian, m[x]); err != nil {
			return fmt.Errorf("modelio: write column %d: %w", x, err)
		}
	}

	return bw.Flush()
}

// WriteFile writes the model binary at path.
func WriteFile(path string, m grid.Model) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("modelio: create %s: %w", path, err)
	}
	if err = Write(f, m); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// Read reconstructs an nx×nz model from a raw float32 stream. A stream
// with fewer than nx×nz samples yields ErrShortStream; trailing bytes
// beyond the expected count are left unread.
func Read(r io.Reader, nx, nz int) (grid.Model, error) {
	if nx < 1 || nz < 1 {
		return nil, ErrBadDims
	}
	br := bufio.NewReader(r)
	m := grid.Zeros(nx, nz)
	for x := range m {
		if err := binary.Read(br, binary.LittleEndian, m[x]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("modelio: column %d: %w", x, ErrShortStream)
			}

			return nil, fmt.Errorf("modelio: read column %d: %w", x, err)
		}
	}

	return m, nil
}

// ReadFile reads an nx×nz model binary from path.
func ReadFile(path string, nx, nz int) (grid.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("modelio: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f, nx, nz)
}
