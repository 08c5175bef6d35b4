package grid_test

import (
	"testing"

	"github.com/seiskit/sofiprep/grid"
)

// benchmarkResample runs Resample on an nx×nz ramp with the given spacings.
// It resets the timer before entering the loop and fails on unexpected errors.
func benchmarkResample(b *testing.B, nx, nz int, dx, dz, target float64) {
	m := rampModel(nx, nz, 1, 1)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := grid.Resample(m, dx, dz, target); err != nil {
			b.Fatalf("Resample failed: %v", err)
		}
	}
}

// BenchmarkResample_Identity measures the copy-only fast path on a 512×256 model.
func BenchmarkResample_Identity(b *testing.B) {
	benchmarkResample(b, 512, 256, 10, 10, 10)
}

// BenchmarkResample_Halve measures halving the spacing of a 512×256 model.
func BenchmarkResample_Halve(b *testing.B) {
	benchmarkResample(b, 512, 256, 20, 20, 10)
}

// BenchmarkResample_Coarsen measures coarsening a 1024×512 model by 2.5×.
func BenchmarkResample_Coarsen(b *testing.B) {
	benchmarkResample(b, 1024, 512, 10, 10, 25)
}

// BenchmarkPad_Edge measures edge-replication padding of a 511×255 model to 64.
func BenchmarkPad_Edge(b *testing.B) {
	m := rampModel(511, 255, 1, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := grid.Pad(m, 64, grid.PadEdge); err != nil {
			b.Fatalf("Pad failed: %v", err)
		}
	}
}

// BenchmarkPadToMultiple_Pair measures co-padding a velocity/density pair.
func BenchmarkPadToMultiple_Pair(b *testing.B) {
	pair := []grid.Model{rampModel(511, 255, 1, 0), rampModel(511, 255, 0, 1)}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := grid.PadToMultiple(pair, 64, grid.PadEdge); err != nil {
			b.Fatalf("PadToMultiple failed: %v", err)
		}
	}
}
