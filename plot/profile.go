package plot

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/seiskit/sofiprep/grid"
)

// ErrBadIndex indicates a profile column outside the model.
var ErrBadIndex = errors.New("plot: column index out of range")

// DepthProfile renders the vertical profile of one model column as a PNG
// line chart: depth (z·dz, meters) on the x axis, sample value on the y
// axis. Useful for eyeballing a velocity gradient after resampling.
func DepthProfile(w io.Writer, m grid.Model, xIndex int, dz float64) error {
	if m.NX() == 0 || m.NZ() == 0 {
		return grid.ErrEmptyModel
	}
	if xIndex < 0 || xIndex >= m.NX() {
		return fmt.Errorf("plot: column %d of %d: %w", xIndex, m.NX(), ErrBadIndex)
	}
	if dz <= 0 {
		return ErrBadSpacing
	}

	depths := make([]float64, m.NZ())
	values := make([]float64, m.NZ())
	for z := 0; z < m.NZ(); z++ {
		depths[z] = float64(z) * dz
		values[z] = float64(m[xIndex][z])
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("column x=%d", xIndex),
		Width:  800,
		Height: 400,
		XAxis:  chart.XAxis{Name: "depth [m]"},
		YAxis:  chart.YAxis{Name: "value"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: depths,
				YValues: values,
				Style: chart.Style{
					StrokeColor: drawing.Color{R: 0, G: 116, B: 217, A: 255},
					StrokeWidth: 2.0,
				},
			},
		},
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("plot: render profile: %w", err)
	}

	return nil
}
