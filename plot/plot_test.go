package plot_test

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seiskit/sofiprep/geom"
	"github.com/seiskit/sofiprep/grid"
	"github.com/seiskit/sofiprep/plot"
)

// gradientModel runs from 0 at z=0 to nz-1 at the bottom, constant along x.
func gradientModel(nx, nz int) grid.Model {
	m := grid.Zeros(nx, nz)
	for x := 0; x < nx; x++ {
		for z := 0; z < nz; z++ {
			m[x][z] = float32(z)
		}
	}

	return m
}

// TestHeatmap_SizeAndOrientation pins pixel dimensions and the z-downward
// orientation: the minimum maps to blue at the top, the maximum to red at
// the bottom.
func TestHeatmap_SizeAndOrientation(t *testing.T) {
	m := gradientModel(8, 4)
	img, err := plot.Heatmap(m, plot.Options{CellSize: 3})
	require.NoError(t, err)

	assert.Equal(t, 24, img.Bounds().Dx(), "width = nx·cell")
	assert.Equal(t, 12, img.Bounds().Dy(), "height = nz·cell, no title band")

	top := img.RGBAAt(1, 1)
	bottom := img.RGBAAt(1, 10)
	assert.Greater(t, top.B, top.R, "minimum value renders blue")
	assert.Greater(t, bottom.R, bottom.B, "maximum value renders red")
}

// TestHeatmap_TitleBand reserves label space above the model.
func TestHeatmap_TitleBand(t *testing.T) {
	img, err := plot.Heatmap(gradientModel(4, 4), plot.Options{CellSize: 2, Title: "vp"})
	require.NoError(t, err)
	assert.Equal(t, 16+8, img.Bounds().Dy(), "title adds a fixed band")
}

// TestHeatmap_ConstantModel maps a flat model mid-ramp instead of dividing
// by a zero value range.
func TestHeatmap_ConstantModel(t *testing.T) {
	img, err := plot.Heatmap(grid.Uniform(4, 4, 1500), plot.DefaultOptions())
	require.NoError(t, err)

	c := img.RGBAAt(0, 0)
	assert.EqualValues(t, 255, c.G, "mid-ramp is full green")
}

// TestHeatmap_Errors covers validation.
func TestHeatmap_Errors(t *testing.T) {
	_, err := plot.Heatmap(grid.Model{}, plot.DefaultOptions())
	assert.ErrorIs(t, err, grid.ErrEmptyModel)

	_, err = plot.Heatmap(grid.Uniform(2, 2, 1), plot.Options{CellSize: 0})
	assert.ErrorIs(t, err, plot.ErrBadCellSize)
}

// TestOverlays draws geometry and checks the marker pixels changed.
func TestOverlays(t *testing.T) {
	o := plot.Options{CellSize: 4}
	img, err := plot.Heatmap(grid.Uniform(16, 16, 2000), o)
	require.NoError(t, err)

	// One source at 40 m with 10 m spacing → sample (4,4) → pixel (18,18).
	require.NoError(t, plot.OverlaySources(img, o, 10, 10, []geom.Source{{X: 40, Z: 40}}))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(18, 18), "source cross center")

	require.NoError(t, plot.OverlayReceivers(img, o, 10, 10, []float64{80}, []float64{0}))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, img.RGBAAt(34, 2), "receiver dot center")

	err = plot.OverlayReceivers(img, o, 10, 10, []float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, geom.ErrLengthMismatch)

	err = plot.OverlaySources(img, o, 0, 10, nil)
	assert.ErrorIs(t, err, plot.ErrBadSpacing)
}

// TestSavePNG_Decodable writes a decodable PNG file.
func TestSavePNG_Decodable(t *testing.T) {
	img, err := plot.Heatmap(gradientModel(8, 8), plot.DefaultOptions())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "model.png")
	require.NoError(t, plot.SavePNG(path, img))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}

// TestDepthProfile_RendersPNG checks the chart renders and carries the PNG
// signature; exact pixels belong to go-chart, not to this package.
func TestDepthProfile_RendersPNG(t *testing.T) {
	var buf bytes.Buffer
	err := plot.DepthProfile(&buf, gradientModel(4, 64), 2, 10)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")), "output must be a PNG stream")
}

// TestDepthProfile_Errors covers index and spacing validation.
func TestDepthProfile_Errors(t *testing.T) {
	var buf bytes.Buffer
	err := plot.DepthProfile(&buf, gradientModel(4, 8), 4, 10)
	assert.ErrorIs(t, err, plot.ErrBadIndex)

	err = plot.DepthProfile(&buf, gradientModel(4, 8), 0, 0)
	assert.ErrorIs(t, err, plot.ErrBadSpacing)
}
