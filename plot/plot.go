package plot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/chewxy/math32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/seiskit/sofiprep/geom"
	"github.com/seiskit/sofiprep/grid"
)

// Sentinel errors for rendering.
var (
	// ErrBadCellSize indicates a non-positive pixel size per sample.
	ErrBadCellSize = errors.New("plot: cell size must be >= 1")
	// ErrBadSpacing indicates a non-positive grid spacing for an overlay.
	ErrBadSpacing = errors.New("plot: spacing must be strictly positive")
)

// titleBand is the pixel height reserved above the model when a title is set.
const titleBand = 16

// Options configures heatmap rendering.
type Options struct {
	// CellSize is the square pixel size of one model sample.
	CellSize int
	// Title, when non-empty, is drawn in a band above the model.
	Title string
}

// DefaultOptions returns the rendering defaults: 2 px per sample, no title.
func DefaultOptions() Options {
	return Options{CellSize: 2}
}

// Heatmap renders the model as a jet-colormapped image with x growing to
// the right and z growing downward — sample (0,0) is the top-left corner.
// Values are normalized to the model's own min/max range; a constant model
// maps to the middle of the ramp.
// Complexity: O(nx×nz×CellSize²).
func Heatmap(m grid.Model, o Options) (*image.RGBA, error) {
	if m.NX() == 0 || m.NZ() == 0 {
		return nil, grid.ErrEmptyModel
	}
	if o.CellSize < 1 {
		return nil, ErrBadCellSize
	}

	lo, hi := m.MinMax()
	span := hi - lo
	top := 0
	if o.Title != "" {
		top = titleBand
	}
	img := image.NewRGBA(image.Rect(0, 0, m.NX()*o.CellSize, top+m.NZ()*o.CellSize))

	for x := 0; x < m.NX(); x++ {
		for z := 0; z < m.NZ(); z++ {
			t := float32(0.5)
			if span > 0 {
				t = (m[x][z] - lo) / span
			}
			c := jet(t)
			for px := x * o.CellSize; px < (x+1)*o.CellSize; px++ {
				for pz := top + z*o.CellSize; pz < top+(z+1)*o.CellSize; pz++ {
					img.SetRGBA(px, pz, c)
				}
			}
		}
	}

	if o.Title != "" {
		label(img, 2, 12, o.Title, color.RGBA{A: 255})
	}

	return img, nil
}

// OverlaySources marks shot positions on a heatmap as crosses. dx and dz
// are the grid spacings in meters used to map coordinates onto samples;
// o must be the Options the heatmap was rendered with.
func OverlaySources(img *image.RGBA, o Options, dx, dz float64, sources []geom.Source) error {
	if dx <= 0 || dz <= 0 {
		return ErrBadSpacing
	}
	red := color.RGBA{R: 255, A: 255}
	for _, s := range sources {
		px, pz := toPixel(s.X, s.Z, dx, dz, o)
		cross(img, px, pz, 3, red)
	}

	return nil
}

// OverlayReceivers marks receiver positions on a heatmap as dots.
// Returns geom.ErrLengthMismatch for ragged coordinate slices.
func OverlayReceivers(img *image.RGBA, o Options, dx, dz float64, recX, recZ []float64) error {
	if dx <= 0 || dz <= 0 {
		return ErrBadSpacing
	}
	if len(recX) != len(recZ) {
		return geom.ErrLengthMismatch
	}
	blue := color.RGBA{B: 255, A: 255}
	for i := range recX {
		px, pz := toPixel(recX[i], recZ[i], dx, dz, o)
		dot(img, px, pz, blue)
	}

	return nil
}

// SavePNG encodes img to path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("plot: create %s: %w", path, err)
	}
	if err = png.Encode(f, img); err != nil {
		f.Close()

		return fmt.Errorf("plot: encode %s: %w", path, err)
	}

	return f.Close()
}

// toPixel maps a physical coordinate in meters to the pixel center of the
// sample it falls on.
func toPixel(x, z, dx, dz float64, o Options) (px, pz int) {
	top := 0
	if o.Title != "" {
		top = titleBand
	}
	px = int(x/dx)*o.CellSize + o.CellSize/2
	pz = top + int(z/dz)*o.CellSize + o.CellSize/2

	return px, pz
}

// jet maps t ∈ [0,1] onto a blue→cyan→yellow→red ramp.
func jet(t float32) color.RGBA {
	t = math32.Min(1, math32.Max(0, t))

	return color.RGBA{
		R: rampByte(t - 0.5),
		G: rampByte(0.5 - math32.Abs(t-0.5)),
		B: rampByte(0.5 - t),
		A: 255,
	}
}

// rampByte converts a half-range intensity in [-0.5,0.5] to a byte,
// saturating outside [0,0.5].
func rampByte(v float32) uint8 {
	v = math32.Min(0.5, math32.Max(0, v)) * 2

	return uint8(math32.Round(v * 255))
}

// cross draws a size-armed cross centered at (px,pz), clipped to the image.
func cross(img *image.RGBA, px, pz, size int, c color.RGBA) {
	for d := -size; d <= size; d++ {
		setClipped(img, px+d, pz, c)
		setClipped(img, px, pz+d, c)
	}
}

// dot draws a single marked pixel with its four neighbors.
func dot(img *image.RGBA, px, pz int, c color.RGBA) {
	setClipped(img, px, pz, c)
	setClipped(img, px+1, pz, c)
	setClipped(img, px-1, pz, c)
	setClipped(img, px, pz+1, c)
	setClipped(img, px, pz-1, c)
}

func setClipped(img *image.RGBA, px, pz int, c color.RGBA) {
	if image.Pt(px, pz).In(img.Bounds()) {
		img.SetRGBA(px, pz, c)
	}
}

// label draws text with the fixed 7x13 face; enough for quick-look titles.
func label(img *image.RGBA, x, y int, text string, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
