package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/golang/freetype/raster"
	"golang.org/x/image/math/fixed"
)

// Drawer is an abstraction the renderer provides to glyphs to draw primitives
// without exposing the backing pixel buffer.
type Drawer interface {
	// Size returns the logical canvas size (in pixels) that glyphs draw into.
	Size() (width int, height int)

	FillBackground()

	// StrokePolyline strokes the open path through points at the given
	// width, centered on the path, with rounded caps and joins.
	StrokePolyline(points []image.Point, width int, fill color.Color)

	// FillDisc paints an anti-aliased filled circle.
	FillDisc(center image.Point, radius int, fill color.Color)
}

// Glyph is a piece of artwork that knows how to draw itself onto a Drawer.
type Glyph interface {
	Draw(d Drawer)
}

// ImageRenderer renders glyphs onto an offscreen RGBA canvas.
type ImageRenderer struct {
	canvas *image.RGBA
}

func NewImageRenderer() *ImageRenderer {
	return &ImageRenderer{canvas: image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight))}
}

// Render draws the glyph over a fresh background fill and returns the canvas.
// The returned image is owned by the renderer and valid until the next Render.
func (r *ImageRenderer) Render(g Glyph) *image.RGBA {
	r.FillBackground()
	g.Draw(r)
	return r.canvas
}

// Drawer primitives

func (r *ImageRenderer) Size() (int, int) {
	bounds := r.canvas.Bounds()
	return bounds.Dx(), bounds.Dy()
}

func (r *ImageRenderer) FillBackground() {
	draw.Draw(r.canvas, r.canvas.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)
}

func (r *ImageRenderer) StrokePolyline(points []image.Point, width int, fill color.Color) {
	if len(points) < 2 {
		return
	}
	var path raster.Path
	path.Start(fixed.P(points[0].X, points[0].Y))
	for _, pt := range points[1:] {
		path.Add1(fixed.P(pt.X, pt.Y))
	}

	rast := raster.NewRasterizer(CanvasWidth, CanvasHeight)
	rast.UseNonZeroWinding = true
	rast.AddStroke(path, fixed.I(width), raster.RoundCapper, raster.RoundJoiner)

	painter := raster.NewRGBAPainter(r.canvas)
	painter.SetColor(fill)
	rast.Rasterize(painter)
}

func (r *ImageRenderer) FillDisc(center image.Point, radius int, fill color.Color) {
	rgba := color.RGBAModel.Convert(fill).(color.RGBA)
	rf := float64(radius)
	bounds := r.canvas.Bounds()

	minX := max(center.X-radius-1, bounds.Min.X)
	maxX := min(center.X+radius+1, bounds.Max.X-1)
	minY := max(center.Y-radius-1, bounds.Min.Y)
	maxY := min(center.Y+radius+1, bounds.Max.Y-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			// Sample at the pixel center.
			dx := float64(x) + 0.5 - float64(center.X)
			dy := float64(y) + 0.5 - float64(center.Y)
			dist := dx*dx + dy*dy
			switch {
			case dist <= (rf-0.5)*(rf-0.5):
				r.canvas.SetRGBA(x, y, rgba)
			case dist < (rf+0.5)*(rf+0.5):
				coverage := rf + 0.5 - math.Sqrt(dist)
				blendRGBA(r.canvas, x, y, rgba, coverage)
			}
		}
	}
}

// blendRGBA composites an opaque color over the canvas pixel at the given
// fractional coverage.
func blendRGBA(img *image.RGBA, x, y int, c color.RGBA, coverage float64) {
	if coverage <= 0 {
		return
	}
	if coverage >= 1 {
		img.SetRGBA(x, y, c)
		return
	}
	dst := img.RGBAAt(x, y)
	mix := func(src, dst uint8) uint8 {
		return uint8(float64(src)*coverage + float64(dst)*(1-coverage) + 0.5)
	}
	img.SetRGBA(x, y, color.RGBA{
		R: mix(c.R, dst.R),
		G: mix(c.G, dst.G),
		B: mix(c.B, dst.B),
		A: 0xFF,
	})
}
