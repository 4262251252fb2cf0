package render

import (
	"image"
	"image/color"
)

// Global render configuration for colors, canvas and glyph geometry.
var (
	// Background and accent per the app icon palette.
	Background = color.RGBA{R: 30, G: 32, B: 35, A: 0xFF}   // dark gray
	Accent     = color.RGBA{R: 80, G: 220, B: 100, A: 0xFF} // sangtae green

	// Chevron vertices; the apex sits on the vertical centerline.
	BottomLeft  = image.Point{X: 200, Y: 650}
	Apex        = image.Point{X: 512, Y: 280}
	BottomRight = image.Point{X: 824, Y: 650}
)

const (
	// Logical canvas size; the icon is square.
	CanvasWidth  = 1024
	CanvasHeight = 1024

	// Stroke thickness in pixels, centered on the path.
	StrokeWidth = 140
)
