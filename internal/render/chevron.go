package render

import "image"

// ChevronGlyph is the upward "chevron.up" motif: two thick legs meeting at
// an apex on the centerline, stroked in the accent color.
type ChevronGlyph struct{}

func (ChevronGlyph) Draw(d Drawer) {
	d.StrokePolyline([]image.Point{BottomLeft, Apex, BottomRight}, StrokeWidth, Accent)

	// The stroker already rounds every cap and join; the discs overpaint the
	// same color so the silhouette survives a stroke backend whose cap or
	// join semantics differ.
	for _, vertex := range []image.Point{BottomLeft, Apex, BottomRight} {
		d.FillDisc(vertex, StrokeWidth/2, Accent)
	}
}
