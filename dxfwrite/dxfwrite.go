// Package dxfwrite serializes a contour2.Set to a DXF drawing, one
// closed polyline per contour, via github.com/yofu/dxf.
//
// Grounded on original_source/common/src/contour.rs::ContourSet::save_to_dxf:
// set the drawing's units to metric, strip every pre-defined dim style
// (the original's comment notes this as a workaround for a CYPCUT
// access violation reading DXFs with dim styles present), then emit
// one closed polyline entity per contour.
package dxfwrite

import (
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"

	"github.com/T4r4sB/puzzlemesh/contour2"
	"github.com/T4r4sB/puzzlemesh/vec2"
)

// Write renders every part's contours in set to path as one drawing.
func Write(path string, set *contour2.Set) error {
	d := dxf.NewDrawing()
	d.Header().Units = drawing.Metric

	for d.Header().DimStyleTable().Size() > 0 {
		d.Header().DimStyleTable().Remove(0)
	}

	for _, part := range set.Parts {
		for _, c := range part.Contours {
			writePolyline(d, set.Points, c)
		}
	}
	return d.SaveAs(path)
}

func writePolyline(d *dxf.Drawing, pts []vec2.Vec, c contour2.Contour) {
	if len(c.Points) < 2 {
		return
	}
	coords := make([][]float64, len(c.Points))
	for i, pi := range c.Points {
		p := pts[pi]
		coords[i] = []float64{p.X, p.Y, 0}
	}
	d.Polyline(true, coords...)
}
