package voxel

import (
	"github.com/T4r4sB/puzzlemesh/label"
	"github.com/T4r4sB/puzzlemesh/tetra"
)

// Layer holds the (Nx+1)*(Ny+1) corner samples of one Z slice, row-major
// by (iy*(Nx+1)+ix). Its cells' edge-vertex slots start unset when the
// layer is built; render3.Run uses each layer first as the nextZ side
// and then as the prevZ side of the following layer pair, so the
// in-plane slots filled in the first step are reused in the second.
type Layer struct {
	g    Grid
	iz   int
	w    int
	Cell []tetra.Cell
}

// NewLayer samples layer iz of g under f.
func NewLayer(f label.Func3, g Grid, iz int) *Layer {
	w := g.Nx + 1
	l := &Layer{g: g, iz: iz, w: w, Cell: make([]tetra.Cell, w*(g.Ny+1))}
	for iy := 0; iy <= g.Ny; iy++ {
		for ix := 0; ix <= g.Nx; ix++ {
			pos := g.Corner(ix, iy, iz)
			lab := label.Background
			if !g.OnBoundary(ix, iy, iz) {
				lab = f.At(pos)
			}
			l.Cell[iy*w+ix] = tetra.NewCell(pos, lab)
		}
	}
	return l
}

// At returns a pointer to the cell at corner (ix,iy) of this layer.
func (l *Layer) At(ix, iy int) *tetra.Cell {
	return &l.Cell[iy*l.w+ix]
}
