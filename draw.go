package hearts

import (
	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

// gioRenderer draws polygon outlines into a Gio operation list.
type gioRenderer struct {
	ops   *op.Ops
	style Style
}

// DrawPolygon strokes the closed outline of p with the renderer's style.
func (r *gioRenderer) DrawPolygon(p Path) error {
	if len(p) < 2 {
		return nil
	}

	var path clip.Path
	path.Begin(r.ops)
	path.MoveTo(r.point(p[0]))
	for _, pt := range p[1:] {
		path.LineTo(r.point(pt))
	}
	path.Close()

	paint.FillShape(r.ops, r.style.Stroke, clip.Stroke{
		Path:  path.End(),
		Width: float32(r.style.StrokeWidth),
	}.Op())
	return nil
}

// point converts a canvas point to a Gio f32.Point.
func (r *gioRenderer) point(p Point) f32.Point {
	return f32.Point{
		X: float32(p.X),
		Y: float32(p.Y),
	}
}
