package hearts

import (
	"image/color"

	"github.com/esimov/hearts/utils"
)

// Renderer draws closed, unfilled polygon outlines.
type Renderer interface {
	DrawPolygon(Path) error
}

// Exporter is a Renderer whose output is bracketed by Begin and End. One
// Begin/End pair records exactly one frame.
type Exporter interface {
	Renderer
	Begin() error
	End() error
}

// Style holds the stroke settings shared by every renderer.
type Style struct {
	StrokeWidth float64
	Stroke      color.NRGBA
	Background  color.NRGBA
}

// DefaultStyle is a 3 unit black stroke on white.
func DefaultStyle() Style {
	return Style{
		StrokeWidth: 3,
		Stroke:      color.NRGBA{A: 0xff},
		Background:  color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}

// ParseStyle builds a style from hex colors such as "#000" or "ff0000".
func ParseStyle(width float64, stroke, bg string) Style {
	s := DefaultStyle()
	if width > 0 {
		s.StrokeWidth = width
	}
	if stroke != "" {
		s.Stroke = utils.HexToRGBA(stroke)
	}
	if bg != "" {
		s.Background = utils.HexToRGBA(bg)
	}
	return s
}

// Draw hands every small heart of the frame to r, in order.
func Draw(f *Frame, r Renderer) error {
	for _, h := range f.Hearts {
		if err := r.DrawPolygon(h); err != nil {
			return err
		}
	}
	return nil
}

// Record draws the frame into e between a Begin and an End call.
func Record(f *Frame, e Exporter) error {
	if err := e.Begin(); err != nil {
		return err
	}
	if err := Draw(f, e); err != nil {
		return err
	}
	return e.End()
}

// MultiRenderer duplicates every draw call to all of its renderers.
type MultiRenderer []Renderer

// DrawPolygon implements Renderer.
func (m MultiRenderer) DrawPolygon(p Path) error {
	for _, r := range m {
		if err := r.DrawPolygon(p); err != nil {
			return err
		}
	}
	return nil
}
