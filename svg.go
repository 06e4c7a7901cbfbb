package hearts

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/esimov/hearts/utils"
	"github.com/pkg/errors"
)

// DefaultExportName is the file name an export is written to when none is given.
const DefaultExportName = "heart-of-hearts.svg"

// svgPrecision is the number of viewBox units per canvas unit. svgo only
// accepts integer coordinates, so the document is drawn at this resolution
// and mapped back to the canvas size through the viewBox.
const svgPrecision = 100

// SVGExporter records draw calls into an SVG document.
type SVGExporter struct {
	canvas Canvas
	style  Style
	w      *errWriter
	doc    *svg.SVG
	open   bool
}

// NewSVGExporter returns an exporter writing to w.
func NewSVGExporter(w io.Writer, canvas Canvas, style Style) *SVGExporter {
	ew := &errWriter{w: w}
	return &SVGExporter{
		canvas: canvas,
		style:  style,
		w:      ew,
		doc:    svg.New(ew),
	}
}

// Begin writes the document header, the background and opens the stroke group.
func (e *SVGExporter) Begin() error {
	if e.open {
		return errors.New("svg export already started")
	}
	e.open = true

	w, h := int(math.Ceil(e.canvas.Width)), int(math.Ceil(e.canvas.Height))
	vw, vh := svgUnit(e.canvas.Width), svgUnit(e.canvas.Height)
	e.doc.Startview(w, h, 0, 0, vw, vh)
	e.doc.Title("heart-of-hearts")
	e.doc.Rect(0, 0, vw, vh, "fill:"+utils.RGBAToHex(e.style.Background))
	e.doc.Gstyle(fmt.Sprintf("fill:none;stroke:%s;stroke-opacity:%.3f;stroke-width:%d;stroke-linejoin:round",
		utils.RGBAToHex(e.style.Stroke),
		float64(e.style.Stroke.A)/0xff,
		svgUnit(e.style.StrokeWidth),
	))
	return e.w.err
}

// DrawPolygon writes one closed outline.
func (e *SVGExporter) DrawPolygon(p Path) error {
	if !e.open {
		return errors.New("svg export not started")
	}
	if len(p) == 0 {
		return nil
	}
	xs, ys := make([]int, len(p)), make([]int, len(p))
	for i, pt := range p {
		xs[i], ys[i] = svgUnit(pt.X), svgUnit(pt.Y)
	}
	e.doc.Polygon(xs, ys)
	return e.w.err
}

// End closes the stroke group and the document.
func (e *SVGExporter) End() error {
	if !e.open {
		return errors.New("svg export not started")
	}
	e.open = false
	e.doc.Gend()
	e.doc.End()
	return errors.Wrap(e.w.err, "writing svg")
}

func svgUnit(v float64) int {
	return int(math.Round(v * svgPrecision))
}

// errWriter keeps the first write error, since svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(b []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(b)
	ew.err = err
	return n, err
}
