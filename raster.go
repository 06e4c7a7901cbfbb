package hearts

import (
	"image"
	"image/draw"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"github.com/esimov/hearts/utils"
	"github.com/pkg/errors"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
)

// RasterRenderer strokes polygon outlines into a bitmap.
type RasterRenderer struct {
	style Style
	aff   f64.Aff3
	w, h  int
	ras   *vector.Rasterizer
}

// NewRasterRenderer returns a renderer producing an image of the canvas size
// multiplied by scale. A non positive scale is treated as 1.
func NewRasterRenderer(canvas Canvas, style Style, scale float64) *RasterRenderer {
	if scale <= 0 {
		scale = 1
	}
	w := utils.Max(1, int(math.Ceil(canvas.Width*scale)))
	h := utils.Max(1, int(math.Ceil(canvas.Height*scale)))

	return &RasterRenderer{
		style: style,
		aff:   f64.Aff3{scale, 0, 0, 0, scale, 0},
		w:     w,
		h:     h,
		ras:   vector.NewRasterizer(w, h),
	}
}

// Size returns the output image dimensions in pixels.
func (r *RasterRenderer) Size() image.Point {
	return image.Pt(r.w, r.h)
}

// DrawPolygon implements Renderer. Each edge, including the closing one, is
// stroked as a square capped quad so that neighbouring edges overlap at the joins.
func (r *RasterRenderer) DrawPolygon(p Path) error {
	if len(p) < 2 {
		return nil
	}
	hw := r.style.StrokeWidth * r.aff[0] / 2
	for i := range p {
		a, b := r.transform(p[i]), r.transform(p[(i+1)%len(p)])
		r.strokeSegment(a, b, hw)
	}
	return nil
}

func (r *RasterRenderer) strokeSegment(a, b Point, hw float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 || math.IsNaN(l) {
		return
	}
	// Unit direction and its normal, both scaled to the half width.
	ux, uy := dx/l*hw, dy/l*hw
	nx, ny := -uy, ux

	r.ras.MoveTo(float32(a.X-ux+nx), float32(a.Y-uy+ny))
	r.ras.LineTo(float32(b.X+ux+nx), float32(b.Y+uy+ny))
	r.ras.LineTo(float32(b.X+ux-nx), float32(b.Y+uy-ny))
	r.ras.LineTo(float32(a.X-ux-nx), float32(a.Y-uy-ny))
	r.ras.ClosePath()
}

func (r *RasterRenderer) transform(p Point) Point {
	return Point{
		X: r.aff[0]*p.X + r.aff[1]*p.Y + r.aff[2],
		Y: r.aff[3]*p.X + r.aff[4]*p.Y + r.aff[5],
	}
}

// Image composites the accumulated strokes over the background.
func (r *RasterRenderer) Image() *image.NRGBA {
	dst := imaging.New(r.w, r.h, r.style.Background)
	r.ras.DrawOp = draw.Over
	r.ras.Draw(dst, dst.Bounds(), image.NewUniform(r.style.Stroke), image.Point{})
	return dst
}

// Encode writes the image in the given format.
func (r *RasterRenderer) Encode(w io.Writer, format imaging.Format) error {
	if err := imaging.Encode(w, r.Image(), format, imaging.JPEGQuality(100)); err != nil {
		return errors.Wrap(err, "encoding image")
	}
	return nil
}
