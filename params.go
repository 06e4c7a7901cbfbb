package hearts

import (
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidParams is returned by Params.Validate.
var ErrInvalidParams = errors.New("invalid parameters")

// Units per inch of the logical canvas.
const dpi = 96

// MaxAberration is the largest accepted jitter factor.
const MaxAberration = 0.5

// DefaultCanvas is a 5.5"x8.5" sheet at 96 units per inch.
var DefaultCanvas = Canvas{Width: 5.5 * dpi, Height: 8.5 * dpi}

// Canvas is the logical drawing surface, in canvas units.
type Canvas struct {
	Width, Height float64
}

// Origin returns the anchor of the central heart: horizontally centered and at
// 1/3.5 of the height from the top.
func (c Canvas) Origin() Point {
	return Point{X: c.Width / 2, Y: c.Height / 3.5}
}

// HeartParameters describes one heart family member. Points is the sample
// count passed to the range builder for each half of the outline.
type HeartParameters struct {
	Size   float64
	Points int
}

// Params is the immutable snapshot a frame is composed from.
type Params struct {
	Central    HeartParameters
	Small      HeartParameters
	Aberration float64
	Canvas     Canvas

	// ExactSampling switches the ranges from the accumulating sampler to
	// BuildRangeExact.
	ExactSampling bool
}

// DefaultParams returns the parameters the tool starts with.
func DefaultParams() Params {
	return Params{
		Central: HeartParameters{Size: 150, Points: 35},
		Small:   HeartParameters{Size: 20, Points: 56},
		Canvas:  DefaultCanvas,
	}
}

// Validate checks every field of the snapshot.
func (p Params) Validate() error {
	if err := p.Central.validate("central"); err != nil {
		return err
	}
	if err := p.Small.validate("small"); err != nil {
		return err
	}
	if math.IsNaN(p.Aberration) || p.Aberration < 0 || p.Aberration > MaxAberration {
		return errors.Wrapf(ErrInvalidParams, "aberration must be within [0, %g], got %g", MaxAberration, p.Aberration)
	}
	if !(p.Canvas.Width > 0) || !(p.Canvas.Height > 0) ||
		math.IsInf(p.Canvas.Width, 0) || math.IsInf(p.Canvas.Height, 0) {
		return errors.Wrapf(ErrInvalidParams, "canvas must have a finite positive size, got %gx%g", p.Canvas.Width, p.Canvas.Height)
	}
	return nil
}

func (h HeartParameters) validate(name string) error {
	if !(h.Size > 0) || math.IsInf(h.Size, 0) {
		return errors.Wrapf(ErrInvalidParams, "%s heart size must be positive, got %g", name, h.Size)
	}
	if h.Points <= 0 {
		return errors.Wrapf(ErrInvalidParams, "%s heart point count must be positive, got %d", name, h.Points)
	}
	return nil
}

func (p Params) ranges(h HeartParameters) (upper, lower Range, err error) {
	build := BuildRange
	if p.ExactSampling {
		build = BuildRangeExact
	}
	if upper, err = build(-2, 2, h.Points); err != nil {
		return nil, nil, err
	}
	if lower, err = build(2, -2, h.Points); err != nil {
		return nil, nil, err
	}
	return upper, lower, nil
}
