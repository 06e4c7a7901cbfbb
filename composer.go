package hearts

import (
	"math/rand"
	"time"
)

// Frame is the geometry of one composition: the jittered central outline and
// one small heart anchored at each of its points.
type Frame struct {
	Params  Params
	Central Path
	Hearts  []Path
}

// Len returns the total number of points in the frame.
func (f *Frame) Len() int {
	n := 0
	for _, h := range f.Hearts {
		n += len(h)
	}
	return n
}

// Composer builds frames. The random source only feeds the aberration step,
// so with a zero aberration every frame is identical for the same Params.
//
// A Composer is not safe for concurrent use.
type Composer struct {
	rnd *rand.Rand
}

// NewComposer returns a composer whose jitter is reproducible for the given seed.
func NewComposer(seed int64) *Composer {
	return &Composer{rnd: rand.New(rand.NewSource(seed))}
}

// Compose validates p and builds a full frame. Nothing is returned on error,
// so a failed frame never yields partial geometry.
func (c *Composer) Compose(p Params) (*Frame, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	centralUpper, centralLower, err := p.ranges(p.Central)
	if err != nil {
		return nil, err
	}
	smallUpper, smallLower, err := p.ranges(p.Small)
	if err != nil {
		return nil, err
	}

	o := p.Canvas.Origin()
	central, err := BuildHeartPath(p.Central.Size, o.X, o.Y, centralUpper, centralLower)
	if err != nil {
		return nil, err
	}
	central = Jitter(central, p.Aberration, c.rand())

	hearts := make([]Path, 0, len(central))
	for _, pt := range central {
		h, err := BuildHeartPath(p.Small.Size, pt.X, pt.Y, smallUpper, smallLower)
		if err != nil {
			return nil, err
		}
		hearts = append(hearts, h)
	}

	return &Frame{
		Params:  p,
		Central: central,
		Hearts:  hearts,
	}, nil
}

func (c *Composer) rand() *rand.Rand {
	if c.rnd == nil {
		c.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return c.rnd
}

// Jitter scales every coordinate of path by an independent factor drawn
// uniformly from [1-aberration, 1+aberration], x before y. The factors apply to
// absolute canvas coordinates, so points far from the canvas origin move more.
//
// A zero aberration returns an unchanged copy without touching rnd.
func Jitter(path Path, aberration float64, rnd *rand.Rand) Path {
	out := make(Path, len(path))
	if aberration == 0 {
		copy(out, path)
		return out
	}
	lo, span := 1-aberration, 2*aberration
	for i, pt := range path {
		fx := lo + rnd.Float64()*span
		fy := lo + rnd.Float64()*span
		out[i] = Point{X: pt.X * fx, Y: pt.Y * fy}
	}
	return out
}
