package hearts

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposer_FourPointScenario(t *testing.T) {
	p := DefaultParams()
	p.Central.Points = 4

	f, err := NewComposer(1).Compose(p)
	require.NoError(t, err)

	assert.Len(t, f.Central, 10)
	assert.Len(t, f.Hearts, 10)

	up, low, err := p.ranges(p.Small)
	require.NoError(t, err)
	for i, h := range f.Hearts {
		// The first point of a small heart sits at x=-2 of its upper half.
		diff(t, Pt(f.Central[i].X-2*p.Small.Size, f.Central[i].Y), h[0], approx)
		assert.Len(t, h, len(up)+len(low))
	}
}

func TestComposer_CentralPathWithoutAberration(t *testing.T) {
	p := DefaultParams()

	f, err := NewComposer(7).Compose(p)
	require.NoError(t, err)

	up, err := BuildRange(-2, 2, p.Central.Points)
	require.NoError(t, err)
	low, err := BuildRange(2, -2, p.Central.Points)
	require.NoError(t, err)
	o := p.Canvas.Origin()
	want, err := BuildHeartPath(p.Central.Size, o.X, o.Y, up, low)
	require.NoError(t, err)

	diff(t, want, f.Central)
	assert.Len(t, f.Hearts, len(want))
}

func TestComposer_DeterministicWithoutAberration(t *testing.T) {
	p := DefaultParams()

	f1, err := NewComposer(1).Compose(p)
	require.NoError(t, err)
	f2, err := NewComposer(99).Compose(p)
	require.NoError(t, err)

	diff(t, f1.Hearts, f2.Hearts)
	diff(t, f1.Central, f2.Central)
}

func TestComposer_AberrationIsSeeded(t *testing.T) {
	p := DefaultParams()
	p.Aberration = 0.2

	f1, err := NewComposer(42).Compose(p)
	require.NoError(t, err)
	f2, err := NewComposer(42).Compose(p)
	require.NoError(t, err)
	f3, err := NewComposer(43).Compose(p)
	require.NoError(t, err)

	diff(t, f1.Hearts, f2.Hearts)
	assert.NotEqual(t, f1.Central, f3.Central)
}

func TestComposer_AberrationBounds(t *testing.T) {
	p := DefaultParams()
	p.Aberration = 0.3

	ref, err := NewComposer(1).Compose(DefaultParams())
	require.NoError(t, err)
	f, err := NewComposer(5).Compose(p)
	require.NoError(t, err)
	require.Len(t, f.Central, len(ref.Central))

	within := func(v, base float64) bool {
		lo, hi := base*(1-p.Aberration), base*(1+p.Aberration)
		if lo > hi {
			lo, hi = hi, lo
		}
		return v >= lo-1e-9 && v <= hi+1e-9
	}
	for i, pt := range f.Central {
		assert.True(t, within(pt.X, ref.Central[i].X), "x of point %d", i)
		assert.True(t, within(pt.Y, ref.Central[i].Y), "y of point %d", i)
	}
}

func TestComposer_ExactSampling(t *testing.T) {
	p := DefaultParams()
	p.ExactSampling = true
	p.Central.Points = 35

	f, err := NewComposer(1).Compose(p)
	require.NoError(t, err)
	assert.Len(t, f.Central, 2*36)
	assert.InDelta(t, p.Canvas.Origin().X+2*p.Central.Size, f.Central[35].X, 1e-9)
}

func TestComposer_InvalidParams(t *testing.T) {
	p := DefaultParams()
	p.Small.Points = 0

	f, err := NewComposer(1).Compose(p)
	assert.Nil(t, f)
	assert.True(t, errors.Is(err, ErrInvalidParams))
}

func TestComposer_ZeroValue(t *testing.T) {
	var c Composer
	p := DefaultParams()
	p.Aberration = 0.1

	f, err := c.Compose(p)
	require.NoError(t, err)
	assert.Equal(t, len(f.Central), len(f.Hearts))
	assert.Positive(t, f.Len())
}

func TestJitter_ZeroIsIdentity(t *testing.T) {
	path := Path{Pt(1, 2), Pt(-3, 4.5), Pt(math.Pi, 0)}

	// A nil source proves no randomness is consumed.
	out := Jitter(path, 0, nil)
	diff(t, path, out)

	out[0].X = 100
	assert.Equal(t, 1.0, path[0].X)
}

func TestJitter_ScalesAbsoluteCoordinates(t *testing.T) {
	path := Path{Pt(10, 10), Pt(1000, 1000)}
	rnd := rand.New(rand.NewSource(3))

	out := Jitter(path, 0.5, rnd)
	require.Len(t, out, 2)

	// Points further from the canvas origin move further.
	for i, pt := range out {
		assert.InDelta(t, path[i].X, pt.X, path[i].X*0.5+1e-9)
		assert.InDelta(t, path[i].Y, pt.Y, path[i].Y*0.5+1e-9)
	}
}
