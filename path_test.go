package hearts

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath_SinglePointRanges(t *testing.T) {
	path, err := BuildHeartPath(1, 0, 0, Range{0}, Range{0})
	require.NoError(t, err)
	diff(t, Path{Pt(0, 0), Pt(0, math.Pi)}, path)
}

func TestPath_ScaleAndOrigin(t *testing.T) {
	path, err := BuildHeartPath(10, 100, 200, Range{-2, -1, 0, 1, 2}, Range{2, 0, -2})
	require.NoError(t, err)

	want := Path{
		Pt(80, 200), Pt(90, 190), Pt(100, 200), Pt(110, 190), Pt(120, 200),
		Pt(120, 200), Pt(100, 200+10*math.Pi), Pt(80, 200),
	}
	diff(t, want, path, approx)
}

func TestPath_Length(t *testing.T) {
	for _, n := range []int{1, 4, 35, 56} {
		up, err := BuildRange(-2, 2, n)
		require.NoError(t, err)
		low, err := BuildRange(2, -2, n)
		require.NoError(t, err)

		path, err := BuildHeartPath(20, 10, 10, up, low)
		require.NoError(t, err)
		assert.Len(t, path, len(up)+len(low))
	}
}

func TestPath_EmptyRanges(t *testing.T) {
	path, err := BuildHeartPath(20, 10, 10, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestPath_DomainErrorAbortsPath(t *testing.T) {
	path, err := BuildHeartPath(1, 0, 0, Range{0, 3}, Range{0})
	assert.Nil(t, path)
	assert.True(t, errors.Is(err, ErrDomain))

	path, err = BuildHeartPath(1, 0, 0, Range{0}, Range{-4})
	assert.Nil(t, path)
	assert.True(t, errors.Is(err, ErrDomain))
}

func TestPath_Bounds(t *testing.T) {
	path, err := BuildHeartPath(10, 100, 200, Range{-2, -1, 0, 1, 2}, Range{2, 0, -2})
	require.NoError(t, err)

	min, max := path.Bounds()
	diff(t, Pt(80, 190), min, approx)
	diff(t, Pt(120, 200+10*math.Pi), max, approx)

	min, max = Path(nil).Bounds()
	assert.Equal(t, Point{}, min)
	assert.Equal(t, Point{}, max)
}
