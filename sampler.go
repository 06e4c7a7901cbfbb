package hearts

import (
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidRange is returned when a range cannot be sampled, either because
// its bounds coincide or because the requested point count is not positive.
var ErrInvalidRange = errors.New("invalid range")

// Range is an ordered sequence of curve parameters.
type Range []float64

// BuildRange samples the interval between start and end. The step is derived from
// |start|+|end| divided by steps, and the walk stops at the first value past end,
// so the result usually holds steps+1 values but may be one shorter when the
// accumulated step drifts past the bound.
//
// The direction is inferred from the bounds: a start greater than end produces a
// descending sequence.
func BuildRange(start, end float64, steps int) (Range, error) {
	step, err := rangeStep(start, end, steps)
	if err != nil {
		return nil, err
	}

	seq := make(Range, 0, steps+1)
	if start > end {
		for v := start; v >= end; v -= step {
			seq = append(seq, v)
		}
	} else {
		for v := start; v <= end; v += step {
			seq = append(seq, v)
		}
	}
	return seq, nil
}

// BuildRangeExact is like BuildRange but always returns exactly steps+1 values.
// Each value is computed from its index rather than by accumulation and the
// last one is pinned to end.
func BuildRangeExact(start, end float64, steps int) (Range, error) {
	step, err := rangeStep(start, end, steps)
	if err != nil {
		return nil, err
	}
	if start > end {
		step = -step
	}

	seq := make(Range, steps+1)
	for i := range seq {
		seq[i] = start + float64(i)*step
	}
	// With |start|+|end| as the span the last sample only lands on end when the
	// bounds straddle zero. Pin it only in that case.
	if start*end <= 0 {
		seq[steps] = end
	}
	return seq, nil
}

func rangeStep(start, end float64, steps int) (float64, error) {
	if start == end {
		return 0, errors.Wrapf(ErrInvalidRange, "start and end are both %g", start)
	}
	if steps <= 0 {
		return 0, errors.Wrapf(ErrInvalidRange, "point count must be positive, got %d", steps)
	}
	if math.IsNaN(start) || math.IsNaN(end) || math.IsInf(start, 0) || math.IsInf(end, 0) {
		return 0, errors.Wrapf(ErrInvalidRange, "bounds must be finite, got [%g, %g]", start, end)
	}
	return (math.Abs(start) + math.Abs(end)) / float64(steps), nil
}
