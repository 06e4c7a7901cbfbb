package hearts

import (
	"fmt"
	"math"

	"github.com/esimov/hearts/utils"
	"github.com/pkg/errors"
)

// ErrDomain is matched by every *DomainError.
var ErrDomain = errors.New("curve parameter out of domain")

// domainTolerance absorbs the float drift a sampled range accumulates near ±2.
const domainTolerance = 1e-9

// DomainError reports a curve function evaluated outside [-2, 2].
type DomainError struct {
	Fn string
	X  float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: x=%g is outside [-2, 2]", e.Fn, e.X)
}

// Is makes errors.Is(err, ErrDomain) hold for any *DomainError.
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

// UpperOffset returns the vertical offset of the upper lobe of the heart at x.
// The result is scaled by size and flipped, so it is never positive.
func UpperOffset(x, size float64) (float64, error) {
	ax, err := heartAbs("UpperOffset", x)
	if err != nil {
		return 0, err
	}
	d := ax - 1
	r := 1 - d*d
	if r < 0 {
		r = 0
	}
	return math.Sqrt(r) * -size, nil
}

// LowerOffset returns the vertical offset of the lower tip of the heart at x.
func LowerOffset(x, size float64) (float64, error) {
	ax, err := heartAbs("LowerOffset", x)
	if err != nil {
		return 0, err
	}
	return (math.Acos(1-ax) - math.Pi) * -size, nil
}

// heartAbs returns |x| clamped to [0, 2], rejecting values beyond the tolerance.
func heartAbs(fn string, x float64) (float64, error) {
	ax := math.Abs(x)
	if math.IsNaN(ax) || ax > 2+domainTolerance {
		return 0, &DomainError{Fn: fn, X: x}
	}
	return utils.Clamp(ax, 0, 2), nil
}
