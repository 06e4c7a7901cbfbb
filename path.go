package hearts

import "fmt"

// Point is a position in canvas units. Y grows downwards.
type Point struct {
	X, Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Path is the outline of one heart. It is implicitly closed: the last point
// connects back to the first when drawn.
type Path []Point

// Bounds returns the smallest axis aligned box holding every point of the path.
func (p Path) Bounds() (min, max Point) {
	if len(p) == 0 {
		return
	}
	min, max = p[0], p[0]
	for _, pt := range p[1:] {
		if pt.X < min.X {
			min.X = pt.X
		}
		if pt.Y < min.Y {
			min.Y = pt.Y
		}
		if pt.X > max.X {
			max.X = pt.X
		}
		if pt.Y > max.Y {
			max.Y = pt.Y
		}
	}
	return
}

// BuildHeartPath traces one heart of the given size around (ox, oy). The upper
// range is walked first, then the lower one, each in its own order.
func BuildHeartPath(size, ox, oy float64, upper, lower Range) (Path, error) {
	path := make(Path, 0, len(upper)+len(lower))

	for _, x := range upper {
		y, err := UpperOffset(x, size)
		if err != nil {
			return nil, err
		}
		// x is scaled here so that both axes share the size factor.
		path = append(path, Point{X: x*size + ox, Y: y + oy})
	}
	for _, x := range lower {
		y, err := LowerOffset(x, size)
		if err != nil {
			return nil, err
		}
		path = append(path, Point{X: x*size + ox, Y: y + oy})
	}
	return path, nil
}
