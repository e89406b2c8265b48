package gfx

// Side is the direction a Triangle or Arrow points to.
type Side uint8

const (
	North Side = iota + 1
	South
	West
	East
)

func (s Side) String() string {
	switch s {
	case North:
		return "north"
	case South:
		return "south"
	case West:
		return "west"
	case East:
		return "east"
	default:
		return "none"
	}
}

// Valid reports whether s is one of the four directions. Other values make
// directional primitives draw nothing.
func (s Side) Valid() bool { return s >= North && s <= East }

type point struct{ x, y int }

// triangleVertices returns the tip followed by the two base corners.
func triangleVertices(x, y, width, height int, side Side) (tip, a, b point, ok bool) {
	hw, hh := width/2, height/2
	switch side {
	case North:
		return point{x, y - hh}, point{x - hw, y + hh}, point{x + hw, y + hh}, true
	case South:
		return point{x, y + hh}, point{x - hw, y - hh}, point{x + hw, y - hh}, true
	case West:
		return point{x - hw, y}, point{x + hw, y - hh}, point{x + hw, y + hh}, true
	case East:
		return point{x + hw, y}, point{x - hw, y + hh}, point{x - hw, y - hh}, true
	}
	return point{}, point{}, point{}, false
}

// arrowShape holds the seven outline points of an arrow: the tip, the two
// barb ends and the four shaft corners (s1, s2 at the head, s3, s4 at the
// tail).
type arrowShape struct {
	tip, barb1, barb2 point
	s1, s2, s3, s4    point
}

// arrowVertices lays out an arrow inside width x height centred on (x, y).
// For North and South the box is taken sideways, so height spans the
// arrow's breadth and width its length.
func arrowVertices(x, y, width, height int, side Side) (arrowShape, bool) {
	var a arrowShape
	switch side {
	case North:
		lw, lh := height, width
		a.tip = point{x, y - lh/2}
		a.barb1 = point{x - lw/2, y - lh/6}
		a.barb2 = point{x + lw/2, y - lh/6}
		a.s1 = point{x - lw/4, y - lh/6}
		a.s2 = point{x + lw/4, y - lh/6}
		a.s3 = point{a.s1.x, y + lh/2}
		a.s4 = point{a.s2.x, y + lh/2}
	case South:
		lw, lh := height, width
		a.tip = point{x, y + lh/2}
		a.barb1 = point{x + lw/2, y + lh/6}
		a.barb2 = point{x - lw/2, y + lh/6}
		a.s1 = point{x + lw/4, y + lh/6}
		a.s2 = point{x - lw/4, y + lh/6}
		a.s3 = point{a.s1.x, y - lh/2}
		a.s4 = point{a.s2.x, y - lh/2}
	case West:
		lw, lh := width, height
		a.tip = point{x - lw/2, y}
		a.barb1 = point{x - lw/6, y + lh/2}
		a.barb2 = point{x - lw/6, y - lh/2}
		a.s1 = point{x - lw/6, y + lh/4}
		a.s2 = point{a.s1.x, y - lh/4}
		a.s3 = point{x + lw/2, a.s1.y}
		a.s4 = point{a.s3.x, a.s2.y}
	case East:
		lw, lh := width, height
		a.tip = point{x + lw/2, y}
		a.barb1 = point{x + lw/6, y - lh/2}
		a.barb2 = point{x + lw/6, y + lh/2}
		a.s1 = point{x + lw/6, y - lh/4}
		a.s2 = point{a.s1.x, y + lh/4}
		a.s3 = point{x - lw/2, a.s1.y}
		a.s4 = point{a.s3.x, a.s2.y}
	default:
		return a, false
	}
	return a, true
}
