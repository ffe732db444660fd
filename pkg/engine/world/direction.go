package world

// Direction represents one of the four horizontal wall orientations of a cell
type Direction int

// Direction constants
const (
	Front Direction = iota
	Back
	Left
	Right
)

// AllDirections returns all valid directions in declaration order
func AllDirections() []Direction {
	return []Direction{Front, Back, Left, Right}
}

// CarveOrder returns the neighbour scan order used when carving a grid:
// right, left, front, back. The first unvisited neighbour wins.
func CarveOrder() []Direction {
	return []Direction{Right, Left, Front, Back}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Front:
		return "Front"
	case Back:
		return "Back"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the four wall orientations
func (d Direction) IsValid() bool {
	return d >= Front && d <= Right
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case Front:
		return Back
	case Back:
		return Front
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// Delta returns the x and y grid offsets for this direction.
// Front faces +y, Right faces +x.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Front:
		return 0, 1
	case Back:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Yaw returns the rotation in degrees around the vertical axis of a wall
// facing this direction. Front/Back walls run along x, Left/Right along z.
func (d Direction) Yaw() float64 {
	switch d {
	case Left, Right:
		return 90
	default:
		return 0
	}
}
