package game

// Position is a grid cell, 0-indexed, row in [0, height), col in [0, width).
type Position struct {
	Row, Col int
}

// Direction represents the snake's heading as a (row, col) unit vector.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Vector returns the (row, col) delta for one step in this direction.
func (d Direction) Vector() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the 180-degree reversal of this direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Step returns the position one cell away in the given direction.
func (p Position) Step(d Direction) Position {
	dr, dc := d.Vector()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}
