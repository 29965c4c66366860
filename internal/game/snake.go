package game

// Snake owns the ordered body-segment sequence and facing direction.
// The head is always body[0] and insertion order is physical body order
// from head to tail. While alive all positions are distinct.
type Snake struct {
	body          []Position
	direction     Direction
	pendingGrowth bool
	bodyLength    int // Logical length including pending growth
}

// NewSnake creates a length-1 snake at the given position, heading right.
func NewSnake(start Position) *Snake {
	return &Snake{
		body:       []Position{start},
		direction:  DirRight,
		bodyLength: 1,
	}
}

// Head returns the position at index 0.
func (s *Snake) Head() Position {
	return s.body[0]
}

// Body returns the body segments, head first. The slice is shared; callers
// that keep it across ticks must copy.
func (s *Snake) Body() []Position {
	return s.body
}

// Len returns the number of physical body segments, head included.
func (s *Snake) Len() int {
	return len(s.body)
}

// BodyLength returns the logical length including growth that has not yet
// appeared on the grid.
func (s *Snake) BodyLength() int {
	return s.bodyLength
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Move advances the head one cell in the current direction. If growth is
// pending the tail stays put and the flag is cleared, otherwise the tail
// retracts. No bounds checking happens here: an out-of-grid head is a valid
// intermediate state detected by the caller.
func (s *Snake) Move() {
	newHead := s.Head().Step(s.direction)
	s.body = append([]Position{newHead}, s.body...)

	if s.pendingGrowth {
		s.pendingGrowth = false
	} else {
		s.body = s.body[:len(s.body)-1]
	}
}

// Grow defers lengthening to the next Move call: the new segment appears
// when the head advances without the tail retracting.
func (s *Snake) Grow() {
	s.pendingGrowth = true
	s.bodyLength++
}

// ChangeDirection updates the heading unless the new direction is the exact
// opposite of the current one. Reversals are rejected silently: rapid key
// presses should never cause an instant neck collision.
func (s *Snake) ChangeDirection(d Direction) {
	if d == s.direction.Opposite() {
		return
	}
	s.direction = d
}

// CollidesWithSelf reports whether the head overlaps any other segment.
func (s *Snake) CollidesWithSelf() bool {
	head := s.Head()
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// CollidesWithWall reports whether the head is outside the grid.
func (s *Snake) CollidesWithWall(width, height int) bool {
	head := s.Head()
	return head.Row < 0 || head.Row >= height || head.Col < 0 || head.Col >= width
}

// Occupies reports whether any body segment is at the given position.
func (s *Snake) Occupies(p Position) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}
