package rules

// InitialLength is the number of segments a new snake starts with.
const InitialLength = 3

// Snake is the player's snake. The head is Body[0]. Direction changes are
// queued in pending and only take effect on the next Advance so that a burst
// of input between two ticks can never turn the snake back into its neck.
type Snake struct {
	body          []Cell
	current       Direction
	pending       Direction
	growthPending bool
}

// NewSnake places a snake of InitialLength segments in a horizontal line a
// quarter of the way across the grid, vertically centered, heading right.
// The head is moved right when needed so the tail stays on the board.
func NewSnake(grid Grid) *Snake {
	start := Cell{X: grid.Cols / 4, Y: grid.Rows / 2}
	if start.X < InitialLength-1 {
		start.X = InitialLength - 1
	}
	body := make([]Cell, 0, InitialLength)
	for i := 0; i < InitialLength; i++ {
		body = append(body, Cell{X: start.X - i, Y: start.Y})
	}
	return &Snake{
		body:    body,
		current: Right,
		pending: Right,
	}
}

// NewSnakeFromBody builds a snake from an explicit body, head first, with
// the given direction as both current and pending.
func NewSnakeFromBody(dir Direction, body ...Cell) *Snake {
	b := make([]Cell, len(body))
	copy(b, body)
	return &Snake{body: b, current: dir, pending: dir}
}

// SetDirection queues d for the next Advance. A reversal of the direction
// applied on the last Advance, or a non-unit direction, is ignored. The
// return value reports whether d was queued.
func (s *Snake) SetDirection(d Direction) bool {
	if !d.Valid() || s.current.Opposite(d) {
		return false
	}
	s.pending = d
	return true
}

// Advance applies the queued direction and moves the snake one cell. The
// tail is dropped unless growth was marked since the last Advance.
func (s *Snake) Advance() {
	s.current = s.pending
	head := s.Head().Add(s.current)
	s.body = append([]Cell{head}, s.body...)
	if s.growthPending {
		s.growthPending = false
		return
	}
	s.body = s.body[:len(s.body)-1]
}

// MarkGrowth makes the next Advance keep the tail.
func (s *Snake) MarkGrowth() { s.growthPending = true }

// GrowthPending reports whether the next Advance will grow the snake.
func (s *Snake) GrowthPending() bool { return s.growthPending }

// CollidesWithWalls reports whether the head has left the grid.
func (s *Snake) CollidesWithWalls(grid Grid) bool {
	return !grid.Contains(s.Head())
}

// CollidesWithSelf reports whether the head shares a cell with any other
// segment.
func (s *Snake) CollidesWithSelf() bool {
	head := s.Head()
	for _, b := range s.body[1:] {
		if head.Equal(b) {
			return true
		}
	}
	return false
}

// IsEatingFood reports whether the head is on the food cell.
func (s *Snake) IsEatingFood(food Cell) bool {
	return s.Head().Equal(food)
}

// Head returns the first cell in the body
func (s *Snake) Head() Cell { return s.body[0] }

// tail returns the last cell in the body
func (s *Snake) tail() Cell { return s.body[len(s.body)-1] }

// Len is the number of segments.
func (s *Snake) Len() int { return len(s.body) }

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []Cell {
	b := make([]Cell, len(s.body))
	copy(b, s.body)
	return b
}

// Direction is the direction applied on the last Advance.
func (s *Snake) Direction() Direction { return s.current }

// PendingDirection is the direction the next Advance will apply.
func (s *Snake) PendingDirection() Direction { return s.pending }

// Occupies reports whether any segment is on c.
func (s *Snake) Occupies(c Cell) bool {
	for _, b := range s.body {
		if b.Equal(c) {
			return true
		}
	}
	return false
}
