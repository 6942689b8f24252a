package rules

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Direction is a unit step on the grid. Exactly one of DX and DY is nonzero.
type Direction struct {
	DX int
	DY int
}

// The four directions a snake can travel in.
var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Directions lists every valid direction in a stable order.
var Directions = []Direction{Up, Down, Left, Right}

// Valid reports whether d is one of the four unit directions.
func (d Direction) Valid() bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

// Opposite reports whether other points exactly against d.
func (d Direction) Opposite(other Direction) bool {
	return d.DX+other.DX == 0 && d.DY+other.DY == 0
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d, %d)", d.DX, d.DY)
}

// ParseDirection converts "up", "down", "left" or "right" into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Direction{}, errors.Errorf("rules: unknown direction %q", s)
}
