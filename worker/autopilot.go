package worker

import (
	"github.com/snakearcade/engine/controller"
	"github.com/snakearcade/engine/rules"
)

// Autopilot steers toward the food along the axis with the larger gap and
// avoids any move that would hit a wall or the body on the next tick. When
// every move is fatal it keeps the current heading.
func Autopilot(snap controller.Snapshot) (rules.Direction, bool) {
	if len(snap.Snake) == 0 {
		return rules.Direction{}, false
	}
	head := snap.Snake[0]
	body := rules.NewSnakeFromBody(snap.Direction, snap.Snake...)
	for _, d := range preferred(head, snap.Food.Position, snap.Direction) {
		if d.Opposite(snap.Direction) {
			continue
		}
		if safe(snap.Grid, body, head.Add(d)) {
			return d, true
		}
	}
	return snap.Direction, false
}

func preferred(head, food rules.Cell, current rules.Direction) []rules.Direction {
	dx, dy := food.X-head.X, food.Y-head.Y
	var horizontal, vertical rules.Direction
	if dx < 0 {
		horizontal = rules.Left
	} else {
		horizontal = rules.Right
	}
	if dy < 0 {
		vertical = rules.Up
	} else {
		vertical = rules.Down
	}

	order := make([]rules.Direction, 0, 6)
	if abs(dx) >= abs(dy) {
		order = append(order, horizontal, vertical)
	} else {
		order = append(order, vertical, horizontal)
	}
	order = append(order, current)
	return append(order, rules.Directions...)
}

// safe reports whether the head can move into c. The tail cell is treated
// as occupied since growth may keep it in place.
func safe(grid rules.Grid, body *rules.Snake, c rules.Cell) bool {
	return grid.Contains(c) && !body.Occupies(c)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
