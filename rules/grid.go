package rules

import (
	"fmt"

	"github.com/pkg/errors"
)

// DefaultCellSize is the edge length of a grid cell in canvas units.
const DefaultCellSize = 20

// MinCanvasSize is the smallest square canvas CanvasSize will return.
const MinCanvasSize = 200

// ErrInvalidGrid is returned when a grid has a non-positive dimension.
var ErrInvalidGrid = errors.New("rules: invalid grid")

// Cell is a 0-indexed grid coordinate.
type Cell struct {
	X int
	Y int
}

// Add returns the cell one step away in direction d.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Equal checks if 2 cells are the same x,y coordinate
func (c Cell) Equal(other Cell) bool {
	return c.X == other.X && c.Y == other.Y
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Grid maps a canvas onto columns and rows of square cells.
type Grid struct {
	Cols     int
	Rows     int
	CellSize int
}

// ComputeGrid divides a canvas of the given pixel dimensions into cells,
// dropping any partial cell at the right and bottom edges.
func ComputeGrid(pixelWidth, pixelHeight, cellSize int) Grid {
	if cellSize <= 0 {
		return Grid{CellSize: cellSize}
	}
	return Grid{
		Cols:     pixelWidth / cellSize,
		Rows:     pixelHeight / cellSize,
		CellSize: cellSize,
	}
}

// CanvasSize picks a square canvas that fits in width x height, snapped down
// to a whole number of default cells and never smaller than MinCanvasSize.
func CanvasSize(width, height int) int {
	size := width
	if height < size {
		size = height
	}
	size = (size / DefaultCellSize) * DefaultCellSize
	if size < MinCanvasSize {
		size = MinCanvasSize
	}
	return size
}

// Validate fails when any grid dimension is not positive or the board is
// too narrow to hold a new snake.
func (g Grid) Validate() error {
	if g.Cols < InitialLength || g.Rows <= 0 || g.CellSize <= 0 {
		return errors.Wrapf(ErrInvalidGrid, "%dx%d cells of size %d", g.Cols, g.Rows, g.CellSize)
	}
	return nil
}

// Contains reports whether c lies inside [0,Cols) x [0,Rows).
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Cols && c.Y >= 0 && c.Y < g.Rows
}

// Cells is the number of cells on the board.
func (g Grid) Cells() int {
	return g.Cols * g.Rows
}
