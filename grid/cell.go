package grid

import "fmt"

// Cell addresses one grid position. (0,0) is the bottom-left corner.
type Cell struct {
	X, Y int
}

// Move returns the cell n steps from c in direction d.
func (c Cell) Move(d Direction, n int) Cell {
	return Cell{X: c.X + d.DX()*n, Y: c.Y + d.DY()*n}
}

// Next returns the adjacent cell in direction d.
func (c Cell) Next(d Direction) Cell {
	return c.Move(d, 1)
}

// In reports whether the cell lies inside an n×n grid.
func (c Cell) In(n int) bool {
	return c.X >= 0 && c.X < n && c.Y >= 0 && c.Y < n
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
