package tabletop

import (
	"errors"
	"fmt"
)

var ErrInvalidBounds = errors.New("invalid grid bounds")

// Grid is the fixed rectangle of cells the robot may occupy.
// Bounds are inclusive and never change after construction.
type Grid struct {
	minX, maxX int
	minY, maxY int
}

// NewGrid builds a width x height grid with its low corner at (0,0).
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidBounds, width, height)
	}
	return &Grid{minX: 0, maxX: width - 1, minY: 0, maxY: height - 1}, nil
}

func NewBoundedGrid(minX, maxX, minY, maxY int) (*Grid, error) {
	if minX > maxX || minY > maxY {
		return nil, fmt.Errorf("%w: x %d..%d, y %d..%d", ErrInvalidBounds, minX, maxX, minY, maxY)
	}
	return &Grid{minX: minX, maxX: maxX, minY: minY, maxY: maxY}, nil
}

func (g *Grid) Contains(x, y int) bool {
	return x >= g.minX && x <= g.maxX && y >= g.minY && y <= g.maxY
}

func (g *Grid) Bounds() (minX, maxX, minY, maxY int) {
	return g.minX, g.maxX, g.minY, g.maxY
}

func (g *Grid) Width() int  { return g.maxX - g.minX + 1 }
func (g *Grid) Height() int { return g.maxY - g.minY + 1 }

func (g *Grid) String() string {
	return fmt.Sprintf("%dx%d grid (%d,%d)-(%d,%d)", g.Width(), g.Height(), g.minX, g.minY, g.maxX, g.maxY)
}
