package tabletop

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownFacing = errors.New("unknown facing")

// Facing is one of the four cardinal directions, in clockwise order.
type Facing int

const (
	North Facing = iota
	East
	South
	West
)

var facingNames = [...]string{"NORTH", "EAST", "SOUTH", "WEST"}

// arrows drawn in the robot's cell
var facingSigns = [...]rune{'↑', '→', '↓', '←'}

func (f Facing) Valid() bool {
	return f >= North && f <= West
}

func (f Facing) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Facing(%d)", int(f))
	}
	return facingNames[f]
}

func (f Facing) Sign() rune {
	if !f.Valid() {
		return '?'
	}
	return facingSigns[f]
}

// Right is the next facing clockwise, Left the next counter-clockwise.
func (f Facing) Right() Facing { return (f + 1) % 4 }
func (f Facing) Left() Facing  { return (f + 3) % 4 }

// Step returns the unit offset of one move in this facing.
func (f Facing) Step() (dx, dy int) {
	switch f {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	}
	return 0, 0
}

// ParseFacing accepts the facing names in any letter case.
func ParseFacing(s string) (Facing, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range facingNames {
		if n == name {
			return Facing(i), nil
		}
	}
	return North, fmt.Errorf("%w: %q", ErrUnknownFacing, s)
}

// Turn is a quarter rotation.
type Turn int

const (
	Left Turn = iota
	Right
)

func (t Turn) String() string {
	if t == Right {
		return "RIGHT"
	}
	return "LEFT"
}
