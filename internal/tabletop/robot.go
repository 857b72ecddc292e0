package tabletop

import "fmt"

const (
	opPlace  = "place"
	opRotate = "rotate"
	opMove   = "move"
)

const NotPlacedText = "robot is not placed"

// Bounds is the bounds authority a robot validates its position against.
type Bounds interface {
	Contains(x, y int) bool
}

// Robot is either unplaced, or placed at a cell of the grid it was last
// successfully placed on. It is not safe for concurrent use.
type Robot struct {
	placed bool
	x, y   int
	facing Facing
	grid   Bounds
}

func NewRobot() *Robot {
	return &Robot{}
}

// Report is a read-only snapshot of the robot's state.
type Report struct {
	Placed bool
	X, Y   int
	Facing Facing
}

func (r Report) String() string {
	if !r.Placed {
		return NotPlacedText
	}
	return fmt.Sprintf("%d,%d,%s", r.X, r.Y, r.Facing)
}

// Place puts the robot on grid at (x,y). A facing outside the four
// directions is taken as North. On failure the previous state is kept.
func (r *Robot) Place(grid Bounds, x, y int, f Facing) (Report, error) {
	return r.place(opPlace, grid, x, y, f)
}

func (r *Robot) place(op string, grid Bounds, x, y int, f Facing) (Report, error) {
	if !f.Valid() {
		f = North
	}
	if grid == nil || !grid.Contains(x, y) {
		return r.Report(), &CommandError{Op: op, Kind: OutOfBounds, X: x, Y: y}
	}
	r.placed = true
	r.x, r.y = x, y
	r.facing = f
	r.grid = grid
	return r.Report(), nil
}

func (r *Robot) Rotate(t Turn) (Report, error) {
	if !r.placed {
		return r.Report(), &CommandError{Op: opRotate, Kind: NotPlaced}
	}
	f := r.facing.Left()
	if t == Right {
		f = r.facing.Right()
	}
	return r.place(opRotate, r.grid, r.x, r.y, f)
}

func (r *Robot) Left() (Report, error)  { return r.Rotate(Left) }
func (r *Robot) Right() (Report, error) { return r.Rotate(Right) }

// Move steps one cell forward. A step off the grid is rejected and the
// robot stays where it was.
func (r *Robot) Move() (Report, error) {
	if !r.placed {
		return r.Report(), &CommandError{Op: opMove, Kind: NotPlaced}
	}
	dx, dy := r.facing.Step()
	return r.place(opMove, r.grid, r.x+dx, r.y+dy, r.facing)
}

func (r *Robot) Report() Report {
	if !r.placed {
		return Report{}
	}
	return Report{Placed: true, X: r.x, Y: r.y, Facing: r.facing}
}

func (r *Robot) Placed() bool {
	return r.placed
}

func (r *Robot) String() string {
	return r.Report().String()
}
