package interpreter

import (
	"io"
	"time"

	"go.uber.org/zap"

	"tabletop/internal/tabletop"
)

// Context stores the robot, the table it runs on and where output goes

type Context struct {
	Robot  *tabletop.Robot
	Grid   *tabletop.Grid
	Out    io.Writer
	Logger *zap.Logger

	// Strict rejects PLACE commands with an unknown facing instead of
	// falling back to NORTH.
	Strict bool
	// Render draws the table after every state change.
	Render bool
	Delay  time.Duration
}

func NewContext(grid *tabletop.Grid, out io.Writer, logger *zap.Logger) *Context {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Context{
		Robot:  tabletop.NewRobot(),
		Grid:   grid,
		Out:    out,
		Logger: logger,
	}
}
