package interpreter

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
	"go.uber.org/zap"

	"tabletop/internal/tabletop"
)

// Outcome is the result of one executed command. Err is nil on success.
type Outcome struct {
	Pos     lexer.Position
	Command string
	Report  tabletop.Report
	Err     error
}

// Exec runs every command in order. A rejected command is logged and
// recorded in its Outcome; it never stops the script.
func (s *Script) Exec(ctx *Context) []Outcome {
	outcomes := make([]Outcome, 0, len(s.Commands))
	for _, cmd := range s.Commands {
		outcomes = append(outcomes, cmd.Exec(ctx))
	}
	return outcomes
}

func (c *Command) Exec(ctx *Context) Outcome {
	out := Outcome{Pos: c.Pos, Command: c.String()}
	robot := ctx.Robot

	changed := false
	switch {
	case c.Place != nil:
		f, err := c.Place.facing()
		if err != nil {
			if ctx.Strict {
				out.Report, out.Err = robot.Report(), fmt.Errorf("place: %w", err)
				break
			}
			ctx.Logger.Debug("facing defaulted to NORTH", zap.Error(err))
		}
		out.Report, out.Err = robot.Place(ctx.Grid, c.Place.X, c.Place.Y, f)
		changed = out.Err == nil
	case c.Move:
		out.Report, out.Err = robot.Move()
		changed = out.Err == nil
	case c.Left:
		out.Report, out.Err = robot.Left()
		changed = out.Err == nil
	case c.Right:
		out.Report, out.Err = robot.Right()
		changed = out.Err == nil
	case c.Report:
		out.Report = robot.Report()
		if ctx.Out != nil {
			fmt.Fprintln(ctx.Out, out.Report)
		}
	}

	if out.Err != nil {
		fields := []zap.Field{
			zap.String("command", out.Command),
			zap.String("pos", c.Pos.String()),
			zap.Error(out.Err),
		}
		if kind := tabletop.KindOf(out.Err); kind != 0 {
			fields = append(fields, zap.Stringer("kind", kind))
		}
		ctx.Logger.Warn("command rejected", fields...)
		return out
	}

	ctx.Logger.Debug("command applied",
		zap.String("command", out.Command),
		zap.Stringer("state", out.Report))
	if changed && ctx.Render {
		ctx.Display()
	}
	return out
}

// facing resolves the optional facing word. An unknown word comes back as
// NORTH together with the parse error.
func (p *Place) facing() (tabletop.Facing, error) {
	if p.Facing == nil {
		return tabletop.North, nil
	}
	return tabletop.ParseFacing(*p.Facing)
}
