package interpreter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"tabletop/internal/tabletop"
)

var (
	tableStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	robotStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A"))
	emptyStyle = lipgloss.NewStyle().Faint(true)
)

// Render draws the table with its highest row on top. The robot's cell
// shows an arrow for its facing.
func Render(g *tabletop.Grid, rep tabletop.Report) string {
	minX, maxX, minY, maxY := g.Bounds()
	var b strings.Builder
	for y := maxY; y >= minY; y-- {
		if y != maxY {
			b.WriteByte('\n')
		}
		for x := minX; x <= maxX; x++ {
			if x != minX {
				b.WriteByte(' ')
			}
			if rep.Placed && rep.X == x && rep.Y == y {
				b.WriteString(robotStyle.Render(string(rep.Facing.Sign())))
			} else {
				b.WriteString(emptyStyle.Render("."))
			}
		}
	}
	return tableStyle.Render(b.String())
}

// Display shows the table with the robot on ctx.Out.
func (ctx *Context) Display() {
	if ctx.Out == nil {
		return
	}
	rep := ctx.Robot.Report()
	fmt.Fprintln(ctx.Out, Render(ctx.Grid, rep))
	fmt.Fprintln(ctx.Out, rep)
	if ctx.Delay > 0 {
		time.Sleep(ctx.Delay)
	}
}
