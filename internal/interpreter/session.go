package interpreter

import (
	"bufio"
	"io"

	"go.uber.org/zap"
)

// Interact executes commands line by line as they are read from r. A line
// that fails to parse is logged and skipped.
func Interact(ctx *Context, name string, r io.Reader) ([]Outcome, error) {
	var outcomes []Outcome
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		script, err := Parse(name, sc.Text())
		if err != nil {
			ctx.Logger.Warn("parse error", zap.Int("line", line), zap.Error(err))
			continue
		}
		for _, cmd := range script.Commands {
			cmd.Pos.Line = line
		}
		outcomes = append(outcomes, script.Exec(ctx)...)
	}
	return outcomes, sc.Err()
}
