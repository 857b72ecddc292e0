package interpreter

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Script is a sequence of robot commands, e.g.
//
//	PLACE 1,2,NORTH
//	MOVE
//	LEFT
//	REPORT
type Script struct {
	Commands []*Command `parser:"( @@ ';'? )*"`
}

type Command struct {
	Pos lexer.Position

	Place  *Place `parser:"  @@"`
	Move   bool   `parser:"| @'MOVE'"`
	Left   bool   `parser:"| @'LEFT'"`
	Right  bool   `parser:"| @'RIGHT'"`
	Report bool   `parser:"| @'REPORT'"`
}

type Place struct {
	X      int     `parser:"'PLACE' @Int"`
	Y      int     `parser:"','? @Int"`
	Facing *string `parser:"( ','? @Ident )?"`
}

// Keywords get their own token so a facing word can never swallow the
// next command.
var commandLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `(?:#|//)[^\n]*`},
	{Name: "Keyword", Pattern: `(?i)\b(?:PLACE|MOVE|LEFT|RIGHT|REPORT)\b`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "Punct", Pattern: `[,;]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[Script](
	participle.Lexer(commandLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.CaseInsensitive("Keyword"),
)

func Parse(name, data string) (*Script, error) {
	return parser.ParseString(name, data)
}

func ParseReader(name string, r io.Reader) (*Script, error) {
	return parser.Parse(name, r)
}

// String renders the command in canonical form.
func (c *Command) String() string {
	switch {
	case c.Place != nil:
		s := fmt.Sprintf("PLACE %d,%d", c.Place.X, c.Place.Y)
		if c.Place.Facing != nil {
			s += "," + strings.ToUpper(*c.Place.Facing)
		}
		return s
	case c.Move:
		return "MOVE"
	case c.Left:
		return "LEFT"
	case c.Right:
		return "RIGHT"
	case c.Report:
		return "REPORT"
	}
	return "?"
}
