package interpreter

import (
	"strings"
	"testing"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func str(s string) *string { return &s }

func mustParse(t *testing.T, src string) *Script {
	t.Helper()
	script, err := Parse("test", src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return script
}

// ------------------------------------------------------------------- Grammar

func TestParseCommands(t *testing.T) {
	src := `PLACE 1,2,NORTH
move
Left; RIGHT
// comment line
place -1 7 west   # trailing comment
PLACE 0,0
REPORT`
	want := &Script{Commands: []*Command{
		{Place: &Place{X: 1, Y: 2, Facing: str("NORTH")}},
		{Move: true},
		{Left: true},
		{Right: true},
		{Place: &Place{X: -1, Y: 7, Facing: str("west")}},
		{Place: &Place{X: 0, Y: 0}},
		{Report: true},
	}}

	got := mustParse(t, src)
	if diff := cmp.Diff(want, got, cmpopts.IgnoreTypes(lexer.Position{})); diff != "" {
		t.Fatalf("script mismatch (-want +got):\n%s", diff)
	}
}

func TestParseKeywordNotTakenAsFacing(t *testing.T) {
	got := mustParse(t, "PLACE 3 3 MOVE REPORT")
	want := []string{"PLACE 3,3", "MOVE", "REPORT"}
	if len(got.Commands) != len(want) {
		t.Fatalf("want %d commands got %d", len(want), len(got.Commands))
	}
	for i, c := range got.Commands {
		if c.String() != want[i] {
			t.Fatalf("command %d want %q got %q", i, want[i], c.String())
		}
	}
}

func TestParsePositions(t *testing.T) {
	got := mustParse(t, "PLACE 0,0,EAST\n\n  MOVE")
	if got.Commands[1].Pos.Line != 3 || got.Commands[1].Pos.Column != 3 {
		t.Fatalf("MOVE at %s", got.Commands[1].Pos)
	}
}

func TestParseEmpty(t *testing.T) {
	for _, src := range []string{"", "   \n", "# nothing here"} {
		if got := mustParse(t, src); len(got.Commands) != 0 {
			t.Fatalf("%q: want no commands got %d", src, len(got.Commands))
		}
	}
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		"JUMP",
		"PLACE",
		"PLACE 1",
		"PLACE x,y,NORTH",
		"MOVE 3",
		"PLACE 1,2,NORTH,EAST",
	}
	for _, src := range bad {
		if _, err := Parse("test", src); err == nil {
			t.Errorf("%q: expected parse error", src)
		}
	}
}

func TestParseReader(t *testing.T) {
	script, err := ParseReader("reader", strings.NewReader("PLACE 1,1,SOUTH\nREPORT\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(script.Commands) != 2 || script.Commands[0].Pos.Filename != "reader" {
		t.Fatalf("unexpected script %+v", script.Commands)
	}
}

func TestCommandString(t *testing.T) {
	got := mustParse(t, "place 4,4,south; right")
	if s := got.Commands[0].String(); s != "PLACE 4,4,SOUTH" {
		t.Fatalf("got %q", s)
	}
	if s := got.Commands[1].String(); s != "RIGHT" {
		t.Fatalf("got %q", s)
	}
}
