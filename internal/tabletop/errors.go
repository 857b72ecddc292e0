package tabletop

import (
	"errors"
	"fmt"
)

// Kind classifies why a command was rejected.
type Kind int

const (
	OutOfBounds Kind = iota + 1
	NotPlaced
)

func (k Kind) String() string {
	switch k {
	case OutOfBounds:
		return "out of bounds"
	case NotPlaced:
		return "not placed"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var (
	ErrOutOfBounds = errors.New("position outside grid bounds")
	ErrNotPlaced   = errors.New("robot not placed")
)

// CommandError is returned by every rejected robot command. The robot's
// state is unchanged whenever one is returned.
type CommandError struct {
	Op   string
	Kind Kind
	// target cell, only meaningful for OutOfBounds
	X, Y int
}

func (e *CommandError) Error() string {
	switch {
	case e.Kind == NotPlaced:
		return fmt.Sprintf("%s: %v", e.Op, ErrNotPlaced)
	case e.Op == opMove:
		return fmt.Sprintf("%s: would leave grid at (%d,%d)", e.Op, e.X, e.Y)
	}
	return fmt.Sprintf("%s: %v (%d,%d)", e.Op, ErrOutOfBounds, e.X, e.Y)
}

func (e *CommandError) Unwrap() error {
	if e.Kind == NotPlaced {
		return ErrNotPlaced
	}
	return ErrOutOfBounds
}

// KindOf reports the Kind carried by err, or 0 if err is not a CommandError.
func KindOf(err error) Kind {
	var ce *CommandError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return 0
}
