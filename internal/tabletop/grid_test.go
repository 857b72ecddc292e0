package tabletop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridContains(t *testing.T) {
	g, err := NewGrid(5, 5)
	require.NoError(t, err)

	for x := -2; x <= 6; x++ {
		for y := -2; y <= 6; y++ {
			want := x >= 0 && x <= 4 && y >= 0 && y <= 4
			assert.Equal(t, want, g.Contains(x, y), "(%d,%d)", x, y)
		}
	}
	assert.Equal(t, 5, g.Width())
	assert.Equal(t, 5, g.Height())
}

func TestBoundedGrid(t *testing.T) {
	g, err := NewBoundedGrid(-2, 2, 3, 3)
	require.NoError(t, err)

	minX, maxX, minY, maxY := g.Bounds()
	assert.Equal(t, []int{-2, 2, 3, 3}, []int{minX, maxX, minY, maxY})
	assert.Equal(t, 5, g.Width())
	assert.Equal(t, 1, g.Height())
	assert.True(t, g.Contains(-2, 3))
	assert.False(t, g.Contains(0, 2))
	assert.Equal(t, "5x1 grid (-2,3)-(2,3)", g.String())
}

func TestInvalidGrid(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, -1}} {
		_, err := NewGrid(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidBounds)
	}
	_, err := NewBoundedGrid(1, 0, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidBounds)
	_, err = NewBoundedGrid(0, 0, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidBounds)
}

func TestFacing(t *testing.T) {
	for _, name := range []string{"north", "NORTH", " North "} {
		f, err := ParseFacing(name)
		require.NoError(t, err)
		assert.Equal(t, North, f)
	}
	f, err := ParseFacing("west")
	require.NoError(t, err)
	assert.Equal(t, West, f)

	_, err = ParseFacing("up")
	assert.ErrorIs(t, err, ErrUnknownFacing)

	assert.Equal(t, "Facing(9)", Facing(9).String())
	assert.Equal(t, '?', Facing(9).Sign())
	assert.Equal(t, '→', East.Sign())

	steps := map[Facing][2]int{North: {0, 1}, East: {1, 0}, South: {0, -1}, West: {-1, 0}}
	for f, want := range steps {
		dx, dy := f.Step()
		assert.Equal(t, want, [2]int{dx, dy}, f.String())
	}
}
