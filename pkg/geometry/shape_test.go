package geometry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareIsLexicographic(t *testing.T) {
	assert.Equal(t, 0, Compare(NewCoordinate(1, 2, 3), NewCoordinate(1, 2, 3)))
	assert.Equal(t, -1, Compare(NewCoordinate(0, 9, 9), NewCoordinate(1, 0, 0)))
	assert.Equal(t, 1, Compare(NewCoordinate(1, 1, 0), NewCoordinate(1, 0, 5)))
	assert.True(t, NewCoordinate(2, 3, -1).Less(NewCoordinate(2, 3, 0)))
	assert.Equal(t, "(5, -3, 0)", NewCoordinate(5, -3, 0).String())
}

func TestNewShapeSortsCells(t *testing.T) {
	shape, err := NewShape([]Coordinate{{1, 1, 1}, {0, 0, 0}, {1, 0, 0}})

	require.NoError(t, err)
	assert.Equal(t, Shape{{0, 0, 0}, {1, 0, 0}, {1, 1, 1}}, shape)
	assert.Equal(t, NewCoordinate(0, 0, 0), shape.Min())
	assert.True(t, shape.Contains(NewCoordinate(1, 1, 1)))
	assert.False(t, shape.Contains(NewCoordinate(1, 1, 0)))
}

func TestNewShapeRejectsMalformedInput(t *testing.T) {
	_, err := NewShape(nil)
	assert.ErrorIs(t, err, ErrEmptyShape)

	_, err = NewShape([]Coordinate{{0, 0, 0}, {2, 0, 0}, {0, 0, 0}})
	var duplicate DuplicateCoordinateError
	require.True(t, errors.As(err, &duplicate))
	assert.Equal(t, NewCoordinate(0, 0, 0), duplicate.Coordinate)
}

func TestShapeTranslate(t *testing.T) {
	shape, _ := NewShape([]Coordinate{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {1, 1, 1}})

	translated := shape.Translate(NewCoordinate(5, -3, 0))

	assert.Equal(t, Shape{{5, -3, 0}, {6, -3, 0}, {6, -2, 0}, {6, -2, 1}}, translated)
	assert.Equal(t, shape, translated.Normalize())
}

func TestShapeBounds(t *testing.T) {
	shape, _ := NewShape([]Coordinate{{0, 2, 0}, {1, -1, 4}, {3, 0, 1}})

	lower, upper := shape.Bounds()

	assert.Equal(t, NewCoordinate(0, -1, 0), lower)
	assert.Equal(t, NewCoordinate(3, 2, 4), upper)
}
