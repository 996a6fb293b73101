package model

import (
	"testing"

	"github.com/limaJavier/packing/pkg/geometry"
	"github.com/stretchr/testify/assert"
)

func TestNewBox(t *testing.T) {
	target := newTestBox(t, 3, 2, 1)

	assert.Equal(t, 6, target.Size())
	assert.Equal(t, geometry.Coordinate{0, 0, 0}, target.Cells()[0])
	assert.Equal(t, geometry.Coordinate{2, 1, 0}, target.Cells()[5])
	assert.True(t, target.Contains(geometry.NewCoordinate(2, 1, 0)))
	assert.False(t, target.Contains(geometry.NewCoordinate(0, 0, 1)))

	_, err := NewBox(0, 2, 2)
	assert.ErrorIs(t, err, geometry.ErrEmptyShape)
}

func TestNewTargetRejectsDuplicates(t *testing.T) {
	_, err := NewTarget([]geometry.Coordinate{{0, 0, 0}, {1, 0, 0}, {0, 0, 0}})

	var duplicate geometry.DuplicateCoordinateError
	assert.ErrorAs(t, err, &duplicate)
	assert.Equal(t, geometry.Coordinate{0, 0, 0}, duplicate.Coordinate)
}

func TestTargetFits(t *testing.T) {
	target := newTestTarget(t, [3]int{0, 0, 0}, [3]int{1, 0, 0}, [3]int{0, 1, 0})
	domino := newTestTemplate(t, "domino", [3]int{0, 0, 0}, [3]int{1, 0, 0})

	assert.True(t, target.Fits(domino.Orientation(0)))
	assert.True(t, target.Fits(domino.Orientation(1)))
	assert.False(t, target.Fits(domino.Orientation(2)))
	assert.False(t, target.Fits(domino.Orientation(0).Translate(geometry.NewCoordinate(0, 1, 0))))
}
