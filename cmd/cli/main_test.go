package main

import (
	"testing"

	"github.com/limaJavier/packing/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPuzzle(t *testing.T) {
	fromFile, err := loadPuzzle("../../test/puzzles/dominoes.json", "soma")
	require.NoError(t, err)
	assert.Equal(t, "dominoes 2x2", fromFile.Name)

	fromPreset, err := loadPuzzle("", "soma")
	require.NoError(t, err)
	assert.Equal(t, 27, fromPreset.Target.Size())

	_, err = loadPuzzle("", "unknown")
	assert.Error(t, err)
}

func TestBuildOutput(t *testing.T) {
	// Arrange
	puzzle, err := loadPuzzle("", "dominoes-2x2")
	require.NoError(t, err)
	solutions, err := model.Collect(model.NewBacktrackingPacker(), puzzle.Target, puzzle.Bag, nil, 1)
	require.NoError(t, err)

	// Act
	output := buildOutput(solutions, true)

	// Assert
	require.Len(t, output, 1)
	require.Len(t, output[0].Placements, 2)
	first := output[0].Placements[0]
	assert.Equal(t, "domino", first.Template)
	assert.Equal(t, 0, first.Orientation)
	assert.Equal(t, [3]int{0, 0, 0}, first.Translation)
	assert.Equal(t, [][3]int{{0, 0, 0}, {1, 0, 0}}, first.Cells)
	assert.Equal(t, "z=0\nAA\nBB\n", output[0].Render)
}
