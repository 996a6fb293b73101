package puzzles

import (
	"testing"

	"github.com/limaJavier/packing/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetsAreConsistent(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			puzzle, err := ByName(name)

			require.NoError(t, err)
			assert.Equal(t, name, puzzle.Name)
			assert.Equal(t, puzzle.Target.Size(), puzzle.Bag.Volume())
		})
	}
}

func TestUnknownPreset(t *testing.T) {
	_, err := ByName("tangram")

	assert.ErrorContains(t, err, "unknown puzzle")
}

func TestSomaHasSolutions(t *testing.T) {
	puzzle := Soma()

	solutions, err := model.Collect(model.NewBacktrackingPacker(), puzzle.Target, puzzle.Bag, nil, 3)

	require.NoError(t, err)
	assert.Len(t, solutions, 3)
	for _, solution := range solutions {
		assert.Equal(t, 7, solution.Len())
		assert.True(t, model.Verify(puzzle.Target, puzzle.Bag, solution))
	}
}

func TestSomaSolutionCount(t *testing.T) {
	if testing.Short() {
		t.Skip("enumerates every Soma packing")
	}
	packers := map[string]model.Packer{
		"backtracking": model.NewBacktrackingPacker(),
		"parallel":     model.NewParallelPacker(0),
	}

	for name, packer := range packers {
		t.Run(name, func(t *testing.T) {
			puzzle := Soma()

			count, err := model.Count(packer, puzzle.Target, puzzle.Bag, nil)

			require.NoError(t, err)
			assert.Equal(t, 11520, count)
		})
	}
}

func TestSlothouberGraatsmaSolutionCount(t *testing.T) {
	puzzle := SlothouberGraatsma()

	count, err := model.Count(model.NewBacktrackingPacker(), puzzle.Target, puzzle.Bag, nil)

	require.NoError(t, err)
	assert.Equal(t, 8, count)
}

func TestDominoTilingsOfFourByFour(t *testing.T) {
	puzzle := Dominoes(4, 4)

	count, err := model.Count(model.NewBacktrackingPacker(), puzzle.Target, puzzle.Bag, nil)

	require.NoError(t, err)
	assert.Equal(t, 36, count)
}
