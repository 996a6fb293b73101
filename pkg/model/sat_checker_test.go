package model

import (
	"testing"

	"github.com/limaJavier/packing/pkg/sat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSatCheckerFindsAPacking(t *testing.T) {
	checker := NewSatChecker(sat.NewGiniSolver())
	domino := newTestTemplate(t, "domino", [3]int{0, 0, 0}, [3]int{1, 0, 0})
	sgTarget, sgBag := slothouberGraatsma(t)

	scenarios := []struct {
		name   string
		target *Target
		bag    *Bag
	}{
		{"Dominoes in a square", newTestBox(t, 2, 2, 1), NewBag(domino, domino)},
		{"Spare units", newTestBox(t, 2, 1, 1), NewBag(domino, domino, domino)},
		{"Slothouber-Graatsma", sgTarget, sgBag},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			// Act
			feasible, solution, err := checker.Feasible(scenario.target, scenario.bag)

			// Assert
			require.NoError(t, err)
			require.True(t, feasible)
			require.NotNil(t, solution)
			assert.True(t, solution.IsComplete())
			assert.True(t, Verify(scenario.target, scenario.bag, solution))
			assertPartition(t, scenario.target, solution)
		})
	}
}

func TestSatCheckerRejectsImpossiblePackings(t *testing.T) {
	checker := NewSatChecker(sat.NewGiniSolver())
	domino := newTestTemplate(t, "domino", [3]int{0, 0, 0}, [3]int{1, 0, 0})
	square := newTestTemplate(t, "square", [3]int{0, 0, 0}, [3]int{1, 0, 0}, [3]int{0, 1, 0}, [3]int{1, 1, 0})

	scenarios := []struct {
		name   string
		target *Target
		bag    *Bag
	}{
		{"Piece does not fit", newTestTarget(t, [3]int{0, 0, 0}, [3]int{1, 0, 0}, [3]int{0, 1, 0}), NewBag(square)},
		{"Not enough units", newTestBox(t, 2, 2, 1), NewBag(domino)},
		{"Odd volume", newTestBox(t, 3, 1, 1), NewBag(domino, domino)},
		{"Empty bag", newTestBox(t, 1, 1, 1), NewBag()},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			feasible, solution, err := checker.Feasible(scenario.target, scenario.bag)

			assert.NoError(t, err)
			assert.False(t, feasible)
			assert.Nil(t, solution)
		})
	}
}

func TestSatCheckerAgreesWithTheBacktrackingPacker(t *testing.T) {
	checker := NewSatChecker(sat.NewGiniSolver())
	domino := newTestTemplate(t, "domino", [3]int{0, 0, 0}, [3]int{1, 0, 0})
	tromino := newTestTemplate(t, "tromino", [3]int{0, 0, 0}, [3]int{1, 0, 0}, [3]int{0, 1, 0})

	for dx := 1; dx <= 4; dx++ {
		for dy := 1; dy <= 3; dy++ {
			// Arrange
			target := newTestBox(t, dx, dy, 1)
			bag := NewBag()
			require.NoError(t, bag.Put(domino, 2))
			require.NoError(t, bag.Put(tromino, 2))

			// Act
			count, err := Count(NewBacktrackingPacker(), target, bag, nil)
			require.NoError(t, err)
			feasible, _, err := checker.Feasible(target, bag)
			require.NoError(t, err)

			// Assert
			assert.Equal(t, count > 0, feasible, "box %dx%d", dx, dy)
		}
	}
}
