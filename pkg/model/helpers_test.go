package model

import (
	"testing"

	"github.com/limaJavier/packing/pkg/geometry"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func newTestTemplate(t testing.TB, name string, cells ...[3]int) *Template {
	template, err := NewTemplate(toShape(cells), WithName(name))
	require.NoError(t, err)
	return template
}

func newTestTarget(t testing.TB, cells ...[3]int) *Target {
	target, err := NewTarget(toShape(cells))
	require.NoError(t, err)
	return target
}

func newTestBox(t testing.TB, dx, dy, dz int) *Target {
	target, err := NewBox(dx, dy, dz)
	require.NoError(t, err)
	return target
}

func toShape(cells [][3]int) []geometry.Coordinate {
	return lo.Map(cells, func(cell [3]int, _ int) geometry.Coordinate { return geometry.Coordinate(cell) })
}

// slothouberGraatsma returns the 3x3x3 cube together with six 2x2x1 blocks and three unit cubes
func slothouberGraatsma(t testing.TB) (*Target, *Bag) {
	block := newTestTemplate(t, "block", [3]int{0, 0, 0}, [3]int{1, 0, 0}, [3]int{0, 1, 0}, [3]int{1, 1, 0})
	cube := newTestTemplate(t, "cube", [3]int{0, 0, 0})

	bag := NewBag()
	require.NoError(t, bag.Put(block, 6))
	require.NoError(t, bag.Put(cube, 3))
	return newTestBox(t, 3, 3, 3), bag
}

func listings(solutions []*Solution) []string {
	return lo.Map(solutions, func(solution *Solution, _ int) string { return solution.String() })
}
