package model

import (
	"github.com/limaJavier/packing/pkg/geometry"
	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

// Verify checks, independently of how solution was built, that it is an exact packing of target made from units of bag:
// - Every placement uses an existing orientation of its template
// - Every placed cell lies inside the target and no cell is covered twice
// - Every target cell is covered
// - Placements can be assigned pairwise different units of the bag
func Verify(target *Target, bag *Bag, solution *Solution) bool {
	covered := make(map[geometry.Coordinate]bool, target.Size())
	for _, placement := range solution.placements {
		if placement.Template == nil || placement.Orientation < 0 || placement.Orientation >= placement.Template.OrientationCount() {
			return false
		}

		for _, coordinate := range placement.Footprint() {
			if !target.Contains(coordinate) || covered[coordinate] {
				return false
			}
			covered[coordinate] = true
		}
	}

	if len(covered) != target.Size() {
		return false
	}

	return unitsAssignable(solution.placements, bag)
}

// unitsAssignable reports whether every placement can be matched with a distinct unit of the bag holding its template
func unitsAssignable(placements []Placement, bag *Bag) bool {
	units := lo.FlatMap(bag.entries, func(entry bagEntry, _ int) []*Template {
		return lo.Times(entry.count, func(int) *Template { return entry.template })
	})

	neighbors := func(placementAny any, unitAny any) (bool, error) {
		placement := placementAny.(Placement)
		unit := unitAny.(*Template)
		return placement.Template.id == unit.id, nil
	}

	placementsAny, unitsAny := lo.Map(placements, func(placement Placement, _ int) any { return placement }), lo.Map(units, func(unit *Template, _ int) any { return unit })

	graph, err := bipartitegraph.NewBipartiteGraph(placementsAny, unitsAny, neighbors)
	if err != nil {
		return false
	}

	// The matching is a maximum one, so a smaller matching means some placement has no unit left
	return len(graph.LargestMatching()) == len(placements)
}
