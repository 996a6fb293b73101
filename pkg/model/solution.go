package model

import (
	"fmt"
	"slices"
	"strings"

	"github.com/limaJavier/packing/pkg/geometry"
	"github.com/samber/lo"
)

const uncoveredCell = -1

// Solution is the state of a packing: the placements made so far, in the order they were made, and the target cells
// they leave uncovered. It describes both partial and complete packings.
//
// A solution built with EmptySolution is unbound; Record only queues placements until the solution is bound to a target,
// either explicitly or by handing it to a Packer. Once bound, covered and uncovered always partition the target and
// placements never overlap.
type Solution struct {
	placements []Placement
	footprints [][]int // Target indices covered by each placement

	target    *Target
	owners    []int // Placement index covering each target index, or uncoveredCell
	uncovered int
}

func EmptySolution() *Solution {
	return &Solution{}
}

// Bind attaches the solution to target and replays its placements onto it. It fails with ErrOutsideTarget or
// ErrOverlap if the recorded placements do not form a valid partial packing of target, leaving the solution unchanged
func (solution *Solution) Bind(target *Target) error {
	saved := *solution
	placements := solution.placements
	solution.placements = make([]Placement, 0, len(placements))
	solution.footprints = make([][]int, 0, len(placements))
	solution.target = target
	solution.owners = make([]int, target.Size())
	for i := range solution.owners {
		solution.owners[i] = uncoveredCell
	}
	solution.uncovered = target.Size()

	for _, placement := range placements {
		if err := solution.Record(placement); err != nil {
			*solution = saved
			return err
		}
	}
	return nil
}

// Record appends a placement. On a bound solution the placement must fit inside the uncovered part of the target
func (solution *Solution) Record(placement Placement) error {
	if solution.target == nil {
		solution.placements = append(solution.placements, placement)
		return nil
	}

	footprint := placement.Footprint()
	indices, ok := solution.target.indicesOf(footprint)
	if !ok {
		return fmt.Errorf("cannot record %v: %w", placement, ErrOutsideTarget)
	}
	if lo.SomeBy(indices, func(index int) bool { return solution.owners[index] != uncoveredCell }) {
		return fmt.Errorf("cannot record %v: %w", placement, ErrOverlap)
	}
	solution.place(placement, indices)
	return nil
}

// Retract removes the most recent placement, ok is false when there is none
func (solution *Solution) Retract() (placement Placement, ok bool) {
	if len(solution.placements) == 0 {
		return Placement{}, false
	}
	placement = solution.placements[len(solution.placements)-1]
	if solution.target == nil {
		solution.placements = solution.placements[:len(solution.placements)-1]
	} else {
		solution.unplace()
	}
	return placement, true
}

// place is the forward step of the search: indices must be uncovered target indices of the placement's footprint
func (solution *Solution) place(placement Placement, indices []int) {
	owner := len(solution.placements)
	for _, index := range indices {
		solution.owners[index] = owner
	}
	solution.uncovered -= len(indices)
	solution.placements = append(solution.placements, placement)
	solution.footprints = append(solution.footprints, indices)
}

// unplace is the exact inverse of the latest place
func (solution *Solution) unplace() {
	last := len(solution.placements) - 1
	for _, index := range solution.footprints[last] {
		solution.owners[index] = uncoveredCell
	}
	solution.uncovered += len(solution.footprints[last])
	solution.placements = solution.placements[:last]
	solution.footprints = solution.footprints[:last]
}

// firstOpen returns the smallest uncovered target index not below from, or -1 when every such cell is covered
func (solution *Solution) firstOpen(from int) int {
	for index := from; index < len(solution.owners); index++ {
		if solution.owners[index] == uncoveredCell {
			return index
		}
	}
	return -1
}

func (solution *Solution) Target() *Target {
	return solution.target
}

func (solution *Solution) Len() int {
	return len(solution.placements)
}

func (solution *Solution) Placements() []Placement {
	return slices.Clone(solution.placements)
}

// IsComplete reports whether the solution is bound and covers its whole target
func (solution *Solution) IsComplete() bool {
	return solution.target != nil && solution.uncovered == 0
}

// Covered returns the covered cells in canonical order
func (solution *Solution) Covered() []geometry.Coordinate {
	if solution.target == nil {
		cells := lo.FlatMap(solution.placements, func(placement Placement, _ int) []geometry.Coordinate {
			return placement.Footprint()
		})
		slices.SortFunc(cells, geometry.Compare)
		return cells
	}
	return solution.cells(func(owner int) bool { return owner != uncoveredCell })
}

// Uncovered returns the target cells still open in canonical order, nil for an unbound solution
func (solution *Solution) Uncovered() []geometry.Coordinate {
	if solution.target == nil {
		return nil
	}
	return solution.cells(func(owner int) bool { return owner == uncoveredCell })
}

// Occupant returns the placement covering coordinate
func (solution *Solution) Occupant(coordinate geometry.Coordinate) (Placement, bool) {
	if solution.target == nil {
		return Placement{}, false
	}
	index, ok := solution.target.indexer.Index(coordinate)
	if !ok || solution.owners[index] == uncoveredCell {
		return Placement{}, false
	}
	return solution.placements[solution.owners[index]], true
}

// Clone returns a deep copy that is unaffected by further changes to solution
func (solution *Solution) Clone() *Solution {
	return &Solution{
		placements: slices.Clone(solution.placements),
		footprints: slices.Clone(solution.footprints),
		target:     solution.target,
		owners:     slices.Clone(solution.owners),
		uncovered:  solution.uncovered,
	}
}

func (solution *Solution) cells(predicate func(owner int) bool) []geometry.Coordinate {
	cells := make([]geometry.Coordinate, 0)
	for index, owner := range solution.owners {
		if predicate(owner) {
			cells = append(cells, solution.target.indexer.Coordinate(index))
		}
	}
	return cells
}

// String lists the footprints in placement order, e.g. <[(0, 0, 0)(1, 0, 0)][(0, 1, 0)(1, 1, 0)]>
func (solution *Solution) String() string {
	var builder strings.Builder
	builder.WriteString("<")
	for _, placement := range solution.placements {
		builder.WriteString(placement.String())
	}
	builder.WriteString(">")
	return builder.String()
}
