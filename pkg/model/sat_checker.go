package model

import (
	"fmt"
	"slices"

	"github.com/limaJavier/packing/pkg/geometry"
	"github.com/limaJavier/packing/pkg/sat"
	"github.com/samber/lo"
)

// SatChecker decides whether a packing exists by reducing the exact-cover instance to SAT, without enumerating
type SatChecker struct {
	solver  sat.SATSolver
	options options
}

func NewSatChecker(solver sat.SATSolver, opts ...Option) *SatChecker {
	return &SatChecker{solver: solver, options: newOptions(opts)}
}

// choice is the SAT variable standing for "this unit of the bag is placed like this"
type choice struct {
	variable  int64
	placement Placement
	indices   []int
}

// Feasible reports whether target can be packed exactly with units of bag. When it can, the returned solution is one
// such packing, bound to target, with placements ordered by the minimum cell of their footprints
func (checker *SatChecker) Feasible(target *Target, bag *Bag) (bool, *Solution, error) {
	if _, err := prepare(target, bag, nil); err != nil {
		return false, nil, err
	}

	instance, choices := encode(target, bag)
	checker.options.logger.V(1).Info("exact cover encoded", "variables", instance.Variables, "clauses", len(instance.Clauses), "choices", len(choices))

	model, err := checker.solver.Solve(instance)
	if err != nil {
		return false, nil, fmt.Errorf("cannot solve exact cover instance: %w", err)
	} else if model == nil {
		return false, nil, nil
	}

	solution, err := decode(target, choices, model)
	if err != nil {
		return false, nil, err
	}
	return true, solution, nil
}

// encode builds the formula:
// - For every unit of the bag at most one of its choices holds
// - For every target cell exactly one choice covering it holds
func encode(target *Target, bag *Bag) (sat.SAT, []choice) {
	var instance sat.SAT
	choices := make([]choice, 0)
	covering := make([][]int64, target.Size()) // Choice variables covering each target index

	for _, entry := range bag.entries {
		if entry.count <= 0 {
			continue
		}
		placements := legalPlacements(target, entry.template)

		for range entry.count {
			unit := make([]int64, 0, len(placements))
			for _, candidate := range placements {
				variable := instance.NewVariable()
				choices = append(choices, choice{variable: variable, placement: candidate.placement, indices: candidate.indices})
				unit = append(unit, variable)
				for _, index := range candidate.indices {
					covering[index] = append(covering[index], variable)
				}
			}
			instance.AtMostOne(unit)
		}
	}

	for _, variables := range covering {
		if len(variables) == 0 {
			// Nothing can cover the cell, state a contradiction
			contradiction := instance.NewVariable()
			instance.AddClause(contradiction)
			instance.AddClause(-contradiction)
			continue
		}
		instance.ExactlyOne(variables)
	}
	return instance, choices
}

// legalPlacements lists every placement of template lying inside target, anchoring each orientation's origin cell on
// every target cell
func legalPlacements(target *Target, template *Template) []candidate {
	placements := make([]candidate, 0)
	for orientation, shape := range template.orientations {
		for _, anchor := range target.shape {
			footprint := shape.Translate(anchor)
			indices, ok := target.indicesOf(footprint)
			if !ok {
				continue
			}
			placements = append(placements, candidate{
				placement: Placement{Template: template, Orientation: orientation, Translation: anchor},
				indices:   indices,
			})
		}
	}
	return placements
}

func decode(target *Target, choices []choice, model sat.SATSolution) (*Solution, error) {
	positives := lo.SliceToMap(lo.Filter(model, func(literal int64, _ int) bool { return literal > 0 }), func(literal int64) (int64, bool) {
		return literal, true
	})
	chosen := lo.Filter(choices, func(c choice, _ int) bool { return positives[c.variable] })
	slices.SortFunc(chosen, func(a, b choice) int {
		return geometry.Compare(a.placement.Translation, b.placement.Translation)
	})

	solution := EmptySolution()
	if err := solution.Bind(target); err != nil {
		return nil, err
	}
	for _, selected := range chosen {
		if err := solution.Record(selected.placement); err != nil {
			return nil, fmt.Errorf("solver returned an inconsistent model: %w", err)
		}
	}
	if !solution.IsComplete() {
		return nil, fmt.Errorf("solver returned an inconsistent model: %d cells left uncovered", solution.uncovered)
	}
	return solution, nil
}
