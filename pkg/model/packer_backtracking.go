package model

import (
	"log"

	"github.com/limaJavier/packing/pkg/geometry"
)

type backtrackingPacker struct {
	options options
}

// NewBacktrackingPacker returns the sequential depth-first packer. Solutions are emitted in a fixed order given by the
// canonical cell order, the bag's template order, each template's orientation order
func NewBacktrackingPacker(opts ...Option) Packer {
	return &backtrackingPacker{options: newOptions(opts)}
}

func (packer *backtrackingPacker) Solve(target *Target, bag *Bag, partial *Solution, handler SolutionHandler) error {
	partial, err := prepare(target, bag, partial)
	if err != nil {
		return err
	}

	logger := packer.options.logger
	logger.V(1).Info("search started", "cells", target.Size(), "uncovered", partial.uncovered, "pieces", bag.Size())

	search := newSearch(target, bag, partial, handler)
	completed := search.descend(0)

	logger.V(1).Info("search finished", "solutions", search.solutions, "nodes", search.nodes, "exhausted", completed)
	return nil
}

// candidate is a legal placement for the open cell together with the target indices it covers
type candidate struct {
	placement Placement
	indices   []int
}

// search holds the single mutable state of one depth-first enumeration
type search struct {
	target   *Target
	bag      *Bag
	solution *Solution
	handler  SolutionHandler
	stopped  func() bool // Polled at every node, nil when only the handler can stop the search

	solutions int
	nodes     int
}

func newSearch(target *Target, bag *Bag, solution *Solution, handler SolutionHandler) *search {
	return &search{target: target, bag: bag, solution: solution, handler: handler}
}

// descend explores every packing reachable from the current state. Every target index below from is known to be covered.
// It returns false once the handler or the stopped hook asked to stop
func (search *search) descend(from int) bool {
	if search.stopped != nil && search.stopped() {
		return false
	}
	search.nodes++

	open := search.solution.firstOpen(from)
	if open < 0 {
		search.solutions++
		return search.handler(search.solution)
	}

	return search.candidates(open, func(candidate candidate) bool {
		return search.apply(candidate, func() bool {
			return search.descend(open + 1)
		})
	})
}

// candidates calls visit for every legal placement covering the open cell, in search order, and stops early when visit
// returns false.
//
// Only the translation that lands the orientation's minimum cell on the open cell is tried: every other translation
// covering the open cell puts some cell below it, and all target cells below the open one are already covered
func (search *search) candidates(open int, visit func(candidate candidate) bool) bool {
	anchor := search.target.indexer.Coordinate(open)

	for _, entry := range search.bag.entries {
		if entry.count <= 0 {
			continue
		}
		for orientation, shape := range entry.template.orientations {
			indices, ok := search.fit(shape, anchor)
			if !ok {
				continue
			}

			candidate := candidate{
				placement: Placement{Template: entry.template, Orientation: orientation, Translation: anchor},
				indices:   indices,
			}
			if !visit(candidate) {
				return false
			}
		}
	}
	return true
}

// fit maps the orientation moved onto anchor to target indices, failing if a cell is outside the target or covered
func (search *search) fit(orientation geometry.Shape, anchor geometry.Coordinate) ([]int, bool) {
	indices := make([]int, len(orientation))
	for i, cell := range orientation {
		index, ok := search.target.indexer.Index(cell.Add(anchor))
		if !ok || search.solution.owners[index] != uncoveredCell {
			return nil, false
		}
		indices[i] = index
	}
	return indices, true
}

// apply takes the candidate's unit from the bag and records it, runs next, then restores bag and solution whatever
// way next exits
func (search *search) apply(candidate candidate, next func() bool) bool {
	if err := search.bag.Take(candidate.placement.Template); err != nil {
		log.Panicf("bag invariant violated: %v", err)
	}
	search.solution.place(candidate.placement, candidate.indices)
	defer func() {
		search.solution.unplace()
		search.bag.GiveBack(candidate.placement.Template)
	}()

	return next()
}
