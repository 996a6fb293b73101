package model

import (
	"fmt"
	"slices"

	"github.com/limaJavier/packing/internal/grid"
	"github.com/limaJavier/packing/pkg/geometry"
)

// Target is the region that must be covered exactly. It never changes after construction
type Target struct {
	shape   geometry.Shape
	indexer grid.Indexer
}

func NewTarget(cells []geometry.Coordinate) (*Target, error) {
	shape, err := geometry.NewShape(cells)
	if err != nil {
		return nil, fmt.Errorf("invalid target: %w", err)
	}
	return &Target{shape: shape, indexer: grid.NewIndexer(shape)}, nil
}

// NewBox builds the dx*dy*dz cuboid whose minimum cell is the origin
func NewBox(dx, dy, dz int) (*Target, error) {
	cells := make([]geometry.Coordinate, 0, max(dx*dy*dz, 0))
	for x := range dx {
		for y := range dy {
			for z := range dz {
				cells = append(cells, geometry.NewCoordinate(x, y, z))
			}
		}
	}
	return NewTarget(cells)
}

// Cells returns the target's cells in canonical order
func (target *Target) Cells() geometry.Shape {
	return slices.Clone(target.shape)
}

func (target *Target) Size() int {
	return target.shape.Len()
}

func (target *Target) Contains(coordinate geometry.Coordinate) bool {
	_, ok := target.indexer.Index(coordinate)
	return ok
}

// Fits reports whether every cell of the footprint lies inside the target
func (target *Target) Fits(footprint geometry.Shape) bool {
	_, ok := target.indicesOf(footprint)
	return ok
}

// indicesOf maps a footprint onto target indices, ok is false as soon as one cell lies outside
func (target *Target) indicesOf(footprint geometry.Shape) (indices []int, ok bool) {
	indices = make([]int, len(footprint))
	for i, coordinate := range footprint {
		index, ok := target.indexer.Index(coordinate)
		if !ok {
			return nil, false
		}
		indices[i] = index
	}
	return indices, true
}

func (target *Target) String() string {
	return target.shape.String()
}
