package grid

import "github.com/limaJavier/packing/pkg/geometry"

// Indexer gives every cell of a fixed region a dense index and vice versa. Indices follow the coordinates' canonical
// order, so the smallest index of a subset is also its smallest coordinate
type Indexer interface {
	// Returns the index of the coordinate, ok is false when the coordinate lies outside the region
	Index(coordinate geometry.Coordinate) (index int, ok bool)
	// Returns the coordinate with the given index
	Coordinate(index int) geometry.Coordinate
	// Returns the number of cells in the region
	Len() int
}

func NewIndexer(cells geometry.Shape) Indexer {
	indices := make(map[geometry.Coordinate]int, len(cells))
	for index, coordinate := range cells {
		indices[coordinate] = index
	}
	return &sortedIndexer{cells: cells, indices: indices}
}
