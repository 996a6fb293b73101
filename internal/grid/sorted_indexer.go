package grid

import "github.com/limaJavier/packing/pkg/geometry"

type sortedIndexer struct {
	cells   geometry.Shape
	indices map[geometry.Coordinate]int
}

func (indexer *sortedIndexer) Index(coordinate geometry.Coordinate) (int, bool) {
	index, ok := indexer.indices[coordinate]
	return index, ok
}

func (indexer *sortedIndexer) Coordinate(index int) geometry.Coordinate {
	return indexer.cells[index]
}

func (indexer *sortedIndexer) Len() int {
	return len(indexer.cells)
}
