package geometry

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Shape is a non-empty set of coordinates kept sorted in ascending order, so its first element is its minimum.
// Shapes are treated as immutable values: every operation returns a new shape
type Shape []Coordinate

// NewShape validates cells and returns them as a sorted shape. Empty input yields ErrEmptyShape and repeated
// coordinates yield a DuplicateCoordinateError
func NewShape(cells []Coordinate) (Shape, error) {
	if len(cells) == 0 {
		return nil, ErrEmptyShape
	}

	shape := slices.Clone(cells)
	slices.SortFunc(shape, Compare)
	for i := 1; i < len(shape); i++ {
		if shape[i] == shape[i-1] {
			return nil, DuplicateCoordinateError{Coordinate: shape[i]}
		}
	}
	return Shape(shape), nil
}

func (s Shape) Len() int {
	return len(s)
}

// Min returns the smallest coordinate of the shape
func (s Shape) Min() Coordinate {
	return s[0]
}

func (s Shape) Contains(coordinate Coordinate) bool {
	_, found := slices.BinarySearchFunc(s, coordinate, Compare)
	return found
}

func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s, other)
}

// Translate moves every coordinate by offset. Translation preserves the lexicographic order, so the result stays sorted
func (s Shape) Translate(offset Coordinate) Shape {
	return lo.Map(s, func(coordinate Coordinate, _ int) Coordinate { return coordinate.Add(offset) })
}

// Normalize translates the shape so that its minimum coordinate lands on the origin
func (s Shape) Normalize() Shape {
	return s.Translate(Coordinate{}.Sub(s.Min()))
}

// Transform applies the linear map to every coordinate and re-sorts the result
func (s Shape) Transform(transform Transform) Shape {
	transformed := lo.Map(s, func(coordinate Coordinate, _ int) Coordinate { return transform.Apply(coordinate) })
	slices.SortFunc(transformed, Compare)
	return transformed
}

// Bounds returns the per-axis minimum and maximum of the shape
func (s Shape) Bounds() (lower, upper Coordinate) {
	lower, upper = s[0], s[0]
	for _, coordinate := range s[1:] {
		for axis := range coordinate {
			lower[axis] = min(lower[axis], coordinate[axis])
			upper[axis] = max(upper[axis], coordinate[axis])
		}
	}
	return lower, upper
}

func (s Shape) String() string {
	var builder strings.Builder
	for _, coordinate := range s {
		builder.WriteString(coordinate.String())
	}
	return builder.String()
}
