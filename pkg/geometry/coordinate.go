package geometry

import "fmt"

// Coordinate identifies one discrete cell of the grid. Coordinates are ordered lexicographically (x, then y, then z)
type Coordinate [3]int

func NewCoordinate(x, y, z int) Coordinate {
	return Coordinate{x, y, z}
}

func (c Coordinate) X() int { return c[0] }
func (c Coordinate) Y() int { return c[1] }
func (c Coordinate) Z() int { return c[2] }

func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{c[0] + other[0], c[1] + other[1], c[2] + other[2]}
}

// Sub returns the translation that takes other onto c
func (c Coordinate) Sub(other Coordinate) Coordinate {
	return Coordinate{c[0] - other[0], c[1] - other[1], c[2] - other[2]}
}

func (c Coordinate) Less(other Coordinate) bool {
	return Compare(c, other) < 0
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c[0], c[1], c[2])
}

// Compare returns -1, 0 or 1 depending on whether a is smaller than, equal to or greater than b in the lexicographic order
func Compare(a, b Coordinate) int {
	for i := range a {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}
	return 0
}
