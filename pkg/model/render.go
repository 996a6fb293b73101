package model

import (
	"fmt"
	"strings"

	"github.com/limaJavier/packing/pkg/geometry"
)

const labels = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Render draws the bound solution one z layer at a time. Each placement is labeled in placement order with a letter
// or digit, uncovered target cells are drawn as '.' and cells outside the target as ' '. Past len(labels) placements
// every cell is drawn with as many characters as the longest label needs, so labels never repeat
func (solution *Solution) Render() string {
	if solution.target == nil {
		return solution.String()
	}

	width := solution.labelWidth()
	lower, upper := solution.target.shape.Bounds()
	var builder strings.Builder
	for z := lower.Z(); z <= upper.Z(); z++ {
		fmt.Fprintf(&builder, "z=%d\n", z)
		for y := lower.Y(); y <= upper.Y(); y++ {
			for x := lower.X(); x <= upper.X(); x++ {
				builder.WriteString(solution.cellLabel(geometry.NewCoordinate(x, y, z), width))
			}
			builder.WriteByte('\n')
		}
	}
	return builder.String()
}

// Legend maps every label drawn by Render to the name of the placed template
func (solution *Solution) Legend() string {
	width := solution.labelWidth()
	var builder strings.Builder
	for i, placement := range solution.placements {
		fmt.Fprintf(&builder, "%v: %v\n", label(i, width), placement.Template.Name())
	}
	return builder.String()
}

func (solution *Solution) labelWidth() int {
	width := 1
	for capacity := len(labels); capacity < len(solution.placements); capacity *= len(labels) {
		width++
	}
	return width
}

func (solution *Solution) cellLabel(coordinate geometry.Coordinate, width int) string {
	index, ok := solution.target.indexer.Index(coordinate)
	if !ok {
		return strings.Repeat(" ", width)
	}
	owner := solution.owners[index]
	if owner == uncoveredCell {
		return strings.Repeat(".", width)
	}
	return label(owner, width)
}

// label writes placement in base len(labels) with exactly width digits
func label(placement, width int) string {
	digits := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		digits[i] = labels[placement%len(labels)]
		placement /= len(labels)
	}
	return string(digits)
}
