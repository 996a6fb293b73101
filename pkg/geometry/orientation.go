package geometry

import "github.com/samber/lo"

// Orientations returns the distinct normalized images of shape under the group, in the group's enumeration order.
// Transforms whose image coincides with an earlier one are skipped, so the first element is always the normalized shape itself
func Orientations(shape Shape, group Group) []Shape {
	orientations := make([]Shape, 0, group.Order())
	for _, transform := range group.Transforms() {
		candidate := shape.Transform(transform).Normalize()
		if lo.ContainsBy(orientations, func(orientation Shape) bool { return orientation.Equal(candidate) }) {
			continue
		}
		orientations = append(orientations, candidate)
	}
	return orientations
}
