package model

import (
	"fmt"

	"github.com/limaJavier/packing/pkg/geometry"
)

// Placement fixes one unit of a template in space: the orientation is an index into the template's orientations and
// the translation moves that orientation's origin cell
type Placement struct {
	Template    *Template
	Orientation int
	Translation geometry.Coordinate
}

// Footprint returns the absolute cells the placed piece occupies
func (placement Placement) Footprint() geometry.Shape {
	return placement.Template.Orientation(placement.Orientation).Translate(placement.Translation)
}

func (placement Placement) String() string {
	return fmt.Sprintf("[%v%v]", placement.Template.name, placement.Footprint())
}
