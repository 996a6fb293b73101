package model

import (
	"fmt"
	"iter"

	"github.com/google/uuid"
	"github.com/limaJavier/packing/pkg/geometry"
)

// Template is the definition of a kind of piece: its base shape and every distinct orientation of it.
// A Template is immutable once built and is identified by its ID, never by its shape, so two templates
// built from the same cells are two different kinds of piece
type Template struct {
	id           uuid.UUID
	name         string
	shape        geometry.Shape
	group        geometry.Group
	orientations []geometry.Shape
}

type TemplateOption func(template *Template)

// WithName attaches a display name to the template
func WithName(name string) TemplateOption {
	return func(template *Template) {
		template.name = name
	}
}

// WithReflections lets the piece be flipped over as well as rotated
func WithReflections() TemplateOption {
	return func(template *Template) {
		template.group = geometry.RotationsAndReflections
	}
}

func NewTemplate(cells []geometry.Coordinate, options ...TemplateOption) (*Template, error) {
	shape, err := geometry.NewShape(cells)
	if err != nil {
		return nil, fmt.Errorf("invalid template: %w", err)
	}

	template := &Template{
		id:    uuid.New(),
		shape: shape,
		group: geometry.Rotations,
	}
	for _, option := range options {
		option(template)
	}
	template.orientations = geometry.Orientations(shape, template.group)
	return template, nil
}

func (template *Template) ID() uuid.UUID {
	return template.id
}

// Name returns the display name, falling back to a prefix of the ID
func (template *Template) Name() string {
	if template.name != "" {
		return template.name
	}
	return template.id.String()[:8]
}

func (template *Template) Shape() geometry.Shape {
	return template.shape
}

func (template *Template) Group() geometry.Group {
	return template.group
}

func (template *Template) OrientationCount() int {
	return len(template.orientations)
}

func (template *Template) Orientation(index int) geometry.Shape {
	return template.orientations[index]
}

// Orientations yields the distinct orientations in their fixed order; every call starts over from the first one
func (template *Template) Orientations() iter.Seq2[int, geometry.Shape] {
	return func(yield func(int, geometry.Shape) bool) {
		for index, orientation := range template.orientations {
			if !yield(index, orientation) {
				return
			}
		}
	}
}

func (template *Template) String() string {
	return fmt.Sprintf("%v%v", template.Name(), template.shape)
}
