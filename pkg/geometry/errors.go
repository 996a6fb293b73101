package geometry

import (
	"errors"
	"fmt"
)

var ErrEmptyShape = errors.New("shape must contain at least one coordinate")

// DuplicateCoordinateError is returned when a shape lists the same coordinate more than once
type DuplicateCoordinateError struct {
	Coordinate Coordinate
}

func (err DuplicateCoordinateError) Error() string {
	return fmt.Sprintf("coordinate %v is present more than once", err.Coordinate)
}
