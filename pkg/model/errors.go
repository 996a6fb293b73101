package model

import "errors"

var (
	ErrOutOfStock    = errors.New("no unit of the template is left in the bag")
	ErrOverlap       = errors.New("placement overlaps an already covered cell")
	ErrOutsideTarget = errors.New("placement covers a cell outside the target")
)
