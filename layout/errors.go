package layout

import "errors"

var (
	// ErrUnknownStrategy is returned when a strategy name or value is not one
	// of the recognized variants.
	ErrUnknownStrategy = errors.New("unknown strategy")

	ErrInvalidGroupSize = errors.New("invalid group size")
	ErrInvalidShape     = errors.New("invalid plate shape")
)
