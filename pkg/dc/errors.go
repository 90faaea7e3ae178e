package dc

import "errors"

var (
	// ErrInvalidRange indicates a lattice range whose minimum is not below
	// its maximum. Ranges are validated before any field evaluation.
	ErrInvalidRange = errors.New("dc: range min must be less than range max")
)
