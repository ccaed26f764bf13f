package invoice

import "errors"

var (
	// ErrInvalidQuantity rejects zero or negative quantities before a
	// line is appended.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)
