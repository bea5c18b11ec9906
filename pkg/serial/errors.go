package serial

import "errors"

var (
	// ErrSyntax is returned by Parse when the input is not an integer literal.
	ErrSyntax = errors.New("invalid serial number syntax")

	// ErrOutOfRange is returned when a value does not fit the serial width
	// without truncation.
	ErrOutOfRange = errors.New("value out of range for serial width")
)
