package str

import "errors"

var (
	// ErrIndexOutOfBounds reports a codepoint index or range that is
	// inconsistent with the current codepoint length.
	ErrIndexOutOfBounds = errors.New("str: index out of bounds")

	// ErrInvalidLeadingByte reports a byte that cannot start a UTF-8
	// codepoint encoding.
	ErrInvalidLeadingByte = errors.New("str: invalid leading byte")
)
