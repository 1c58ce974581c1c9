package parser

import "errors"

// Parse failure classes. Every malformed line surfaces as one of these
// sentinels, usually wrapped with positional context; callers can
// discriminate with errors.Is.
var (
	// ErrEmptyLine is returned when a line (or batch element) is empty.
	ErrEmptyLine = errors.New("line length cannot be 0")

	// ErrMissingTagsTerminator is returned when a tags segment is not
	// followed by a space.
	ErrMissingTagsTerminator = errors.New("tags segment has no terminating space")

	// ErrMalformedTag is returned when a tag entry contains no '='.
	ErrMalformedTag = errors.New("malformed tag entry")

	// ErrMissingSourceTerminator is returned when a source segment is
	// not followed by a space.
	ErrMissingSourceTerminator = errors.New("source segment has no terminating space")

	// ErrMissingCommandTerminator is returned when no space follows the
	// command token.
	ErrMissingCommandTerminator = errors.New("command has no terminating space")
)
