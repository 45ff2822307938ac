// asterix/errors.go
package asterix

import (
	"errors"
	"fmt"

	"github.com/asterixkit/getafix/schema"
)

// Decoding error kinds. Every decoding failure is classified as exactly
// one of these; there are no silent skips.
var (
	ErrUnsupportedCategory = errors.New("unsupported category")
	ErrUnsupportedEdition  = errors.New("unsupported edition")
	ErrShortDatablock      = errors.New("datablock too short")
	ErrLengthMismatch      = errors.New("datablock length mismatch")
	ErrTruncated           = errors.New("truncated")
	ErrMisaligned          = errors.New("misaligned byte read")
	ErrOutOfBounds         = errors.New("window out of bounds")
	ErrFspecOverflow       = errors.New("FSPEC too long")
	ErrUnknownItem         = errors.New("unknown data item")
	ErrExtensionOverflow   = errors.New("too many extents")
	ErrRepetitiveOverflow  = errors.New("repetition exceeds record")
	ErrExplicitLength      = errors.New("invalid explicit length")
	ErrCompoundDepth       = errors.New("compound nesting too deep")
	ErrTrailingBytes       = errors.New("trailing bytes after last item")
	ErrMissingMandatory    = errors.New("mandatory item missing")
	ErrTooManyErrors       = errors.New("error budget exhausted")
	ErrDatablockTruncated  = errors.New("datablock truncated mid-record")
)

// DecodeError carries the classification and location of one decoding
// failure. Kind is always one of the sentinel errors above, reachable via
// errors.Is.
type DecodeError struct {
	Kind       error
	Category   schema.Category
	Item       string // data item ID, "" when not item-scoped
	ByteOffset int    // from the start of the buffer handed to the decoder
	BitOffset  int    // 0..7 within the byte, when the failure is bit-scoped
	Message    string

	unrecoverable bool
}

func (e *DecodeError) Error() string {
	loc := fmt.Sprintf("offset %d", e.ByteOffset)
	if e.BitOffset != 0 {
		loc = fmt.Sprintf("offset %d+%db", e.ByteOffset, e.BitOffset)
	}
	if e.Item != "" {
		loc = fmt.Sprintf("%s at %s", e.Item, loc)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %v (%s): %s", e.Category, e.Kind, loc, e.Message)
	}
	return fmt.Sprintf("%s: %v (%s)", e.Category, e.Kind, loc)
}

func (e *DecodeError) Unwrap() error {
	return e.Kind
}

// Unrecoverable reports whether the failure prevents locating the next
// record boundary. Records inside a datablock are not independently
// framed, so an unrecoverable record error terminates the enclosing
// datablock; subsequent datablocks remain decodable.
func (e *DecodeError) Unrecoverable() bool {
	return e.unrecoverable
}

// IsUnrecoverable reports whether err wraps an unrecoverable DecodeError
func IsUnrecoverable(err error) bool {
	var de *DecodeError
	return errors.As(err, &de) && de.unrecoverable
}
