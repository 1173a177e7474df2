package decode

import (
	"errors"
	"fmt"

	"github.com/kpumuk/utfrange/internal/text"
)

// Kind identifies the category of a malformed UTF-8 sequence.
type Kind string

// Kind values reported by the decoder.
const (
	InvalidLeadByte         Kind = "UTF8_INVALID_LEAD_BYTE"
	TruncatedSequence       Kind = "UTF8_TRUNCATED_SEQUENCE"
	InvalidContinuationByte Kind = "UTF8_INVALID_CONTINUATION"
	OverlongEncoding        Kind = "UTF8_OVERLONG_ENCODING"
	DisallowedScalarValue   Kind = "UTF8_DISALLOWED_SCALAR"
)

var (
	// ErrMalformed matches every decoding failure.
	ErrMalformed = errors.New("malformed UTF-8")

	ErrInvalidLeadByte         = errors.New("invalid UTF-8 lead byte")
	ErrTruncatedSequence       = errors.New("truncated UTF-8 sequence")
	ErrInvalidContinuationByte = errors.New("invalid UTF-8 continuation byte")
	ErrOverlongEncoding        = errors.New("overlong UTF-8 encoding")
	ErrDisallowedScalarValue   = errors.New("disallowed Unicode scalar value")
)

// Sentinel returns the sentinel error matched by failures of kind k.
func (k Kind) Sentinel() error {
	switch k {
	case InvalidLeadByte:
		return ErrInvalidLeadByte
	case TruncatedSequence:
		return ErrTruncatedSequence
	case InvalidContinuationByte:
		return ErrInvalidContinuationByte
	case OverlongEncoding:
		return ErrOverlongEncoding
	case DisallowedScalarValue:
		return ErrDisallowedScalarValue
	default:
		return ErrMalformed
	}
}

// Error describes a malformed sequence found at a known position.
type Error struct {
	Kind Kind
	// Span covers the bytes examined before the failure was detected,
	// starting at the lead byte.
	Span text.Span
	// Byte is the byte that made the sequence malformed: the lead byte for
	// lead, overlong and scalar failures, the offending byte for a bad
	// continuation, and the lead byte for truncation.
	Byte byte
}

func newError(k Kind, start, end text.ByteOffset, b byte) *Error {
	return &Error{Kind: k, Span: text.Span{Start: start, End: end}, Byte: b}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v at offset %d (byte 0x%02X)", e.Kind.Sentinel(), e.Span.Start, e.Byte)
}

// Is reports whether target is ErrMalformed or the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	return target == ErrMalformed || target == e.Kind.Sentinel()
}

// Offset returns the offset of the lead byte of the malformed sequence.
func (e *Error) Offset() text.ByteOffset {
	return e.Span.Start
}

// AsError extracts a decoding failure from err.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
