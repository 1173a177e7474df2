package utfrange

import (
	"errors"

	"github.com/kpumuk/utfrange/internal/decode"
	"github.com/kpumuk/utfrange/internal/text"
)

type (
	// ByteView is a read-only, non-owning view over a byte buffer.
	ByteView = text.ByteView
	// ByteOffset is a byte index into a ByteView.
	ByteOffset = text.ByteOffset
	// Span is a half-open byte range [Start, End).
	Span = text.Span
	// DecodedUnit is one decoded code point and its encoded width.
	DecodedUnit = decode.Unit
	// DecodeError describes the first malformed sequence in a buffer.
	DecodeError = decode.Error
	// ErrorKind identifies the category of a malformed sequence.
	ErrorKind = decode.Kind
)

// ErrorKind values.
const (
	InvalidLeadByte         = decode.InvalidLeadByte
	TruncatedSequence       = decode.TruncatedSequence
	InvalidContinuationByte = decode.InvalidContinuationByte
	OverlongEncoding        = decode.OverlongEncoding
	DisallowedScalarValue   = decode.DisallowedScalarValue
)

var (
	// ErrMalformed matches every *DecodeError.
	ErrMalformed = decode.ErrMalformed

	ErrInvalidLeadByte         = decode.ErrInvalidLeadByte
	ErrTruncatedSequence       = decode.ErrTruncatedSequence
	ErrInvalidContinuationByte = decode.ErrInvalidContinuationByte
	ErrOverlongEncoding        = decode.ErrOverlongEncoding
	ErrDisallowedScalarValue   = decode.ErrDisallowedScalarValue

	// ErrIndexOutOfRange is returned by Range.Index for indexes outside [0, Size()).
	ErrIndexOutOfRange = errors.New("code point index out of range")
	// ErrIteratorDone is returned by Iterator.Peek after a clean end of input.
	ErrIteratorDone = errors.New("iterator is done")
)

// NewByteView wraps b without copying it.
func NewByteView(b []byte) ByteView {
	return text.NewByteView(b)
}

// ViewString wraps the bytes of s without copying them.
func ViewString(s string) ByteView {
	return text.ViewString(s)
}

// DecodeAt decodes the code point starting at off.
//
// off must be inside v. The result does not depend on anything but v and off.
func DecodeAt(v ByteView, off ByteOffset) (DecodedUnit, error) {
	return decode.At(v, off)
}

// AppendRune appends the UTF-8 encoding of the scalar value r to dst.
func AppendRune(dst []byte, r rune) ([]byte, error) {
	return decode.AppendRune(dst, r)
}
