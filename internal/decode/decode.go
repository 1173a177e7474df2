// Package decode implements a strict, stateless UTF-8 decoder over text.ByteView.
//
// Decoding never substitutes U+FFFD and never skips bytes: every malformed
// sequence is reported as an *Error carrying its Kind and byte span.
package decode

import "github.com/kpumuk/utfrange/internal/text"

// Unicode limits.
const (
	MaxRune      = 0x10FFFF
	UTFMax       = 4
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

const (
	maskx = 0x3F // 0011 1111
	mask2 = 0x1F // 0001 1111
	mask3 = 0x0F // 0000 1111
	mask4 = 0x07 // 0000 0111
)

// Smallest value that needs a sequence of the indexed width.
var minRune = [UTFMax + 1]rune{0, 0, 0x80, 0x800, 0x10000}

var payloadMask = [UTFMax + 1]byte{0, 0x7F, mask2, mask3, mask4}

// Unit is one decoded code point and the number of bytes it occupied.
type Unit struct {
	Rune  rune
	Width int
}

// At decodes the code point whose lead byte is at off.
//
// off must address a byte inside v; passing the end offset or anything
// beyond it is a programming error and panics.
func At(v text.ByteView, off text.ByteOffset) (Unit, error) {
	i := int(off)
	lead := v.At(i)

	cls := classes[lead]
	switch cls {
	case ClassASCII:
		return Unit{Rune: rune(lead), Width: 1}, nil
	case ClassContinuation, ClassInvalid:
		return Unit{}, newError(InvalidLeadByte, off, off+1, lead)
	}

	width := cls.Width()
	r := rune(lead & payloadMask[width])
	for k := 1; k < width; k++ {
		if i+k >= v.Len() {
			return Unit{}, newError(TruncatedSequence, off, v.End(), lead)
		}
		c := v.At(i + k)
		if !IsContinuation(c) {
			return Unit{}, newError(InvalidContinuationByte, off, off+text.ByteOffset(k+1), c)
		}
		r = r<<6 | rune(c&maskx)
	}

	end := off + text.ByteOffset(width)
	if r < minRune[width] {
		return Unit{}, newError(OverlongEncoding, off, end, lead)
	}
	if !IsScalar(r) {
		return Unit{}, newError(DisallowedScalarValue, off, end, lead)
	}
	return Unit{Rune: r, Width: width}, nil
}

// IsScalar reports whether r is a Unicode scalar value: 0..0x10FFFF
// excluding surrogates.
func IsScalar(r rune) bool {
	switch {
	case r < 0, r > MaxRune:
		return false
	case surrogateMin <= r && r <= surrogateMax:
		return false
	default:
		return true
	}
}
