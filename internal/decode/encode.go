package decode

import "fmt"

const (
	tx = 0x80 // 1000 0000
	t2 = 0xC0 // 1100 0000
	t3 = 0xE0 // 1110 0000
	t4 = 0xF0 // 1111 0000
)

// EncodedLen returns the number of bytes needed to encode r,
// or -1 if r is not a Unicode scalar value.
func EncodedLen(r rune) int {
	switch {
	case !IsScalar(r):
		return -1
	case r < minRune[2]:
		return 1
	case r < minRune[3]:
		return 2
	case r < minRune[4]:
		return 3
	default:
		return 4
	}
}

// AppendRune appends the UTF-8 encoding of r to dst.
//
// Surrogates, negative values and values above MaxRune are rejected with an
// error matching ErrDisallowedScalarValue; dst is returned unchanged.
func AppendRune(dst []byte, r rune) ([]byte, error) {
	switch EncodedLen(r) {
	case 1:
		return append(dst, byte(r)), nil
	case 2:
		return append(dst, t2|byte(r>>6), tx|byte(r)&maskx), nil
	case 3:
		return append(dst, t3|byte(r>>12), tx|byte(r>>6)&maskx, tx|byte(r)&maskx), nil
	case 4:
		return append(dst, t4|byte(r>>18), tx|byte(r>>12)&maskx, tx|byte(r>>6)&maskx, tx|byte(r)&maskx), nil
	default:
		return dst, fmt.Errorf("encode U+%04X: %w", r, ErrDisallowedScalarValue)
	}
}
