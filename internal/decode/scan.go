package decode

import (
	"encoding/binary"

	"github.com/kpumuk/utfrange/internal/text"
)

const asciiMask8 = 0x8080808080808080

// Scan decodes v from start to end and returns the number of code points.
//
// On malformed input it returns the number of code points decoded before
// the first malformed sequence together with the *Error describing it.
func Scan(v text.ByteView) (count int, err error) {
	b := v.Bytes()
	off := 0
	for off < len(b) {
		// Process 8 ASCII bytes at once.
		if off+8 <= len(b) && binary.LittleEndian.Uint64(b[off:])&asciiMask8 == 0 {
			count += 8
			off += 8
			continue
		}
		if b[off] < 0x80 {
			count++
			off++
			continue
		}
		u, err := At(v, text.ByteOffset(off))
		if err != nil {
			return count, err
		}
		count++
		off += u.Width
	}
	return count, nil
}

// Valid reports whether v is entirely well-formed UTF-8.
func Valid(v text.ByteView) bool {
	_, err := Scan(v)
	return err == nil
}

// ValidPrefix returns the length in bytes of the longest well-formed prefix of v.
func ValidPrefix(v text.ByteView) text.ByteOffset {
	if _, err := Scan(v); err != nil {
		if de, ok := AsError(err); ok {
			return de.Offset()
		}
	}
	return v.End()
}
