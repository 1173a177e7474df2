// Package testutil provides shared helpers for repository tests.
package testutil

import "unicode/utf8"

// Reference is the result of decoding a buffer with the standard library,
// used as an independent oracle for the strict decoder.
type Reference struct {
	Runes []rune
	// Offsets holds the byte offset of each rune in Runes.
	Offsets []int
	// Valid reports whether the whole buffer is well-formed.
	Valid bool
	// FailAt is the offset of the first malformed byte, or len(src) when Valid.
	FailAt int
}

// ReferenceDecode decodes src with unicode/utf8, stopping at the first malformed sequence.
func ReferenceDecode(src []byte) Reference {
	ref := Reference{Valid: true, FailAt: len(src)}
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size == 1 {
			ref.Valid = false
			ref.FailAt = i
			return ref
		}
		ref.Runes = append(ref.Runes, r)
		ref.Offsets = append(ref.Offsets, i)
		i += size
	}
	return ref
}

// EncodeRunes encodes runes with unicode/utf8. Invalid runes become U+FFFD.
func EncodeRunes(runes []rune) []byte {
	var out []byte
	for _, r := range runes {
		out = utf8.AppendRune(out, r)
	}
	return out
}
