package decode

// Class is the role a single byte can play in a UTF-8 sequence.
type Class uint8

// Class values.
const (
	ClassInvalid Class = iota
	ClassASCII
	ClassContinuation
	ClassLead2
	ClassLead3
	ClassLead4
)

func (c Class) String() string {
	switch c {
	case ClassASCII:
		return "ASCII"
	case ClassContinuation:
		return "Continuation"
	case ClassLead2:
		return "Lead2"
	case ClassLead3:
		return "Lead3"
	case ClassLead4:
		return "Lead4"
	default:
		return "Invalid"
	}
}

// Width returns the encoded width announced by a byte of this class,
// or 0 for continuation and invalid bytes.
func (c Class) Width() int {
	switch c {
	case ClassASCII:
		return 1
	case ClassLead2:
		return 2
	case ClassLead3:
		return 3
	case ClassLead4:
		return 4
	default:
		return 0
	}
}

// The names are chosen to keep the table below aligned.
const (
	xx = ClassInvalid
	as = ClassASCII
	cb = ClassContinuation
	l2 = ClassLead2
	l3 = ClassLead3
	l4 = ClassLead4
)

var classes = [256]Class{
	//   1   2   3   4   5   6   7   8   9   A   B   C   D   E   F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x00-0x0F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x10-0x1F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x20-0x2F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x30-0x3F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x40-0x4F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x50-0x5F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x60-0x6F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x70-0x7F
	//   1   2   3   4   5   6   7   8   9   A   B   C   D   E   F
	cb, cb, cb, cb, cb, cb, cb, cb, cb, cb, cb, cb, cb, cb, cb, cb, // 0x80-0x8F
	cb, cb, cb, cb, cb, cb, cb, cb, cb, cb, cb, cb, cb, cb, cb, cb, // 0x90-0x9F
	cb, cb, cb, cb, cb, cb, cb, cb, cb, cb, cb, cb, cb, cb, cb, cb, // 0xA0-0xAF
	cb, cb, cb, cb, cb, cb, cb, cb, cb, cb, cb, cb, cb, cb, cb, cb, // 0xB0-0xBF
	xx, xx, l2, l2, l2, l2, l2, l2, l2, l2, l2, l2, l2, l2, l2, l2, // 0xC0-0xCF
	l2, l2, l2, l2, l2, l2, l2, l2, l2, l2, l2, l2, l2, l2, l2, l2, // 0xD0-0xDF
	l3, l3, l3, l3, l3, l3, l3, l3, l3, l3, l3, l3, l3, l3, l3, l3, // 0xE0-0xEF
	l4, l4, l4, l4, l4, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0xF0-0xFF
}

// Classify returns the class of b.
func Classify(b byte) Class {
	return classes[b]
}

// Width returns the encoded width announced by lead byte b (1-4),
// or 0 when b cannot start a sequence.
func Width(b byte) int {
	return classes[b].Width()
}

// IsContinuation reports whether b is a continuation byte (0x80-0xBF).
func IsContinuation(b byte) bool {
	return b&0xC0 == 0x80
}
