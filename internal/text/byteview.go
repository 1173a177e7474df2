package text

import (
	"fmt"
	"unsafe"
)

// ByteView is a read-only, non-owning view over a contiguous run of bytes.
//
// The view never copies its source. The caller keeps the backing storage
// alive and unmodified for as long as the view (or anything derived from it)
// is in use.
type ByteView struct {
	b []byte
}

// NewByteView wraps b without copying it.
func NewByteView(b []byte) ByteView {
	return ByteView{b: b}
}

// ViewString wraps the bytes of s without copying them.
func ViewString(s string) ByteView {
	if s == "" {
		return ByteView{}
	}
	return ByteView{b: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// Len returns the number of bytes in the view.
func (v ByteView) Len() int {
	return len(v.b)
}

// IsEmpty reports whether the view covers zero bytes.
func (v ByteView) IsEmpty() bool {
	return len(v.b) == 0
}

// At returns the byte at index i.
//
// Indexing outside [0, Len()) is a programming error and panics.
func (v ByteView) At(i int) byte {
	if i < 0 || i >= len(v.b) {
		panic(fmt.Sprintf("text: ByteView index %d out of range [0,%d)", i, len(v.b)))
	}
	return v.b[i]
}

// Contains reports whether off addresses a byte inside the view.
func (v ByteView) Contains(off ByteOffset) bool {
	return off.IsValid() && int(off) < len(v.b)
}

// End returns the offset one past the last byte.
func (v ByteView) End() ByteOffset {
	return ByteOffset(len(v.b))
}

// Slice returns the bytes covered by s.
//
// The returned slice aliases the view and must not be modified.
func (v ByteView) Slice(s Span) []byte {
	if !s.IsValid() || int(s.End) > len(v.b) {
		panic(fmt.Sprintf("text: span %s out of range for view of %d bytes", s, len(v.b)))
	}
	return v.b[s.Start:s.End:s.End]
}

// Bytes returns the underlying bytes. Callers must treat them as read-only.
func (v ByteView) Bytes() []byte {
	return v.b[:len(v.b):len(v.b)]
}

// String returns a copy of the viewed bytes as a string.
func (v ByteView) String() string {
	return string(v.b)
}

// SameAs reports whether v and o view the same bytes of the same storage.
// Content is not compared. The toolchain may back identical constant
// buffers, such as two []byte("...") literals that are never written,
// with the same memory, so views over them can report true.
func (v ByteView) SameAs(o ByteView) bool {
	return len(v.b) == len(o.b) && unsafe.SliceData(v.b) == unsafe.SliceData(o.b)
}
