package utfrange

import (
	"github.com/kpumuk/utfrange/internal/decode"
	"github.com/kpumuk/utfrange/internal/text"
)

type iteratorState uint8

const (
	stateActive iteratorState = iota
	stateEnd
	stateFailed
)

// Iterator is a forward-only cursor over the code points of a Range.
//
// The cursor always sits on a code point boundary or at the end of the
// view. When it meets a malformed sequence it stops there, without
// advancing, and reports the failure through Err.
//
//	it := rng.Begin()
//	for it.Next() {
//		fmt.Println(it.Value())
//	}
//	if err := it.Err(); err != nil {
//		// malformed input
//	}
type Iterator struct {
	view  text.ByteView
	off   text.ByteOffset
	state iteratorState
	cur   rune
	span  text.Span
	err   error
}

func newIterator(v text.ByteView) *Iterator {
	it := &Iterator{view: v}
	if v.IsEmpty() {
		it.state = stateEnd
	}
	return it
}

// Next decodes the code point at the cursor and advances past it.
// It returns false at the end of the view or on malformed input.
func (it *Iterator) Next() bool {
	if it.state != stateActive {
		return false
	}

	u, err := decode.At(it.view, it.off)
	if err != nil {
		it.state = stateFailed
		it.err = err
		return false
	}

	next := it.off + text.ByteOffset(u.Width)
	it.cur = u.Rune
	it.span = text.Span{Start: it.off, End: next}
	it.off = next
	if next == it.view.End() {
		it.state = stateEnd
	}
	return true
}

// Value returns the code point produced by the last successful Next.
func (it *Iterator) Value() rune {
	return it.cur
}

// Span returns the bytes occupied by the code point returned by Value.
func (it *Iterator) Span() Span {
	return it.span
}

// Offset returns the cursor position: the start of the next code point.
func (it *Iterator) Offset() ByteOffset {
	return it.off
}

// Peek decodes the code point at the cursor without advancing.
func (it *Iterator) Peek() (DecodedUnit, error) {
	switch it.state {
	case stateFailed:
		return DecodedUnit{}, it.err
	case stateEnd:
		return DecodedUnit{}, ErrIteratorDone
	}
	return decode.At(it.view, it.off)
}

// Err returns the *DecodeError that stopped iteration, or nil.
func (it *Iterator) Err() error {
	return it.err
}

// Done reports whether the iterator reached the end or failed.
func (it *Iterator) Done() bool {
	return it.state != stateActive
}

// Equal reports whether both iterators traverse the same view and sit at the
// same position. An iterator that finished cleanly equals Range.End; one that
// stopped on malformed input never does.
//
// Sharing a view means sharing backing memory, as reported by
// ByteView.SameAs. Ranges built from identical constant byte literals may
// share memory and therefore compare equal.
func (it *Iterator) Equal(other *Iterator) bool {
	if it == nil || other == nil {
		return it == other
	}
	return it.view.SameAs(other.view) && it.off == other.off && it.state == other.state
}
