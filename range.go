package utfrange

import (
	"fmt"
	"iter"
	"sync"

	"github.com/kpumuk/utfrange/internal/decode"
	"github.com/kpumuk/utfrange/internal/text"
)

// Range is a sequence of code points over borrowed UTF-8 bytes.
//
// Constructing a Range is constant time. The first call to Size, Len,
// IsValid or Err scans the whole buffer once; later calls reuse the result.
type Range struct {
	view text.ByteView

	scanOnce sync.Once
	count    int
	err      error
}

// New returns a Range over b. b is not copied.
func New(b []byte) *Range {
	return FromView(text.NewByteView(b))
}

// FromString returns a Range over the bytes of s. s is not copied.
func FromString(s string) *Range {
	return FromView(text.ViewString(s))
}

// FromView returns a Range over v.
func FromView(v ByteView) *Range {
	return &Range{view: v}
}

func (r *Range) scan() {
	r.scanOnce.Do(func() {
		r.count, r.err = decode.Scan(r.view)
	})
}

// Size returns the number of code points in the range.
//
// For malformed input it returns the number of code points preceding the
// first malformed sequence together with a *DecodeError; the count alone
// never describes the whole buffer in that case.
func (r *Range) Size() (int, error) {
	r.scan()
	return r.count, r.err
}

// Len returns the number of code points, or -1 if the input is malformed.
func (r *Range) Len() int {
	r.scan()
	if r.err != nil {
		return -1
	}
	return r.count
}

// IsValid reports whether the whole buffer is well-formed UTF-8.
func (r *Range) IsValid() bool {
	r.scan()
	return r.err == nil
}

// Err returns the *DecodeError for the first malformed sequence, or nil.
func (r *Range) Err() error {
	r.scan()
	return r.err
}

// ValidPrefix returns the byte length of the longest well-formed prefix.
func (r *Range) ValidPrefix() ByteOffset {
	r.scan()
	if de, ok := decode.AsError(r.err); ok {
		return de.Offset()
	}
	return r.view.End()
}

// Begin returns a new iterator positioned at the first code point.
func (r *Range) Begin() *Iterator {
	return newIterator(r.view)
}

// End returns an iterator in the terminal state, for comparison with Iterator.Equal.
func (r *Range) End() *Iterator {
	return &Iterator{view: r.view, off: r.view.End(), state: stateEnd}
}

// All returns an iterator over byte offsets and code points.
//
// The sequence stops at the first malformed sequence; use Err to tell a
// clean end from a failure.
func (r *Range) All() iter.Seq2[ByteOffset, rune] {
	return func(yield func(ByteOffset, rune) bool) {
		it := r.Begin()
		for it.Next() {
			if !yield(it.Span().Start, it.Value()) {
				return
			}
		}
	}
}

// Runes decodes the range into a new slice.
//
// On malformed input it returns the code points before the first malformed
// sequence and the *DecodeError.
func (r *Range) Runes() ([]rune, error) {
	n, err := r.Size()
	out := make([]rune, 0, n)
	for it := r.Begin(); it.Next(); {
		out = append(out, it.Value())
	}
	return out, err
}

// Index returns the n-th code point (0-based) and its byte span. It runs in O(n).
func (r *Range) Index(n int) (rune, Span, error) {
	if n < 0 {
		return 0, Span{}, fmt.Errorf("index %d: %w", n, ErrIndexOutOfRange)
	}
	it := r.Begin()
	for i := 0; it.Next(); i++ {
		if i == n {
			return it.Value(), it.Span(), nil
		}
	}
	if err := it.Err(); err != nil {
		return 0, Span{}, err
	}
	return 0, Span{}, fmt.Errorf("index %d: %w", n, ErrIndexOutOfRange)
}

// View returns the underlying byte view.
func (r *Range) View() ByteView {
	return r.view
}

// ByteLen returns the length of the range in bytes.
func (r *Range) ByteLen() int {
	return r.view.Len()
}

// IsEmpty reports whether the range covers zero bytes.
func (r *Range) IsEmpty() bool {
	return r.view.IsEmpty()
}
