package text

import (
	"bytes"
	"strings"
	"testing"
)

func TestByteViewAccess(t *testing.T) {
	t.Parallel()

	tests := map[string]ByteView{
		"bytes":  NewByteView([]byte("héllo")),
		"string": ViewString("héllo"),
	}

	for name, v := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := v.Len(); got != 6 {
				t.Fatalf("Len() = %d, want 6", got)
			}
			if v.IsEmpty() {
				t.Fatal("expected non-empty view")
			}
			if got := v.At(0); got != 'h' {
				t.Fatalf("At(0) = %q, want 'h'", got)
			}
			if got := v.At(1); got != 0xC3 {
				t.Fatalf("At(1) = %#x, want 0xc3", got)
			}
			if got := v.End(); got != 6 {
				t.Fatalf("End() = %d, want 6", got)
			}
			if got := string(v.Slice(Span{Start: 1, End: 3})); got != "é" {
				t.Fatalf("Slice([1,3)) = %q, want %q", got, "é")
			}
			if got := v.String(); got != "héllo" {
				t.Fatalf("String() = %q", got)
			}
		})
	}
}

func TestByteViewDoesNotCopy(t *testing.T) {
	t.Parallel()

	src := []byte("abc")
	v := NewByteView(src)
	src[0] = 'z'
	if got := v.At(0); got != 'z' {
		t.Fatalf("At(0) = %q, want view to observe source storage", got)
	}
	if &v.Bytes()[0] != &src[0] {
		t.Fatal("Bytes() should alias the source buffer")
	}
}

func TestByteViewEmpty(t *testing.T) {
	t.Parallel()

	for name, v := range map[string]ByteView{
		"zero":         {},
		"nil bytes":    NewByteView(nil),
		"empty bytes":  NewByteView([]byte{}),
		"empty string": ViewString(""),
	} {
		if !v.IsEmpty() || v.Len() != 0 {
			t.Fatalf("%s: expected empty view, Len() = %d", name, v.Len())
		}
		if v.Contains(0) {
			t.Fatalf("%s: empty view should not contain offset 0", name)
		}
		if len(v.Bytes()) != 0 {
			t.Fatalf("%s: Bytes() should be empty", name)
		}
	}
}

func TestByteViewContains(t *testing.T) {
	t.Parallel()

	v := ViewString("ab")
	tests := map[ByteOffset]bool{-1: false, 0: true, 1: true, 2: false}
	for off, want := range tests {
		if got := v.Contains(off); got != want {
			t.Fatalf("Contains(%d) = %v, want %v", off, got, want)
		}
	}
}

func TestByteViewOutOfRangePanics(t *testing.T) {
	t.Parallel()

	v := ViewString("ab")
	tests := map[string]func(){
		"index past end": func() { _ = v.At(2) },
		"negative index": func() { _ = v.At(-1) },
		"span past end":  func() { _ = v.Slice(Span{Start: 1, End: 3}) },
		"inverted span":  func() { _ = v.Slice(Span{Start: 2, End: 1}) },
	}

	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic")
				}
				msg, ok := r.(string)
				if !ok || !strings.HasPrefix(msg, "text: ") {
					t.Fatalf("panic value = %v, want text: prefixed message", r)
				}
			}()
			fn()
		})
	}
}

func TestByteViewSameAs(t *testing.T) {
	t.Parallel()

	src := []byte("abcdef")
	a := NewByteView(src)
	if !a.SameAs(NewByteView(src)) {
		t.Fatal("views over the same slice should be the same")
	}
	// A clone is a fresh allocation; two identical []byte literals may not be.
	other := bytes.Clone(src)
	if !bytes.Equal(src, other) {
		t.Fatal("clone should hold the same bytes")
	}
	if a.SameAs(NewByteView(other)) {
		t.Fatal("views over equal but distinct storage should differ")
	}
	if a.SameAs(NewByteView(src[:3])) {
		t.Fatal("views of different length should differ")
	}
}
