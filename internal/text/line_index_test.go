package text

import "testing"

func TestLineIndexOffsetPointLF(t *testing.T) {
	t.Parallel()

	idx := NewLineIndex(ViewString("ab\ncd"))

	if got := idx.LineCount(); got != 2 {
		t.Fatalf("LineCount() = %d, want 2", got)
	}

	tests := map[ByteOffset]Point{
		0: {Line: 0, Column: 0, Char: 0},
		2: {Line: 0, Column: 2, Char: 2}, // before '\n'
		3: {Line: 1, Column: 0, Char: 0},
		5: {Line: 1, Column: 2, Char: 2}, // EOF
	}

	for off, want := range tests {
		got, err := idx.OffsetToPoint(off)
		if err != nil {
			t.Fatalf("OffsetToPoint(%d) error = %v", off, err)
		}
		if got != want {
			t.Fatalf("OffsetToPoint(%d) = %+v, want %+v", off, got, want)
		}

		roundTrip, err := idx.PointToOffset(got)
		if err != nil {
			t.Fatalf("PointToOffset(%+v) error = %v", got, err)
		}
		if roundTrip != off {
			t.Fatalf("PointToOffset(OffsetToPoint(%d)) = %d, want %d", off, roundTrip, off)
		}
	}
}

func TestLineIndexOffsetPointCRLFAndMixedNewlines(t *testing.T) {
	t.Parallel()

	idx := NewLineIndex(NewByteView([]byte("a\r\nb\n\nc")))

	if got := idx.LineCount(); got != 4 {
		t.Fatalf("LineCount() = %d, want 4", got)
	}

	cases := []struct {
		off  ByteOffset
		want Point
	}{
		{off: 0, want: Point{Line: 0, Column: 0, Char: 0}},
		{off: 1, want: Point{Line: 0, Column: 1, Char: 1}}, // '\r'
		{off: 2, want: Point{Line: 0, Column: 2, Char: 2}}, // '\n'
		{off: 3, want: Point{Line: 1, Column: 0, Char: 0}},
		{off: 5, want: Point{Line: 2, Column: 0, Char: 0}}, // empty line
		{off: 7, want: Point{Line: 3, Column: 1, Char: 1}}, // EOF
	}

	for _, tc := range cases {
		got, err := idx.OffsetToPoint(tc.off)
		if err != nil {
			t.Fatalf("OffsetToPoint(%d) error = %v", tc.off, err)
		}
		if got != tc.want {
			t.Fatalf("OffsetToPoint(%d) = %+v, want %+v", tc.off, got, tc.want)
		}
	}
}

func TestLineIndexMultibyteChars(t *testing.T) {
	t.Parallel()

	// "あ" is 3 bytes, "é" is 2 bytes, "😀" is 4 bytes.
	idx := NewLineIndex(ViewString("x\nあé😀z"))

	cases := []struct {
		off  ByteOffset
		want Point
	}{
		{off: 2, want: Point{Line: 1, Column: 0, Char: 0}},
		{off: 5, want: Point{Line: 1, Column: 3, Char: 1}},
		{off: 7, want: Point{Line: 1, Column: 5, Char: 2}},
		{off: 11, want: Point{Line: 1, Column: 9, Char: 3}},
		{off: 12, want: Point{Line: 1, Column: 10, Char: 4}}, // EOF
	}

	for _, tc := range cases {
		got, err := idx.OffsetToPoint(tc.off)
		if err != nil {
			t.Fatalf("OffsetToPoint(%d) error = %v", tc.off, err)
		}
		if got != tc.want {
			t.Fatalf("OffsetToPoint(%d) = %+v, want %+v", tc.off, got, tc.want)
		}
	}
}

func TestLineIndexPointToOffsetValidation(t *testing.T) {
	t.Parallel()

	idx := NewLineIndex(ViewString("x\ny"))

	if _, err := idx.PointToOffset(Point{Line: -1, Column: 0}); err == nil {
		t.Fatal("expected error for negative line")
	}
	if _, err := idx.PointToOffset(Point{Line: 10, Column: 0}); err == nil {
		t.Fatal("expected error for out-of-range line")
	}
	if _, err := idx.PointToOffset(Point{Line: 0, Column: -1}); err == nil {
		t.Fatal("expected error for negative column")
	}
	// Non-final line should not accept next-line start as a canonical point.
	if _, err := idx.PointToOffset(Point{Line: 0, Column: 2}); err == nil {
		t.Fatal("expected error for non-canonical next-line start column")
	}
}

func TestLineIndexOffsetValidation(t *testing.T) {
	t.Parallel()

	idx := NewLineIndex(ViewString("abc"))
	if _, err := idx.OffsetToPoint(-1); err == nil {
		t.Fatal("expected error for negative offset")
	}
	if _, err := idx.OffsetToPoint(4); err == nil {
		t.Fatal("expected error for offset past EOF")
	}

	var nilIdx *LineIndex
	if _, err := nilIdx.OffsetToPoint(0); err == nil {
		t.Fatal("expected error for nil index")
	}
	if nilIdx.LineCount() != 0 || nilIdx.SourceLen() != 0 {
		t.Fatal("nil index should report zero lines and length")
	}
}

func TestLineIndexLineSpan(t *testing.T) {
	t.Parallel()

	idx := NewLineIndex(ViewString("ab\r\ncd\n"))

	tests := map[int]Span{
		0: {Start: 0, End: 2},
		1: {Start: 4, End: 6},
		2: {Start: 7, End: 7},
	}
	for line, want := range tests {
		got, err := idx.LineSpan(line)
		if err != nil {
			t.Fatalf("LineSpan(%d) error = %v", line, err)
		}
		if got != want {
			t.Fatalf("LineSpan(%d) = %s, want %s", line, got, want)
		}
	}
	if _, err := idx.LineSpan(3); err == nil {
		t.Fatal("expected error for out-of-range line")
	}
}
