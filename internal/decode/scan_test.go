package decode

import (
	"errors"
	"strings"
	"testing"

	"github.com/kpumuk/utfrange/internal/testutil"
	"github.com/kpumuk/utfrange/internal/text"
)

func TestScan(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		src       string
		count     int
		wantErr   error
		errOffset text.ByteOffset
	}{
		"empty":              {src: "", count: 0},
		"single ascii":       {src: "A", count: 1},
		"hiragana":           {src: "あいうえお", count: 5},
		"long ascii":         {src: strings.Repeat("abcdefgh", 5) + "xyz", count: 43},
		"ascii then multi":   {src: "abcdefghé", count: 9},
		"mixed widths":       {src: "aé€😀", count: 4},
		"truncated tail":     {src: "あいう\xe3\x81", count: 3, wantErr: ErrTruncatedSequence, errOffset: 9},
		"overlong slash":     {src: "a\xc0\xafb", count: 1, wantErr: ErrInvalidLeadByte, errOffset: 1},
		"overlong 3 byte":    {src: "a\xe0\x80\xafb", count: 1, wantErr: ErrOverlongEncoding, errOffset: 1},
		"error after ascii8": {src: "abcdefgh\xff", count: 8, wantErr: ErrInvalidLeadByte, errOffset: 8},
		"surrogate":          {src: "\xed\xa0\x80", count: 0, wantErr: ErrDisallowedScalarValue},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			v := text.ViewString(tc.src)
			count, err := Scan(v)
			if count != tc.count {
				t.Fatalf("Scan(%q) count = %d, want %d", tc.src, count, tc.count)
			}
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("Scan(%q) error = %v", tc.src, err)
				}
				if !Valid(v) || ValidPrefix(v) != v.End() {
					t.Fatalf("Valid/ValidPrefix disagree with Scan for %q", tc.src)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Scan(%q) error = %v, want %v", tc.src, err, tc.wantErr)
			}
			de, ok := AsError(err)
			if !ok || de.Offset() != tc.errOffset {
				t.Fatalf("Scan(%q) error offset = %v, want %d", tc.src, err, tc.errOffset)
			}
			if Valid(v) {
				t.Fatalf("Valid(%q) = true", tc.src)
			}
			if got := ValidPrefix(v); got != tc.errOffset {
				t.Fatalf("ValidPrefix(%q) = %d, want %d", tc.src, got, tc.errOffset)
			}
		})
	}
}

func TestScanCorpus(t *testing.T) {
	t.Parallel()

	for _, set := range []string{"valid", "invalid"} {
		files, err := testutil.CorpusFiles(set)
		if err != nil {
			t.Fatalf("CorpusFiles(%q): %v", set, err)
		}
		for _, path := range files {
			src := testutil.ReadFile(t, path)
			ref := testutil.ReferenceDecode(src)
			if ref.Valid != (set == "valid") {
				t.Fatalf("%s: reference validity = %v, fixture set %q", path, ref.Valid, set)
			}

			count, err := Scan(text.NewByteView(src))
			if count != len(ref.Runes) {
				t.Fatalf("%s: count = %d, reference %d", path, count, len(ref.Runes))
			}
			if (err == nil) != ref.Valid {
				t.Fatalf("%s: error = %v, reference valid = %v", path, err, ref.Valid)
			}
		}
	}
}

func TestScanDoesNotAllocate(t *testing.T) {
	v := text.ViewString(strings.Repeat("UTF-8 あいうえお 😀 ", 16))
	allocs := testing.AllocsPerRun(50, func() {
		if _, err := Scan(v); err != nil {
			panic(err)
		}
	})
	if allocs != 0 {
		t.Fatalf("allocs per run = %v, want 0", allocs)
	}
}
