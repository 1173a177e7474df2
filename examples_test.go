package utfrange_test

import (
	"errors"
	"fmt"

	"github.com/kpumuk/utfrange"
)

func ExampleRange_Size() {
	n, err := utfrange.FromString("あいうえお").Size()
	fmt.Println(n, err)
	// Output: 5 <nil>
}

func ExampleRange_Begin() {
	rng := utfrange.FromString("añ€")
	it := rng.Begin()
	for it.Next() {
		fmt.Printf("%U %s\n", it.Value(), it.Span())
	}
	fmt.Println(it.Equal(rng.End()))
	// Output: U+0061 [0,1)
	//U+00F1 [1,3)
	//U+20AC [3,6)
	//true
}

func ExampleRange_All() {
	for off, r := range utfrange.FromString("hé").All() {
		fmt.Println(off, string(r))
	}
	// Output: 0 h
	//1 é
}

func ExampleRange_IsValid() {
	rng := utfrange.New([]byte{'a', 0xE3, 0x81})
	fmt.Println(rng.IsValid())

	var de *utfrange.DecodeError
	if errors.As(rng.Err(), &de) {
		fmt.Println(de.Kind, de.Offset())
	}
	// Output: false
	//UTF8_TRUNCATED_SEQUENCE 1
}

func ExampleRange_Size_malformed() {
	n, err := utfrange.New([]byte("ok\xc0\xaf")).Size()
	fmt.Println(n, errors.Is(err, utfrange.ErrMalformed))
	fmt.Println(err)
	// Output: 2 true
	//invalid UTF-8 lead byte at offset 2 (byte 0xC0)
}
