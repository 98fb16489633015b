package djb_test

import (
	"fmt"

	"github.com/aalvaropc/djbhash/djb"
)

func ExampleNewX33a() {
	h := djb.NewX33a()
	_, _ = h.Write([]byte("Ez"))
	fmt.Println(h.Sum64())
	// Output: 5862308
}

func ExampleNewX33x() {
	for _, in := range []string{"Ez", "FY"} {
		h := djb.NewX33x()
		_, _ = h.Write([]byte(in))
		fmt.Println(in, h.Sum64())
	}
	// Output:
	// Ez 5861786
	// FY 5861914
}

func ExampleNewX33aU32Php() {
	h := djb.NewX33aU32Php()
	_, _ = h.Write([]byte("Ez"))
	fmt.Printf("%d %#x\n", h.Sum32(), h.Sum32())
	// Output: 2153345956 0x805973a4
}

func ExampleNewWithSalt() {
	h, err := djb.NewWithSalt(djb.AlgX33a, 5387)
	if err != nil {
		panic(err)
	}
	_, _ = h.Write([]byte("FY"))
	fmt.Println(h.Sum64())
	// Output: 5868842
}
