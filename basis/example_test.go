package basis_test

import (
	"fmt"

	"github.com/tbsolve/tbsolve/basis"
)

// ExampleTree demonstrates basis enumeration: insert indices, generate the
// offset bijection, and look it up in both directions.
func ExampleTree() {
	tr := basis.NewTree()

	// A two-site chain with spin: index layout is {site, spin}.
	for site := 0; site < 2; site++ {
		for spin := 0; spin < 2; spin++ {
			tr.Insert(basis.New(site, spin))
		}
	}
	if err := tr.Generate(); err != nil {
		fmt.Println("generate:", err)

		return
	}

	fmt.Println("basis size:", tr.Size())
	off, _ := tr.OffsetOf(basis.New(1, 0))
	fmt.Println("offset of [1, 0]:", off)
	idx, _ := tr.IndexOf(0)
	fmt.Println("index at offset 0:", idx)

	// Output:
	// basis size: 4
	// offset of [1, 0]: 2
	// index at offset 0: [0, 0]
}

// ExampleTree_match demonstrates wildcard pattern search: all spin states
// on site 1.
func ExampleTree_match() {
	tr := basis.NewTree()
	for site := 0; site < 3; site++ {
		for spin := 0; spin < 2; spin++ {
			tr.Insert(basis.New(site, spin))
		}
	}

	for idx := range tr.Match(basis.New(1, basis.Wildcard)) {
		fmt.Println(idx)
	}

	// Output:
	// [1, 0]
	// [1, 1]
}
