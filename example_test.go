package multimerge_test

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/sweeneyde/multimerge"
)

// ExampleMerge merges several ascending sequences, empty ones included.
func ExampleMerge() {
	merged := multimerge.Merge(
		slices.Values([]int{1, 3, 5, 7}),
		slices.Values([]int{0, 2, 4, 8}),
		slices.Values([]int{5, 10, 15, 20}),
		slices.Values([]int{}),
		slices.Values([]int{25}),
	)

	for v := range merged {
		fmt.Printf("%d ", v)
	}

	// Output: 0 1 2 3 4 5 5 7 8 10 15 20 25
}

// ExampleMergeKey orders items by a derived key, here the string
// length. Ties keep the order of the input sequences.
func ExampleMergeKey() {
	merged := multimerge.MergeKey(
		func(s string) int { return len(s) },
		slices.Values([]string{"dog", "horse"}),
		slices.Values([]string{"cat", "fish", "kangaroo"}),
	)

	for s := range merged {
		fmt.Printf("%s ", s)
	}

	// Output: dog cat fish horse kangaroo
}

// ExampleMergeDesc merges sequences that are sorted largest-first.
func ExampleMergeDesc() {
	merged := multimerge.MergeDesc(
		slices.Values([]int{7, 5, 3, 1}),
		slices.Values([]int{8, 4, 2, 0}),
	)

	for v := range merged {
		fmt.Printf("%d ", v)
	}

	// Output: 8 7 5 4 3 2 1 0
}

// ExampleNew shows the pull-style iterator over sources that can fail.
func ExampleNew() {
	src := func(values ...int) iter.Seq2[int, error] {
		return func(yield func(int, error) bool) {
			for _, v := range values {
				if !yield(v, nil) {
					return
				}
			}
		}
	}

	it := multimerge.New(
		[]iter.Seq2[int, error]{src(1, 4), src(2, 3)},
		multimerge.Lift(cmp.Compare[int]),
		false,
	)
	defer it.Stop()

	for v, ok := it.Next(); ok; v, ok = it.Next() {
		fmt.Printf("%d ", v)
	}
	if err := it.Err(); err != nil {
		fmt.Println("merge failed:", err)
	}

	// Output: 1 2 3 4
}
