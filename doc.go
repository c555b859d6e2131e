// Package multimerge merges any number of already-sorted sequences into
// one sorted lazy sequence using a tournament (winner) tree. It does the
// minimum number of comparisons per emitted item and needs no per-item
// bookkeeping such as tuple wrapping or source-index tie-breaking, which
// makes it suited to log merging, sorted-file merge passes, and any other
// place ordered streams must be combined on demand.
//
// Key features:
//   - Generic over the item type, with optional key extraction
//   - Ascending and descending modes with a stable, earlier-source
//     tie-break in both
//   - O(log k) comparisons per item for k live sources
//   - The tree collapses as sources drain; a single remaining source is
//     streamed through with no key computation at all
//   - Error-aware sources via iter.Seq2[V, error]
//
// Basic usage:
//
//	a := slices.Values([]int{1, 3, 5, 7})
//	b := slices.Values([]int{0, 2, 4, 8})
//	c := slices.Values([]int{5, 10, 15, 20})
//
//	for v := range multimerge.Merge(a, b, c) {
//	    fmt.Println(v)
//	}
//
// Merging by a derived key:
//
//	words := multimerge.MergeKey(
//	    func(s string) int { return len(s) },
//	    slices.Values([]string{"dog", "horse"}),
//	    slices.Values([]string{"cat", "fish", "kangaroo"}),
//	)
//
// Sources that can fail, fallible key functions, and fallible
// comparisons go through New and NewKey, which return an *Iterator with
// explicit Next/Err/Stop control. All merged views are single-pass: a
// source is never pulled more than one element ahead of what has been
// emitted, and nothing is ever re-read after a failure.
//
// Implementation details:
// The tree is built lazily on the first pull. Each leaf owns one source
// and its front item; each internal node caches which descendant leaf
// currently wins its subtree. Emitting an item refills exactly one leaf
// and replays only the contests on that leaf's path to the root. A leaf
// whose source is exhausted is spliced out by promoting its sibling into
// the parent slot, so the tree shrinks monotonically and no maximum
// sentinel value is ever needed.
package multimerge
