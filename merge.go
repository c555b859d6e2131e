package multimerge

import (
	"cmp"
	"iter"
)

// Merge merges already-sorted sequences into one ascending sequence.
// When two sources hold equal values, the value from the
// earlier-positioned source is yielded first. The returned sequence is
// single-use.
func Merge[V cmp.Ordered](seqs ...iter.Seq[V]) iter.Seq[V] {
	return MergeFunc(cmp.Compare[V], seqs...)
}

// MergeDesc merges descending sequences into one descending sequence,
// with the same earlier-source bias on ties as Merge.
func MergeDesc[V cmp.Ordered](seqs ...iter.Seq[V]) iter.Seq[V] {
	return drain(New(infallible(seqs), Lift(cmp.Compare[V]), true))
}

// MergeFunc merges sequences that are sorted under the given
// comparison function.
func MergeFunc[V any](compare func(V, V) int, seqs ...iter.Seq[V]) iter.Seq[V] {
	return drain(New(infallible(seqs), Lift(compare), false))
}

// MergeKey merges sequences sorted by the given key function. The key
// of each item is computed once, and never when merging fewer than two
// sequences.
func MergeKey[V any, K cmp.Ordered](key func(V) K, seqs ...iter.Seq[V]) iter.Seq[V] {
	return drain(NewKey(infallible(seqs), liftKey(key), Lift(cmp.Compare[K]), false))
}

// MergeKeyDesc is MergeKey for descending sequences.
func MergeKeyDesc[V any, K cmp.Ordered](key func(V) K, seqs ...iter.Seq[V]) iter.Seq[V] {
	return drain(NewKey(infallible(seqs), liftKey(key), Lift(cmp.Compare[K]), true))
}

func liftKey[V, K any](key func(V) K) KeyFunc[V, K] {
	return func(v V) (K, error) { return key(v), nil }
}

func infallible[V any](seqs []iter.Seq[V]) []iter.Seq2[V, error] {
	out := make([]iter.Seq2[V, error], len(seqs))
	for i, seq := range seqs {
		out[i] = func(yield func(V, error) bool) {
			for v := range seq {
				if !yield(v, nil) {
					return
				}
			}
		}
	}
	return out
}

func drain[V any](it *Iterator[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		defer it.Stop()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
