package multimerge

import (
	"iter"

	"github.com/xlab/treeprint"
)

// merger is the engine behind an Iterator, erasing the key type.
type merger[V any] interface {
	pop() (V, bool)
	advance() (bool, error)
	stop()
	render(tp treeprint.Tree)
}

const (
	stateUnbuilt = iota
	stateActive
	stateExhausted
)

// Iterator is a lazy, single-pass view over the merged sources. The
// tree is built on the first call to Next; once Next reports false the
// iterator stays exhausted. An Iterator is not restartable and not
// safe for concurrent use.
type Iterator[V any] struct {
	build func() (merger[V], error)
	tree  merger[V]
	err   error
	state int
}

// New merges already-sorted fallible sources using compare. With
// reverse set, the sources must be sorted in descending order and the
// merged output is descending as well.
func New[V any](seqs []iter.Seq2[V, error], compare CompareFunc[V], reverse bool) *Iterator[V] {
	return NewKey(seqs, func(v V) (V, error) { return v, nil }, compare, reverse)
}

// NewKey merges already-sorted fallible sources, ordering items by the
// keys that key derives. Each item's key is computed exactly once, and
// not at all when fewer than two sources remain.
func NewKey[V, K any](seqs []iter.Seq2[V, error], key KeyFunc[V, K], compare CompareFunc[K], reverse bool) *Iterator[V] {
	it := &Iterator[V]{}
	it.build = func() (merger[V], error) {
		return buildTree(seqs, key, compare, reverse)
	}
	return it
}

// Next reports the next merged item. Once it reports false it keeps
// doing so; check Err to distinguish exhaustion from failure.
func (it *Iterator[V]) Next() (V, bool) {
	var zero V
	switch it.state {
	case stateUnbuilt:
		t, err := it.build()
		it.build = nil
		if err != nil {
			it.fail(err)
			return zero, false
		}
		v, ok := t.pop()
		if !ok {
			// Every source was empty from the start.
			it.state = stateExhausted
			return zero, false
		}
		it.tree = t
		it.state = stateActive
		return v, true
	case stateActive:
		ok, err := it.tree.advance()
		if err != nil {
			it.tree.stop()
			it.tree = nil
			it.fail(err)
			return zero, false
		}
		if !ok {
			it.tree = nil
			it.state = stateExhausted
			return zero, false
		}
		v, _ := it.tree.pop()
		return v, true
	default:
		return zero, false
	}
}

func (it *Iterator[V]) fail(err error) {
	it.err = err
	it.state = stateExhausted
}

// Err reports the failure that ended iteration, if any. The error is
// recorded once and never re-raised by later Next calls.
func (it *Iterator[V]) Err() error { return it.err }

// Stop releases the remaining source cursors. The iterator is
// exhausted afterwards; Stop may be called more than once.
func (it *Iterator[V]) Stop() {
	if it.tree != nil {
		it.tree.stop()
		it.tree = nil
	}
	it.build = nil
	it.state = stateExhausted
}

// All yields the remaining merged items. Iteration ends at exhaustion
// or at the first failure; check Err afterwards.
func (it *Iterator[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
