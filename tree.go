package multimerge

import (
	"iter"
)

// KeyFunc derives the sort key for an item.
type KeyFunc[V, K any] func(V) (K, error)

// CompareFunc orders two keys the way cmp.Compare does. It may fail,
// for example when keys are dynamic values with no common ordering.
type CompareFunc[K any] func(a, b K) (int, error)

// Lift adapts an infallible comparison for use as a CompareFunc.
func Lift[K any](compare func(K, K) int) CompareFunc[K] {
	return func(a, b K) (int, error) { return compare(a, b), nil }
}

// tree is a collapsing winner tree over all non-empty sources. A tree
// with k live sources has k leaves and k-1 internal nodes; it shrinks
// as sources drain and is gone once the last one is spent.
type tree[V, K any] struct {
	root    node[V, K]
	key     KeyFunc[V, K]
	compare CompareFunc[K]
	reverse bool
	keyed   bool // false once a single source remains; nothing is compared then
}

// buildTree pulls the first value from every source, wraps each
// non-empty source in a leaf, and pairs adjacent nodes level by level
// into a balanced binary tree. Sources that are exhausted from the
// start are dropped silently; a trailing unpaired node is carried up
// one level untouched, keeping source order as the tie-break axis.
func buildTree[V, K any](seqs []iter.Seq2[V, error], key KeyFunc[V, K], compare CompareFunc[K], reverse bool) (*tree[V, K], error) {
	t := &tree[V, K]{
		key:     key,
		compare: compare,
		reverse: reverse,
		keyed:   len(seqs) > 1,
	}

	nodes := make([]node[V, K], 0, len(seqs))
	fail := func(err error) (*tree[V, K], error) {
		for _, n := range nodes {
			release(n)
		}
		return nil, err
	}

	for _, seq := range seqs {
		next, stop := iter.Pull2(seq)
		item, err, ok := next()
		if err != nil {
			stop()
			return fail(&SourceError{Err: err})
		}
		if !ok {
			stop()
			continue
		}
		l := &leaf[V, K]{next: next, stop: stop, item: item, full: true}
		nodes = append(nodes, l)
		if t.keyed {
			k, kerr := key(item)
			if kerr != nil {
				return fail(&KeyError{Err: kerr})
			}
			l.key = k
		}
	}

	if len(nodes) < 2 {
		t.keyed = false
		if len(nodes) == 1 {
			t.root = nodes[0]
		}
		return t, nil
	}

	for len(nodes) > 1 {
		paired := make([]node[V, K], 0, (len(nodes)+1)/2)
		i := 0
		for ; i+1 < len(nodes); i += 2 {
			p, err := t.join(nodes[i], nodes[i+1])
			if err != nil {
				for _, n := range paired {
					release(n)
				}
				for _, n := range nodes[i:] {
					release(n)
				}
				return nil, err
			}
			paired = append(paired, p)
		}
		if i < len(nodes) {
			paired = append(paired, nodes[i])
		}
		nodes = paired
	}

	t.root = nodes[0]
	return t, nil
}

// join builds the parent of two adjacent nodes, resolving the contest
// between their current winners.
func (t *tree[V, K]) join(left, right node[V, K]) (*internal[V, K], error) {
	p := &internal[V, K]{left: left, right: right}
	if err := t.resolve(p); err != nil {
		return nil, err
	}
	left.setUp(p)
	right.setUp(p)
	return p, nil
}

// resolve recomputes n's cached winner from its two children. The
// right child wins strictly; ties go to the left child, so equal keys
// preserve source order in both ascending and descending mode.
func (t *tree[V, K]) resolve(n *internal[V, K]) error {
	lw, lk := n.left.top()
	rw, rk := n.right.top()
	a, b := *rk, *lk
	if t.reverse {
		a, b = b, a
	}
	c, err := t.compare(a, b)
	if err != nil {
		return &CompareError{Err: err}
	}
	if c < 0 {
		n.winner, n.winnerKey = rw, rk
	} else {
		n.winner, n.winnerKey = lw, lk
	}
	return nil
}

// pop hands out the current overall winner's item.
func (t *tree[V, K]) pop() (V, bool) {
	if t.root == nil {
		var zero V
		return zero, false
	}
	l, _ := t.root.top()
	return l.pop(), true
}

// stop releases every remaining source cursor and drops the tree.
func (t *tree[V, K]) stop() {
	release(t.root)
	t.root = nil
}
