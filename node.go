package multimerge

// A node is either a *leaf wrapping one input source or an *internal
// caching the winning leaf of its subtree. Ownership runs strictly
// downward from the tree root; parent pointers are non-owning back
// edges used only to walk the replay path.
type node[V, K any] interface {
	// top reports the leaf currently winning this subtree and a view
	// into that leaf's key.
	top() (*leaf[V, K], *K)
	up() *internal[V, K]
	setUp(p *internal[V, K])
}

// leaf owns one source cursor together with the most recently pulled
// item and that item's key. The leaf holds the only owned copy of the
// key; ancestors only ever hold views into it.
type leaf[V, K any] struct {
	parent *internal[V, K]
	next   func() (V, error, bool)
	stop   func()
	item   V
	key    K
	full   bool
}

func (l *leaf[V, K]) top() (*leaf[V, K], *K)  { return l, &l.key }
func (l *leaf[V, K]) up() *internal[V, K]     { return l.parent }
func (l *leaf[V, K]) setUp(p *internal[V, K]) { l.parent = p }

// pop hands out the pending item and clears the slot so the leaf keeps
// nothing stale between pulls.
func (l *leaf[V, K]) pop() V {
	var zeroV V
	var zeroK K
	item := l.item
	l.item = zeroV
	l.key = zeroK
	l.full = false
	return item
}

// internal caches the outcome of the contest between its two children.
// winner and winnerKey are views into a descendant leaf, refreshed by
// the replay walk whenever that descendant's subtree changes.
type internal[V, K any] struct {
	parent    *internal[V, K]
	left      node[V, K]
	right     node[V, K]
	winner    *leaf[V, K]
	winnerKey *K
}

func (n *internal[V, K]) top() (*leaf[V, K], *K)  { return n.winner, n.winnerKey }
func (n *internal[V, K]) up() *internal[V, K]     { return n.parent }
func (n *internal[V, K]) setUp(p *internal[V, K]) { n.parent = p }

// release stops every source cursor at or below n.
func release[V, K any](n node[V, K]) {
	switch n := n.(type) {
	case *leaf[V, K]:
		n.stop()
	case *internal[V, K]:
		release(n.left)
		release(n.right)
	}
}
