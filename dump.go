package multimerge

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Dump renders the current state of the merge tree for debugging: one
// branch per internal node labelled with its cached winner's item, one
// node per leaf with its pending item. The item most recently handed
// out by Next shows as spent until the next pull refills its leaf.
func (it *Iterator[V]) Dump() string {
	tp := treeprint.New()
	switch {
	case it.state == stateUnbuilt:
		tp.AddNode("unbuilt")
	case it.tree == nil:
		tp.AddNode("exhausted")
	default:
		it.tree.render(tp)
	}
	return tp.String()
}

func (t *tree[V, K]) render(tp treeprint.Tree) {
	if t.root == nil {
		tp.AddNode("exhausted")
		return
	}
	renderNode(t.root, tp)
}

func renderNode[V, K any](n node[V, K], tp treeprint.Tree) {
	switch n := n.(type) {
	case *leaf[V, K]:
		if n.full {
			tp.AddNode(fmt.Sprintf("leaf %v", n.item))
		} else {
			tp.AddNode("leaf (spent)")
		}
	case *internal[V, K]:
		var br treeprint.Tree
		if n.winner.full {
			br = tp.AddBranch(fmt.Sprintf("winner %v", n.winner.item))
		} else {
			br = tp.AddBranch("winner (spent)")
		}
		renderNode(n.left, br)
		renderNode(n.right, br)
	}
}
