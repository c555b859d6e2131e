package multimerge

// advance refills the leaf that produced the last emitted item, or
// unlinks it when its source is exhausted, then re-resolves the winner
// at every ancestor on the path back to the root. Every ancestor on
// that path had cached the previous winner, and no other node could
// have, so the walk is exactly the set of contests the previous item
// won. Reports false when the tree has run out of items.
func (t *tree[V, K]) advance() (bool, error) {
	prev, _ := t.root.top()

	item, err, ok := prev.next()
	if err != nil {
		return false, &SourceError{Err: err}
	}

	var from node[V, K]
	if ok {
		prev.item = item
		prev.full = true
		if t.keyed {
			k, kerr := t.key(item)
			if kerr != nil {
				return false, &KeyError{Err: kerr}
			}
			prev.key = k
		}
		from = prev
	} else {
		from, ok = t.unlink(prev)
		if !ok {
			return false, nil
		}
	}

	for p := from.up(); p != nil; p = p.parent {
		if err := t.resolve(p); err != nil {
			return false, err
		}
	}
	return true, nil
}

// unlink removes a drained leaf by splicing its sibling into the slot
// held by their shared parent. The leaf's cursor is stopped and both
// the leaf and the parent wrapper become unreachable. Reports false
// when the drained leaf was the root, meaning every source is spent.
func (t *tree[V, K]) unlink(l *leaf[V, K]) (node[V, K], bool) {
	l.stop()
	p := l.parent
	if p == nil {
		t.root = nil
		return nil, false
	}

	var sib node[V, K]
	if p.left == node[V, K](l) {
		sib = p.right
	} else {
		sib = p.left
	}
	sib.setUp(p.parent)

	if gp := p.parent; gp != nil {
		if gp.left == node[V, K](p) {
			gp.left = sib
		} else {
			gp.right = sib
		}
	} else {
		t.root = sib
		if _, single := sib.(*leaf[V, K]); single {
			// One source left; nothing will be compared again, so
			// keys stop being computed.
			t.keyed = false
		}
	}
	return sib, true
}
