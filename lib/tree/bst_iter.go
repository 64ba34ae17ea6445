package tree

// Iterator references a single node of a Tree, or the end sentinel.
// It does not own the node and is invalidated once the node is erased.
// The zero value is an end iterator of no tree.
type Iterator[K any] struct {
	tree *Tree[K]
	node *node[K]
}

func (it Iterator[K]) IsEnd() bool {
	return it.node == nil
}

func (it Iterator[K]) Equal(other Iterator[K]) bool {
	return it.node == other.node
}

// Next returns the iterator of the in-order successor.
// Advancing End stays at End.
func (it Iterator[K]) Next() Iterator[K] {
	return Iterator[K]{tree: it.tree, node: it.node.succ()}
}

// Prev returns the iterator of the in-order predecessor.
// Stepping back from End yields the last node; stepping back
// from the first node yields End.
func (it Iterator[K]) Prev() Iterator[K] {
	if it.node == nil {
		if it.tree == nil {
			return it
		}
		return it.tree.Last()
	}
	return Iterator[K]{tree: it.tree, node: it.node.pred()}
}

// Key returns a copy of the referenced key. Callers must check IsEnd first.
func (it Iterator[K]) Key() K {
	if it.node == nil {
		panic( /* debug assertion */ "[bst] dereference the end iterator")
	}
	return it.node.key
}

// Ref returns a pointer to the stored key. Mutations through it must not
// change the key's position under the tree's ordering.
func (it Iterator[K]) Ref() *K {
	if it.node == nil {
		panic( /* debug assertion */ "[bst] dereference the end iterator")
	}
	return &it.node.key
}
