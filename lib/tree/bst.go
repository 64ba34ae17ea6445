package tree

import (
	"iter"
	"unsafe"

	"go.uber.org/zap"

	"github.com/benz9527/xcontainer/lib/infra"
)

var _ OrderedTree[int] = (*Tree[int])(nil)

type node[K any] struct {
	parent *node[K]
	left   *node[K]
	right  *node[K]
	key    K
}

func (node *node[K]) isRoot() bool {
	return node != nil && node.parent == nil
}

func (node *node[K]) direction() Direction {
	if node == nil {
		// impossible run to here
		panic( /* debug assertion */ "[bst] nil node without direction")
	}

	if node.isRoot() {
		return Root
	}
	if node == node.parent.left {
		return Left
	}
	return Right
}

func (node *node[K]) minimum() *node[K] {
	aux := node
	for ; aux != nil && aux.left != nil; aux = aux.left {
	}
	return aux
}

func (node *node[K]) maximum() *node[K] {
	aux := node
	for ; aux != nil && aux.right != nil; aux = aux.right {
	}
	return aux
}

// The pred node of the current node is its previous node in sorted order.
func (node *node[K]) pred() *node[K] {
	x := node
	if x == nil {
		return nil
	}
	if x.left != nil {
		return x.left.maximum()
	}

	aux := x.parent
	// Backtrack until x is a right child, its parent is the pred.
	for aux != nil && x == aux.left {
		x = aux
		aux = aux.parent
	}
	return aux
}

// The succ node of the current node is its next node in sorted order.
func (node *node[K]) succ() *node[K] {
	x := node
	if x == nil {
		return nil
	}
	if x.right != nil {
		return x.right.minimum()
	}

	aux := x.parent
	// Backtrack until x is a left child, its parent is the succ.
	for aux != nil && x == aux.right {
		x = aux
		aux = aux.parent
	}
	return aux
}

// Tree is an unbalanced binary search tree ordered by a strict weak ordering.
// It is not thread safe.
type Tree[K any] struct {
	root   *node[K]
	count  int64
	less   infra.LessComparator[K]
	logger *zap.Logger
}

type TreeOption[K any] func(*Tree[K])

// WithTreeDesc reverses the ordering given to the constructor.
func WithTreeDesc[K any]() TreeOption[K] {
	return func(tree *Tree[K]) {
		tree.less = tree.less.Reverse()
	}
}

func WithTreeLogger[K any](logger *zap.Logger) TreeOption[K] {
	return func(tree *Tree[K]) {
		if logger != nil {
			tree.logger = logger
		}
	}
}

func New[K any](less infra.LessComparator[K], opts ...TreeOption[K]) *Tree[K] {
	if less == nil {
		panic( /* debug assertion */ "[bst] nil key comparator")
	}
	tree := &Tree[K]{
		less:   less,
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		if o != nil {
			o(tree)
		}
	}
	return tree
}

func NewOrdered[K infra.OrderedKey](opts ...TreeOption[K]) *Tree[K] {
	return New[K](infra.NaturalLess[K], opts...)
}

func (tree *Tree[K]) Comparator() infra.LessComparator[K] {
	return tree.less
}

func (tree *Tree[K]) Len() int64 {
	return tree.count
}

func (tree *Tree[K]) Empty() bool {
	return tree.root == nil
}

func (tree *Tree[K]) MaxSize() int64 {
	return infra.MaxSizeOf(unsafe.Sizeof(node[K]{}))
}

func (tree *Tree[K]) iterator(x *node[K]) Iterator[K] {
	return Iterator[K]{tree: tree, node: x}
}

// attach links z below the last visited node of the descent.
// Ties route right unless unique is set, in which case the
// equivalent node is returned and z stays detached.
func (tree *Tree[K]) attach(z *node[K], unique bool) (*node[K], bool) {
	var y *node[K]
	for x := tree.root; x != nil; {
		y = x
		if tree.less(z.key, x.key) {
			x = x.left
		} else if /* equal */ unique && !tree.less(x.key, z.key) {
			return x, false
		} else {
			x = x.right
		}
	}

	z.parent = y
	switch {
	case y == nil:
		tree.root = z
	case tree.less(z.key, y.key):
		y.left = z
	default:
		y.right = z
	}
	tree.count++
	return z, true
}

func (tree *Tree[K]) InsertUnique(key K) (Iterator[K], bool) {
	x, inserted := tree.attach(&node[K]{key: key}, true)
	return tree.iterator(x), inserted
}

// InsertMulti always inserts. The new node becomes the rightmost
// member of its equal-key run.
func (tree *Tree[K]) InsertMulti(key K) Iterator[K] {
	x, _ := tree.attach(&node[K]{key: key}, false)
	return tree.iterator(x)
}

// InsertOrAssign replaces an equivalent key by erasing its node and
// inserting a fresh one. The bool is false when a node was replaced.
func (tree *Tree[K]) InsertOrAssign(key K) (Iterator[K], bool) {
	z := &node[K]{key: key}
	x, inserted := tree.attach(z, true)
	if inserted {
		return tree.iterator(x), true
	}
	tree.eraseNode(x)
	x, _ = tree.attach(z, true)
	return tree.iterator(x), false
}

// transplant puts v into the slot of u in u's parent.
func (tree *Tree[K]) transplant(u, v *node[K]) {
	switch dir := u.direction(); dir {
	case Root:
		tree.root = v
	case Left:
		u.parent.left = v
	case Right:
		u.parent.right = v
	default:
		// impossible run to here
		panic( /* debug assertion */ "[bst] unknown node direction to transplant")
	}
	if v != nil {
		v.parent = u.parent
	}
}

/*
e1: Z has no left child, its right subtree (may be nil) replaces it.

	  |            |
	  Z            R
	   \   ====>  / \
	    R        .. ..

e2: Z has no right child, its left subtree replaces it.

e3: Z has two children. The successor S is the leftmost node of
Z's right subtree, so S has no left child. S is detached from its
old slot (e1 on S) and takes over Z's left, right and parent links.

	    |                  |
	    Z                  S
	   / \                / \
	  L   R    ====>     L   R
	     /                  /
	   ...                ...
	   /                  /
	  S                  Sr
	   \
	   Sr

Only Z is unlinked, so iterators to every other node stay valid.
*/
func (tree *Tree[K]) eraseNode(z *node[K]) {
	switch {
	case /* e1 */ z.left == nil:
		tree.transplant(z, z.right)
	case /* e2 */ z.right == nil:
		tree.transplant(z, z.left)
	default: /* e3 */
		s := z.right.minimum()
		if s.parent != z {
			tree.transplant(s, s.right)
			s.right = z.right
			s.right.parent = s
		}
		tree.transplant(z, s)
		s.left = z.left
		s.left.parent = s
	}

	// Unlink node
	z.parent, z.left, z.right = nil, nil, nil
	tree.count--
}

// Erase removes the node referenced by it. Erasing End is a no-op.
// The iterator is invalid afterwards.
func (tree *Tree[K]) Erase(it Iterator[K]) {
	if it.node == nil {
		return
	}
	if it.tree != tree {
		panic( /* debug assertion */ "[bst] erase an iterator of another tree")
	}
	tree.eraseNode(it.node)
}

// EraseKey removes every node equivalent to key and returns how many
// nodes were removed.
func (tree *Tree[K]) EraseKey(key K) int {
	first, last := tree.EqualRange(key)
	n := 0
	for x := first.node; x != last.node; n++ {
		next := x.succ()
		tree.eraseNode(x)
		x = next
	}
	return n
}

func (tree *Tree[K]) lowerBound(key K) *node[K] {
	var res *node[K]
	for x := tree.root; x != nil; {
		if !tree.less(x.key, key) {
			res = x
			x = x.left
		} else {
			x = x.right
		}
	}
	return res
}

func (tree *Tree[K]) upperBound(key K) *node[K] {
	var res *node[K]
	for x := tree.root; x != nil; {
		if tree.less(key, x.key) {
			res = x
			x = x.left
		} else {
			x = x.right
		}
	}
	return res
}

func (tree *Tree[K]) find(key K) *node[K] {
	if x := tree.lowerBound(key); x != nil && !tree.less(key, x.key) {
		return x
	}
	return nil
}

// Find returns the first node of the equal-key run, or End.
func (tree *Tree[K]) Find(key K) Iterator[K] {
	return tree.iterator(tree.find(key))
}

func (tree *Tree[K]) Contains(key K) bool {
	return tree.find(key) != nil
}

// LowerBound returns the leftmost node not less than key.
func (tree *Tree[K]) LowerBound(key K) Iterator[K] {
	return tree.iterator(tree.lowerBound(key))
}

// UpperBound returns the leftmost node greater than key.
func (tree *Tree[K]) UpperBound(key K) Iterator[K] {
	return tree.iterator(tree.upperBound(key))
}

// EqualRange scans forward from Find while keys stay equivalent.
// A missing key yields an empty range positioned at LowerBound.
func (tree *Tree[K]) EqualRange(key K) (Iterator[K], Iterator[K]) {
	first := tree.find(key)
	if first == nil {
		lb := tree.iterator(tree.lowerBound(key))
		return lb, lb
	}
	last := first
	for last != nil && tree.less.Equivalent(last.key, key) {
		last = last.succ()
	}
	return tree.iterator(first), tree.iterator(last)
}

func (tree *Tree[K]) Count(key K) int {
	n := 0
	for x := tree.find(key); x != nil && tree.less.Equivalent(x.key, key); x = x.succ() {
		n++
	}
	return n
}

func (tree *Tree[K]) Begin() Iterator[K] {
	return tree.iterator(tree.root.minimum())
}

func (tree *Tree[K]) End() Iterator[K] {
	return tree.iterator(nil)
}

// Last returns the rightmost node, or End if the tree is empty.
func (tree *Tree[K]) Last() Iterator[K] {
	return tree.iterator(tree.root.maximum())
}

func (tree *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for x := tree.root.minimum(); x != nil; x = x.succ() {
			if !yield(x.key) {
				return
			}
		}
	}
}

func (tree *Tree[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		for x := tree.root.maximum(); x != nil; x = x.pred() {
			if !yield(x.key) {
				return
			}
		}
	}
}

// Inorder traversal to implement the DFS.
func (tree *Tree[K]) Foreach(action func(idx int64, key K) bool) {
	size := tree.count
	aux := tree.root
	if size <= 0 || aux == nil || action == nil {
		return
	}

	stack := make([]*node[K], 0, size>>1+1)
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}

	idx := int64(0)
	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		if aux = stack[size-1]; !action(idx, aux.key) {
			return
		}
		idx++
		stack = stack[:size-1]
		for aux = aux.right; aux != nil; aux = aux.left {
			stack = append(stack, aux)
		}
	}
}

// Clear erases every node from begin to end. The iterator is advanced
// through the pre-erase links before the node is unlinked.
func (tree *Tree[K]) Clear() {
	released := tree.count
	for it := tree.Begin(); !it.IsEnd(); {
		cur := it
		it = it.Next()
		tree.eraseNode(cur.node)
	}
	tree.root = nil
	if released > 0 {
		tree.logger.Debug("[bst] cleared", zap.Int64("released", released))
	}
}

// MergeUnique moves every node of other whose key is absent from tree.
// Nodes with duplicate keys stay in other.
func (tree *Tree[K]) MergeUnique(other *Tree[K]) {
	tree.merge(other, true)
}

// MergeMulti moves every node of other into tree, other ends empty.
func (tree *Tree[K]) MergeMulti(other *Tree[K]) {
	tree.merge(other, false)
}

func (tree *Tree[K]) merge(other *Tree[K], unique bool) {
	if other == nil || other == tree || other.root == nil {
		return
	}
	moved := int64(0)
	for x := other.root.minimum(); x != nil; {
		next := x.succ()
		if unique && tree.find(x.key) != nil {
			x = next
			continue
		}
		// Erase keeps the successor node itself in place of x,
		// so next is still linked into other.
		other.eraseNode(x)
		tree.attach(x, false)
		moved++
		x = next
	}
	tree.logger.Debug("[bst] merged",
		zap.Int64("moved", moved),
		zap.Int64("kept", other.count),
	)
}

func (tree *Tree[K]) cloneNodes() *node[K] {
	if tree.root == nil {
		return nil
	}

	type cloning struct {
		src, dst *node[K]
	}
	root := &node[K]{key: tree.root.key}
	stack := make([]cloning, 0, tree.count>>1+1)
	stack = append(stack, cloning{src: tree.root, dst: root})
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if l := c.src.left; l != nil {
			c.dst.left = &node[K]{key: l.key, parent: c.dst}
			stack = append(stack, cloning{src: l, dst: c.dst.left})
		}
		if r := c.src.right; r != nil {
			c.dst.right = &node[K]{key: r.key, parent: c.dst}
			stack = append(stack, cloning{src: r, dst: c.dst.right})
		}
	}
	return root
}

// Clone returns a deep structural copy. Keys are copied by assignment.
func (tree *Tree[K]) Clone() *Tree[K] {
	return &Tree[K]{
		root:   tree.cloneNodes(),
		count:  tree.count,
		less:   tree.less,
		logger: tree.logger,
	}
}

// Assign replaces the content of tree by a deep copy of other.
func (tree *Tree[K]) Assign(other *Tree[K]) {
	if other == nil || other == tree {
		return
	}
	tree.Clear()
	tree.root = other.cloneNodes()
	tree.count = other.count
	tree.less = other.less
}

// MoveFrom transfers the nodes of other to tree and resets other to empty.
func (tree *Tree[K]) MoveFrom(other *Tree[K]) {
	if other == nil || other == tree {
		return
	}
	tree.Clear()
	tree.root, tree.count, tree.less = other.root, other.count, other.less
	other.root, other.count = nil, 0
	tree.logger.Debug("[bst] moved", zap.Int64("len", tree.count))
}

func (tree *Tree[K]) Swap(other *Tree[K]) {
	if other == nil || other == tree {
		return
	}
	tree.root, other.root = other.root, tree.root
	tree.count, other.count = other.count, tree.count
	tree.less, other.less = other.less, tree.less
}
