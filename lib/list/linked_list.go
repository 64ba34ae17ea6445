package list

import (
	"errors"
	"iter"
	"unsafe"

	"go.uber.org/zap"

	"github.com/benz9527/xcontainer/lib/infra"
)

var _ LinkedList[struct{}] = (*List[struct{}])(nil) // Type check assertion

var ErrListEmpty = errors.New("[list] empty")

/*
List is a doubly linked list arranged as a ring around a sentinel root.

	+------+    +----+    +----+    +----+
	| root |--->| e0 |--->| e1 |--->| e2 |---+
	+------+    +----+    +----+    +----+   |
	   ^                                     |
	   +-------------------------------------+

The sentinel is never exposed. Every element points to the sentinel of
its list, so membership checks and Swap are O(1).
*/
type List[T any] struct {
	root   *NodeElement[T]
	len    int64
	less   infra.LessComparator[T]
	logger *zap.Logger
}

type ListOption[T any] func(*List[T])

// WithListLess sets the ordering used by Sort, Merge and Unique.
func WithListLess[T any](less infra.LessComparator[T]) ListOption[T] {
	return func(l *List[T]) {
		l.less = less
	}
}

func WithListLogger[T any](logger *zap.Logger) ListOption[T] {
	return func(l *List[T]) {
		if logger != nil {
			l.logger = logger
		}
	}
}

func New[T any](opts ...ListOption[T]) *List[T] {
	l := (&List[T]{logger: zap.NewNop()}).init()
	for _, o := range opts {
		if o != nil {
			o(l)
		}
	}
	return l
}

// NewOrdered returns a list ordered by the natural order of T.
func NewOrdered[T infra.OrderedKey](opts ...ListOption[T]) *List[T] {
	return New[T](append([]ListOption[T]{WithListLess[T](infra.NaturalLess[T])}, opts...)...)
}

func (l *List[T]) init() *List[T] {
	l.root = &NodeElement[T]{}
	l.root.sentinel = l.root
	l.root.next, l.root.prev = l.root, l.root
	l.len = 0
	return l
}

func (l *List[T]) contains(e *NodeElement[T]) bool {
	return e != nil && e != l.root && e.sentinel == l.root
}

func (l *List[T]) requireLess() infra.LessComparator[T] {
	if l.less == nil {
		panic( /* debug assertion */ "[list] ordering operation without comparator")
	}
	return l.less
}

func (l *List[T]) Len() int64 {
	return l.len
}

func (l *List[T]) Empty() bool {
	return l.len == 0
}

func (l *List[T]) MaxSize() int64 {
	return infra.MaxSizeOf(unsafe.Sizeof(NodeElement[T]{}))
}

func (l *List[T]) FrontElement() *NodeElement[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

func (l *List[T]) BackElement() *NodeElement[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

func (l *List[T]) Front() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, infra.WrapErrorStack(ErrListEmpty)
	}
	return l.root.next.Value, nil
}

func (l *List[T]) Back() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, infra.WrapErrorStack(ErrListEmpty)
	}
	return l.root.prev.Value, nil
}

// linkBefore links the detached e immediately before at.
func (l *List[T]) linkBefore(e, at *NodeElement[T]) *NodeElement[T] {
	e.sentinel = l.root
	e.prev = at.prev
	e.next = at
	at.prev.next = e
	at.prev = e
	l.len++
	return e
}

// unlink detaches e and returns the element that followed it.
func (l *List[T]) unlink(e *NodeElement[T]) *NodeElement[T] {
	next := e.next
	e.prev.next = e.next
	e.next.prev = e.prev
	// avoid memory leaks
	e.prev, e.next, e.sentinel = nil, nil, nil
	l.len--
	return next
}

func (l *List[T]) position(at *NodeElement[T]) (*NodeElement[T], bool) {
	if at == nil {
		return l.root, true
	}
	if !l.contains(at) {
		return nil, false
	}
	return at, true
}

func (l *List[T]) PushFront(v T) *NodeElement[T] {
	return l.linkBefore(newNodeElement(v, l.root), l.root.next)
}

func (l *List[T]) PushBack(v T) *NodeElement[T] {
	return l.linkBefore(newNodeElement(v, l.root), l.root)
}

func (l *List[T]) PopFront() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, infra.WrapErrorStack(ErrListEmpty)
	}
	e := l.root.next
	l.unlink(e)
	return e.Value, nil
}

func (l *List[T]) PopBack() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, infra.WrapErrorStack(ErrListEmpty)
	}
	e := l.root.prev
	l.unlink(e)
	return e.Value, nil
}

// Insert returns nil and inserts nothing if at belongs to another list.
func (l *List[T]) Insert(at *NodeElement[T], v T) *NodeElement[T] {
	pos, ok := l.position(at)
	if !ok {
		return nil
	}
	return l.linkBefore(newNodeElement(v, l.root), pos)
}

func (l *List[T]) InsertMany(at *NodeElement[T], values ...T) *NodeElement[T] {
	pos, ok := l.position(at)
	if !ok {
		return nil
	}
	var first *NodeElement[T]
	for _, v := range values {
		e := l.linkBefore(newNodeElement(v, l.root), pos)
		if first == nil {
			first = e
		}
	}
	if first == nil {
		return at
	}
	return first
}

// InsertManyFront prepends the values, keeping their argument order.
func (l *List[T]) InsertManyFront(values ...T) {
	pos := l.root.next
	for _, v := range values {
		l.linkBefore(newNodeElement(v, l.root), pos)
	}
}

func (l *List[T]) InsertManyBack(values ...T) {
	for _, v := range values {
		l.PushBack(v)
	}
}

// Erase returns nil without changes if e is not an element of l.
func (l *List[T]) Erase(e *NodeElement[T]) *NodeElement[T] {
	if !l.contains(e) {
		return nil
	}
	next := l.unlink(e)
	if next == l.root {
		return nil
	}
	return next
}

// detachAll cuts the chain of elements off the sentinel and returns its
// first and last elements. The chain keeps its inner links.
func (l *List[T]) detachAll() (first, last *NodeElement[T], n int64) {
	if l.len == 0 {
		return nil, nil, 0
	}
	first, last, n = l.root.next, l.root.prev, l.len
	l.root.next, l.root.prev = l.root, l.root
	l.len = 0
	return first, last, n
}

func (l *List[T]) Splice(at *NodeElement[T], other *List[T]) {
	if other == nil || other == l || other.len == 0 {
		return
	}
	pos, ok := l.position(at)
	if !ok {
		return
	}
	first, last, n := other.detachAll()
	for x := first; ; x = x.next {
		x.sentinel = l.root
		if x == last {
			break
		}
	}
	first.prev = pos.prev
	last.next = pos
	pos.prev.next = first
	pos.prev = last
	l.len += n
}

// Merge expects both lists sorted by the comparator. It is stable: for
// equivalent values the elements of l come before those of other.
func (l *List[T]) Merge(other *List[T]) {
	if other == nil || other == l || other.len == 0 {
		return
	}
	less := l.requireLess()
	moved := other.len
	x := l.root.next
	for y := other.root.next; y != other.root; {
		if x != l.root && !less(y.Value, x.Value) {
			x = x.next
			continue
		}
		next := y.next
		other.unlink(y)
		l.linkBefore(y, x)
		y = next
	}
	l.logger.Debug("[list] merged", zap.Int64("moved", moved), zap.Int64("len", l.len))
}

func (l *List[T]) Unique() int64 {
	if l.len < 2 {
		return 0
	}
	less := l.requireLess()
	removed := int64(0)
	for x := l.root.next; x.next != l.root; {
		if less.Equivalent(x.Value, x.next.Value) {
			l.unlink(x.next)
			removed++
			continue
		}
		x = x.next
	}
	return removed
}

// Sort is a stable merge sort over the links. No element is reallocated,
// so element references stay valid.
func (l *List[T]) Sort() {
	if l.len < 2 {
		return
	}
	less := l.requireLess()
	n := l.len
	first, last, _ := l.detachAll()
	last.next = nil
	head := mergeSort(first, n, less)

	prev := l.root
	for x := head; x != nil; x = x.next {
		x.prev = prev
		prev = x
	}
	prev.next = l.root
	l.root.next, l.root.prev = head, prev
	l.len = n
}

// mergeSort sorts a nil terminated chain of n elements by next links only.
func mergeSort[T any](head *NodeElement[T], n int64, less infra.LessComparator[T]) *NodeElement[T] {
	if n <= 1 {
		return head
	}
	half := n >> 1
	mid := head
	for i := int64(1); i < half; i++ {
		mid = mid.next
	}
	right := mid.next
	mid.next = nil
	return mergeChains(mergeSort(head, half, less), mergeSort(right, n-half, less), less)
}

func mergeChains[T any](a, b *NodeElement[T], less infra.LessComparator[T]) *NodeElement[T] {
	var dummy NodeElement[T]
	tail := &dummy
	for a != nil && b != nil {
		// Take from b only when strictly less to keep the sort stable.
		if less(b.Value, a.Value) {
			tail.next, b = b, b.next
		} else {
			tail.next, a = a, a.next
		}
		tail = tail.next
	}
	if a != nil {
		tail.next = a
	} else {
		tail.next = b
	}
	return dummy.next
}

func (l *List[T]) Reverse() {
	if l.len < 2 {
		return
	}
	x := l.root
	for {
		x.prev, x.next = x.next, x.prev
		if x = x.prev; x == l.root {
			return
		}
	}
}

func (l *List[T]) Clear() {
	released := l.len
	for x := l.root.next; x != l.root; {
		next := x.next
		x.prev, x.next, x.sentinel = nil, nil, nil
		x = next
	}
	l.root.next, l.root.prev = l.root, l.root
	l.len = 0
	if released > 0 {
		l.logger.Debug("[list] cleared", zap.Int64("released", released))
	}
}

// Swap exchanges the elements of both lists in O(1).
func (l *List[T]) Swap(other *List[T]) {
	if other == nil || other == l {
		return
	}
	l.root, other.root = other.root, l.root
	l.len, other.len = other.len, l.len
	l.less, other.less = other.less, l.less
}

// Clone returns a list holding copies of the values in the same order.
func (l *List[T]) Clone() *List[T] {
	c := (&List[T]{less: l.less, logger: l.logger}).init()
	for x := l.root.next; x != l.root; x = x.next {
		c.PushBack(x.Value)
	}
	return c
}

// MoveFrom transfers the elements of other to l and leaves other empty.
// References to the moved elements stay valid and now belong to l.
func (l *List[T]) MoveFrom(other *List[T]) {
	if other == nil || other == l {
		return
	}
	l.Clear()
	l.root, other.root = other.root, l.root
	l.len, other.len = other.len, 0
	l.less = other.less
	l.logger.Debug("[list] moved", zap.Int64("len", l.len))
}

// Foreach, allows remove linked list elements while iterating.
func (l *List[T]) Foreach(fn func(idx int64, e *NodeElement[T]) error) error {
	if fn == nil || l.len == 0 {
		return nil
	}

	idx := int64(0)
	for iterator := l.root.next; iterator != l.root; idx++ {
		n := iterator.next
		if err := fn(idx, iterator); err != nil {
			return err
		}
		iterator = n
	}
	return nil
}

func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := l.root.next; x != l.root; x = x.next {
			if !yield(x.Value) {
				return
			}
		}
	}
}

func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := l.root.prev; x != l.root; x = x.prev {
			if !yield(x.Value) {
				return
			}
		}
	}
}
