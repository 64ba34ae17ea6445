package tree

import (
	"errors"

	"go.uber.org/multierr"
)

var (
	errBstOrderViolation = errors.New("[bst] order violation")
	errBstLinkViolation  = errors.New("[bst] parent and child links mismatch")
	errBstSizeViolation  = errors.New("[bst] size mismatch with reachable nodes")
)

// bst rule validation utilities.

// OrderViolationValidate checks every node against the bounds inherited
// from its ancestors: left subtrees are strictly less, right subtrees are
// not less (strictly greater when unique).
func OrderViolationValidate[K any](tree *Tree[K], unique bool) error {
	if tree.root == nil {
		return nil
	}

	type bounded struct {
		x      *node[K]
		lo, hi *node[K] // nil means unbounded
	}
	stack := make([]bounded, 0, tree.count>>1+1)
	defer func() {
		clear(stack)
	}()
	stack = append(stack, bounded{x: tree.root})

	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if b.lo != nil {
			if /* x < lo */ tree.less(b.x.key, b.lo.key) ||
				/* x == lo */ unique && !tree.less(b.lo.key, b.x.key) {
				return errBstOrderViolation
			}
		}
		if b.hi != nil && !tree.less(b.x.key, b.hi.key) {
			return errBstOrderViolation
		}
		if b.x.left != nil {
			stack = append(stack, bounded{x: b.x.left, lo: b.lo, hi: b.x})
		}
		if b.x.right != nil {
			stack = append(stack, bounded{x: b.x.right, lo: b.x, hi: b.hi})
		}
	}
	return nil
}

func LinkViolationValidate[K any](tree *Tree[K]) error {
	if tree.root == nil {
		return nil
	}
	if tree.root.parent != nil {
		return errBstLinkViolation
	}

	stack := []*node[K]{tree.root}
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, child := range [2]*node[K]{x.left, x.right} {
			if child == nil {
				continue
			}
			if child.parent != x {
				return errBstLinkViolation
			}
			stack = append(stack, child)
		}
	}
	return nil
}

func SizeViolationValidate[K any](tree *Tree[K]) error {
	n := int64(0)
	for x := tree.root.minimum(); x != nil; x = x.succ() {
		n++
	}
	if n != tree.count {
		return errBstSizeViolation
	}
	return nil
}

// Validate reports every violated tree invariant.
func Validate[K any](tree *Tree[K], unique bool) error {
	if err := LinkViolationValidate[K](tree); err != nil {
		// The other validators walk the links, do not trust them.
		return err
	}
	return multierr.Combine(
		OrderViolationValidate[K](tree, unique),
		SizeViolationValidate[K](tree),
	)
}
