package avl

import (
	"fmt"

	"github.com/g-m-twostay/avlset/printable"
	"golang.org/x/exp/constraints"
)

// Name satisfies printable.Printable.
func (t *Tree[T, S]) Name() string {
	return "avl.Tree"
}

// RootNodes satisfies printable.Printable: an AVL tree has at most one root.
func (t *Tree[T, S]) RootNodes() []printable.PrintableNode {
	if t.root == nil {
		return nil
	}
	return []printable.PrintableNode{printableNode[T, S]{t.root}}
}

type printableNode[T any, S constraints.Unsigned] struct {
	n *node[T, S]
}

func (p printableNode[T, S]) PrintableValue() string {
	return fmt.Sprint(p.n.value)
}

func (p printableNode[T, S]) IsLeaf() bool {
	return p.n.left == nil && p.n.right == nil
}

func (p printableNode[T, S]) Children() []printable.PrintableNode {
	var out []printable.PrintableNode
	if p.n.left != nil {
		out = append(out, printableNode[T, S]{p.n.left})
	}
	if p.n.right != nil {
		out = append(out, printableNode[T, S]{p.n.right})
	}
	return out
}
