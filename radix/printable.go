package radix

import (
	"github.com/g-m-twostay/avlset/avl"
	"github.com/g-m-twostay/avlset/printable"
)

// Name satisfies printable.Printable.
func (t *Tree) Name() string {
	return "radix.Tree"
}

// RootNodes satisfies printable.Printable: one root per bucket, in the
// bucket map's storage order.
func (t *Tree) RootNodes() []printable.PrintableNode {
	var out []printable.PrintableNode
	t.buckets.Range(func(_ byte, root *Node) bool {
		out = append(out, printableNode{root})
		return true
	})
	return out
}

type printableNode struct {
	n *Node
}

func (p printableNode) PrintableValue() string {
	return p.n.label
}

func (p printableNode) IsLeaf() bool {
	return p.n.isLeaf()
}

func (p printableNode) Children() []printable.PrintableNode {
	kids := p.n.children.Ordered(avl.InOrder)
	if len(kids) == 0 {
		return nil
	}
	out := make([]printable.PrintableNode, len(kids))
	for i, c := range kids {
		out[i] = printableNode{c}
	}
	return out
}
