package radix

import (
	"strings"

	"github.com/g-m-twostay/avlset/avl"
)

// Node is a single radix-tree node. label is the substring this node
// contributes on the path from its bucket root; it may be empty (a
// terminator sentinel) or shared by no sibling's leading byte (the LCP
// invariant). children orders its descendants by label using the same
// avl.Tree the top-level package exposes - this is the "per-node child
// collections reuse the AVL tree" requirement, not a second tree type.
type Node struct {
	label    string
	parent   *Node
	children *avl.Tree[*Node, uint16]
}

func newNode(label string) *Node {
	return &Node{label: label, children: avl.New[*Node, uint16](labelComparator)}
}

func labelComparator(a, b *Node) int {
	return strings.Compare(a.label, b.label)
}

func (n *Node) isLeaf() bool {
	return n.children.IsEmpty()
}

// firstByteSeek is the Unary predicate used to locate the (at most one)
// child whose label starts with target, per the LCP invariant: no two
// siblings share a leading byte, so ordering by full label also orders
// children by leading byte, and a leading-byte search is BST-consistent.
func firstByteSeek(target byte) avl.Unary[*Node] {
	return func(candidate *Node) int {
		if candidate.label == "" {
			// the terminator sentinel sorts before every non-empty label,
			// so it is always to the left of any real first-byte target.
			return -1
		}
		return int(candidate.label[0]) - int(target)
	}
}

func findChild(children *avl.Tree[*Node, uint16], firstByte byte) (*Node, bool) {
	return children.FirstWhere(firstByteSeek(firstByte))
}
