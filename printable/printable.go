// Package printable defines the capability contract a tree exposes to an
// external renderer. Nothing in this package renders anything; it is the
// seam the core library publishes so a box-drawing pretty-printer living
// outside this module can walk any conforming tree without depending on
// its internals.
package printable

// Printable is a tree that can describe itself to a renderer.
type Printable interface {
	Name() string
	IsEmpty() bool
	RootNodes() []PrintableNode
}

// PrintableNode is a single node in a Printable tree's view.
type PrintableNode interface {
	PrintableValue() string
	IsLeaf() bool
	Children() []PrintableNode
}
