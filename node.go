package huffstat

import (
	"container/heap"
)

// Node is one element of a Huffman coding tree.  A leaf carries exactly one
// distinct input Symbol; an internal node carries the concatenation of its
// children's payloads, which identifies it in debug output but plays no part
// in coding.  Each Node is owned by exactly one parent, and the finished tree
// is full: every Node has zero or two children.
type Node struct {
	freq   uint32
	symbol Symbol
	digit  byte
	seq    int
	left   *Node
	right  *Node
}

// Freq returns the combined frequency of the input Symbols under this Node.
// For an internal node it equals the sum of its children's frequencies.
func (n *Node) Freq() uint32 {
	return n.freq
}

// Label returns the Symbol payload of this Node.
func (n *Node) Label() Symbol {
	return n.symbol
}

// Digit returns the code digit (0 or 1) assigned to this Node by its parent
// merge.  The root has no parent and keeps the zero value.
func (n *Node) Digit() byte {
	return n.digit
}

// Left returns the left child, or nil for a leaf.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right child, or nil for a leaf.
func (n *Node) Right() *Node {
	return n.right
}

// Leaf reports whether this Node represents exactly one input Symbol.
func (n *Node) Leaf() bool {
	return n.left == nil
}

// type forest {{{

// forest is a min-priority collection of tree roots, ordered by frequency
// and then by insertion sequence.  The sequence number is the explicit
// tie-break that keeps equal-frequency merges reproducible.
type forest struct {
	list []*Node
	seq  int
}

func (f *forest) Init() {
	heap.Init(f)
}

func (f *forest) Len() int {
	return len(f.list)
}

func (f *forest) Swap(i, j int) {
	f.list[i], f.list[j] = f.list[j], f.list[i]
}

func (f *forest) Less(i, j int) bool {
	a, b := f.list[i], f.list[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.seq < b.seq
}

func (f *forest) Push(x interface{}) {
	f.list = append(f.list, x.(*Node))
}

func (f *forest) Pop() interface{} {
	last := uint(len(f.list)) - 1
	x := f.list[last]
	f.list = f.list[:last]
	return x
}

// add appends a Node without restoring heap order, assigning the next
// insertion sequence number.  Callers either Init afterward or use pushNode.
func (f *forest) add(n *Node) {
	n.seq = f.seq
	f.seq++
	f.list = append(f.list, n)
}

// pushNode inserts a Node, assigning the next insertion sequence number.
func (f *forest) pushNode(n *Node) {
	n.seq = f.seq
	f.seq++
	heap.Push(f, n)
}

var _ heap.Interface = (*forest)(nil)

// }}}
