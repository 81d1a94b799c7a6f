package huffstat

import (
	"container/heap"
	"math"

	"github.com/chronos-tachyon/assert"
)

// BuildTree constructs a minimum-redundancy coding tree for the given Symbol
// frequencies and returns its root.  The two lowest-frequency roots are
// merged repeatedly, the first popped becoming the left child with code digit
// 0 and the second the right child with code digit 1, until one root remains.
// Leaves are seeded in sorted Symbol order, so equal-frequency ties resolve
// the same way on every run regardless of map iteration order.
//
// A single-Symbol alphabet yields a tree whose root is the sole leaf; it is
// assigned no code digit.
//
func BuildTree(frequencies map[Symbol]uint32) *Node {
	assert.Assertf(len(frequencies) > 0, "BuildTree requires at least one symbol, got %d", len(frequencies))

	ordered := make(bySymbol, 0, len(frequencies))
	for sym := range frequencies {
		ordered = append(ordered, sym)
	}
	ordered.Sort()

	f := new(forest)
	for _, sym := range ordered {
		f.add(&Node{freq: frequencies[sym], symbol: sym})
	}
	f.Init()

	for f.Len() > 1 {
		left := heap.Pop(f).(*Node)
		right := heap.Pop(f).(*Node)

		left.digit = 0
		right.digit = 1

		// Compute freqSum using saturating addition
		freqSum := left.freq + right.freq
		if freqSum < left.freq {
			freqSum = math.MaxUint32
		}

		f.pushNode(&Node{
			freq:   freqSum,
			symbol: left.symbol + right.symbol,
			left:   left,
			right:  right,
		})
	}

	return heap.Pop(f).(*Node)
}
