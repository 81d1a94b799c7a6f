package huffstat

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each distinct input Symbol to its codeword.  The codewords
// of a table extracted from one tree are pairwise prefix-free, and a codeword
// is empty only when the alphabet holds a single Symbol.  A CodeTable is
// derived once from a finished tree and never updated afterward.
type CodeTable map[Symbol]Code

// ExtractCodes walks the tree depth-first, left before right, accumulating
// each node's code digit along the path, and records the accumulated codeword
// at every leaf.  The accumulator is a Code value scoped to this call, so
// separate extractions never share state.
func ExtractCodes(root *Node) CodeTable {
	assert.Assertf(root != nil, "ExtractCodes requires a non-nil tree root, got %v", root)

	table := make(CodeTable)
	collect(root, Code{}, table)
	return table
}

func collect(n *Node, prefix Code, table CodeTable) {
	if n.Leaf() {
		table[n.symbol] = prefix
		return
	}

	assert.Assertf(prefix.Size < maxCodeSize, "codeword longer than %d bits", maxCodeSize)
	collect(n.left, prefix.WithBit(n.left.digit), table)
	collect(n.right, prefix.WithBit(n.right.digit), table)
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer, one Symbol per line in sorted Symbol order.
func (table CodeTable) Dump(w io.Writer) (int64, error) {
	ordered := make(bySymbol, 0, len(table))
	for sym := range table {
		ordered = append(ordered, sym)
	}
	ordered.Sort()

	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for _, sym := range ordered {
		fmt.Fprintf(&buf, "\tCode(%q) = %s\n", string(sym), table[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
