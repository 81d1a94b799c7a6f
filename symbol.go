package huffstat

import (
	"fmt"
)

// Symbol represents a symbol in the coded alphabet: a single character in
// SingleSymbol mode, or an ordered pair of characters in JointPairs mode.
type Symbol string

// PadSymbol completes the final pair of an odd-length text in JointPairs
// mode.
const PadSymbol = Symbol("_")

// Mode selects how input text is segmented into Symbols.
type Mode int

const (
	// SingleSymbol treats each character as one Symbol.
	SingleSymbol Mode = iota

	// JointPairs treats each non-overlapping pair of consecutive
	// characters as one Symbol, padding an odd tail with PadSymbol.
	JointPairs
)

// String returns the string representation of this Mode.
func (mode Mode) String() string {
	switch mode {
	case SingleSymbol:
		return "SingleSymbol"
	case JointPairs:
		return "JointPairs"
	default:
		return fmt.Sprintf("Mode(%d)", int(mode))
	}
}

var _ fmt.Stringer = Mode(0)
