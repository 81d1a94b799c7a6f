package huffstat

import (
	"fmt"
	"strconv"
)

// maxCodeSize is the longest codeword that fits in Code.Bits.
const maxCodeSize = 32

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant
	// valid bit of Bits is the first bit.
	Bits uint32
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint32) Code {
	return Code{Size: size, Bits: bits}
}

// WithBit returns a copy of this Code extended by one trailing bit.
func (hc Code) WithBit(digit byte) Code {
	return Code{Size: hc.Size + 1, Bits: hc.Bits<<1 | uint32(digit&1)}
}

// IsPrefixOf reports whether this Code is a prefix of the other Code.  Every
// Code is a prefix of itself, and the empty Code is a prefix of every Code.
func (hc Code) IsPrefixOf(other Code) bool {
	if hc.Size > other.Size {
		return false
	}
	return other.Bits>>(other.Size-hc.Size) == hc.Bits
}

// Bitstring returns the bits of this Code as a string of '0' and '1' digits.
func (hc Code) Bitstring() string {
	if hc.Size == 0 {
		return ""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return fmt.Sprintf(format, hc.Bits)
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.Bitstring())
}

var _ fmt.Stringer = Code{}
