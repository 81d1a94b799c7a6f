package huffstat

// AverageLength returns the frequency-weighted mean codeword length of the
// table under this Model's distribution, in bits per counted unit: per
// character in SingleSymbol mode, per pair in JointPairs mode.  Symbols of
// the Model that are missing from the table contribute zero bits.
func (m Model) AverageLength(table CodeTable) float64 {
	var avg float64
	for _, sym := range m.symbols {
		avg += m.probs[sym] * float64(table[sym].Size)
	}
	return avg
}

// Codes builds the Huffman tree for this Model's distribution and extracts
// its code table.  The tree is discarded once the table exists.
func (m Model) Codes() CodeTable {
	return ExtractCodes(BuildTree(m.counts))
}

// AverageCodeLength returns the average Huffman codeword length achieved for
// the text in the given mode.  In JointPairs mode the result is expressed in
// bits per pair; callers comparing it against EntropyOrder1, which is
// normalized per original symbol, must account for the factor of two.
func AverageCodeLength(text string, mode Mode) (float64, error) {
	var m Model
	if err := m.Init(text, mode); err != nil {
		return 0, err
	}
	return m.AverageLength(m.Codes()), nil
}
