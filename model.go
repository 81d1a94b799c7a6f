package huffstat

import (
	"errors"
	"fmt"
	"sort"
)

// ErrEmptyInput is returned when a zero-length text is offered to Model.Init.
var ErrEmptyInput = errors.New("huffstat: empty input text")

// Model holds the empirical symbol distribution of one text: a count and a
// probability for each distinct Symbol observed.  A Model is built once per
// text and never updated afterward.
type Model struct {
	mode    Mode
	counts  map[Symbol]uint32
	probs   map[Symbol]float64
	symbols []Symbol
	total   uint32
}

// Init initializes this Model from the given text.  In SingleSymbol mode
// every character is counted; in JointPairs mode the text is partitioned into
// non-overlapping pairs in original order, and an odd-length text has its
// final pair completed with PadSymbol.  The probability of a Symbol is its
// count divided by the number of counted units (characters or pairs).
//
// Init fails with ErrEmptyInput if the text has zero length.
//
func (m *Model) Init(text string, mode Mode) error {
	if len(text) == 0 {
		return fmt.Errorf("%w: cannot derive a distribution from %d characters", ErrEmptyInput, 0)
	}

	units := segment(text, mode)

	counts := make(map[Symbol]uint32, len(units))
	symbols := make([]Symbol, 0, len(units))
	for _, sym := range units {
		if counts[sym] == 0 {
			symbols = append(symbols, sym)
		}
		counts[sym]++
	}

	total := uint32(len(units))
	probs := make(map[Symbol]float64, len(counts))
	for sym, count := range counts {
		probs[sym] = float64(count) / float64(total)
	}

	*m = Model{
		mode:    mode,
		counts:  counts,
		probs:   probs,
		symbols: symbols,
		total:   total,
	}
	return nil
}

// segment splits text into the Symbol units counted by the given Mode.
func segment(text string, mode Mode) []Symbol {
	runes := []rune(text)
	if mode == SingleSymbol {
		units := make([]Symbol, len(runes))
		for index, r := range runes {
			units[index] = Symbol(r)
		}
		return units
	}

	numPairs := (len(runes) + 1) / 2
	units := make([]Symbol, 0, numPairs)
	for index := 0; index+1 < len(runes); index += 2 {
		units = append(units, Symbol(runes[index:index+2]))
	}
	if len(runes)%2 == 1 {
		units = append(units, Symbol(runes[len(runes)-1:])+PadSymbol)
	}
	return units
}

// Mode returns the segmentation mode this Model was built with.
func (m Model) Mode() Mode {
	return m.mode
}

// Len returns the number of distinct Symbols in the distribution.
func (m Model) Len() int {
	return len(m.symbols)
}

// Total returns the number of counted units: characters in SingleSymbol
// mode, pairs (including a padded one) in JointPairs mode.
func (m Model) Total() uint32 {
	return m.total
}

// Count returns the number of occurrences of the given Symbol.
func (m Model) Count(sym Symbol) uint32 {
	return m.counts[sym]
}

// Probability returns the empirical probability of the given Symbol.  It is
// zero for Symbols that never occur in the text.
func (m Model) Probability(sym Symbol) float64 {
	return m.probs[sym]
}

// Symbols returns the distinct Symbols of the distribution in order of first
// appearance in the text.
func (m Model) Symbols() []Symbol {
	out := make([]Symbol, len(m.symbols))
	copy(out, m.symbols)
	return out
}

// Counts returns a copy of the Symbol frequency mapping, in the form
// consumed by BuildTree.
func (m Model) Counts() map[Symbol]uint32 {
	out := make(map[Symbol]uint32, len(m.counts))
	for sym, count := range m.counts {
		out[sym] = count
	}
	return out
}

// Frequencies derives the Symbol frequency mapping of the given text without
// retaining the intermediate Model.
func Frequencies(text string, mode Mode) (map[Symbol]uint32, error) {
	var m Model
	if err := m.Init(text, mode); err != nil {
		return nil, err
	}
	return m.counts, nil
}

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

func (list bySymbol) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySymbol(nil)

// }}}
