package huffstat

import (
	"errors"
	"fmt"

	"github.com/kzahedi/goent/discrete"
)

// ErrInvalidProbability is returned when a zero or negative probability
// reaches the entropy logarithm.  A Model built by Init never produces one;
// this guards against hand-assembled distributions.
var ErrInvalidProbability = errors.New("huffstat: probability must be positive")

// Entropy returns the empirical entropy of the Model's distribution, in bits
// per counted unit (per character in SingleSymbol mode, per pair in
// JointPairs mode).
func (m Model) Entropy() (float64, error) {
	dist := make([]float64, len(m.symbols))
	for index, sym := range m.symbols {
		p := m.probs[sym]
		if p <= 0 {
			return 0, fmt.Errorf("%w: p(%q) = %g", ErrInvalidProbability, string(sym), p)
		}
		dist[index] = p
	}
	return discrete.EntropyBase2(dist), nil
}

// EntropyOrder0 returns the order-0 empirical entropy of the text, in bits
// per symbol.
func EntropyOrder0(text string) (float64, error) {
	var m Model
	if err := m.Init(text, SingleSymbol); err != nil {
		return 0, err
	}
	return m.Entropy()
}

// EntropyOrder1 returns the order-1 (pairwise) empirical entropy of the text.
// Each pair spans two symbols, so the pair entropy is halved to normalize to
// bits per original symbol.
func EntropyOrder1(text string) (float64, error) {
	var m Model
	if err := m.Init(text, JointPairs); err != nil {
		return 0, err
	}
	pairEntropy, err := m.Entropy()
	if err != nil {
		return 0, err
	}
	return pairEntropy / 2, nil
}
