package huffstat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModel_Init_EmptyInput(t *testing.T) {
	var m Model
	require.ErrorIs(t, m.Init("", SingleSymbol), ErrEmptyInput)
	require.ErrorIs(t, m.Init("", JointPairs), ErrEmptyInput)
}

func TestModel_SingleSymbol(t *testing.T) {
	var m Model
	require.NoError(t, m.Init("AABB", SingleSymbol))

	require.Equal(t, SingleSymbol, m.Mode())
	require.Equal(t, 2, m.Len())
	require.Equal(t, uint32(4), m.Total())
	require.Equal(t, uint32(2), m.Count("A"))
	require.Equal(t, uint32(2), m.Count("B"))
	require.Equal(t, uint32(0), m.Count("C"))
	require.InDelta(t, 0.5, m.Probability("A"), 1e-9)
	require.InDelta(t, 0.5, m.Probability("B"), 1e-9)
	require.Equal(t, []Symbol{"A", "B"}, m.Symbols())
}

func TestModel_JointPairs(t *testing.T) {
	var m Model
	require.NoError(t, m.Init("ABAB", JointPairs))

	require.Equal(t, JointPairs, m.Mode())
	require.Equal(t, 1, m.Len())
	require.Equal(t, uint32(2), m.Total())
	require.Equal(t, uint32(2), m.Count("AB"))
	require.InDelta(t, 1.0, m.Probability("AB"), 1e-9)
}

func TestModel_JointPairs_OddLengthPadding(t *testing.T) {
	var m Model
	require.NoError(t, m.Init("ABC", JointPairs))

	require.Equal(t, uint32(2), m.Total())
	require.Equal(t, []Symbol{"AB", "C_"}, m.Symbols())
	require.Equal(t, uint32(1), m.Count("AB"))
	require.Equal(t, uint32(1), m.Count("C_"))
	require.InDelta(t, 0.5, m.Probability("AB"), 1e-9)
	require.InDelta(t, 0.5, m.Probability("C_"), 1e-9)
}

func TestModel_ProbabilitiesSumToOne(t *testing.T) {
	texts := []string{
		"A",
		"AAAA",
		"AAAB",
		"the quick brown fox jumps over the lazy dog",
		"mississippi",
		"ABC",
	}
	for _, text := range texts {
		for _, mode := range []Mode{SingleSymbol, JointPairs} {
			t.Run(text+"/"+mode.String(), func(t *testing.T) {
				var m Model
				require.NoError(t, m.Init(text, mode))

				var sum float64
				for _, sym := range m.Symbols() {
					sum += m.Probability(sym)
				}
				require.InDelta(t, 1.0, sum, 1e-9)
			})
		}
	}
}

func TestModel_SymbolsInFirstAppearanceOrder(t *testing.T) {
	var m Model
	require.NoError(t, m.Init("banana", SingleSymbol))
	require.Equal(t, []Symbol{"b", "a", "n"}, m.Symbols())
}

func TestFrequencies(t *testing.T) {
	freqs, err := Frequencies("mississippi", SingleSymbol)
	require.NoError(t, err)
	require.Equal(t, map[Symbol]uint32{"m": 1, "i": 4, "s": 4, "p": 2}, freqs)

	_, err = Frequencies("", SingleSymbol)
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestModel_Counts_IsACopy(t *testing.T) {
	var m Model
	require.NoError(t, m.Init("AABB", SingleSymbol))

	counts := m.Counts()
	counts["A"] = 99
	require.Equal(t, uint32(2), m.Count("A"))
}
