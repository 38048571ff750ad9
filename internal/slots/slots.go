// Package slots implements a three-reel slot machine with weighted reel
// strips and a fixed paytable.
package slots

import (
	rand "math/rand/v2"

	"github.com/lox/cardsim/internal/montecarlo"
	"github.com/lox/cardsim/internal/randutil"
)

// Symbol is one reel symbol.
type Symbol int

const (
	Cherry Symbol = iota
	Lemon
	Grapes
	Watermelon
	Bell
	Seven
	numSymbols
)

// String returns the string representation of a symbol
func (s Symbol) String() string {
	switch s {
	case Cherry:
		return "cherry"
	case Lemon:
		return "lemon"
	case Grapes:
		return "grapes"
	case Watermelon:
		return "watermelon"
	case Bell:
		return "bell"
	case Seven:
		return "seven"
	default:
		return "?"
	}
}

// IsFruit reports whether the symbol is one of the four fruits.
func (s Symbol) IsFruit() bool {
	return s >= Cherry && s <= Watermelon
}

// symbolWeights drives the weighted draw that populates each reel strip.
var symbolWeights = [numSymbols]int{
	Cherry:     20,
	Lemon:      15,
	Grapes:     15,
	Watermelon: 12,
	Bell:       10,
	Seven:      5,
}

// Paytable multipliers.
const (
	payThreeFruit    = 10
	payThreeBells    = 25
	payThreeSevens   = 100
	payDistinctFruit = 3
)

// Machine is a slot machine whose reel strips are populated once at
// construction by weighted draws from the injected RNG.
type Machine struct {
	reels [][]Symbol
	rng   *rand.Rand
}

// New builds a machine with the given reel count and symbols per reel.
func New(rng *rand.Rand, reels, symbolsPerReel int) *Machine {
	if reels < 1 {
		reels = 3
	}
	if symbolsPerReel < 1 {
		symbolsPerReel = 10
	}
	m := &Machine{
		reels: make([][]Symbol, reels),
		rng:   rng,
	}
	weights := symbolWeights[:]
	for r := range m.reels {
		strip := make([]Symbol, symbolsPerReel)
		for i := range strip {
			strip[i] = Symbol(randutil.WeightedIndex(rng, weights))
		}
		m.reels[r] = strip
	}
	return m
}

// Spin stops each reel on a uniformly random strip position and returns the
// window with its payout multiplier.
func (m *Machine) Spin() ([]Symbol, int) {
	result := make([]Symbol, len(m.reels))
	for i, strip := range m.reels {
		result[i] = strip[m.rng.IntN(len(strip))]
	}
	return result, Payout(result)
}

// Payout returns the paytable multiplier for a spin result.
func Payout(result []Symbol) int {
	if len(result) != 3 {
		return 0
	}
	if result[0] == result[1] && result[1] == result[2] {
		switch {
		case result[0].IsFruit():
			return payThreeFruit
		case result[0] == Bell:
			return payThreeBells
		case result[0] == Seven:
			return payThreeSevens
		}
	}

	// Three distinct fruits pay a small consolation multiplier.
	allFruit := true
	for _, s := range result {
		if !s.IsFruit() {
			allFruit = false
			break
		}
	}
	if allFruit && result[0] != result[1] && result[1] != result[2] && result[0] != result[2] {
		return payDistinctFruit
	}
	return 0
}

// Simulate spins once and returns the trial record.
func (m *Machine) Simulate(bet int) montecarlo.Result {
	result, payout := m.Spin()
	symbols := make([]string, len(result))
	for i, s := range result {
		symbols[i] = s.String()
	}
	return montecarlo.Result{
		"bet":     bet,
		"symbols": symbols,
		"payout":  payout,
		"net_win": payout*bet - bet,
		"win":     payout > 0,
	}
}
