package ridebus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/cardsim/internal/deck"
	"github.com/lox/cardsim/internal/randutil"
)

func TestOptimalHighLowFavoursTheLikelyDirection(t *testing.T) {
	rng := randutil.New(11)
	const trials = 2000

	lowerForKing := 0
	higherForTwo := 0
	for i := 0; i < trials; i++ {
		if OptimalHighLow(deck.NewCard(deck.Spades, deck.King), rng) == Lower {
			lowerForKing++
		}
		if OptimalHighLow(deck.NewCard(deck.Spades, deck.Two), rng) == Higher {
			higherForTwo++
		}
	}

	assert.Greater(t, lowerForKing, trials*9/10)
	assert.Greater(t, higherForTwo, trials*9/10)
}

func TestOptimalHighLowMiddleCardsLeanWithTheRange(t *testing.T) {
	rng := randutil.New(12)
	const trials = 2000

	// A six leaves more cards above it than below, so higher should win
	// most guesses; a nine is the mirror case.
	higherForSix := 0
	lowerForNine := 0
	for i := 0; i < trials; i++ {
		if OptimalHighLow(deck.NewCard(deck.Spades, deck.Six), rng) == Higher {
			higherForSix++
		}
		if OptimalHighLow(deck.NewCard(deck.Spades, deck.Nine), rng) == Lower {
			lowerForNine++
		}
	}

	assert.Greater(t, higherForSix, trials/2)
	assert.Greater(t, lowerForNine, trials/2)
}

func TestOptimalInOutFavoursTheLargerRange(t *testing.T) {
	rng := randutil.New(13)
	const trials = 2000

	insideWide := 0
	outsideNarrow := 0
	for i := 0; i < trials; i++ {
		// 2..K leaves ten ranks inside and only two outside.
		if OptimalInOut(deck.NewCard(deck.Spades, deck.Two), deck.NewCard(deck.Hearts, deck.King), rng) == Inside {
			insideWide++
		}
		// 7..9 leaves one rank inside and eleven outside.
		if OptimalInOut(deck.NewCard(deck.Spades, deck.Seven), deck.NewCard(deck.Hearts, deck.Nine), rng) == Outside {
			outsideNarrow++
		}
	}

	assert.Greater(t, insideWide, trials*8/10)
	assert.Greater(t, outsideNarrow, trials*8/10)
}

func TestOptimalInOutEqualRangesLeanOutside(t *testing.T) {
	rng := randutil.New(14)
	const trials = 2000

	// 4 and J split the deck evenly: six ranks inside, six outside.
	outside := 0
	for i := 0; i < trials; i++ {
		if OptimalInOut(deck.NewCard(deck.Spades, deck.Four), deck.NewCard(deck.Hearts, deck.Jack), rng) == Outside {
			outside++
		}
	}

	assert.Greater(t, outside, trials*45/100)
	assert.Less(t, outside, trials*65/100)
}

func TestSimulateCashoutAfterColorRecord(t *testing.T) {
	rng := randutil.New(21)
	for i := 0; i < 200; i++ {
		rec := SimulateCashoutAfterColor(rng, 2)

		assert.Equal(t, StrategyCashoutAfterColor, rec["strategy"])
		assert.Equal(t, 2.0, rec["bet"])
		assert.Equal(t, 1, rec["rounds_played"])

		winnings := rec["winnings"].(float64)
		net := rec["net_win"].(float64)
		assert.InDelta(t, winnings-2, net, 1e-9)
		assert.Contains(t, []float64{0, 4}, winnings)
	}
}

func TestSimulateCashoutAfterInOutRecord(t *testing.T) {
	rng := randutil.New(22)
	sawWin := false
	for i := 0; i < 500; i++ {
		rec := SimulateCashoutAfterInOut(rng, 1)

		assert.Equal(t, StrategyCashoutAfterInOut, rec["strategy"])
		rounds := rec["rounds_played"].(int)
		require.GreaterOrEqual(t, rounds, 1)
		require.LessOrEqual(t, rounds, 3)

		winnings := rec["winnings"].(float64)
		if winnings > 0 {
			// Cashing out after round three banks the full 2*3*4 chain.
			assert.Equal(t, 24.0, winnings)
			assert.Equal(t, 3, rounds)
			sawWin = true
		}
		assert.Len(t, rec["cards"].([]string), rounds)
	}
	assert.True(t, sawWin, "expected at least one completed chain in 500 games")
}

func TestSimulateRideToSuitRecord(t *testing.T) {
	rng := randutil.New(23)
	sawLoss := false
	for i := 0; i < 2000; i++ {
		rec := SimulateRideToSuit(rng, 1)

		assert.Equal(t, StrategyRideToSuit, rec["strategy"])
		winnings := rec["winnings"].(float64)
		if winnings > 0 {
			assert.Equal(t, 480.0, winnings)
			assert.Equal(t, 4, rec["rounds_played"])
		} else {
			assert.Equal(t, -1.0, rec["net_win"])
			sawLoss = true
		}
	}
	assert.True(t, sawLoss, "expected losses riding to the suit")
}
