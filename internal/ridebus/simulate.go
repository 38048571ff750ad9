package ridebus

import (
	rand "math/rand/v2"

	"github.com/lox/cardsim/internal/deck"
	"github.com/lox/cardsim/internal/montecarlo"
)

// Strategy names recorded in trial results.
const (
	StrategyCashoutAfterColor = "cashout_after_color"
	StrategyCashoutAfterInOut = "cashout_after_inout"
	StrategyRideToSuit        = "ride_to_suit"
)

// OptimalHighLow picks higher or lower based on the previous card, with a
// small deliberate error rate so the guess stays stochastic rather than a
// hard threshold.
func OptimalHighLow(prev deck.Card, rng *rand.Rand) HighLowChoice {
	value := prev.Value()

	switch {
	case value >= 10:
		if rng.Float64() < 0.95 {
			return Lower
		}
		return Higher
	case value <= 5:
		if rng.Float64() < 0.95 {
			return Higher
		}
		return Lower
	default:
		// Middle cards: linearly less likely to guess higher as the
		// previous card's value grows.
		higherProb := 1.15 - float64(value)/10
		if higherProb < 0 {
			higherProb = 0
		}
		if rng.Float64() < higherProb {
			return Higher
		}
		return Lower
	}
}

// OptimalInOut weighs the inclusive inside range against the outside range
// of the two boundary cards and guesses toward the larger one.
func OptimalInOut(a, b deck.Card, rng *rand.Rand) InOutChoice {
	low, high := a.Value(), b.Value()
	if low > high {
		low, high = high, low
	}

	insideRange := high - low - 1
	outsideRange := (low - 1) + (14 - high)

	switch {
	case insideRange > outsideRange:
		if rng.Float64() < 0.9 {
			return Inside
		}
		return Outside
	case outsideRange > insideRange:
		if rng.Float64() < 0.9 {
			return Outside
		}
		return Inside
	default:
		// Equal ranges: duplicates of the boundary cards count as inside,
		// but lean slightly outside.
		if rng.Float64() < 0.55 {
			return Outside
		}
		return Inside
	}
}

func randomColor(rng *rand.Rand) ColorChoice {
	return ColorChoice(rng.IntN(2))
}

func randomSuit(rng *rand.Rand) deck.Suit {
	return deck.Suits[rng.IntN(len(deck.Suits))]
}

func record(g *Game, strategy string) montecarlo.Result {
	history := g.History()
	cards := make([]string, len(history))
	for i, rec := range history {
		cards[i] = rec.Card.String()
	}
	winnings := g.Winnings()
	return montecarlo.Result{
		"strategy":      strategy,
		"bet":           g.Wager(),
		"rounds_played": len(history),
		"cards":         cards,
		"winnings":      winnings,
		"net_win":       winnings - g.Wager(),
	}
}

// SimulateCashoutAfterColor plays only the color round and banks the 2x
// payout on success.
func SimulateCashoutAfterColor(rng *rand.Rand, wager float64) montecarlo.Result {
	game := NewGame(rng, wager)
	game.PlayColor(randomColor(rng))
	return record(game, StrategyCashoutAfterColor)
}

// SimulateCashoutAfterInOut plays three rounds with informed higher/lower
// and inside/outside choices and cashes out at 24x after the third.
func SimulateCashoutAfterInOut(rng *rand.Rand, wager float64) montecarlo.Result {
	game := NewGame(rng, wager)

	card1, ok := game.PlayColor(randomColor(rng))
	if !ok {
		return record(game, StrategyCashoutAfterInOut)
	}
	card2, ok := game.PlayHighLow(OptimalHighLow(card1, rng))
	if !ok {
		return record(game, StrategyCashoutAfterInOut)
	}
	game.PlayInOut(OptimalInOut(card1, card2, rng))
	return record(game, StrategyCashoutAfterInOut)
}

// SimulateRideToSuit plays all four rounds, never cashing out, for the full
// 480x chain.
func SimulateRideToSuit(rng *rand.Rand, wager float64) montecarlo.Result {
	game := NewGame(rng, wager)

	card1, ok := game.PlayColor(randomColor(rng))
	if !ok {
		return record(game, StrategyRideToSuit)
	}
	card2, ok := game.PlayHighLow(OptimalHighLow(card1, rng))
	if !ok {
		return record(game, StrategyRideToSuit)
	}
	if _, ok := game.PlayInOut(OptimalInOut(card1, card2, rng)); !ok {
		return record(game, StrategyRideToSuit)
	}
	game.PlaySuit(randomSuit(rng))
	return record(game, StrategyRideToSuit)
}
