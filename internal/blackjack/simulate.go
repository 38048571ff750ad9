package blackjack

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/cardsim/internal/deck"
	"github.com/lox/cardsim/internal/montecarlo"
)

// DefaultDecks is the shoe size used by the simulation trials.
const DefaultDecks = 6

// SimulateBasicStrategy plays one full hand by the basic strategy table and
// returns the trial record for the Monte Carlo engine.
func SimulateBasicStrategy(rng *rand.Rand, numDecks int, wager float64) montecarlo.Result {
	game := NewGame(rng, numDecks)
	game.DealInitial(1, wager)

	upCard, ok := game.DealerUpCard()
	if !ok {
		return montecarlo.Result{"result": Push.String(), "net_win": 0.0}
	}

	// Splits grow the hand list while we walk it; the inserted sibling is
	// picked up on the next index.
	for i := 0; i < len(game.Hands()); i++ {
		hand := game.Hands()[i]
		if hand.IsNatural() {
			continue
		}
		for !hand.IsBust() {
			action := Recommend(hand, upCard)
			if action == Stand {
				break
			}
			game.Play(i, action)
			// Doubling and splitting end the turn for this hand.
			if action == Double || action == Split {
				break
			}
		}
	}

	game.PlayDealer()

	totalBet := 0.0
	totalPayout := 0.0
	var firstResult Result
	for i, hand := range game.Hands() {
		result, payout := game.Outcome(hand)
		if i == 0 {
			firstResult = result
		}
		totalBet += hand.Wager
		totalPayout += payout
	}
	netWin := totalPayout - totalBet

	result := firstResult
	if len(game.Hands()) > 1 {
		switch {
		case netWin > 0:
			result = Win
		case netWin < 0:
			result = Lose
		default:
			result = Push
		}
	}

	return montecarlo.Result{
		"result":       result.String(),
		"net_win":      netWin,
		"total_bet":    totalBet,
		"total_payout": totalPayout,
		"num_hands":    len(game.Hands()),
	}
}

// SimulateDealerBust deals the dealer a fixed up card for every up-card
// value and records whether the dealer busts, one indicator field per value.
func SimulateDealerBust(rng *rand.Rand) montecarlo.Result {
	record := montecarlo.Result{}

	for value := 2; value <= 11; value++ {
		game := NewGame(rng, DefaultDecks)

		var rank deck.Rank
		var name string
		switch {
		case value == 11:
			rank = deck.Ace
			name = "ace"
		case value == 10:
			tens := []deck.Rank{deck.Ten, deck.Jack, deck.Queen, deck.King}
			rank = tens[rng.IntN(len(tens))]
			name = "10"
		default:
			rank = deck.Rank(value)
			name = fmt.Sprintf("%d", value)
		}

		hole, ok := game.draw()
		if !ok {
			continue
		}
		game.dealer = NewHand([]deck.Card{deck.NewCard(deck.Spades, rank), hole}, 0)
		game.PlayDealer()

		bust := 0
		if game.dealer.IsBust() {
			bust = 1
		}
		record["dealer_bust_"+name] = bust
	}

	return record
}
