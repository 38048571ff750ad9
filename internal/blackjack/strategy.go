package blackjack

import "github.com/lox/cardsim/internal/deck"

// Action is a player decision.
type Action int

const (
	Hit Action = iota
	Stand
	Double
	Split
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case Double:
		return "double"
	case Split:
		return "split"
	default:
		return "?"
	}
}

// Recommend returns the basic strategy action for a hand against the
// dealer's up card. The tables are evaluated in order of precedence: pairs,
// then soft totals, then hard totals. The function is total and
// deterministic over every hand with at least one card.
func Recommend(hand *Hand, upCard deck.Card) Action {
	dealer := dealerValue(upCard)

	if hand.CanSplit() {
		return recommendPair(hand, dealer)
	}
	if hand.IsSoft() {
		return recommendSoft(hand.BestValue(), dealer)
	}
	return recommendHard(hand.BestValue(), dealer)
}

// dealerValue maps the dealer's up card to its strategy value: face cards
// are 10 and the ace is 11. Only the strategy tables use this mapping.
func dealerValue(card deck.Card) int {
	switch {
	case card.IsAce():
		return 11
	case card.IsFaceCard():
		return 10
	default:
		return int(card.Rank)
	}
}

func recommendPair(hand *Hand, dealer int) Action {
	rank := splitRank(hand.Cards()[0])

	switch {
	case rank == 1 || rank == 8:
		// Always split aces and eights.
		return Split
	case rank == 10:
		return Stand
	case rank == 5:
		// Never split fives; always take a card.
		return Hit
	case (rank == 2 || rank == 3 || rank == 7) && dealer <= 7:
		return Split
	case rank == 4 && dealer >= 5 && dealer <= 6:
		return Split
	case rank == 6 && dealer >= 2 && dealer <= 6:
		return Split
	case rank == 9 && (dealer >= 2 && dealer <= 6 || dealer >= 8 && dealer <= 9):
		return Split
	default:
		return recommendHard(rank*2, dealer)
	}
}

func recommendSoft(total, dealer int) Action {
	switch {
	case total >= 20:
		return Stand
	case total <= 17:
		return Hit
	case total == 18:
		if dealer >= 3 && dealer <= 6 {
			return Double
		}
		if dealer == 2 || dealer == 7 || dealer == 8 {
			return Stand
		}
		return Hit
	case total == 19:
		if dealer == 6 {
			return Double
		}
		return Stand
	default:
		return Stand
	}
}

func recommendHard(total, dealer int) Action {
	switch {
	case total >= 17:
		return Stand
	case total <= 8:
		return Hit
	case total == 9:
		if dealer >= 3 && dealer <= 6 {
			return Double
		}
		return Hit
	case total == 10 || total == 11:
		if dealer <= 9 {
			return Double
		}
		return Hit
	case total == 12:
		if dealer >= 4 && dealer <= 6 {
			return Stand
		}
		return Hit
	case total >= 13 && total <= 16:
		if dealer >= 2 && dealer <= 6 {
			return Stand
		}
		return Hit
	default:
		return Hit
	}
}
