// Package blackjack implements the 21-point game: combinatorial hand
// valuation with dual-valued aces, the basic strategy decision table, and a
// session controller that plays full hands against a dealer.
package blackjack

import "github.com/lox/cardsim/internal/deck"

const target = 21

// Hand is an ordered sequence of cards owned by one game session, together
// with its wager and the flags the payout rules need. Hands only grow;
// splitting produces two new hands rather than mutating this one in place.
type Hand struct {
	cards     []deck.Card
	Wager     float64
	Doubled   bool
	FromSplit bool
}

// NewHand creates a hand with its own copy of the initial cards.
func NewHand(cards []deck.Card, wager float64) *Hand {
	h := &Hand{
		cards: make([]deck.Card, len(cards)),
		Wager: wager,
	}
	copy(h.cards, cards)
	return h
}

// Add appends a card to the hand.
func (h *Hand) Add(card deck.Card) {
	h.cards = append(h.cards, card)
}

// Cards returns the cards in draw order.
func (h *Hand) Cards() []deck.Card {
	return h.cards
}

// Size returns the number of cards held.
func (h *Hand) Size() int {
	return len(h.cards)
}

// Values returns every distinct total the hand can make, ascending. Non-ace
// cards count face value (face cards 10); each ace counts 1 in the baseline
// and may add 10 while the total stays at or under 21. If even the baseline
// busts, the baseline is the sole value. An empty hand values to {0}.
func (h *Hand) Values() []int {
	base := 0
	aces := 0
	for _, card := range h.cards {
		switch {
		case card.IsAce():
			base++
			aces++
		case card.IsFaceCard():
			base += 10
		default:
			base += int(card.Rank)
		}
	}

	values := []int{base}
	for j := 1; j <= aces; j++ {
		v := base + 10*j
		if v > target {
			break
		}
		values = append(values, v)
	}
	return values
}

// BestValue returns the highest total not exceeding 21, or the lowest total
// when every total busts.
func (h *Hand) BestValue() int {
	values := h.Values()
	best := values[len(values)-1]
	if best <= target {
		return best
	}
	return values[0]
}

// IsBust reports whether every possible total exceeds 21.
func (h *Hand) IsBust() bool {
	return h.Values()[0] > target
}

// IsNatural reports whether the hand is a two-card 21.
func (h *Hand) IsNatural() bool {
	if len(h.cards) != 2 {
		return false
	}
	for _, v := range h.Values() {
		if v == target {
			return true
		}
	}
	return false
}

// IsSoft reports whether an ace is currently counted as 11 without busting.
func (h *Hand) IsSoft() bool {
	values := h.Values()
	return len(values) > 1 && values[len(values)-1] <= target
}

// CanSplit reports whether the hand is a splittable pair: exactly two cards
// of equal effective rank, with every ten-valued card counting as 10.
func (h *Hand) CanSplit() bool {
	if len(h.cards) != 2 {
		return false
	}
	return splitRank(h.cards[0]) == splitRank(h.cards[1])
}

// DoubleDown doubles the wager, marks the hand, and takes exactly one more
// card.
func (h *Hand) DoubleDown(card deck.Card) {
	h.Wager *= 2
	h.Doubled = true
	h.Add(card)
}

// Split divides a pair into two new independently owned hands, dealing one
// card to each. The receiver's storage is never aliased.
func (h *Hand) Split(first, second deck.Card) (*Hand, *Hand) {
	left := NewHand([]deck.Card{h.cards[0]}, h.Wager)
	left.FromSplit = true
	left.Add(first)

	right := NewHand([]deck.Card{h.cards[1]}, h.Wager)
	right.FromSplit = true
	right.Add(second)

	return left, right
}

// splitRank maps a card to the rank used for pair comparison and the pair
// strategy table: ace is 1, ten-valued cards are 10.
func splitRank(card deck.Card) int {
	switch {
	case card.IsAce():
		return 1
	case card.IsFaceCard():
		return 10
	default:
		return int(card.Rank)
	}
}
