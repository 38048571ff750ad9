package blackjack

import (
	rand "math/rand/v2"

	"github.com/lox/cardsim/internal/deck"
)

// Result is the outcome classification of one player hand.
type Result int

const (
	Win Result = iota
	Lose
	Push
	Blackjack
)

// String returns the string representation of a result
func (r Result) String() string {
	switch r {
	case Win:
		return "win"
	case Lose:
		return "lose"
	case Push:
		return "push"
	case Blackjack:
		return "blackjack"
	default:
		return "?"
	}
}

// Game is one blackjack session: a shoe, the player's hands, and the
// dealer's hand. It lives for exactly one trial.
type Game struct {
	shoe   *deck.Deck
	hands  []*Hand
	dealer *Hand
}

// NewGame creates a game dealt from a fresh shuffled shoe.
func NewGame(rng *rand.Rand, numDecks int) *Game {
	return &Game{shoe: deck.NewShoe(rng, numDecks)}
}

// draw takes the next card, resetting and reshuffling the shoe once if it is
// exhausted.
func (g *Game) draw() (deck.Card, bool) {
	card, ok := g.shoe.Draw()
	if !ok {
		g.shoe.Reset(true)
		card, ok = g.shoe.Draw()
	}
	return card, ok
}

// DealInitial deals two cards to each of numHands player hands and two to
// the dealer, replacing any hands from a previous deal.
func (g *Game) DealInitial(numHands int, wager float64) {
	g.hands = g.hands[:0]
	for i := 0; i < numHands; i++ {
		g.hands = append(g.hands, NewHand(g.shoe.DrawN(2), wager))
	}
	g.dealer = NewHand(g.shoe.DrawN(2), 0)
}

// Hands returns the player's hands in table order.
func (g *Game) Hands() []*Hand {
	return g.hands
}

// Dealer returns the dealer's hand.
func (g *Game) Dealer() *Hand {
	return g.dealer
}

// DealerUpCard returns the dealer's face-up card.
func (g *Game) DealerUpCard() (deck.Card, bool) {
	if g.dealer == nil || g.dealer.Size() == 0 {
		return deck.Card{}, false
	}
	return g.dealer.Cards()[0], true
}

// Play applies an action to the hand at index. An out-of-range index is a
// no-op returning false; no other state is touched. A split replaces the
// hand at index and inserts its sibling immediately after it.
func (g *Game) Play(index int, action Action) bool {
	if index < 0 || index >= len(g.hands) {
		return false
	}
	hand := g.hands[index]

	switch action {
	case Hit:
		if card, ok := g.draw(); ok {
			hand.Add(card)
		}
	case Double:
		if card, ok := g.draw(); ok {
			hand.DoubleDown(card)
		}
	case Split:
		if !hand.CanSplit() {
			return false
		}
		first, ok1 := g.draw()
		second, ok2 := g.draw()
		if !ok1 || !ok2 {
			return false
		}
		left, right := hand.Split(first, second)
		g.hands[index] = left
		g.hands = append(g.hands, nil)
		copy(g.hands[index+2:], g.hands[index+1:])
		g.hands[index+1] = right
	case Stand:
	}
	return true
}

// PlayDealer draws for the dealer until 17 or better.
func (g *Game) PlayDealer() {
	if g.dealer == nil {
		return
	}
	for g.dealer.BestValue() < 17 {
		card, ok := g.draw()
		if !ok {
			break
		}
		g.dealer.Add(card)
	}
}

// Outcome classifies a player hand against the dealer and returns the
// payout: a natural pays 3:2, a win pays even money, a push returns the
// wager, a loss pays nothing.
func (g *Game) Outcome(hand *Hand) (Result, float64) {
	if g.dealer == nil {
		return Push, 0
	}

	if hand.IsNatural() {
		if g.dealer.IsNatural() {
			return Push, hand.Wager
		}
		return Blackjack, hand.Wager * 2.5
	}
	if hand.IsBust() {
		return Lose, 0
	}
	if g.dealer.IsBust() {
		return Win, hand.Wager * 2
	}

	player := hand.BestValue()
	dealer := g.dealer.BestValue()
	switch {
	case player > dealer:
		return Win, hand.Wager * 2
	case player < dealer:
		return Lose, 0
	default:
		return Push, hand.Wager
	}
}
