// Package ridebus implements the Ride the Bus round-elimination game: four
// guess-then-reveal rounds that multiply a running payout on success and
// zero it on the first failure.
package ridebus

import (
	rand "math/rand/v2"

	"github.com/lox/cardsim/internal/deck"
)

// ColorChoice is the player's guess for the color round.
type ColorChoice int

const (
	Red ColorChoice = iota
	Black
)

// String returns the string representation of a color choice
func (c ColorChoice) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// HighLowChoice is the player's guess for the higher/lower round.
type HighLowChoice int

const (
	Higher HighLowChoice = iota
	Lower
)

// String returns the string representation of a high/low choice
func (c HighLowChoice) String() string {
	if c == Higher {
		return "higher"
	}
	return "lower"
}

// InOutChoice is the player's guess for the inside/outside round.
type InOutChoice int

const (
	Inside InOutChoice = iota
	Outside
)

// String returns the string representation of an inside/outside choice
func (c InOutChoice) String() string {
	if c == Inside {
		return "inside"
	}
	return "outside"
}

// Round identifies one of the four rounds in play order.
type Round int

const (
	RoundColor Round = iota + 1
	RoundHighLow
	RoundInOut
	RoundSuit
)

// Per-round payout multipliers.
const (
	MultiplierColor   = 2
	MultiplierHighLow = 3
	MultiplierInOut   = 4
	MultiplierSuit    = 20
)

// State is the game's position in the round chain.
type State int

const (
	StateColor State = iota
	StateHighLow
	StateInOut
	StateSuit
	StateCompleted
	StateEliminated
)

// RoundRecord is one guess-then-reveal outcome, immutable once appended to
// the history.
type RoundRecord struct {
	Round   Round
	Card    deck.Card
	Guess   string
	Correct bool
}

// Game is one Ride the Bus session. Rounds must be played in order; a wrong
// guess eliminates the game immediately and zeroes the winnings.
type Game struct {
	deck     *deck.Deck
	history  []RoundRecord
	state    State
	wager    float64
	winnings float64
}

// NewGame creates a session with a fresh shuffled deck.
func NewGame(rng *rand.Rand, wager float64) *Game {
	return &Game{
		deck:  deck.New(rng),
		wager: wager,
	}
}

// State returns the game's current state.
func (g *Game) State() State { return g.state }

// Wager returns the stake placed on the session.
func (g *Game) Wager() float64 { return g.wager }

// Winnings returns the running payout; zero after elimination.
func (g *Game) Winnings() float64 { return g.winnings }

// History returns the ordered round records so far.
func (g *Game) History() []RoundRecord { return g.history }

// NetResult returns the trial's net outcome: winnings minus wager when the
// chain completed, otherwise the lost wager.
func (g *Game) NetResult() float64 {
	if g.state == StateCompleted {
		return g.winnings - g.wager
	}
	return -g.wager
}

// draw takes the next card, replacing the exhausted deck with a freshly
// shuffled one exactly once if needed.
func (g *Game) draw() (deck.Card, bool) {
	card, ok := g.deck.Draw()
	if !ok {
		g.deck.Reset(true)
		card, ok = g.deck.Draw()
	}
	return card, ok
}

// cardValue orders cards for the comparison rounds, ace high.
func cardValue(card deck.Card) int {
	return card.Value()
}

func (g *Game) resolve(round Round, card deck.Card, guess string, correct bool, multiplier float64, next State) {
	g.history = append(g.history, RoundRecord{Round: round, Card: card, Guess: guess, Correct: correct})
	if !correct {
		g.winnings = 0
		g.state = StateEliminated
		return
	}
	if round == RoundColor {
		g.winnings = g.wager * multiplier
	} else {
		g.winnings *= multiplier
	}
	g.state = next
}

// PlayColor plays round one: red or black. Returns the revealed card and
// whether the guess was correct; a no-op returning false when the game is
// not in the color round.
func (g *Game) PlayColor(choice ColorChoice) (deck.Card, bool) {
	if g.state != StateColor {
		return deck.Card{}, false
	}
	card, ok := g.draw()
	if !ok {
		return deck.Card{}, false
	}
	correct := (choice == Red) == card.IsRed()
	g.resolve(RoundColor, card, choice.String(), correct, MultiplierColor, StateHighLow)
	return card, correct
}

// PlayHighLow plays round two: is the next card higher or lower than the
// previous one? A tie counts as higher.
func (g *Game) PlayHighLow(choice HighLowChoice) (deck.Card, bool) {
	if g.state != StateHighLow || len(g.history) == 0 {
		return deck.Card{}, false
	}
	prev := g.history[len(g.history)-1].Card
	card, ok := g.draw()
	if !ok {
		return deck.Card{}, false
	}
	isHigher := cardValue(card) >= cardValue(prev)
	correct := (choice == Higher) == isHigher
	g.resolve(RoundHighLow, card, choice.String(), correct, MultiplierHighLow, StateInOut)
	return card, correct
}

// PlayInOut plays round three: does the next card fall between the two
// previous cards? Bounds are order-independent and inclusive, so a card
// equal to either boundary counts as inside.
func (g *Game) PlayInOut(choice InOutChoice) (deck.Card, bool) {
	if g.state != StateInOut || len(g.history) < 2 {
		return deck.Card{}, false
	}
	first := cardValue(g.history[len(g.history)-2].Card)
	second := cardValue(g.history[len(g.history)-1].Card)
	low, high := first, second
	if low > high {
		low, high = high, low
	}

	card, ok := g.draw()
	if !ok {
		return deck.Card{}, false
	}
	value := cardValue(card)
	isInside := value >= low && value <= high
	correct := (choice == Inside) == isInside
	g.resolve(RoundInOut, card, choice.String(), correct, MultiplierInOut, StateSuit)
	return card, correct
}

// PlaySuit plays the final round: exact suit match.
func (g *Game) PlaySuit(choice deck.Suit) (deck.Card, bool) {
	if g.state != StateSuit {
		return deck.Card{}, false
	}
	card, ok := g.draw()
	if !ok {
		return deck.Card{}, false
	}
	correct := card.Suit == choice
	g.resolve(RoundSuit, card, choice.String(), correct, MultiplierSuit, StateCompleted)
	return card, correct
}
