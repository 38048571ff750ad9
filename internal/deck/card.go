// Package deck provides playing cards and the without-replacement card
// sources the game sessions draw from.
package deck

import "fmt"

// Suit is a card suit. Hearts and diamonds are the red suits, which is the
// whole basis of the color-guess round.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists all four suits in deck order.
var Suits = [4]Suit{Spades, Hearts, Diamonds, Clubs}

// String returns the suit glyph.
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed reports whether the suit is hearts or diamonds.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank is a card rank, two through ace. The ordinal puts the ace high for
// the comparison rounds; blackjack's dual 1/11 ace never looks at this
// ordering.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the rank's short form.
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Card is an immutable playing card, compared by (suit, rank) value
// equality. The zero Card is not a valid card; draws signal exhaustion with
// a separate bool rather than a sentinel card.
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a card.
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String renders the card like "A♠".
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// IsRed reports whether the card is red.
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// Value returns the card's ordering value for the higher/lower and
// inside/outside rounds: face cards 11-13, ace high at 14. A tie in value is
// decided by the round's own rule, not here.
func (c Card) Value() int {
	return int(c.Rank)
}

// IsAce reports whether the card is an ace.
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// IsFaceCard reports whether the card is a jack, queen, or king. Blackjack
// counts these as ten; the comparison rounds keep them distinct.
func (c Card) IsFaceCard() bool {
	return c.Rank >= Jack && c.Rank <= King
}
