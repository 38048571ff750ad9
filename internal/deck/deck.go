package deck

import rand "math/rand/v2"

// Deck represents one or more interleaved 52-card decks drawn without
// replacement. The RNG is injected so trials stay reproducible; the deck is
// the only mutable shared resource inside a trial and must not be shared
// across concurrently running trials.
type Deck struct {
	cards    []Card
	numDecks int
	rng      *rand.Rand
}

// New creates a shuffled single 52-card deck using the provided RNG.
func New(rng *rand.Rand) *Deck {
	return NewShoe(rng, 1)
}

// NewShoe creates a shuffled shoe containing numDecks copies of the standard
// 52 cards.
func NewShoe(rng *rand.Rand, numDecks int) *Deck {
	if numDecks < 1 {
		numDecks = 1
	}
	d := &Deck{
		cards:    make([]Card, 0, numDecks*52),
		numDecks: numDecks,
		rng:      rng,
	}
	d.fill()
	d.Shuffle()
	return d
}

// NewStacked creates a deck that deals the given cards in order before
// falling back to the usual reset behavior. Used to script exact card
// sequences.
func NewStacked(rng *rand.Rand, cards ...Card) *Deck {
	d := &Deck{
		cards:    make([]Card, len(cards)),
		numDecks: 1,
		rng:      rng,
	}
	// Draw pops from the back, so store in reverse deal order.
	for i, card := range cards {
		d.cards[len(cards)-1-i] = card
	}
	return d
}

func (d *Deck) fill() {
	d.cards = d.cards[:0]
	for i := 0; i < d.numDecks; i++ {
		for _, suit := range Suits {
			for rank := Two; rank <= Ace; rank++ {
				d.cards = append(d.cards, NewCard(suit, rank))
			}
		}
	}
}

// Shuffle randomizes the order of the remaining cards.
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the top card. The second return is false when the
// deck is exhausted; callers either Reset and retry once or end the trial.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, true
}

// DrawN draws up to n cards. The result may be shorter than n if the deck
// runs out.
func (d *Deck) DrawN(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	cards := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		card, ok := d.Draw()
		if !ok {
			break
		}
		cards = append(cards, card)
	}
	return cards
}

// Remaining returns the number of cards left.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// IsEmpty returns true if no cards are left.
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Reset restores the full fixed card set, optionally shuffling it.
func (d *Deck) Reset(randomize bool) {
	d.fill()
	if randomize {
		d.Shuffle()
	}
}
