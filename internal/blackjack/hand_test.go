package blackjack

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/cardsim/internal/deck"
)

// bruteValues enumerates every {1,11} assignment over the hand's aces,
// dedupes, and keeps totals <= 21 unless everything busts.
func bruteValues(cards []deck.Card) []int {
	aces := 0
	base := 0
	for _, c := range cards {
		switch {
		case c.IsAce():
			aces++
		case c.IsFaceCard():
			base += 10
		default:
			base += int(c.Rank)
		}
	}

	totals := make(map[int]bool)
	for mask := 0; mask < 1<<aces; mask++ {
		total := base
		for bit := 0; bit < aces; bit++ {
			if mask&(1<<bit) != 0 {
				total += 11
			} else {
				total++
			}
		}
		totals[total] = true
	}

	var all []int
	for t := range totals {
		all = append(all, t)
	}
	sort.Ints(all)

	var legal []int
	for _, t := range all {
		if t <= 21 {
			legal = append(legal, t)
		}
	}
	if len(legal) == 0 {
		return all[:1]
	}
	return legal
}

func TestValuesMatchesBruteForceEnumeration(t *testing.T) {
	// Every hand shape of up to two non-ace cards plus up to four aces.
	nonAces := []deck.Rank{}
	for r := deck.Two; r <= deck.King; r++ {
		nonAces = append(nonAces, r)
	}

	check := func(cards []deck.Card) {
		t.Helper()
		h := NewHand(cards, 1)
		assert.Equal(t, bruteValues(cards), h.Values(), "cards: %v", cards)
	}

	for aces := 0; aces <= 4; aces++ {
		prefix := make([]deck.Card, 0, 6)
		for i := 0; i < aces; i++ {
			prefix = append(prefix, deck.NewCard(deck.Suit(i%4), deck.Ace))
		}

		check(prefix)
		for _, r1 := range nonAces {
			check(append(append([]deck.Card{}, prefix...), deck.NewCard(deck.Spades, r1)))
			for _, r2 := range nonAces {
				cards := append([]deck.Card{}, prefix...)
				cards = append(cards, deck.NewCard(deck.Spades, r1), deck.NewCard(deck.Hearts, r2))
				check(cards)
			}
		}
	}
}

func TestEmptyHandValuesToZero(t *testing.T) {
	h := NewHand(nil, 1)
	assert.Equal(t, []int{0}, h.Values())
	assert.Equal(t, 0, h.BestValue())
}

func TestBestValueNeverBustsWhenAvoidable(t *testing.T) {
	hands := [][]deck.Card{
		{deck.NewCard(deck.Spades, deck.Ace), deck.NewCard(deck.Hearts, deck.Ace)},
		{deck.NewCard(deck.Spades, deck.Ace), deck.NewCard(deck.Hearts, deck.Nine), deck.NewCard(deck.Clubs, deck.Five)},
		{deck.NewCard(deck.Spades, deck.Ten), deck.NewCard(deck.Hearts, deck.Six), deck.NewCard(deck.Clubs, deck.Five)},
	}
	for _, cards := range hands {
		h := NewHand(cards, 1)
		for _, v := range h.Values() {
			if v <= 21 {
				require.LessOrEqual(t, h.BestValue(), 21, "cards: %v", cards)
			}
		}
	}
}

func TestBustHandReportsMinimumValue(t *testing.T) {
	h := NewHand([]deck.Card{
		deck.NewCard(deck.Spades, deck.Ten),
		deck.NewCard(deck.Hearts, deck.Nine),
		deck.NewCard(deck.Clubs, deck.Eight),
	}, 1)

	assert.True(t, h.IsBust())
	assert.Equal(t, []int{27}, h.Values())
	assert.Equal(t, 27, h.BestValue())
}

func TestIsNatural(t *testing.T) {
	natural := NewHand([]deck.Card{
		deck.NewCard(deck.Spades, deck.Ace),
		deck.NewCard(deck.Hearts, deck.King),
	}, 1)
	assert.True(t, natural.IsNatural())

	// 21 with three cards is not a natural.
	threeCard := NewHand([]deck.Card{
		deck.NewCard(deck.Spades, deck.Seven),
		deck.NewCard(deck.Hearts, deck.Seven),
		deck.NewCard(deck.Clubs, deck.Seven),
	}, 1)
	assert.False(t, threeCard.IsNatural())
	assert.Equal(t, 21, threeCard.BestValue())
}

func TestIsSoft(t *testing.T) {
	soft := NewHand([]deck.Card{
		deck.NewCard(deck.Spades, deck.Ace),
		deck.NewCard(deck.Hearts, deck.Six),
	}, 1)
	assert.True(t, soft.IsSoft())

	// Ace forced to count as 1 is a hard hand.
	hard := NewHand([]deck.Card{
		deck.NewCard(deck.Spades, deck.Ace),
		deck.NewCard(deck.Hearts, deck.Nine),
		deck.NewCard(deck.Clubs, deck.Five),
	}, 1)
	assert.False(t, hard.IsSoft())
}

func TestCanSplit(t *testing.T) {
	tests := []struct {
		name  string
		cards []deck.Card
		want  bool
	}{
		{"equal ranks", []deck.Card{deck.NewCard(deck.Spades, deck.Eight), deck.NewCard(deck.Hearts, deck.Eight)}, true},
		{"king and ten both count ten", []deck.Card{deck.NewCard(deck.Spades, deck.King), deck.NewCard(deck.Hearts, deck.Ten)}, true},
		{"aces", []deck.Card{deck.NewCard(deck.Spades, deck.Ace), deck.NewCard(deck.Hearts, deck.Ace)}, true},
		{"different ranks", []deck.Card{deck.NewCard(deck.Spades, deck.Eight), deck.NewCard(deck.Hearts, deck.Nine)}, false},
		{"three cards", []deck.Card{deck.NewCard(deck.Spades, deck.Eight), deck.NewCard(deck.Hearts, deck.Eight), deck.NewCard(deck.Clubs, deck.Eight)}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, NewHand(test.cards, 1).CanSplit())
		})
	}
}

func TestDoubleDown(t *testing.T) {
	h := NewHand([]deck.Card{
		deck.NewCard(deck.Spades, deck.Five),
		deck.NewCard(deck.Hearts, deck.Six),
	}, 2)
	h.DoubleDown(deck.NewCard(deck.Clubs, deck.Ten))

	assert.Equal(t, 4.0, h.Wager)
	assert.True(t, h.Doubled)
	assert.Equal(t, 3, h.Size())
	assert.Equal(t, 21, h.BestValue())
}

func TestSplitProducesIndependentHands(t *testing.T) {
	original := NewHand([]deck.Card{
		deck.NewCard(deck.Spades, deck.Eight),
		deck.NewCard(deck.Hearts, deck.Eight),
	}, 3)

	left, right := original.Split(
		deck.NewCard(deck.Clubs, deck.Two),
		deck.NewCard(deck.Diamonds, deck.Three),
	)

	require.Equal(t, 2, left.Size())
	require.Equal(t, 2, right.Size())
	assert.True(t, left.FromSplit)
	assert.True(t, right.FromSplit)
	assert.Equal(t, 3.0, left.Wager)
	assert.Equal(t, 3.0, right.Wager)
	assert.Equal(t, deck.NewCard(deck.Spades, deck.Eight), left.Cards()[0])
	assert.Equal(t, deck.NewCard(deck.Hearts, deck.Eight), right.Cards()[0])

	// Growing a split hand must not touch the original or the sibling.
	left.Add(deck.NewCard(deck.Clubs, deck.Four))
	assert.Equal(t, 2, original.Size())
	assert.Equal(t, 2, right.Size())
}
