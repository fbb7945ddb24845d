package poker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/katas/poker"
)

func TestHandRank(t *testing.T) {
	cases := []struct {
		hand []string
		want poker.Rank
	}{
		{[]string{"4♥", "5♥", "6♥", "7♥", "8♥"}, poker.StraightFlush},
		{[]string{"A♠", "4♠", "3♠", "5♠", "2♠"}, poker.StraightFlush},
		{[]string{"4♣", "4♦", "4♥", "4♠", "10♥"}, poker.FourOfKind},
		{[]string{"4♣", "4♦", "5♦", "5♠", "5♥"}, poker.FullHouse},
		{[]string{"4♣", "5♣", "6♣", "7♣", "Q♣"}, poker.Flush},
		{[]string{"2♠", "3♥", "4♥", "5♥", "6♥"}, poker.Straight},
		{[]string{"2♥", "4♦", "5♥", "A♦", "3♠"}, poker.Straight},
		{[]string{"10♥", "J♦", "Q♥", "K♦", "A♠"}, poker.Straight},
		{[]string{"2♥", "2♠", "2♦", "7♥", "A♥"}, poker.ThreeOfKind},
		{[]string{"2♥", "4♦", "4♥", "A♦", "A♠"}, poker.TwoPairs},
		{[]string{"3♥", "4♥", "10♥", "3♦", "A♠"}, poker.OnePair},
		{[]string{"A♥", "K♥", "Q♥", "2♦", "3♠"}, poker.HighCard},
		{[]string{"QH", "KH", "AH", "2H", "3H"}, poker.Flush},
	}
	for _, tc := range cases {
		got, err := poker.HandRank(tc.hand)
		require.NoError(t, err, "hand %v", tc.hand)
		assert.Equal(t, tc.want, got, "hand %v: got %s", tc.hand, got)
	}
}

func TestHandRank_Invalid(t *testing.T) {
	_, err := poker.HandRank([]string{"4♥", "5♥"})
	assert.ErrorIs(t, err, poker.ErrHandSize)

	_, err = poker.HandRank([]string{"4♥", "4♥", "6♥", "7♥", "8♥"})
	assert.ErrorIs(t, err, poker.ErrDuplicateCard)

	for _, s := range []string{"", "♥", "1♥", "11♥", "4X", "Z♠"} {
		_, err = poker.ParseCard(s)
		assert.ErrorIs(t, err, poker.ErrInvalidCard, "card %q", s)
		assert.ErrorIs(t, err, poker.ErrInvalidInput, "card %q", s)
	}
}

func TestParseCard(t *testing.T) {
	c, err := poker.ParseCard("10♦")
	require.NoError(t, err)
	assert.Equal(t, poker.Card{Value: 10, Suit: poker.Diamonds}, c)

	c, err = poker.ParseCard("AS")
	require.NoError(t, err)
	assert.Equal(t, poker.Card{Value: 14, Suit: poker.Spades}, c)
}

func TestRank_String(t *testing.T) {
	assert.Equal(t, "FullHouse", poker.FullHouse.String())
	assert.Equal(t, "Rank(42)", poker.Rank(42).String())
}
