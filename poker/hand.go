package poker

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

// ParseCard parses "10♥", "A♠" or "QS".
func ParseCard(s string) (Card, error) {
	r, size := utf8.DecodeLastRuneInString(s)
	if size == 0 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	suit, ok := suits[r]
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown suit in %q", ErrInvalidCard, s)
	}
	v, ok := values[s[:len(s)-size]]
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown rank in %q", ErrInvalidCard, s)
	}

	return Card{Value: v, Suit: suit}, nil
}

// HandRank parses five cards and returns the rank of the hand.
func HandRank(hand []string) (Rank, error) {
	if len(hand) != HandSize {
		return HighCard, ErrHandSize
	}
	cards := make([]Card, 0, HandSize)
	for _, s := range hand {
		c, err := ParseCard(s)
		if err != nil {
			return HighCard, err
		}
		if slices.Contains(cards, c) {
			return HighCard, fmt.Errorf("%w: %q", ErrDuplicateCard, s)
		}
		cards = append(cards, c)
	}

	return Evaluate(cards), nil
}

// Evaluate ranks five already parsed, distinct cards.
func Evaluate(cards []Card) Rank {
	// 1. Group sizes by value, largest group first
	counts := make(map[int]int, len(cards))
	for _, c := range cards {
		counts[c.Value]++
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.Sort(groups)
	slices.Reverse(groups)

	flush := isFlush(cards)
	straight := len(groups) == len(cards) && isStraight(cards)

	// 2. Strongest rank first
	switch {
	case straight && flush:
		return StraightFlush
	case groups[0] == 4:
		return FourOfKind
	case groups[0] == 3 && groups[1] == 2:
		return FullHouse
	case flush:
		return Flush
	case straight:
		return Straight
	case groups[0] == 3:
		return ThreeOfKind
	case groups[0] == 2 && groups[1] == 2:
		return TwoPairs
	case groups[0] == 2:
		return OnePair
	default:
		return HighCard
	}
}

func isFlush(cards []Card) bool {
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}

	return true
}

// isStraight assumes distinct values and tries the ace high, then low.
func isStraight(cards []Card) bool {
	vs := make([]int, len(cards))
	for i, c := range cards {
		vs[i] = c.Value
	}
	slices.Sort(vs)
	if vs[len(vs)-1]-vs[0] == len(vs)-1 {
		return true
	}
	if vs[len(vs)-1] != aceHigh {
		return false
	}
	// wheel: the ace drops below the two
	vs = append([]int{aceLow}, vs[:len(vs)-1]...)

	return vs[len(vs)-1]-vs[0] == len(vs)-1
}
