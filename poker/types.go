package poker

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the umbrella sentinel for malformed hands.
	ErrInvalidInput = errors.New("poker: invalid input")
	// ErrInvalidCard indicates an unknown rank or suit.
	ErrInvalidCard = fmt.Errorf("%w: invalid card", ErrInvalidInput)
	// ErrHandSize indicates a hand that does not hold exactly HandSize cards.
	ErrHandSize = fmt.Errorf("%w: hand must hold five cards", ErrInvalidInput)
	// ErrDuplicateCard indicates the same card twice in one hand.
	ErrDuplicateCard = fmt.Errorf("%w: duplicate card", ErrInvalidInput)
)

// HandSize is the number of cards in a hand.
const HandSize = 5

// Rank orders hands from weakest to strongest.
type Rank int

const (
	HighCard Rank = iota
	OnePair
	TwoPairs
	ThreeOfKind
	Straight
	Flush
	FullHouse
	FourOfKind
	StraightFlush
)

var rankNames = [...]string{
	HighCard:      "HighCard",
	OnePair:       "OnePair",
	TwoPairs:      "TwoPairs",
	ThreeOfKind:   "ThreeOfKind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "FullHouse",
	FourOfKind:    "FourOfKind",
	StraightFlush: "StraightFlush",
}

// String implements fmt.Stringer.
func (r Rank) String() string {
	if r < 0 || int(r) >= len(rankNames) {
		return fmt.Sprintf("Rank(%d)", int(r))
	}

	return rankNames[r]
}

// Suit is one of the four French suits.
type Suit rune

const (
	Clubs    Suit = '♣'
	Diamonds Suit = '♦'
	Hearts   Suit = '♥'
	Spades   Suit = '♠'
)

// Card is a parsed playing card. Value runs 2..14 with the ace as 14.
type Card struct {
	Value int
	Suit  Suit
}

// aceHigh and aceLow are the two values an ace takes in a straight.
const (
	aceHigh = 14
	aceLow  = 1
)

// values maps rank symbols to card values.
var values = map[string]int{
	"2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7, "8": 8, "9": 9, "10": 10,
	"J": 11, "Q": 12, "K": 13, "A": aceHigh,
}

// suits maps suit symbols, including letter aliases, to suits.
var suits = map[rune]Suit{
	'♣': Clubs, '♦': Diamonds, '♥': Hearts, '♠': Spades,
	'C': Clubs, 'D': Diamonds, 'H': Hearts, 'S': Spades,
}
