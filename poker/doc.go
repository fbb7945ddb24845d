// Package poker ranks five-card poker hands.
//
// Cards are written rank then suit: "10♥", "A♠", "Q♣". Ranks are 2..10, J, Q,
// K, A; suits are ♣ ♦ ♥ ♠ (the letters C, D, H, S are accepted too). The ace
// plays high or low in a straight, so A-2-3-4-5 and 10-J-Q-K-A both count.
//
// See https://en.wikipedia.org/wiki/List_of_poker_hands for the ranking.
package poker
