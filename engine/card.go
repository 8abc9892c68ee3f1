// Package engine implements the rules core for a family of trick-taking
// partnership card games (Minnesota Whist, Bid Whist, Oh Hell, Widow Whist,
// Classic Whist, 500).
//
// The package is pure: every component is a function of its inputs, with no
// I/O, timers, or hidden state. The orchestrating layer (internal/game) owns
// the single mutable game state and calls into this package for bidding,
// trick resolution, scoring, and claim analysis.
package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Suit identifies a card suit. SuitNone is a sentinel used for "no trump"
// games and for the joker's effective suit when no trump is declared.
type Suit int8

const (
	SuitNone Suit = iota - 1 // -1
	Spades
	Hearts
	Diamonds
	Clubs
)

// NumSuits is the number of real suits (excludes SuitNone).
const NumSuits = 4

var suitNames = [NumSuits]string{"Spades", "Hearts", "Diamonds", "Clubs"}

func (s Suit) String() string {
	if s < 0 || int(s) >= NumSuits {
		return "NoSuit"
	}
	return suitNames[s]
}

// Color identifies the red/black color of a suit, used by the Minnesota
// Whist card bid (black = high, red = low).
type Color int8

const (
	Black Color = iota
	Red
)

// Color returns the color of the suit. SuitNone reports Black.
func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// Rank identifies a card rank. Joker is only present in variants whose deck
// includes it (500).
type Rank int8

const (
	Two Rank = iota
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
	Joker
)

// NumRanks counts the encodable ranks, joker included.
const NumRanks = 14

var rankNames = [NumRanks]string{
	"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A", "Joker",
}

func (r Rank) String() string {
	if r < 0 || int(r) >= NumRanks {
		return "?"
	}
	return rankNames[r]
}

// Card is an immutable playing-card value. Equality is by rank and suit.
// The joker carries Spades as its nominal suit so that every card, joker
// included, survives the token codec round trip; trick logic identifies it
// by rank alone.
type Card struct {
	Rank Rank
	Suit Suit
}

// JokerCard is the canonical joker value.
var JokerCard = Card{Rank: Joker, Suit: Spades}

// IsJoker reports whether the card is the joker, regardless of nominal suit.
func (c Card) IsJoker() bool { return c.Rank == Joker }

// Color returns the card's color. The joker has no meaningful color; it
// reports the color of its nominal suit and is absent from the variants
// that bid by color.
func (c Card) Color() Color { return c.Suit.Color() }

func (c Card) String() string {
	if c.IsJoker() {
		return "Joker"
	}
	return c.Rank.String() + " of " + c.Suit.String()
}

// Token encodes the card as "<rankIndex>|<suitIndex>", the persisted
// representation for saved cut cards and hands. ParseCard inverts it.
func (c Card) Token() string {
	return strconv.Itoa(int(c.Rank)) + "|" + strconv.Itoa(int(c.Suit))
}

// ParseCard decodes a card token produced by Token.
//
// Malformed tokens fail with an error wrapping ErrCardTokenFormat;
// well-formed tokens whose indices fall outside the rank/suit tables fail
// with an error wrapping ErrCardTokenRange. Callers use errors.Is to decide
// whether corrupt save data should be logged or discarded.
func ParseCard(token string) (Card, error) {
	parts := strings.Split(token, "|")
	if len(parts) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrCardTokenFormat, token)
	}
	rankIdx, err := strconv.Atoi(parts[0])
	if err != nil {
		return Card{}, fmt.Errorf("%w: rank in %q", ErrCardTokenFormat, token)
	}
	suitIdx, err := strconv.Atoi(parts[1])
	if err != nil {
		return Card{}, fmt.Errorf("%w: suit in %q", ErrCardTokenFormat, token)
	}
	if rankIdx < 0 || rankIdx >= NumRanks {
		return Card{}, fmt.Errorf("%w: rank index %d", ErrCardTokenRange, rankIdx)
	}
	if suitIdx < 0 || suitIdx >= NumSuits {
		return Card{}, fmt.Errorf("%w: suit index %d", ErrCardTokenRange, suitIdx)
	}
	return Card{Rank: Rank(rankIdx), Suit: Suit(suitIdx)}, nil
}

// indexOfCard returns the position of target in cards, or -1.
func indexOfCard(cards []Card, target Card) int {
	for i, c := range cards {
		if c == target {
			return i
		}
	}
	return -1
}

// containsCard reports whether cards holds target.
func containsCard(cards []Card, target Card) bool {
	return indexOfCard(cards, target) >= 0
}

// removeCard returns cards with the first occurrence of target removed.
// The input slice is not modified.
func removeCard(cards []Card, target Card) []Card {
	idx := indexOfCard(cards, target)
	if idx < 0 {
		return cards
	}
	out := make([]Card, 0, len(cards)-1)
	out = append(out, cards[:idx]...)
	out = append(out, cards[idx+1:]...)
	return out
}
