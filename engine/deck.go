package engine

import "math/rand"

// Deck is an ordered pack of cards. The engine never shuffles on its own;
// the caller injects a rand source so tests and replays stay deterministic.
type Deck []Card

// NewDeck builds the standard 52-card pack, every rank×suit exactly once,
// plus a single joker when withJoker is set.
func NewDeck(withJoker bool) Deck {
	size := 52
	if withJoker {
		size++
	}
	d := make(Deck, 0, size)
	for s := Suit(0); s < NumSuits; s++ {
		for r := Two; r <= Ace; r++ {
			d = append(d, Card{Rank: r, Suit: s})
		}
	}
	if withJoker {
		d = append(d, JokerCard)
	}
	return d
}

// NewShortDeck builds the 45-card pack used for four-handed 500: the
// standard pack with all twos and threes removed and the joker added.
func NewShortDeck() Deck {
	d := make(Deck, 0, 45)
	for s := Suit(0); s < NumSuits; s++ {
		for r := Four; r <= Ace; r++ {
			d = append(d, Card{Rank: r, Suit: s})
		}
	}
	d = append(d, JokerCard)
	return d
}

// Shuffle permutes the deck in place with a Fisher-Yates pass over the
// injected source. A nil rng leaves the deck untouched, which is what
// fixed-deck tests want.
func (d Deck) Shuffle(rng *rand.Rand) {
	if rng == nil {
		return
	}
	for i := len(d) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// Deal distributes the deck one card at a time clockwise starting at the
// dealer's left, handSize cards to each seat, then kittySize cards to the
// kitty/widow. Whatever is left is returned as the undealt remainder (used
// by Oh Hell's trump flip).
//
// The assignment is fully determined by the deck order and the dealer seat.
// A deck too small for the requested shape is an invariant violation.
func (d Deck) Deal(dealer Position, handSize, kittySize int) (hands [NumPositions][]Card, kitty, undealt []Card, err error) {
	need := NumPositions*handSize + kittySize
	if len(d) < need {
		return hands, nil, nil, invariantf("deck has %d cards, deal needs %d", len(d), need)
	}

	for i := range hands {
		hands[i] = make([]Card, 0, handSize)
	}

	idx := 0
	for c := 0; c < handSize; c++ {
		seat := dealer.Next()
		for s := 0; s < NumPositions; s++ {
			hands[seat] = append(hands[seat], d[idx])
			idx++
			seat = seat.Next()
		}
	}

	kitty = make([]Card, kittySize)
	copy(kitty, d[idx:idx+kittySize])
	idx += kittySize

	undealt = make([]Card, len(d)-idx)
	copy(undealt, d[idx:])
	return hands, kitty, undealt, nil
}
