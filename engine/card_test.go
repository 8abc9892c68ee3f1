package engine

import (
	"errors"
	"testing"
)

func TestCardTokenRoundTrip(t *testing.T) {
	for _, c := range NewDeck(true) {
		got, err := ParseCard(c.Token())
		if err != nil {
			t.Fatalf("ParseCard(%q): %v", c.Token(), err)
		}
		if got != c {
			t.Errorf("round trip of %s: got %s", c, got)
		}
	}
}

func TestParseCardFormatErrors(t *testing.T) {
	for _, token := range []string{"", "12", "1|2|3", "x|0", "1|y", "ace of spades"} {
		_, err := ParseCard(token)
		if !errors.Is(err, ErrCardTokenFormat) {
			t.Errorf("ParseCard(%q): expected format error, got %v", token, err)
		}
	}
}

func TestParseCardRangeErrors(t *testing.T) {
	for _, token := range []string{"14|0", "-1|0", "0|4", "0|-1"} {
		_, err := ParseCard(token)
		if !errors.Is(err, ErrCardTokenRange) {
			t.Errorf("ParseCard(%q): expected range error, got %v", token, err)
		}
	}
}

func TestSuitColor(t *testing.T) {
	cases := []struct {
		suit Suit
		want Color
	}{
		{Spades, Black},
		{Clubs, Black},
		{Hearts, Red},
		{Diamonds, Red},
	}
	for _, c := range cases {
		if got := c.suit.Color(); got != c.want {
			t.Errorf("%s color: got %v, want %v", c.suit, got, c.want)
		}
	}
}

func TestJokerIdentity(t *testing.T) {
	if !JokerCard.IsJoker() {
		t.Fatal("JokerCard should report IsJoker")
	}
	if (Card{Rank: Jack, Suit: Spades}).IsJoker() {
		t.Error("jack of spades misidentified as joker")
	}
	if JokerCard.String() != "Joker" {
		t.Errorf("joker String: got %q", JokerCard.String())
	}
}

func TestRemoveCardDoesNotMutate(t *testing.T) {
	hand := []Card{
		{Rank: Ace, Suit: Spades},
		{Rank: King, Suit: Hearts},
		{Rank: Queen, Suit: Clubs},
	}
	out := removeCard(hand, Card{Rank: King, Suit: Hearts})
	if len(out) != 2 {
		t.Fatalf("expected 2 cards after removal, got %d", len(out))
	}
	if len(hand) != 3 || hand[1] != (Card{Rank: King, Suit: Hearts}) {
		t.Error("removeCard mutated its input")
	}
	if containsCard(out, Card{Rank: King, Suit: Hearts}) {
		t.Error("removed card still present")
	}

	// Removing an absent card returns the hand unchanged.
	same := removeCard(hand, Card{Rank: Two, Suit: Diamonds})
	if len(same) != 3 {
		t.Errorf("removing an absent card changed the hand: %d cards", len(same))
	}
}
