package engine

import "testing"

func TestPlainTrumpCompare(t *testing.T) {
	tr := PlainTrump(Spades)

	cases := []struct {
		name string
		a, b Card
		want int // sign only
	}{
		{"trump beats non-trump", Card{Two, Spades}, Card{Ace, Hearts}, 1},
		{"non-trump loses to trump", Card{Ace, Hearts}, Card{Two, Spades}, -1},
		{"higher trump wins", Card{Ace, Spades}, Card{King, Spades}, 1},
		{"higher rank wins off trump", Card{Queen, Hearts}, Card{Jack, Hearts}, 1},
		{"equal ranks tie", Card{Nine, Hearts}, Card{Nine, Diamonds}, 0},
	}
	for _, c := range cases {
		got := tr.Compare(c.a, c.b)
		if sign(got) != c.want {
			t.Errorf("%s: Compare(%s, %s) = %d, want sign %d", c.name, c.a, c.b, got, c.want)
		}
	}
}

func TestBowerAndJokerOrder(t *testing.T) {
	tr := TrumpRules{Trump: Hearts, Bowers: true, JokerHigh: true}

	joker := JokerCard
	right := Card{Jack, Hearts}
	left := Card{Jack, Diamonds}
	aceTrump := Card{Ace, Hearts}

	// Joker > right bower > left bower > ace of trump.
	ordering := []Card{joker, right, left, aceTrump}
	for i := 0; i < len(ordering)-1; i++ {
		if tr.Compare(ordering[i], ordering[i+1]) <= 0 {
			t.Errorf("%s should outrank %s", ordering[i], ordering[i+1])
		}
	}

	if !tr.IsRightBower(right) {
		t.Error("jack of hearts should be the right bower")
	}
	if !tr.IsLeftBower(left) {
		t.Error("jack of diamonds should be the left bower")
	}
	if tr.IsLeftBower(Card{Jack, Clubs}) {
		t.Error("jack of clubs is not the left bower with hearts trump")
	}

	// The left bower counts as trump and follows trump, not its printed suit.
	if !tr.IsTrump(left) {
		t.Error("left bower should count as trump")
	}
	if got := tr.EffectiveSuit(left); got != Hearts {
		t.Errorf("left bower effective suit: got %s", got)
	}
	if got := tr.EffectiveSuit(joker); got != Hearts {
		t.Errorf("joker effective suit with trump: got %s", got)
	}
}

func TestJokerInNoTrump(t *testing.T) {
	tr := TrumpRules{Trump: SuitNone, JokerHigh: true}

	// The joker is still the highest card even with no trump declared.
	if !tr.IsTrump(JokerCard) {
		t.Error("joker should rank as trump in a joker-high no-trump game")
	}
	if tr.Compare(JokerCard, Card{Ace, Spades}) <= 0 {
		t.Error("joker should beat the ace of spades at no-trump")
	}
	// But it follows no suit.
	if got := tr.EffectiveSuit(JokerCard); got != SuitNone {
		t.Errorf("joker effective suit at no-trump: got %s", got)
	}
}

func TestNoBowerPromotionWithoutBowers(t *testing.T) {
	tr := PlainTrump(Hearts)
	left := Card{Jack, Diamonds}
	if tr.IsTrump(left) {
		t.Error("jack of diamonds should not be trump without bower promotion")
	}
	if got := tr.EffectiveSuit(left); got != Diamonds {
		t.Errorf("effective suit: got %s", got)
	}
	// Plain jack of trump is just a jack.
	if tr.Compare(Card{Queen, Hearts}, Card{Jack, Hearts}) <= 0 {
		t.Error("queen of trump should beat jack of trump without bowers")
	}
}

func TestHighestLowest(t *testing.T) {
	tr := PlainTrump(Spades)
	hand := []Card{
		{Nine, Hearts},
		{Two, Spades},
		{Ace, Diamonds},
	}
	if got := tr.Highest(hand); got == nil || *got != (Card{Two, Spades}) {
		t.Errorf("Highest: got %v, want two of spades", got)
	}
	if got := tr.Lowest(hand); got == nil || *got != (Card{Nine, Hearts}) {
		t.Errorf("Lowest: got %v, want nine of hearts", got)
	}
	if tr.Highest(nil) != nil || tr.Lowest(nil) != nil {
		t.Error("Highest/Lowest of empty input should be nil")
	}
}

func TestTrumpFilters(t *testing.T) {
	tr := TrumpRules{Trump: Hearts, Bowers: true}
	hand := []Card{
		{Ace, Hearts},
		{Jack, Diamonds}, // left bower
		{Jack, Clubs},
		{Ten, Spades},
	}
	if n := tr.CountTrump(hand); n != 2 {
		t.Errorf("CountTrump: got %d, want 2", n)
	}
	if got := len(tr.TrumpCards(hand)); got != 2 {
		t.Errorf("TrumpCards: got %d cards", got)
	}
	if got := len(tr.NonTrumpCards(hand)); got != 2 {
		t.Errorf("NonTrumpCards: got %d cards", got)
	}
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
