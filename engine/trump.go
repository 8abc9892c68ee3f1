package engine

// TrumpRules encapsulates trump-suit semantics for one hand: which cards are
// trump, what suit a card effectively follows, and how any two cards
// compare. A zero-value TrumpRules is a plain no-trump game.
//
// Bowers and the joker only apply in the variants that use them (500); the
// constructing variant decides, not the comparison logic.
type TrumpRules struct {
	Trump     Suit // SuitNone for a no-trump hand
	Bowers    bool // jack of trump and same-color jack are promoted
	JokerHigh bool // joker is the highest trump
}

// NoTrump returns rules for a hand with no trump suit.
func NoTrump() TrumpRules { return TrumpRules{Trump: SuitNone} }

// PlainTrump returns rules with the given trump suit and no bower or joker
// promotion.
func PlainTrump(trump Suit) TrumpRules { return TrumpRules{Trump: trump} }

// HasTrump reports whether a trump suit is declared.
func (tr TrumpRules) HasTrump() bool { return tr.Trump != SuitNone }

// sameColorSuit returns the other suit of the same color.
func sameColorSuit(s Suit) Suit {
	switch s {
	case Spades:
		return Clubs
	case Clubs:
		return Spades
	case Hearts:
		return Diamonds
	case Diamonds:
		return Hearts
	}
	return SuitNone
}

// IsRightBower reports whether c is the jack of the trump suit under
// bower-promoting rules.
func (tr TrumpRules) IsRightBower(c Card) bool {
	return tr.Bowers && tr.HasTrump() && c.Rank == Jack && c.Suit == tr.Trump
}

// IsLeftBower reports whether c is the jack of the suit sharing trump's
// color under bower-promoting rules.
func (tr TrumpRules) IsLeftBower(c Card) bool {
	return tr.Bowers && tr.HasTrump() && c.Rank == Jack && c.Suit == sameColorSuit(tr.Trump)
}

// IsTrump reports whether c belongs to the trump suit for ranking purposes:
// natural trump, either bower, or the joker when it is promoted.
func (tr TrumpRules) IsTrump(c Card) bool {
	if c.IsJoker() {
		return tr.JokerHigh
	}
	if !tr.HasTrump() {
		return false
	}
	return c.Suit == tr.Trump || tr.IsLeftBower(c)
}

// EffectiveSuit returns the suit a card counts as for follow-suit purposes.
// Trump-suit cards and the left bower count as trump; the joker counts as
// trump when one is declared and SuitNone otherwise; every other card counts
// as its own suit.
func (tr TrumpRules) EffectiveSuit(c Card) Suit {
	if c.IsJoker() {
		if tr.JokerHigh && tr.HasTrump() {
			return tr.Trump
		}
		return SuitNone
	}
	if tr.IsLeftBower(c) {
		return tr.Trump
	}
	return c.Suit
}

// trumpOrder ranks a trump card within the trump suit. Higher is stronger:
// joker, right bower, left bower, then natural rank.
func (tr TrumpRules) trumpOrder(c Card) int {
	switch {
	case c.IsJoker():
		return int(NumRanks) + 2
	case tr.IsRightBower(c):
		return int(NumRanks) + 1
	case tr.IsLeftBower(c):
		return int(NumRanks)
	default:
		return int(c.Rank)
	}
}

// Compare orders two cards under these rules: positive if a outranks b,
// negative if b outranks a, zero if neither outranks the other.
//
// Trump beats non-trump unconditionally. Among trumps, joker > right bower >
// left bower > ace..two. Among non-trumps comparison is by rank alone; the
// caller must already have established that the cards contest the same
// effective suit.
func (tr TrumpRules) Compare(a, b Card) int {
	aTrump, bTrump := tr.IsTrump(a), tr.IsTrump(b)
	switch {
	case aTrump && !bTrump:
		return 1
	case bTrump && !aTrump:
		return -1
	case aTrump && bTrump:
		return tr.trumpOrder(a) - tr.trumpOrder(b)
	default:
		return int(a.Rank) - int(b.Rank)
	}
}

// TrumpCards returns the cards in hand that count as trump.
func (tr TrumpRules) TrumpCards(cards []Card) []Card {
	var out []Card
	for _, c := range cards {
		if tr.IsTrump(c) {
			out = append(out, c)
		}
	}
	return out
}

// NonTrumpCards returns the cards in hand that do not count as trump.
func (tr TrumpRules) NonTrumpCards(cards []Card) []Card {
	var out []Card
	for _, c := range cards {
		if !tr.IsTrump(c) {
			out = append(out, c)
		}
	}
	return out
}

// CountTrump returns the number of trump cards in hand.
func (tr TrumpRules) CountTrump(cards []Card) int {
	n := 0
	for _, c := range cards {
		if tr.IsTrump(c) {
			n++
		}
	}
	return n
}

// Highest returns the strongest card under Compare, or nil for empty input.
func (tr TrumpRules) Highest(cards []Card) *Card {
	if len(cards) == 0 {
		return nil
	}
	best := cards[0]
	for _, c := range cards[1:] {
		if tr.Compare(c, best) > 0 {
			best = c
		}
	}
	return &best
}

// Lowest returns the weakest card under Compare, or nil for empty input.
func (tr TrumpRules) Lowest(cards []Card) *Card {
	if len(cards) == 0 {
		return nil
	}
	worst := cards[0]
	for _, c := range cards[1:] {
		if tr.Compare(c, worst) < 0 {
			worst = c
		}
	}
	return &worst
}
