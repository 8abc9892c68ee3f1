package engine

// Variant selects one of the supported games. The orchestrator picks the
// variant at game start; dispatch is by this enum, not a type hierarchy.
type Variant int8

const (
	VariantMinnesotaWhist Variant = iota
	VariantBidWhist
	VariantOhHell
	VariantWidowWhist
	VariantClassicWhist
	VariantFiveHundred
)

var variantNames = [...]string{
	"Minnesota Whist",
	"Bid Whist",
	"Oh Hell",
	"Widow Whist",
	"Classic Whist",
	"500",
}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return "Unknown"
	}
	return variantNames[v]
}

// ExchangeKind describes what happens between the auction and play.
type ExchangeKind int8

const (
	ExchangeNone  ExchangeKind = iota
	ExchangeKitty              // declarer takes the kitty, discards, names trump
	ExchangeWidow              // solo declarer takes the widow, discards, names trump
)

// VariantRules is the per-variant configuration table: deck shape, hand
// shape, auction/exchange protocol, and scoring targets. All of the magic
// numbers of the family live here or in the scoring constants, never inline
// in shared logic.
type VariantRules struct {
	Variant     Variant
	HandSize    int
	KittySize   int
	WithJoker   bool
	ShortDeck   bool // 45-card pack (500)
	UsesBowers  bool
	TrumpFlip   bool // trump fixed by flipping an undealt card (Oh Hell)
	TrumpByDeal bool // trump fixed by the dealer's last card (Classic)
	Exchange    ExchangeKind
	SoloGame    bool // declarer plays alone (Widow Whist)
	PerSeat     bool // scored per seat, not per team (Oh Hell)
	TargetScore int
	LosingScore int // 0 when the variant has no losing floor
}

var variantRules = map[Variant]VariantRules{
	VariantMinnesotaWhist: {
		Variant:     VariantMinnesotaWhist,
		HandSize:    MinnesotaTricksPerHand,
		TargetScore: MinnesotaTargetScore,
	},
	VariantBidWhist: {
		Variant:     VariantBidWhist,
		HandSize:    BidWhistTricksPerHand,
		KittySize:   4,
		Exchange:    ExchangeKitty,
		TargetScore: BidWhistTargetScore,
	},
	VariantOhHell: {
		Variant:     VariantOhHell,
		HandSize:    10,
		TrumpFlip:   true,
		PerSeat:     true,
		TargetScore: 100,
	},
	VariantWidowWhist: {
		Variant:     VariantWidowWhist,
		HandSize:    WidowTricksPerHand,
		KittySize:   4,
		Exchange:    ExchangeWidow,
		SoloGame:    true,
		TargetScore: WidowTargetScore,
	},
	VariantClassicWhist: {
		Variant:     VariantClassicWhist,
		HandSize:    ClassicTricksPerHand,
		TrumpByDeal: true,
		TargetScore: ClassicTargetScore,
	},
	VariantFiveHundred: {
		Variant:     VariantFiveHundred,
		HandSize:    FiveHundredTricksPerHand,
		KittySize:   5,
		WithJoker:   true,
		ShortDeck:   true,
		UsesBowers:  true,
		Exchange:    ExchangeKitty,
		TargetScore: FiveHundredTargetScore,
		LosingScore: FiveHundredLosingScore,
	},
}

// Rules returns the configuration table entry for the variant.
func (v Variant) Rules() VariantRules { return variantRules[v] }

// NewDeckFor builds the deck the variant plays with.
func (v Variant) NewDeckFor() Deck {
	r := v.Rules()
	if r.ShortDeck {
		return NewShortDeck()
	}
	return NewDeck(r.WithJoker)
}

// NewAuction builds the variant's auction for the given dealer.
func (v Variant) NewAuction(dealer Position) Auction {
	switch v {
	case VariantMinnesotaWhist:
		return NewMinnesotaAuction(dealer)
	case VariantBidWhist:
		return NewBidWhistAuction(dealer)
	case VariantOhHell:
		return NewOhHellAuction(dealer, v.Rules().HandSize)
	case VariantWidowWhist:
		return NewWidowAuction(dealer)
	case VariantFiveHundred:
		return NewFiveHundredAuction(dealer)
	}
	return nil // Classic Whist has no auction
}

// TrumpRulesFor builds the hand's trump semantics for a declared suit
// (SuitNone for no-trump). Bower and joker promotion follow the variant.
func (v Variant) TrumpRulesFor(trump Suit) TrumpRules {
	r := v.Rules()
	return TrumpRules{
		Trump:     trump,
		Bowers:    r.UsesBowers && trump != SuitNone,
		JokerHigh: r.WithJoker,
	}
}
