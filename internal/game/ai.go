// internal/game/ai.go
package game

import (
	"whist/engine"
)

// aiAdvance drives AI-controlled seats synchronously until a human seat must
// act or the phase needs a table-level intent (deal, next hand). Assumes the
// game lock is held. The guard bounds the loop against a strategy bug; every
// legal AI action strictly advances the hand.
func (g *Game) aiAdvance() {
	for guard := 0; guard < 256; guard++ {
		switch g.phase {
		case PhaseCutForDeal:
			seat, ok := g.pendingAICut()
			if !ok {
				return
			}
			if err := g.doSelectCutCard(seat, g.rng.Intn(len(g.cutDeck))); err != nil {
				g.log.WithError(err).Warn("ai cut rejected")
				return
			}

		case PhaseBidding:
			turn, ok := g.auction.NextBidder()
			if !ok || !g.Config.AISeats[turn] {
				return
			}
			if err := g.doSubmitBid(turn, g.aiChooseBid(turn)); err != nil {
				g.log.WithError(err).Warn("ai bid rejected")
				return
			}

		case PhaseExchange:
			if !g.Config.AISeats[g.declarer] {
				return
			}
			discards, trump := g.aiChooseExchange()
			if err := g.doExchange(g.declarer, discards, trump); err != nil {
				g.log.WithError(err).Warn("ai exchange rejected")
				return
			}

		case PhasePlay:
			turn := g.trick.NextToPlay()
			if !g.Config.AISeats[turn] {
				return
			}
			card := aiChooseCard(g.trick, g.hands[turn], g.rules, g.aiAvoidsTricks(turn))
			if err := g.doPlayCard(turn, card); err != nil {
				g.log.WithError(err).Warn("ai play rejected")
				return
			}

		default:
			return
		}
	}
	g.log.Error("ai advancement guard tripped")
}

// pendingAICut returns the first AI seat that has not yet cut.
func (g *Game) pendingAICut() (engine.Position, bool) {
	for seat := engine.Position(0); seat < engine.NumPositions; seat++ {
		if g.Config.AISeats[seat] && g.cutCards[seat] == nil {
			return seat, true
		}
	}
	return 0, false
}

// aiAvoidsTricks reports whether the seat's objective this hand is to lose
// tricks (Minnesota LOW contracts).
func (g *Game) aiAvoidsTricks(seat engine.Position) bool {
	if g.Config.Variant != engine.VariantMinnesotaWhist || g.handType != engine.HandLow {
		return false
	}
	return g.allLow || seat.Team() == g.declarer.Team()
}

// ---------------------------------------------------------------------------
// Bid strategies
// ---------------------------------------------------------------------------

// aiChooseBid picks a legal bid for the seat under the variant's protocol.
// Deliberately plain heuristics: count likely winners, bid inside the range,
// pass when outgunned.
func (g *Game) aiChooseBid(seat engine.Position) engine.Bid {
	hand := g.hands[seat]

	switch a := g.auction.(type) {
	case *engine.MinnesotaAuction:
		return engine.NewCardBid(minnesotaBidCard(hand))

	case *engine.BidWhistAuction:
		est := estimateTricks(hand, engine.NoTrump()) + 1 // kitty upside
		books := est - engine.BidWhistBookTricks
		high := highestBookBid(a.History())
		if books < engine.BidWhistMinBooks || books <= high {
			return engine.PassBid()
		}
		if books > engine.BidWhistMaxBooks {
			books = engine.BidWhistMaxBooks
		}
		return engine.NewBookBid(books, engine.Uptown)

	case *engine.OhHellAuction:
		est := estimateTricks(hand, g.rules)
		if est > a.HandSize {
			est = a.HandSize
		}
		if hook, restricted := a.HookValue(); restricted && seat == a.Dealer && est == hook {
			if est > 0 {
				est--
			} else {
				est++
			}
		}
		return engine.NewTrickBid(est)

	case *engine.WidowAuction:
		est := engine.WidowMinBid + estimateTricks(hand, engine.NoTrump())/2
		if est > engine.WidowMaxBid {
			est = engine.WidowMaxBid
		}
		return engine.NewTrickBid(est)

	case *engine.FiveHundredAuction:
		suit := longestSuit(hand)
		est := engine.FiveHundredMinTricks + estimateTricks(hand, engine.PlainTrump(suit))/2
		if est > engine.FiveHundredMaxTricks {
			est = engine.FiveHundredMaxTricks
		}
		bid := engine.NewSuitBid(est, suit)
		if g.auction.Validate(seat, bid) != nil {
			return engine.PassBid()
		}
		return bid
	}
	return engine.PassBid()
}

// minnesotaBidCard picks the face-down color bid: a black card from a hand
// strong enough to chase tricks, a red card otherwise, constrained by what
// the hand actually holds.
func minnesotaBidCard(hand []engine.Card) engine.Card {
	wantHigh := estimateTricks(hand, engine.NoTrump()) >= 4
	var black, red *engine.Card
	for i := range hand {
		c := hand[i]
		if c.Color() == engine.Black {
			if black == nil || c.Rank < black.Rank {
				black = &hand[i]
			}
		} else {
			if red == nil || c.Rank < red.Rank {
				red = &hand[i]
			}
		}
	}
	if wantHigh && black != nil {
		return *black
	}
	if red != nil {
		return *red
	}
	return *black
}

// highestBookBid returns the standing book count, or zero.
func highestBookBid(entries []engine.BidEntry) int {
	high := 0
	for _, e := range entries {
		if !e.Bid.IsPass() && e.Bid.Tricks > high {
			high = e.Bid.Tricks
		}
	}
	return high
}

// estimateTricks is a coarse likely-winner count: aces are winners, kings
// half a winner, and honor trumps add weight.
func estimateTricks(hand []engine.Card, rules engine.TrumpRules) int {
	weight := 0
	for _, c := range hand {
		switch {
		case c.IsJoker():
			weight += 2
		case c.Rank == engine.Ace:
			weight += 2
		case c.Rank == engine.King:
			weight++
		}
		if rules.IsTrump(c) && c.Rank >= engine.Jack {
			weight++
		}
	}
	return weight / 2
}

// longestSuit returns the suit the hand holds most of (joker excluded).
func longestSuit(hand []engine.Card) engine.Suit {
	var counts [engine.NumSuits]int
	for _, c := range hand {
		if !c.IsJoker() {
			counts[c.Suit]++
		}
	}
	best := engine.Spades
	for s := engine.Suit(1); s < engine.NumSuits; s++ {
		if counts[s] > counts[best] {
			best = s
		}
	}
	return best
}

// ---------------------------------------------------------------------------
// Exchange and play strategies
// ---------------------------------------------------------------------------

// aiChooseExchange merges the kitty into the declarer's hand and throws back
// the weakest cards; trump is the longest suit of the merged hand (ignored
// where the contract already fixed it).
func (g *Game) aiChooseExchange() ([]engine.Card, engine.Suit) {
	merged := append(append([]engine.Card(nil), g.hands[g.declarer]...), g.kitty...)
	trump := longestSuit(merged)
	if g.Config.Variant == engine.VariantFiveHundred {
		trump = g.result.Trump
	}
	rules := g.Config.Variant.TrumpRulesFor(trump)

	discards := make([]engine.Card, 0, len(g.kitty))
	for len(discards) < len(g.kitty) {
		low := rules.Lowest(merged)
		discards = append(discards, *low)
		merged = removeFromHand(merged, *low)
	}
	return discards, trump
}

// aiChooseCard is the play heuristic: win as cheaply as possible, or throw
// the lowest legal card. When the seat wants to lose tricks it sheds its
// highest non-winning card instead.
func aiChooseCard(trick *engine.Trick, hand []engine.Card, rules engine.TrumpRules, avoid bool) engine.Card {
	legal := trick.LegalCards(hand)

	var winning, losing []engine.Card
	for _, c := range legal {
		if trick.WouldWin(c) {
			winning = append(winning, c)
		} else {
			losing = append(losing, c)
		}
	}

	if avoid {
		if len(losing) > 0 {
			return *rules.Highest(losing)
		}
		return *rules.Lowest(legal)
	}
	if len(winning) > 0 {
		return *rules.Lowest(winning)
	}
	return *rules.Lowest(legal)
}
