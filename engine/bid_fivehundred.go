package engine

// 500 bid bounds.
const (
	FiveHundredMinTricks = 6
	FiveHundredMaxTricks = 10
)

// fiveHundredSuitRank orders bid suits for the Avondale schedule:
// spades < clubs < diamonds < hearts < no-trump.
func fiveHundredSuitRank(s Suit) int {
	switch s {
	case Spades:
		return 0
	case Clubs:
		return 1
	case Diamonds:
		return 2
	case Hearts:
		return 3
	case SuitNone:
		return 4
	}
	return -1
}

// beats500 reports whether candidate outranks standing under Avondale
// ordering: more tricks, or equal tricks in a higher-ranked suit.
func beats500(candidate, standing Bid) bool {
	if candidate.Tricks != standing.Tricks {
		return candidate.Tricks > standing.Tricks
	}
	return fiveHundredSuitRank(candidate.Suit) > fiveHundredSuitRank(standing.Suit)
}

// FiveHundredAuction is the competitive suit-and-trick bid: clockwise from
// the dealer's left, pass or beat the standing bid. The inkle (six tricks
// in the lowest suit) is reserved for the first two bidders on their
// opening turn. Three consecutive passes after a real bid close the
// auction; four opening passes force a redeal.
type FiveHundredAuction struct {
	Dealer  Position
	Entries []BidEntry
}

// NewFiveHundredAuction starts an Avondale auction for the given dealer.
func NewFiveHundredAuction(dealer Position) *FiveHundredAuction {
	return &FiveHundredAuction{Dealer: dealer}
}

func (a *FiveHundredAuction) History() []BidEntry { return a.Entries }

func (a *FiveHundredAuction) highBid() (BidEntry, bool) {
	var best BidEntry
	found := false
	for _, e := range a.Entries {
		if e.Bid.IsPass() {
			continue
		}
		if !found || beats500(e.Bid, best.Bid) {
			best = e
			found = true
		}
	}
	return best, found
}

func (a *FiveHundredAuction) IsComplete() bool {
	passes, sawBid := trailingPasses(a.Entries)
	if sawBid {
		return passes >= NumPositions-1
	}
	return passes == NumPositions
}

func (a *FiveHundredAuction) NextBidder() (Position, bool) {
	if a.IsComplete() {
		return 0, false
	}
	seat := a.Dealer.Next()
	for range a.Entries {
		seat = seat.Next()
	}
	return seat, true
}

func (a *FiveHundredAuction) Validate(bidder Position, bid Bid) *BidError {
	turn, ok := a.NextBidder()
	if !ok {
		return bidErrorf("bidding is closed")
	}
	if bidder != turn {
		return bidErrorf("it is %s's turn to bid", turn)
	}
	switch bid.Kind {
	case BidPass:
		return nil
	case BidInkle:
		if len(a.Entries) >= 2 {
			return bidErrorf("the inkle is only open to the first two bidders")
		}
		if _, found := a.highBid(); found {
			return bidErrorf("the inkle cannot follow a real bid")
		}
		return nil
	case BidSuitTricks:
		if bid.Tricks < FiveHundredMinTricks || bid.Tricks > FiveHundredMaxTricks {
			return bidErrorf("bids run %d-%d tricks", FiveHundredMinTricks, FiveHundredMaxTricks)
		}
		if fiveHundredSuitRank(bid.Suit) < 0 {
			return bidErrorf("unknown bid suit")
		}
		if high, found := a.highBid(); found && !beats500(bid, high.Bid) {
			return bidErrorf("must outbid %s", high.Bid)
		}
		return nil
	default:
		return bidErrorf("500 bids name tricks and a suit")
	}
}

func (a *FiveHundredAuction) Submit(bidder Position, bid Bid) *BidError {
	if err := a.Validate(bidder, bid); err != nil {
		return err
	}
	a.Entries = append(a.Entries, BidEntry{Bidder: bidder, Bid: bid})
	return nil
}

func (a *FiveHundredAuction) Resolve() AuctionResult {
	if !a.IsComplete() {
		return AuctionResult{Status: AuctionIncomplete, Message: "bidding continues"}
	}
	high, found := a.highBid()
	if !found {
		return AuctionResult{Status: AuctionAllPass, Message: "all passed; redeal"}
	}
	trump := high.Bid.Suit
	return AuctionResult{
		Status:         AuctionWon,
		Declarer:       high.Bidder,
		DeclaringTeam:  high.Bidder.Team(),
		WinningBid:     high.Bid,
		ContractTricks: high.Bid.Tricks,
		Trump:          trump,
		Message:        high.Bidder.String() + " wins the bid at " + high.Bid.String(),
	}
}
