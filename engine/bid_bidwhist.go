package engine

// Bid Whist book-bid bounds. A book bid names tricks over six, so the range
// 3–7 corresponds to contracts of 9–13 tricks.
const (
	BidWhistMinBooks = 3
	BidWhistMaxBooks = 7
)

// BidWhistAuction is the sequential competitive book bid: clockwise from
// the dealer's left, each turn passes or raises the standing book count,
// tagged Uptown or Downtown. Three consecutive passes after at least one
// real bid close the auction; four opening passes force a redeal.
type BidWhistAuction struct {
	Dealer  Position
	Entries []BidEntry
}

// NewBidWhistAuction starts a book-bid auction for the given dealer.
func NewBidWhistAuction(dealer Position) *BidWhistAuction {
	return &BidWhistAuction{Dealer: dealer}
}

func (a *BidWhistAuction) History() []BidEntry { return a.Entries }

// highBid returns the standing highest real bid, if any.
func (a *BidWhistAuction) highBid() (BidEntry, bool) {
	var best BidEntry
	found := false
	for _, e := range a.Entries {
		if e.Bid.IsPass() {
			continue
		}
		if !found || e.Bid.Tricks > best.Bid.Tricks {
			best = e
			found = true
		}
	}
	return best, found
}

func (a *BidWhistAuction) IsComplete() bool {
	passes, sawBid := trailingPasses(a.Entries)
	if sawBid {
		return passes >= NumPositions-1
	}
	return passes == NumPositions // everybody passed: redeal
}

func (a *BidWhistAuction) NextBidder() (Position, bool) {
	if a.IsComplete() {
		return 0, false
	}
	seat := a.Dealer.Next()
	for range a.Entries {
		seat = seat.Next()
	}
	return seat, true
}

func (a *BidWhistAuction) Validate(bidder Position, bid Bid) *BidError {
	turn, ok := a.NextBidder()
	if !ok {
		return bidErrorf("bidding is closed")
	}
	if bidder != turn {
		return bidErrorf("it is %s's turn to bid", turn)
	}
	if bid.IsPass() {
		return nil
	}
	if bid.Kind != BidBook {
		return bidErrorf("Bid Whist bids are a book count of %d-%d", BidWhistMinBooks, BidWhistMaxBooks)
	}
	if bid.Tricks < BidWhistMinBooks || bid.Tricks > BidWhistMaxBooks {
		return bidErrorf("book bids run %d-%d", BidWhistMinBooks, BidWhistMaxBooks)
	}
	if high, found := a.highBid(); found && bid.Tricks <= high.Bid.Tricks {
		return bidErrorf("must outbid %d books", high.Bid.Tricks)
	}
	return nil
}

func (a *BidWhistAuction) Submit(bidder Position, bid Bid) *BidError {
	if err := a.Validate(bidder, bid); err != nil {
		return err
	}
	a.Entries = append(a.Entries, BidEntry{Bidder: bidder, Bid: bid})
	return nil
}

func (a *BidWhistAuction) Resolve() AuctionResult {
	if !a.IsComplete() {
		return AuctionResult{Status: AuctionIncomplete, Message: "bidding continues"}
	}
	high, found := a.highBid()
	if !found {
		return AuctionResult{Status: AuctionAllPass, Message: "all passed; redeal"}
	}
	return AuctionResult{
		Status:         AuctionWon,
		Declarer:       high.Bidder,
		DeclaringTeam:  high.Bidder.Team(),
		WinningBid:     high.Bid,
		ContractTricks: high.Bid.Tricks,
		Direction:      high.Bid.Direction,
		Trump:          SuitNone, // declarer names trump at the kitty exchange
		Message:        high.Bidder.String() + " wins the bid at " + high.Bid.String(),
	}
}
