package engine

// Widow Whist blind-bid bounds.
const (
	WidowMinBid = 6
	WidowMaxBid = 12
)

// WidowAuction is the blind trick bid: every seat independently names a
// trick count in [WidowMinBid, WidowMaxBid] before seeing the widow. The
// highest bid wins; ties go to the seat reached first in reveal order
// (clockwise from the dealer's left). The winner takes the widow, discards
// back to hand size, and declares trump, playing solo against three
// defenders.
type WidowAuction struct {
	Dealer  Position
	Entries []BidEntry
}

// NewWidowAuction starts a blind-bid auction for the given dealer.
func NewWidowAuction(dealer Position) *WidowAuction {
	return &WidowAuction{Dealer: dealer}
}

func (a *WidowAuction) History() []BidEntry { return a.Entries }

func (a *WidowAuction) IsComplete() bool { return len(a.Entries) == NumPositions }

func (a *WidowAuction) NextBidder() (Position, bool) {
	if a.IsComplete() {
		return 0, false
	}
	for _, seat := range Positions(a.Dealer.Next()) {
		if _, ok := entryFor(a.Entries, seat); !ok {
			return seat, true
		}
	}
	return 0, false
}

func (a *WidowAuction) Validate(bidder Position, bid Bid) *BidError {
	if a.IsComplete() {
		return bidErrorf("bidding is closed")
	}
	if bid.Kind != BidTricks {
		return bidErrorf("Widow Whist bids are a trick count")
	}
	if bid.Tricks < WidowMinBid || bid.Tricks > WidowMaxBid {
		return bidErrorf("bid must be between %d and %d", WidowMinBid, WidowMaxBid)
	}
	if _, ok := entryFor(a.Entries, bidder); ok {
		return bidErrorf("%s has already bid this hand", bidder)
	}
	return nil
}

func (a *WidowAuction) Submit(bidder Position, bid Bid) *BidError {
	if err := a.Validate(bidder, bid); err != nil {
		return err
	}
	a.Entries = append(a.Entries, BidEntry{Bidder: bidder, Bid: bid})
	return nil
}

func (a *WidowAuction) Resolve() AuctionResult {
	if !a.IsComplete() {
		return AuctionResult{Status: AuctionIncomplete, Message: "waiting for bids"}
	}
	var winner BidEntry
	found := false
	for _, seat := range Positions(a.Dealer.Next()) {
		entry, _ := entryFor(a.Entries, seat)
		if !found || entry.Bid.Tricks > winner.Bid.Tricks {
			winner = entry
			found = true
		}
	}
	return AuctionResult{
		Status:         AuctionWon,
		Declarer:       winner.Bidder,
		DeclaringTeam:  winner.Bidder.Team(),
		WinningBid:     winner.Bid,
		ContractTricks: winner.Bid.Tricks,
		Trump:          SuitNone, // declared by the winner after the exchange
		Message:        winner.Bidder.String() + " takes the widow at " + winner.Bid.String(),
	}
}
