package engine

// OhHellAuction is the fixed exact-trick bid: clockwise from the dealer's
// left, each seat names how many tricks it will take, 0 through the hand
// size. The dealer bids last and may not name the one value that would make
// the bids sum to the tricks available (the hook).
type OhHellAuction struct {
	Dealer   Position
	HandSize int
	Entries  []BidEntry
}

// NewOhHellAuction starts an exact-trick auction for the given dealer and
// hand size.
func NewOhHellAuction(dealer Position, handSize int) *OhHellAuction {
	return &OhHellAuction{Dealer: dealer, HandSize: handSize}
}

func (a *OhHellAuction) History() []BidEntry { return a.Entries }

func (a *OhHellAuction) IsComplete() bool { return len(a.Entries) == NumPositions }

func (a *OhHellAuction) NextBidder() (Position, bool) {
	if a.IsComplete() {
		return 0, false
	}
	seat := a.Dealer.Next()
	for range a.Entries {
		seat = seat.Next()
	}
	return seat, true
}

// bidSum totals the trick counts named so far.
func (a *OhHellAuction) bidSum() int {
	sum := 0
	for _, e := range a.Entries {
		sum += e.Bid.Tricks
	}
	return sum
}

// HookValue returns the value the dealer is forbidden to bid, and whether
// the restriction currently applies (it only can once the other three seats
// have bid, and only if the value is in range).
func (a *OhHellAuction) HookValue() (int, bool) {
	if len(a.Entries) != NumPositions-1 {
		return 0, false
	}
	hook := a.HandSize - a.bidSum()
	if hook < 0 || hook > a.HandSize {
		return 0, false
	}
	return hook, true
}

func (a *OhHellAuction) Validate(bidder Position, bid Bid) *BidError {
	turn, ok := a.NextBidder()
	if !ok {
		return bidErrorf("bidding is closed")
	}
	if bidder != turn {
		return bidErrorf("it is %s's turn to bid", turn)
	}
	if bid.Kind != BidTricks {
		return bidErrorf("Oh Hell bids are an exact trick count")
	}
	if bid.Tricks < 0 || bid.Tricks > a.HandSize {
		return bidErrorf("bid must be between 0 and %d", a.HandSize)
	}
	if hook, restricted := a.HookValue(); restricted && bidder == a.Dealer && bid.Tricks == hook {
		return bidErrorf("dealer may not bid %d: the bids cannot add up to %d", hook, a.HandSize)
	}
	return nil
}

func (a *OhHellAuction) Submit(bidder Position, bid Bid) *BidError {
	if err := a.Validate(bidder, bid); err != nil {
		return err
	}
	a.Entries = append(a.Entries, BidEntry{Bidder: bidder, Bid: bid})
	return nil
}

// Resolve completes trivially: every seat plays its own bid, there is no
// single declarer. The first bidder (dealer's left) leads.
func (a *OhHellAuction) Resolve() AuctionResult {
	if !a.IsComplete() {
		return AuctionResult{Status: AuctionIncomplete, Message: "waiting for bids"}
	}
	leader := a.Dealer.Next()
	return AuctionResult{
		Status:        AuctionWon,
		Declarer:      leader,
		DeclaringTeam: leader.Team(),
		Trump:         SuitNone, // set by the trump flip, not the auction
		Message:       "all bids placed",
	}
}

// BidFor returns the trick count a seat committed to. Valid once complete.
func (a *OhHellAuction) BidFor(seat Position) (int, bool) {
	e, ok := entryFor(a.Entries, seat)
	if !ok {
		return 0, false
	}
	return e.Bid.Tricks, true
}
