package engine

// MinnesotaAuction is the simultaneous color bid: every seat submits one
// card face down, in any order. Resolution reveals clockwise from the
// dealer's left and stops at the first black card, whose bidder's team
// contracts HIGH. If all four cards are red the hand is LOW, with the first
// revealed seat recorded as nominal leader.
type MinnesotaAuction struct {
	Dealer  Position
	Entries []BidEntry
}

// NewMinnesotaAuction starts a color-bid auction for the given dealer.
func NewMinnesotaAuction(dealer Position) *MinnesotaAuction {
	return &MinnesotaAuction{Dealer: dealer}
}

func (a *MinnesotaAuction) History() []BidEntry { return a.Entries }

func (a *MinnesotaAuction) IsComplete() bool { return len(a.Entries) == NumPositions }

// NextBidder returns the first seat in reveal order that has not yet
// submitted. Submission order is actually free; this is a convenience for
// drivers that want a deterministic order.
func (a *MinnesotaAuction) NextBidder() (Position, bool) {
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

func (a *MinnesotaAuction) Validate(bidder Position, bid Bid) *BidError {
	if a.IsComplete() {
		return bidErrorf("bidding is closed")
	}
	if bid.Kind != BidCard {
		return bidErrorf("Minnesota Whist bids are a single card")
	}
	if _, ok := entryFor(a.Entries, bidder); ok {
		return bidErrorf("%s has already bid this hand", bidder)
	}
	return nil
}

func (a *MinnesotaAuction) Submit(bidder Position, bid Bid) *BidError {
	if err := a.Validate(bidder, bid); err != nil {
		return err
	}
	a.Entries = append(a.Entries, BidEntry{Bidder: bidder, Bid: bid})
	return nil
}

func (a *MinnesotaAuction) Resolve() AuctionResult {
	if !a.IsComplete() {
		return AuctionResult{Status: AuctionIncomplete, Message: "waiting for bids"}
	}

	// Reveal clockwise from the dealer's left; first black card contracts
	// HIGH for its team.
	order := Positions(a.Dealer.Next())
	for _, seat := range order {
		entry, _ := entryFor(a.Entries, seat)
		if entry.Bid.Card.Color() == Black {
			return AuctionResult{
				Status:        AuctionWon,
				Declarer:      seat,
				DeclaringTeam: seat.Team(),
				WinningBid:    entry.Bid,
				HandType:      HandHigh,
				Trump:         SuitNone,
				Message:       seat.String() + " bid high",
			}
		}
	}

	// All four red: a low hand, nominally led by the first revealed seat.
	leader := order[0]
	return AuctionResult{
		Status:        AuctionWon,
		Declarer:      leader,
		DeclaringTeam: leader.Team(),
		HandType:      HandLow,
		Trump:         SuitNone,
		AllLow:        true,
		Message:       "all seats bid low",
	}
}
