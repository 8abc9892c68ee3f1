package engine

import "fmt"

// BidKind tags the shape of a bid. Each variant's auction accepts exactly
// the shapes its protocol defines; repurposing card fields to mean trick
// counts (as older implementations of these games tend to do) is
// deliberately avoided.
type BidKind int8

const (
	BidPass      BidKind = iota
	BidCard              // Minnesota Whist: a face-down card bid by color
	BidBook              // Bid Whist: book count with a direction
	BidTricks            // Oh Hell / Widow Whist: an exact trick count
	BidSuitTricks        // 500: trick count plus suit preference
	BidInkle             // 500: the restricted lowest rung (6 in lowest suit)
)

// BidDirection is the Bid Whist Uptown/Downtown tag.
type BidDirection int8

const (
	Uptown BidDirection = iota
	Downtown
)

func (d BidDirection) String() string {
	if d == Downtown {
		return "Downtown"
	}
	return "Uptown"
}

// Bid is a tagged bid value. Only the fields relevant to Kind are
// meaningful.
type Bid struct {
	Kind      BidKind
	Card      Card         // BidCard
	Tricks    int          // BidBook, BidTricks, BidSuitTricks
	Suit      Suit         // BidSuitTricks; SuitNone means no-trump
	Direction BidDirection // BidBook
}

// PassBid returns an explicit pass marker.
func PassBid() Bid { return Bid{Kind: BidPass} }

// NewCardBid returns a Minnesota Whist card bid.
func NewCardBid(c Card) Bid { return Bid{Kind: BidCard, Card: c} }

// NewBookBid returns a Bid Whist book bid.
func NewBookBid(books int, dir BidDirection) Bid {
	return Bid{Kind: BidBook, Tricks: books, Direction: dir}
}

// NewTrickBid returns an exact trick-count bid.
func NewTrickBid(tricks int) Bid { return Bid{Kind: BidTricks, Tricks: tricks} }

// NewSuitBid returns a 500 bid of tricks in the given suit; SuitNone bids
// no-trump.
func NewSuitBid(tricks int, suit Suit) Bid {
	return Bid{Kind: BidSuitTricks, Tricks: tricks, Suit: suit}
}

// NewInkleBid returns the 500 inkle: six tricks in the lowest-ranked suit,
// biddable only by the first two seats on their opening turn.
func NewInkleBid() Bid {
	return Bid{Kind: BidInkle, Tricks: FiveHundredMinTricks, Suit: Spades}
}

// IsPass reports whether the bid is the explicit pass marker.
func (b Bid) IsPass() bool { return b.Kind == BidPass }

func (b Bid) String() string {
	switch b.Kind {
	case BidPass:
		return "pass"
	case BidCard:
		return "card " + b.Card.String()
	case BidBook:
		return fmt.Sprintf("%d %s", b.Tricks, b.Direction)
	case BidTricks:
		return fmt.Sprintf("%d tricks", b.Tricks)
	case BidInkle:
		return "inkle"
	case BidSuitTricks:
		if b.Suit == SuitNone {
			return fmt.Sprintf("%d no-trump", b.Tricks)
		}
		return fmt.Sprintf("%d %s", b.Tricks, b.Suit)
	}
	return "unknown bid"
}

// BidEntry pairs a bid (or pass) with its bidder. Auction histories are
// append-only sequences of entries in submission order.
type BidEntry struct {
	Bidder Position
	Bid    Bid
}

// BidError is a structured invalid-bid result: the auction state is
// unchanged and Reason is suitable for a user-facing status message.
type BidError struct {
	Reason string
}

func (e *BidError) Error() string { return e.Reason }

func bidErrorf(format string, args ...any) *BidError {
	return &BidError{Reason: fmt.Sprintf(format, args...)}
}

// AuctionStatus tags the resolution state of an auction.
type AuctionStatus int8

const (
	AuctionIncomplete AuctionStatus = iota
	AuctionWon
	AuctionAllPass // nobody bid; the hand is redealt
)

// HandType distinguishes the Minnesota Whist contract directions.
type HandType int8

const (
	HandNone HandType = iota
	HandHigh          // contractor's team tries to take the majority
	HandLow           // contractor's team tries to avoid tricks
)

func (h HandType) String() string {
	switch h {
	case HandHigh:
		return "high"
	case HandLow:
		return "low"
	}
	return "none"
}

// AuctionResult is the resolved outcome of an auction.
type AuctionResult struct {
	Status         AuctionStatus
	Declarer       Position // auction winner; leads or exchanges per variant
	DeclaringTeam  Team
	WinningBid     Bid
	HandType       HandType // Minnesota only
	Trump          Suit     // SuitNone where the declarer chooses later or no-trump
	ContractTricks int
	Direction      BidDirection // Bid Whist
	AllLow         bool         // Minnesota: every seat bid a red card
	Message        string
}

// Auction is the contract shared by the five bidding protocols. Validate
// and Submit report structured invalid results rather than erroring; state
// is only appended on a valid Submit.
type Auction interface {
	// IsComplete reports whether the auction accepts no further bids.
	IsComplete() bool
	// NextBidder returns the seat due to bid, or ok=false when complete.
	// Simultaneous protocols return seats in reveal order for convenience.
	NextBidder() (Position, bool)
	// Validate checks a candidate bid without recording it.
	Validate(bidder Position, bid Bid) *BidError
	// Submit validates and appends the bid to the history.
	Submit(bidder Position, bid Bid) *BidError
	// Resolve determines the auction outcome. Valid at any time; an
	// unfinished auction resolves with AuctionIncomplete.
	Resolve() AuctionResult
	// History returns the append-only bid history.
	History() []BidEntry
}

// trailingPasses counts passes after the most recent non-pass entry; used
// by the sequential protocols' three-pass completion rule.
func trailingPasses(entries []BidEntry) (passes int, sawRealBid bool) {
	for _, e := range entries {
		if e.Bid.IsPass() {
			passes++
		} else {
			passes = 0
			sawRealBid = true
		}
	}
	return passes, sawRealBid
}

// entryFor returns the history entry submitted by the given seat, if any.
func entryFor(entries []BidEntry, seat Position) (BidEntry, bool) {
	for _, e := range entries {
		if e.Bidder == seat {
			return e, true
		}
	}
	return BidEntry{}, false
}
