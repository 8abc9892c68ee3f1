package engine

import "testing"

// ---------------------------------------------------------------------------
// Minnesota Whist
// ---------------------------------------------------------------------------

func TestMinnesotaAuctionFirstBlackWins(t *testing.T) {
	a := NewMinnesotaAuction(South) // reveal order: West, North, East, South
	submit := []struct {
		seat Position
		card Card
	}{
		{North, Card{Ace, Spades}},   // black, but revealed second
		{West, Card{Nine, Hearts}},   // red, revealed first
		{East, Card{King, Clubs}},    // black, revealed third
		{South, Card{Two, Diamonds}}, // red
	}
	for _, s := range submit {
		if err := a.Submit(s.seat, NewCardBid(s.card)); err != nil {
			t.Fatalf("%s submit: %v", s.seat, err)
		}
	}
	if !a.IsComplete() {
		t.Fatal("auction should be complete after four bids")
	}

	res := a.Resolve()
	if res.Status != AuctionWon {
		t.Fatalf("status: %v", res.Status)
	}
	if res.Declarer != North {
		t.Errorf("declarer: got %s, want North (first black in reveal order)", res.Declarer)
	}
	if res.HandType != HandHigh || res.AllLow {
		t.Errorf("hand type: got %s, allLow=%v", res.HandType, res.AllLow)
	}
	if res.DeclaringTeam != TeamNorthSouth {
		t.Errorf("declaring team: got %s", res.DeclaringTeam)
	}
}

func TestMinnesotaAuctionAllRed(t *testing.T) {
	a := NewMinnesotaAuction(South)
	red := []Suit{Hearts, Diamonds, Hearts, Diamonds}
	for i, seat := range Positions(North) {
		if err := a.Submit(seat, NewCardBid(Card{Nine, red[i]})); err != nil {
			t.Fatalf("%s submit: %v", seat, err)
		}
	}
	res := a.Resolve()
	if res.Status != AuctionWon || res.HandType != HandLow || !res.AllLow {
		t.Fatalf("expected all-low hand, got %+v", res)
	}
	// The first seat in reveal order leads the low hand.
	if res.Declarer != West {
		t.Errorf("nominal leader: got %s, want West", res.Declarer)
	}
}

func TestMinnesotaAuctionRejections(t *testing.T) {
	a := NewMinnesotaAuction(South)
	if err := a.Submit(North, NewTrickBid(3)); err == nil {
		t.Error("non-card bid should be rejected")
	}
	if err := a.Submit(North, NewCardBid(Card{Ace, Spades})); err != nil {
		t.Fatalf("first bid: %v", err)
	}
	if err := a.Submit(North, NewCardBid(Card{Two, Hearts})); err == nil {
		t.Error("second bid from the same seat should be rejected")
	}
	if a.Resolve().Status != AuctionIncomplete {
		t.Error("partial auction should resolve incomplete")
	}
}

// ---------------------------------------------------------------------------
// Bid Whist
// ---------------------------------------------------------------------------

func TestBidWhistAuction(t *testing.T) {
	a := NewBidWhistAuction(South) // bidding starts at West

	steps := []struct {
		seat Position
		bid  Bid
	}{
		{West, NewBookBid(3, Uptown)},
		{North, PassBid()},
		{East, NewBookBid(4, Downtown)},
		{South, PassBid()},
		{West, PassBid()},
		{North, PassBid()},
	}
	for i, s := range steps {
		turn, ok := a.NextBidder()
		if !ok || turn != s.seat {
			t.Fatalf("step %d: next bidder %s, want %s", i, turn, s.seat)
		}
		if err := a.Submit(s.seat, s.bid); err != nil {
			t.Fatalf("step %d (%s): %v", i, s.seat, err)
		}
	}
	if !a.IsComplete() {
		t.Fatal("three passes after a bid should close the auction")
	}

	res := a.Resolve()
	if res.Status != AuctionWon || res.Declarer != East {
		t.Fatalf("expected East to win, got %+v", res)
	}
	if res.ContractTricks != 4 || res.Direction != Downtown {
		t.Errorf("contract: %d %s", res.ContractTricks, res.Direction)
	}
	if res.Trump != SuitNone {
		t.Errorf("trump should wait for the kitty exchange, got %s", res.Trump)
	}
}

func TestBidWhistValidation(t *testing.T) {
	a := NewBidWhistAuction(South)
	if err := a.Submit(North, NewBookBid(3, Uptown)); err == nil {
		t.Error("out-of-turn bid should be rejected")
	}
	if err := a.Submit(West, NewBookBid(2, Uptown)); err == nil {
		t.Error("book bid below the minimum should be rejected")
	}
	if err := a.Submit(West, NewBookBid(8, Uptown)); err == nil {
		t.Error("book bid above the maximum should be rejected")
	}
	if err := a.Submit(West, NewBookBid(4, Uptown)); err != nil {
		t.Fatalf("opening bid: %v", err)
	}
	if err := a.Submit(North, NewBookBid(4, Downtown)); err == nil {
		t.Error("equal book count should not outbid, regardless of direction")
	}
	if err := a.Submit(North, NewBookBid(5, Downtown)); err != nil {
		t.Errorf("raise: %v", err)
	}
}

func TestBidWhistAllPass(t *testing.T) {
	a := NewBidWhistAuction(South)
	for _, seat := range Positions(West) {
		if err := a.Submit(seat, PassBid()); err != nil {
			t.Fatalf("%s pass: %v", seat, err)
		}
	}
	if res := a.Resolve(); res.Status != AuctionAllPass {
		t.Errorf("four passes should force a redeal, got %v", res.Status)
	}
}

// ---------------------------------------------------------------------------
// Oh Hell
// ---------------------------------------------------------------------------

func TestOhHellDealerHook(t *testing.T) {
	a := NewOhHellAuction(South, 10)
	for _, s := range []struct {
		seat   Position
		tricks int
	}{
		{West, 3}, {North, 2}, {East, 1},
	} {
		if err := a.Submit(s.seat, NewTrickBid(s.tricks)); err != nil {
			t.Fatalf("%s bid: %v", s.seat, err)
		}
	}

	hook, restricted := a.HookValue()
	if !restricted || hook != 4 {
		t.Fatalf("hook: got %d restricted=%v, want 4", hook, restricted)
	}
	if err := a.Submit(South, NewTrickBid(4)); err == nil {
		t.Fatal("dealer bidding the hook value should be rejected")
	}
	if err := a.Submit(South, NewTrickBid(3)); err != nil {
		t.Fatalf("dealer bid off the hook: %v", err)
	}

	// Bids cannot sum to the hand size.
	sum := 0
	for _, seat := range Positions(West) {
		n, ok := a.BidFor(seat)
		if !ok {
			t.Fatalf("missing bid for %s", seat)
		}
		sum += n
	}
	if sum == 10 {
		t.Error("bids sum to the hand size despite the hook rule")
	}
}

func TestOhHellHookOutOfRange(t *testing.T) {
	a := NewOhHellAuction(South, 10)
	for _, seat := range []Position{West, North, East} {
		if err := a.Submit(seat, NewTrickBid(4)); err != nil {
			t.Fatalf("%s bid: %v", seat, err)
		}
	}
	// Other seats already over-bid the hand; no value is forbidden.
	if _, restricted := a.HookValue(); restricted {
		t.Error("hook should not apply when the remaining value is negative")
	}
	if err := a.Submit(South, NewTrickBid(0)); err != nil {
		t.Errorf("dealer zero bid: %v", err)
	}
}

func TestOhHellValidation(t *testing.T) {
	a := NewOhHellAuction(South, 10)
	if err := a.Submit(North, NewTrickBid(2)); err == nil {
		t.Error("out-of-turn bid should be rejected")
	}
	if err := a.Submit(West, NewTrickBid(11)); err == nil {
		t.Error("bid above the hand size should be rejected")
	}
	if err := a.Submit(West, NewTrickBid(-1)); err == nil {
		t.Error("negative bid should be rejected")
	}
	if err := a.Submit(West, NewTrickBid(0)); err != nil {
		t.Errorf("zero bid: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Widow Whist
// ---------------------------------------------------------------------------

func TestWidowAuctionHighestWins(t *testing.T) {
	a := NewWidowAuction(South)
	bids := map[Position]int{West: 6, North: 8, East: 7, South: 9}
	for seat, n := range bids {
		if err := a.Submit(seat, NewTrickBid(n)); err != nil {
			t.Fatalf("%s bid: %v", seat, err)
		}
	}
	res := a.Resolve()
	if res.Status != AuctionWon || res.Declarer != South {
		t.Fatalf("expected South to win at 9, got %+v", res)
	}
	if res.ContractTricks != 9 {
		t.Errorf("contract: %d tricks", res.ContractTricks)
	}
}

func TestWidowAuctionTieGoesToRevealOrder(t *testing.T) {
	a := NewWidowAuction(South) // reveal order: West, North, East, South
	bids := map[Position]int{West: 6, North: 8, East: 8, South: 7}
	for seat, n := range bids {
		if err := a.Submit(seat, NewTrickBid(n)); err != nil {
			t.Fatalf("%s bid: %v", seat, err)
		}
	}
	res := a.Resolve()
	if res.Declarer != North {
		t.Errorf("tie at 8: got %s, want North (earlier in reveal order)", res.Declarer)
	}
}

func TestWidowAuctionBounds(t *testing.T) {
	a := NewWidowAuction(South)
	if err := a.Submit(West, NewTrickBid(5)); err == nil {
		t.Error("bid below 6 should be rejected")
	}
	if err := a.Submit(West, NewTrickBid(13)); err == nil {
		t.Error("bid above 12 should be rejected")
	}
	if err := a.Submit(West, PassBid()); err == nil {
		t.Error("passing should be rejected; the bid is compulsory")
	}
}

// ---------------------------------------------------------------------------
// 500
// ---------------------------------------------------------------------------

func TestFiveHundredBidOrdering(t *testing.T) {
	cases := []struct {
		higher, lower Bid
	}{
		{NewSuitBid(6, Clubs), NewSuitBid(6, Spades)},
		{NewSuitBid(6, Hearts), NewSuitBid(6, Diamonds)},
		{NewSuitBid(6, SuitNone), NewSuitBid(6, Hearts)},
		{NewSuitBid(7, Spades), NewSuitBid(6, SuitNone)},
	}
	for _, c := range cases {
		if !beats500(c.higher, c.lower) {
			t.Errorf("%s should outbid %s", c.higher, c.lower)
		}
		if beats500(c.lower, c.higher) {
			t.Errorf("%s should not outbid %s", c.lower, c.higher)
		}
	}
}

func TestFiveHundredAuction(t *testing.T) {
	a := NewFiveHundredAuction(South)

	steps := []struct {
		seat Position
		bid  Bid
	}{
		{West, NewInkleBid()},
		{North, PassBid()},
		{East, NewSuitBid(7, Spades)},
		{South, PassBid()},
		{West, PassBid()},
		{North, PassBid()},
	}
	for i, s := range steps {
		if err := a.Submit(s.seat, s.bid); err != nil {
			t.Fatalf("step %d (%s): %v", i, s.seat, err)
		}
	}
	res := a.Resolve()
	if res.Status != AuctionWon || res.Declarer != East {
		t.Fatalf("expected East to win, got %+v", res)
	}
	if res.Trump != Spades || res.ContractTricks != 7 {
		t.Errorf("contract: %d %s", res.ContractTricks, res.Trump)
	}
}

func TestFiveHundredInkleRestriction(t *testing.T) {
	a := NewFiveHundredAuction(South)
	if err := a.Submit(West, PassBid()); err != nil {
		t.Fatalf("pass: %v", err)
	}
	if err := a.Submit(North, NewInkleBid()); err != nil {
		t.Fatalf("second bidder inkle: %v", err)
	}
	// Third seat is past the inkle window.
	if err := a.Submit(East, NewInkleBid()); err == nil {
		t.Error("third bidder inkle should be rejected")
	}

	b := NewFiveHundredAuction(South)
	if err := b.Submit(West, NewSuitBid(6, Hearts)); err != nil {
		t.Fatalf("opening bid: %v", err)
	}
	if err := b.Submit(North, NewInkleBid()); err == nil {
		t.Error("inkle after a real bid should be rejected")
	}
}

func TestFiveHundredMustOutbid(t *testing.T) {
	a := NewFiveHundredAuction(South)
	if err := a.Submit(West, NewSuitBid(7, Spades)); err != nil {
		t.Fatalf("opening bid: %v", err)
	}
	if err := a.Submit(North, NewSuitBid(7, Spades)); err == nil {
		t.Error("matching the standing bid should be rejected")
	}
	if err := a.Submit(North, NewSuitBid(6, SuitNone)); err == nil {
		t.Error("fewer tricks should be rejected even at no-trump")
	}
	if err := a.Submit(North, NewSuitBid(7, Clubs)); err != nil {
		t.Errorf("same tricks in a higher suit: %v", err)
	}
}
