package engine

import "testing"

// ---------------------------------------------------------------------------
// Minnesota Whist
// ---------------------------------------------------------------------------

func TestScoreMinnesotaHand(t *testing.T) {
	cases := []struct {
		name       string
		handType   HandType
		contractor Team
		tricks     int
		allLow     bool
		wantNS     int
		wantEW     int
	}{
		{"high made exactly", HandHigh, TeamNorthSouth, 7, false, 1, 0},
		{"high made with overtricks", HandHigh, TeamNorthSouth, 9, false, 3, 0},
		{"high set pays double", HandHigh, TeamNorthSouth, 6, false, 0, 2},
		{"high set badly", HandHigh, TeamNorthSouth, 4, false, 0, 6},
		{"low made", HandLow, TeamNorthSouth, 5, false, 2, 0},
		{"low made exactly", HandLow, TeamNorthSouth, 6, false, 1, 0},
		{"low set", HandLow, TeamNorthSouth, 7, false, 0, 1},
		{"all low declarer stays low", HandLow, TeamNorthSouth, 5, true, 2, -2},
		{"all low declarer caught", HandLow, TeamNorthSouth, 8, true, -2, 2},
	}
	for _, c := range cases {
		score, err := ScoreMinnesotaHand(c.handType, c.contractor, c.tricks, c.allLow)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if score.TeamNorthSouth != c.wantNS || score.TeamEastWest != c.wantEW {
			t.Errorf("%s: got NS %d / EW %d, want NS %d / EW %d",
				c.name, score.TeamNorthSouth, score.TeamEastWest, c.wantNS, c.wantEW)
		}
	}
}

func TestScoreMinnesotaInvalid(t *testing.T) {
	if _, err := ScoreMinnesotaHand(HandHigh, TeamNorthSouth, 14, false); err == nil {
		t.Error("14 tricks should be rejected")
	}
	if _, err := ScoreMinnesotaHand(HandNone, TeamNorthSouth, 7, false); err == nil {
		t.Error("scoring without a hand type should be rejected")
	}
}

func TestCheckMinnesotaGameOver(t *testing.T) {
	if got := CheckMinnesotaGameOver(12, 12); got != GameInProgress {
		t.Errorf("12-12: got %v", got)
	}
	if got := CheckMinnesotaGameOver(13, 10); got != GameWonByNorthSouth {
		t.Errorf("13-10: got %v", got)
	}
	if got := CheckMinnesotaGameOver(13, 14); got != GameWonByEastWest {
		t.Errorf("both over, EW higher: got %v", got)
	}
	if got := CheckMinnesotaGameOver(14, 14); got != GameInProgress {
		t.Errorf("exact tie over the target should continue: got %v", got)
	}
}

// ---------------------------------------------------------------------------
// 500
// ---------------------------------------------------------------------------

func TestAvondaleValue(t *testing.T) {
	cases := []struct {
		tricks int
		suit   Suit
		want   int
	}{
		{6, Spades, 40},
		{6, Clubs, 60},
		{6, Diamonds, 80},
		{6, Hearts, 100},
		{6, SuitNone, 120},
		{7, Spades, 140},
		{8, SuitNone, 320},
		{10, Hearts, 500},
		{10, SuitNone, 520},
		{5, Spades, 0},  // off the schedule
		{11, Hearts, 0}, // off the schedule
	}
	for _, c := range cases {
		if got := AvondaleValue(c.tricks, c.suit); got != c.want {
			t.Errorf("AvondaleValue(%d, %s) = %d, want %d", c.tricks, c.suit, got, c.want)
		}
	}
}

func TestScoreFiveHundredHand(t *testing.T) {
	made, err := ScoreFiveHundredHand(NewSuitBid(7, Spades), TeamNorthSouth, 8, 2)
	if err != nil {
		t.Fatalf("made: %v", err)
	}
	if made.TeamNorthSouth != 140 || made.TeamEastWest != 20 {
		t.Errorf("made 7 spades: got NS %d / EW %d", made.TeamNorthSouth, made.TeamEastWest)
	}

	set, err := ScoreFiveHundredHand(NewSuitBid(8, Spades), TeamNorthSouth, 6, 4)
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if set.TeamNorthSouth != -240 || set.TeamEastWest != 40 {
		t.Errorf("set 8 spades: got NS %d / EW %d", set.TeamNorthSouth, set.TeamEastWest)
	}
}

func TestScoreFiveHundredSlamFloor(t *testing.T) {
	slam, err := ScoreFiveHundredHand(NewSuitBid(6, Spades), TeamEastWest, 10, 0)
	if err != nil {
		t.Fatalf("slam: %v", err)
	}
	if slam.TeamEastWest != 250 {
		t.Errorf("sub-250 contract swept: got %d, want the 250 floor", slam.TeamEastWest)
	}

	big, err := ScoreFiveHundredHand(NewSuitBid(10, Hearts), TeamEastWest, 10, 0)
	if err != nil {
		t.Fatalf("big slam: %v", err)
	}
	if big.TeamEastWest != 500 {
		t.Errorf("500-point contract swept: got %d, floor should not cap it", big.TeamEastWest)
	}
}

func TestScoreFiveHundredInvalid(t *testing.T) {
	if _, err := ScoreFiveHundredHand(NewSuitBid(7, Spades), TeamNorthSouth, 7, 4); err == nil {
		t.Error("trick counts that do not sum to 10 should be rejected")
	}
	if _, err := ScoreFiveHundredHand(NewSuitBid(11, Spades), TeamNorthSouth, 10, 0); err == nil {
		t.Error("off-schedule contract should be rejected")
	}
}

func TestCheckFiveHundredGameOver(t *testing.T) {
	if got := CheckFiveHundredGameOver(480, -480); got != GameInProgress {
		t.Errorf("in progress: got %v", got)
	}
	if got := CheckFiveHundredGameOver(520, 100); got != GameWonByNorthSouth {
		t.Errorf("NS over 500: got %v", got)
	}
	if got := CheckFiveHundredGameOver(100, -500); got != GameWonByNorthSouth {
		t.Errorf("EW at the floor: got %v", got)
	}
	// Crossing the winning line takes precedence over the opponents' floor.
	if got := CheckFiveHundredGameOver(510, -500); got != GameWonByNorthSouth {
		t.Errorf("simultaneous win and floor: got %v", got)
	}
}

// ---------------------------------------------------------------------------
// Oh Hell
// ---------------------------------------------------------------------------

func TestScoreOhHellSeat(t *testing.T) {
	cases := []struct {
		bid, won, want int
	}{
		{3, 3, 13},
		{0, 0, 10},
		{3, 4, 0},
		{3, 2, 0},
		{0, 1, 0},
	}
	for _, c := range cases {
		if got := ScoreOhHellSeat(c.bid, c.won); got != c.want {
			t.Errorf("ScoreOhHellSeat(%d, %d) = %d, want %d", c.bid, c.won, got, c.want)
		}
	}
}

func TestScoreOhHellHand(t *testing.T) {
	bids := [NumPositions]int{3, 2, 4, 0}
	won := [NumPositions]int{3, 1, 4, 2}
	scores, err := ScoreOhHellHand(bids, won, 10)
	if err != nil {
		t.Fatalf("ScoreOhHellHand: %v", err)
	}
	want := [NumPositions]int{13, 0, 14, 0}
	if scores != want {
		t.Errorf("scores: got %v, want %v", scores, want)
	}

	if _, err := ScoreOhHellHand(bids, [NumPositions]int{3, 3, 3, 3}, 10); err == nil {
		t.Error("trick counts that do not sum to the hand size should be rejected")
	}
}

// ---------------------------------------------------------------------------
// Widow Whist
// ---------------------------------------------------------------------------

func TestScoreWidowHand(t *testing.T) {
	made, err := ScoreWidowHand(East, 7, 9, 3)
	if err != nil {
		t.Fatalf("made: %v", err)
	}
	if made.For(TeamEastWest) != 2 {
		t.Errorf("made 7 with 9: got %d", made.For(TeamEastWest))
	}

	set, err := ScoreWidowHand(East, 8, 6, 6)
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if set.For(TeamEastWest) != -2 {
		t.Errorf("set 8 with 6: got %d", set.For(TeamEastWest))
	}

	if _, err := ScoreWidowHand(East, 7, 9, 4); err == nil {
		t.Error("trick counts that do not sum to 12 should be rejected")
	}
	if _, err := ScoreWidowHand(East, 5, 6, 6); err == nil {
		t.Error("bid below the blind minimum should be rejected")
	}
}

// ---------------------------------------------------------------------------
// Bid Whist and Classic Whist
// ---------------------------------------------------------------------------

func TestScoreBidWhistHand(t *testing.T) {
	made, err := ScoreBidWhistHand(4, TeamNorthSouth, 11)
	if err != nil {
		t.Fatalf("made: %v", err)
	}
	if made.TeamNorthSouth != 5 || made.TeamEastWest != 0 {
		t.Errorf("made 4 with 5 books: got NS %d / EW %d", made.TeamNorthSouth, made.TeamEastWest)
	}

	set, err := ScoreBidWhistHand(5, TeamNorthSouth, 9)
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if set.TeamNorthSouth != -5 || set.TeamEastWest != 0 {
		t.Errorf("set on 5: got NS %d / EW %d", set.TeamNorthSouth, set.TeamEastWest)
	}
}

func TestScoreClassicHand(t *testing.T) {
	ns, err := ScoreClassicHand(8, 5)
	if err != nil {
		t.Fatalf("ScoreClassicHand: %v", err)
	}
	if ns.TeamNorthSouth != 2 || ns.TeamEastWest != 0 {
		t.Errorf("8-5: got NS %d / EW %d", ns.TeamNorthSouth, ns.TeamEastWest)
	}

	ew, err := ScoreClassicHand(6, 7)
	if err != nil {
		t.Fatalf("ScoreClassicHand: %v", err)
	}
	if ew.TeamEastWest != 1 {
		t.Errorf("6-7: got EW %d", ew.TeamEastWest)
	}

	if _, err := ScoreClassicHand(7, 7); err == nil {
		t.Error("trick counts that do not sum to 13 should be rejected")
	}
}
