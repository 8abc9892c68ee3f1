package engine

// Bid Whist scoring constants.
const (
	BidWhistTricksPerHand = 12
	BidWhistBookTricks    = 6
	BidWhistTargetScore   = 7
)

// ScoreBidWhistHand converts a completed Bid Whist hand into point deltas:
// the contracting team scores every book it made (tricks over six) when it
// covers the bid, and loses the bid when set. Defenders never score.
func ScoreBidWhistHand(bidBooks int, contractor Team, contractorTricks int) (HandScore, error) {
	if contractorTricks < 0 || contractorTricks > BidWhistTricksPerHand {
		return HandScore{}, invariantf("contractor tricks %d out of range 0-%d", contractorTricks, BidWhistTricksPerHand)
	}
	if bidBooks < BidWhistMinBooks || bidBooks > BidWhistMaxBooks {
		return HandScore{}, invariantf("book bid %d out of range %d-%d", bidBooks, BidWhistMinBooks, BidWhistMaxBooks)
	}
	books := contractorTricks - BidWhistBookTricks
	var score HandScore
	if books >= bidBooks {
		score.add(contractor, books)
		score.Description = contractor.String() + " made the bid"
	} else {
		score.add(contractor, -bidBooks)
		score.Description = contractor.String() + " was set"
	}
	return score, nil
}

// Classic Whist scoring constants. No auction: trump comes from the last
// card dealt, and the side with the trick majority scores.
const (
	ClassicTricksPerHand = 13
	ClassicBookTricks    = 6
	ClassicTargetScore   = 7
)

// ScoreClassicHand scores a Classic Whist hand: one point per trick over
// six to the side with the majority.
func ScoreClassicHand(tricksNS, tricksEW int) (HandScore, error) {
	if tricksNS+tricksEW != ClassicTricksPerHand {
		return HandScore{}, invariantf("tricks %d+%d do not sum to %d", tricksNS, tricksEW, ClassicTricksPerHand)
	}
	var score HandScore
	if tricksNS > ClassicBookTricks {
		score.add(TeamNorthSouth, tricksNS-ClassicBookTricks)
		score.Description = TeamNorthSouth.String() + " took the odd tricks"
	} else {
		score.add(TeamEastWest, tricksEW-ClassicBookTricks)
		score.Description = TeamEastWest.String() + " took the odd tricks"
	}
	return score, nil
}
