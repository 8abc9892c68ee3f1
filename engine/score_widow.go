package engine

// Widow Whist scoring constants. The declarer plays alone against three
// defenders; falling short costs a point per trick of shortfall, scaled.
const (
	WidowTricksPerHand       = 12
	WidowTargetScore         = 10
	widowShortfallMultiplier = 1
)

// ScoreWidowSeat scores the solo declarer: tricks over the bid when the
// bid is made, a shortfall-scaled penalty otherwise.
func ScoreWidowSeat(bid, tricksWon int) int {
	if tricksWon >= bid {
		return tricksWon - bid
	}
	return -(bid - tricksWon) * widowShortfallMultiplier
}

// ScoreWidowHand scores a completed Widow Whist hand: the declarer's delta
// per ScoreWidowSeat, defenders unchanged. Trick counts must sum to the
// hand size.
func ScoreWidowHand(declarer Position, bid, declarerTricks, defenderTricks int) (HandScore, error) {
	if declarerTricks+defenderTricks != WidowTricksPerHand {
		return HandScore{}, invariantf(
			"tricks %d+%d do not sum to %d", declarerTricks, defenderTricks, WidowTricksPerHand)
	}
	if bid < WidowMinBid || bid > WidowMaxBid {
		return HandScore{}, invariantf("widow bid %d out of range %d-%d", bid, WidowMinBid, WidowMaxBid)
	}
	var score HandScore
	delta := ScoreWidowSeat(bid, declarerTricks)
	score.add(declarer.Team(), delta)
	if delta >= 0 {
		score.Description = declarer.String() + " made the widow bid"
	} else {
		score.Description = declarer.String() + " fell short of the widow bid"
	}
	return score, nil
}
