package engine

// Oh Hell scoring constants. Baseline rule: a seat scores only on hitting
// its bid exactly; over and under both score nothing.
const (
	OhHellExactBonus = 10
	OhHellNilBonus   = 10
)

// ScoreOhHellSeat scores one seat: bonus plus tricks taken on an exact
// bid, the nil bonus for a made zero bid, zero otherwise.
func ScoreOhHellSeat(bid, tricksWon int) int {
	if tricksWon != bid {
		return 0
	}
	if bid == 0 {
		return OhHellNilBonus
	}
	return OhHellExactBonus + tricksWon
}

// ScoreOhHellHand scores all four seats of a completed hand. Trick counts
// must be non-negative and sum to the hand size.
func ScoreOhHellHand(bids, tricksWon [NumPositions]int, handSize int) ([NumPositions]int, error) {
	total := 0
	for seat, n := range tricksWon {
		if n < 0 {
			return [NumPositions]int{}, invariantf("seat %s won %d tricks", Position(seat), n)
		}
		total += n
	}
	if total != handSize {
		return [NumPositions]int{}, invariantf("tricks sum to %d, hand size is %d", total, handSize)
	}
	var scores [NumPositions]int
	for seat := range scores {
		scores[seat] = ScoreOhHellSeat(bids[seat], tricksWon[seat])
	}
	return scores, nil
}
