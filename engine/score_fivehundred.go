package engine

// 500 scoring constants (Avondale schedule).
const (
	FiveHundredTricksPerHand = 10
	FiveHundredTargetScore   = 500
	FiveHundredLosingScore   = -500
	// Winning every trick on a sub-250 contract is worth the slam floor.
	FiveHundredSlamFloor = 250
	// Defenders score per trick whether or not the contract makes.
	fiveHundredDefenderPerTrick = 10
	// Avondale table: 6 spades is worth 40; each suit step adds 20 and each
	// trick level adds 100.
	avondaleBase      = 40
	avondaleSuitStep  = 20
	avondaleTrickStep = 100
)

// AvondaleValue returns the schedule value of a contract: tricks 6-10 in
// spades/clubs/diamonds/hearts or no-trump (SuitNone). Zero for inputs off
// the schedule.
func AvondaleValue(tricks int, suit Suit) int {
	if tricks < FiveHundredMinTricks || tricks > FiveHundredMaxTricks {
		return 0
	}
	rank := fiveHundredSuitRank(suit)
	if rank < 0 {
		return 0
	}
	return avondaleBase + rank*avondaleSuitStep + (tricks-FiveHundredMinTricks)*avondaleTrickStep
}

// ScoreFiveHundredHand converts a completed 500 hand into point deltas.
//
// A made contract earns the Avondale value, raised to the slam floor of 250
// when the contracting side takes all ten tricks on a contract worth less.
// A failed contract costs the full Avondale value. The defenders score ten
// points per trick they won either way.
//
// Trick counts that do not sum to the hand size are a caller bug.
func ScoreFiveHundredHand(contract Bid, contractor Team, contractorTricks, defenderTricks int) (HandScore, error) {
	if contractorTricks+defenderTricks != FiveHundredTricksPerHand {
		return HandScore{}, invariantf(
			"tricks %d+%d do not sum to %d", contractorTricks, defenderTricks, FiveHundredTricksPerHand)
	}
	if contract.Tricks < FiveHundredMinTricks || contract.Tricks > FiveHundredMaxTricks {
		return HandScore{}, invariantf("contract of %d tricks off the schedule", contract.Tricks)
	}

	value := AvondaleValue(contract.Tricks, contract.Suit)
	var score HandScore
	if contractorTricks >= contract.Tricks {
		made := value
		if contractorTricks == FiveHundredTricksPerHand && made < FiveHundredSlamFloor {
			made = FiveHundredSlamFloor
		}
		score.add(contractor, made)
		score.Description = contractor.String() + " made " + contract.String()
	} else {
		score.add(contractor, -value)
		score.Description = contractor.String() + " set on " + contract.String()
	}
	score.add(contractor.Opponent(), defenderTricks*fiveHundredDefenderPerTrick)
	return score, nil
}

// CheckFiveHundredGameOver applies the ±500 rule: reaching +500 wins,
// falling to -500 loses. If one team crosses the winning line the game ends
// there even if the other simultaneously hits the floor.
func CheckFiveHundredGameOver(scoreNS, scoreEW int) GameStatus {
	switch {
	case scoreNS >= FiveHundredTargetScore:
		return GameWonByNorthSouth
	case scoreEW >= FiveHundredTargetScore:
		return GameWonByEastWest
	case scoreNS <= FiveHundredLosingScore:
		return GameWonByEastWest
	case scoreEW <= FiveHundredLosingScore:
		return GameWonByNorthSouth
	}
	return GameInProgress
}
