package engine

// Minnesota Whist scoring constants. Thirteen tricks per hand; six is the
// neutral "book" a team can take without scoring either way.
const (
	MinnesotaTricksPerHand = 13
	MinnesotaBookTricks    = 6
	MinnesotaTargetScore   = 13
	// A failed HIGH contract pays the defenders double.
	minnesotaHighSetMultiplier = 2
)

// ScoreMinnesotaHand converts a completed Minnesota Whist hand into point
// deltas.
//
//   - HIGH: the contracting team scores 1 per trick over six if it took at
//     least seven; otherwise the defenders score 2 per trick over six.
//   - LOW: the contracting team scores 1 per trick under seven if it took
//     six or fewer; otherwise the defenders score 1 per trick under seven.
//   - All-bid-low: the team that took more than six tricks scores negative
//     points, one per trick over six; the low team scores as a made LOW.
//
// contractorTricks is the contracting team's trick count; the defenders
// took the remainder. An impossible count is an invariant violation.
func ScoreMinnesotaHand(handType HandType, contractor Team, contractorTricks int, allLow bool) (HandScore, error) {
	if contractorTricks < 0 || contractorTricks > MinnesotaTricksPerHand {
		return HandScore{}, invariantf("contractor tricks %d out of range 0-%d", contractorTricks, MinnesotaTricksPerHand)
	}
	defenders := contractor.Opponent()
	defenderTricks := MinnesotaTricksPerHand - contractorTricks

	var score HandScore
	switch handType {
	case HandHigh:
		if contractorTricks > MinnesotaBookTricks {
			score.add(contractor, contractorTricks-MinnesotaBookTricks)
			score.Description = contractor.String() + " made high"
		} else {
			score.add(defenders, (defenderTricks-MinnesotaBookTricks)*minnesotaHighSetMultiplier)
			score.Description = contractor.String() + " set on high"
		}

	case HandLow:
		if allLow {
			// Nobody wanted tricks: the low team scores for staying low,
			// the high team bleeds a point per trick over six.
			lowTeam, lowTricks := contractor, contractorTricks
			if contractorTricks > MinnesotaBookTricks {
				lowTeam, lowTricks = defenders, defenderTricks
			}
			highTeam := lowTeam.Opponent()
			score.add(lowTeam, MinnesotaBookTricks+1-lowTricks)
			score.add(highTeam, -(MinnesotaTricksPerHand - lowTricks - MinnesotaBookTricks))
			score.Description = "all low: " + highTeam.String() + " caught with tricks"
		} else if contractorTricks <= MinnesotaBookTricks {
			score.add(contractor, MinnesotaBookTricks+1-contractorTricks)
			score.Description = contractor.String() + " made low"
		} else {
			score.add(defenders, MinnesotaBookTricks+1-defenderTricks)
			score.Description = contractor.String() + " set on low"
		}

	default:
		return HandScore{}, invariantf("minnesota hand scored without a hand type")
	}
	return score, nil
}

// CheckMinnesotaGameOver reports whether either team has reached 13 points.
func CheckMinnesotaGameOver(scoreNS, scoreEW int) GameStatus {
	return CheckGameOver(scoreNS, scoreEW, MinnesotaTargetScore)
}
