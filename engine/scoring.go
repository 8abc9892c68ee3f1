package engine

// HandScore is the point outcome of one completed hand for the two
// partnerships. Oh Hell scores per seat instead; see ScoreOhHellHand.
type HandScore struct {
	TeamNorthSouth int
	TeamEastWest   int
	Description    string
}

// For returns the score of the given team.
func (h HandScore) For(t Team) int {
	if t == TeamNorthSouth {
		return h.TeamNorthSouth
	}
	return h.TeamEastWest
}

// add credits points to one team.
func (h *HandScore) add(t Team, points int) {
	if t == TeamNorthSouth {
		h.TeamNorthSouth += points
	} else {
		h.TeamEastWest += points
	}
}

// GameStatus is the outcome of a game-over check.
type GameStatus int8

const (
	GameInProgress GameStatus = iota
	GameWonByNorthSouth
	GameWonByEastWest
)

// Winner returns the winning team; only meaningful when s is a win status.
func (s GameStatus) Winner() Team {
	if s == GameWonByEastWest {
		return TeamEastWest
	}
	return TeamNorthSouth
}

// CheckGameOver applies the shared target-score rule: a team wins on
// reaching the target, and if a hand pushes both teams over at once the
// higher score wins. An exact tie at or above the target keeps the game
// going.
func CheckGameOver(scoreNS, scoreEW, target int) GameStatus {
	nsOver := scoreNS >= target
	ewOver := scoreEW >= target
	switch {
	case nsOver && ewOver:
		if scoreNS > scoreEW {
			return GameWonByNorthSouth
		}
		if scoreEW > scoreNS {
			return GameWonByEastWest
		}
		return GameInProgress
	case nsOver:
		return GameWonByNorthSouth
	case ewOver:
		return GameWonByEastWest
	}
	return GameInProgress
}
