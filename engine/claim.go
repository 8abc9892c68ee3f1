package engine

// Claim analysis decides whether a seat is guaranteed to win every
// remaining trick, so the orchestrator can safely offer an "auto-play the
// rest" shortcut.
//
// The proof is a forward simulation with a fixed, deterministic strategy,
// not a minimax search. The claiming seat always plays the weakest card
// that still wins the trick so far (the weakest legal card when nothing
// wins), and every other seat plays its single strongest legal card. The
// opponents-play-strongest model is maximally aggressive, which makes the
// check conservative: it can decline a claim that deeper analysis would
// allow, but a claim it accepts holds against that playout. Runtime is one
// pass over the remaining tricks with no branching.

// PlayOutClaim runs the forced playout from the given mid-hand state.
// current must be the live trick (possibly empty) with its leader set.
// Returns whether the claimer won every simulated trick, plus the simulated
// tricks themselves for auto-play.
//
// Hands inconsistent with the trick state (unequal card counts after
// accounting for cards already on the table) are an invariant violation.
func PlayOutClaim(hands [NumPositions][]Card, claimer Position, current *Trick, rules TrumpRules) (bool, []*Trick, error) {
	if current == nil {
		return false, nil, invariantf("claim analysis needs the current trick")
	}
	if len(hands[claimer]) == 0 {
		return false, nil, nil
	}
	if othersEmpty(hands, claimer) && len(current.Plays) == 0 {
		// Claimer holds every remaining card; each lead wins unopposed.
		return true, forcedSoloTricks(hands[claimer], claimer, rules), nil
	}
	if err := checkClaimState(hands, current); err != nil {
		return false, nil, err
	}

	var remaining [NumPositions][]Card
	for seat := range hands {
		remaining[seat] = append([]Card(nil), hands[seat]...)
	}

	trick := current.Clone()
	var played []*Trick
	for len(remaining[claimer]) > 0 || !trickSettled(trick) {
		for !trick.IsComplete() {
			seat := trick.NextToPlay()
			hand := remaining[seat]
			if len(hand) == 0 {
				return false, nil, invariantf("%s has no card for the current trick", seat)
			}
			card := chooseClaimCard(trick, hand, seat == claimer, rules)
			if res := trick.Play(card, seat, hand); res.Status == PlayInvalid {
				return false, nil, invariantf("claim simulation produced an illegal play: %s", res.Err.Reason)
			}
			remaining[seat] = removeCard(hand, card)
		}
		winner, _ := trick.CurrentWinner()
		if winner != claimer {
			return false, nil, nil
		}
		played = append(played, trick)
		if len(remaining[claimer]) == 0 {
			break
		}
		trick = NewTrick(winner, rules)
	}
	return true, played, nil
}

// CanClaimRest reports whether the claim is provably safe under the forced
// playout. It is the predicate behind the UI's "claim remaining tricks"
// flag.
func CanClaimRest(hands [NumPositions][]Card, claimer Position, current *Trick, rules TrumpRules) (bool, error) {
	ok, _, err := PlayOutClaim(hands, claimer, current, rules)
	return ok, err
}

// chooseClaimCard picks the simulation's move: weakest-still-winning for
// the claimer, strongest legal for everyone else.
func chooseClaimCard(trick *Trick, hand []Card, isClaimer bool, rules TrumpRules) Card {
	legal := trick.LegalCards(hand)
	if !isClaimer {
		return *rules.Highest(legal)
	}
	var winning []Card
	for _, c := range legal {
		if trick.WouldWin(c) {
			winning = append(winning, c)
		}
	}
	if len(winning) > 0 {
		return *rules.Lowest(winning)
	}
	return *rules.Lowest(legal)
}

// trickSettled reports whether the trick needs no further plays to be
// judged: either untouched or already complete.
func trickSettled(t *Trick) bool {
	return len(t.Plays) == 0 || t.IsComplete()
}

// othersEmpty reports whether every seat except claimer is out of cards.
func othersEmpty(hands [NumPositions][]Card, claimer Position) bool {
	for seat := range hands {
		if Position(seat) != claimer && len(hands[seat]) > 0 {
			return false
		}
	}
	return true
}

// forcedSoloTricks lays the claimer's remaining cards out as trivially won
// single-play tricks for auto-play display.
func forcedSoloTricks(hand []Card, claimer Position, rules TrumpRules) []*Trick {
	tricks := make([]*Trick, 0, len(hand))
	for _, c := range hand {
		t := NewTrick(claimer, rules)
		t.Plays = append(t.Plays, TrickPlay{Card: c, Player: claimer})
		tricks = append(tricks, t)
	}
	return tricks
}

// checkClaimState verifies that the hands and the in-progress trick are
// mutually consistent: every seat must hold the same number of cards once
// the cards already on the table are counted back in.
func checkClaimState(hands [NumPositions][]Card, current *Trick) error {
	var playedIn [NumPositions]int
	for _, p := range current.Plays {
		playedIn[p.Player]++
	}
	base := -1
	for seat := range hands {
		total := len(hands[seat]) + playedIn[seat]
		if base == -1 {
			base = total
		} else if total != base {
			return invariantf("seat %s holds %d cards where %d expected",
				Position(seat), len(hands[seat]), base-playedIn[seat])
		}
	}
	return nil
}
