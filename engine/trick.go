package engine

import "fmt"

// TrickPlay is one card played into a trick by one seat.
type TrickPlay struct {
	Card   Card
	Player Position
}

// Trick is the per-trick state machine: empty → in-progress (1–3 plays) →
// complete (4 plays). Once complete a trick is appended to the hand's
// completed list and never mutated again.
type Trick struct {
	Leader Position
	Plays  []TrickPlay
	Rules  TrumpRules
}

// NewTrick starts an empty trick led by the given seat.
func NewTrick(leader Position, rules TrumpRules) *Trick {
	return &Trick{Leader: leader, Rules: rules}
}

// IsComplete reports whether all four seats have played.
func (t *Trick) IsComplete() bool { return len(t.Plays) == NumPositions }

// LedSuit returns the effective suit of the first play, or SuitNone for an
// empty trick.
func (t *Trick) LedSuit() Suit {
	if len(t.Plays) == 0 {
		return SuitNone
	}
	return t.Rules.EffectiveSuit(t.Plays[0].Card)
}

// NextToPlay returns the seat due to play next. Meaningless once complete.
func (t *Trick) NextToPlay() Position {
	seat := t.Leader
	for i := 0; i < len(t.Plays); i++ {
		seat = seat.Next()
	}
	return seat
}

// PlayErrorCode classifies why a play is illegal.
type PlayErrorCode int8

const (
	PlayCardNotInHand PlayErrorCode = iota
	PlayMustFollowSuit
)

// PlayError is a structured invalid-play result. It is returned, not
// panicked: an illegal play is a user mistake the orchestrator surfaces as a
// status message without touching state.
type PlayError struct {
	Code   PlayErrorCode
	Suit   Suit // required suit for PlayMustFollowSuit
	Reason string
}

func (e *PlayError) Error() string { return e.Reason }

// ValidatePlay checks whether hand may legally put card into this trick.
// Returns nil when legal.
//
// Leading is unrestricted. Otherwise the played card must follow the led
// effective suit whenever the hand can, with one carve-out: in a no-trump
// game the joker may always be played voluntarily, whatever the hand holds.
func (t *Trick) ValidatePlay(card Card, hand []Card) *PlayError {
	if !containsCard(hand, card) {
		return &PlayError{
			Code:   PlayCardNotInHand,
			Reason: fmt.Sprintf("%s is not in hand", card),
		}
	}
	if len(t.Plays) == 0 {
		return nil
	}
	if card.IsJoker() && !t.Rules.HasTrump() {
		return nil
	}
	led := t.LedSuit()
	if t.Rules.EffectiveSuit(card) == led {
		return nil
	}
	for _, held := range hand {
		if t.Rules.EffectiveSuit(held) == led {
			return &PlayError{
				Code:   PlayMustFollowSuit,
				Suit:   led,
				Reason: fmt.Sprintf("must follow suit: %s was led", led),
			}
		}
	}
	return nil
}

// LegalCards filters hand down to the cards ValidatePlay accepts. It is
// never empty for a non-empty hand: a seat always has at least one legal
// card.
func (t *Trick) LegalCards(hand []Card) []Card {
	var out []Card
	for _, c := range hand {
		if t.ValidatePlay(c, hand) == nil {
			out = append(out, c)
		}
	}
	return out
}

// PlayStatus tags the outcome of a Play call.
type PlayStatus int8

const (
	PlayInvalid PlayStatus = iota
	PlayInProgress
	PlayComplete
)

// PlayResult reports the outcome of a Play call. Callers must check Status
// before trusting Winner: on PlayInvalid the trick is unchanged and Err
// carries the reason.
type PlayResult struct {
	Status PlayStatus
	Winner Position // valid only when Status == PlayComplete
	Err    *PlayError
}

// Play validates and appends (card, player). On the fourth play the trick
// resolves and the result carries the winner.
func (t *Trick) Play(card Card, player Position, hand []Card) PlayResult {
	if err := t.ValidatePlay(card, hand); err != nil {
		return PlayResult{Status: PlayInvalid, Err: err}
	}
	t.Plays = append(t.Plays, TrickPlay{Card: card, Player: player})
	if !t.IsComplete() {
		return PlayResult{Status: PlayInProgress}
	}
	winner, _ := t.CurrentWinner()
	return PlayResult{Status: PlayComplete, Winner: winner}
}

// CurrentWinner returns the seat currently holding the trick. It is defined
// for any non-empty trick, complete or not, so the UI can show who is
// winning and the claim analyzer can reason mid-trick. Returns ok=false for
// an empty trick.
func (t *Trick) CurrentWinner() (Position, bool) {
	if len(t.Plays) == 0 {
		return 0, false
	}
	led := t.LedSuit()
	best := t.Plays[0]
	for _, p := range t.Plays[1:] {
		if t.beats(p.Card, best.Card, led) {
			best = p
		}
	}
	return best.Player, true
}

// WouldWin reports whether playing card into the trick right now would take
// the lead from the current best play. For an empty trick any card would.
func (t *Trick) WouldWin(card Card) bool {
	if len(t.Plays) == 0 {
		return true
	}
	winner, _ := t.CurrentWinner()
	var bestCard Card
	for _, p := range t.Plays {
		if p.Player == winner {
			bestCard = p.Card
		}
	}
	return t.beats(card, bestCard, t.LedSuit())
}

// beats reports whether challenger takes the trick from best given the led
// suit: trump beats non-trump, higher trump beats lower trump, and among
// non-trumps only a higher card of the led suit wins.
func (t *Trick) beats(challenger, best Card, led Suit) bool {
	cTrump, bTrump := t.Rules.IsTrump(challenger), t.Rules.IsTrump(best)
	switch {
	case cTrump && !bTrump:
		return true
	case bTrump && !cTrump:
		return false
	case cTrump && bTrump:
		return t.Rules.Compare(challenger, best) > 0
	}
	if t.Rules.EffectiveSuit(challenger) != led {
		return false
	}
	if t.Rules.EffectiveSuit(best) != led {
		return true
	}
	return t.Rules.Compare(challenger, best) > 0
}

// Clone returns a deep copy, used by the claim analyzer's simulations.
func (t *Trick) Clone() *Trick {
	plays := make([]TrickPlay, len(t.Plays))
	copy(plays, t.Plays)
	return &Trick{Leader: t.Leader, Plays: plays, Rules: t.Rules}
}
