// internal/game/snapshot.go
package game

import (
	"whist/engine"
)

// PlayView is one card already on the table.
type PlayView struct {
	Seat engine.Position `json:"seat"`
	Card string          `json:"card"`
}

// BidView is one auction history entry.
type BidView struct {
	Seat engine.Position `json:"seat"`
	Bid  string          `json:"bid"`
}

// SeatView is one seat's state as seen by a specific viewer. Hand contents
// are revealed only to the owning seat; everyone else sees the count.
type SeatView struct {
	Seat      engine.Position `json:"seat"`
	HandSize  int             `json:"handSize"`
	Hand      []string        `json:"hand,omitempty"` // card tokens, self only
	TricksWon int             `json:"tricksWon"`
	Score     int             `json:"score"` // per-seat total (Oh Hell)
	IsTurn    bool            `json:"isTurn"`
	CanClaim  bool            `json:"canClaim"`
	IsDealer  bool            `json:"isDealer"`
}

// Snapshot is a read-only view of the table for one viewer, taken after any
// intent. It carries everything a client needs to render and to know which
// actions are currently legal.
type Snapshot struct {
	GameID  string          `json:"gameId"`
	Variant string          `json:"variant"`
	Phase   string          `json:"phase"`
	Dealer  engine.Position `json:"dealer"`
	HandNum int             `json:"handNum"`

	Trump     string `json:"trump,omitempty"`
	TrumpCard string `json:"trumpCard,omitempty"` // flip or last-dealt reveal

	Declarer *engine.Position `json:"declarer,omitempty"`
	Contract string           `json:"contract,omitempty"`
	HandType string           `json:"handType,omitempty"` // Minnesota high/low

	CurrentTrick []PlayView       `json:"currentTrick,omitempty"`
	TrickLeader  *engine.Position `json:"trickLeader,omitempty"`
	BidHistory   []BidView        `json:"bidHistory,omitempty"`
	LegalCards   []string         `json:"legalCards,omitempty"` // viewer's legal plays

	Seats   [engine.NumPositions]SeatView `json:"seats"`
	ScoreNS int                           `json:"scoreNS"`
	ScoreEW int                           `json:"scoreEW"`

	Status   string `json:"status,omitempty"`
	GameOver bool   `json:"gameOver"`
	Winner   string `json:"winner,omitempty"`
}

// SnapshotFor builds the viewer-specific state. Only the viewer's own hand
// and legal plays are revealed.
func (g *Game) SnapshotFor(viewer engine.Position) Snapshot {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.snapshotLocked(viewer)
}

func (g *Game) snapshotLocked(viewer engine.Position) Snapshot {
	snap := Snapshot{
		GameID:  g.ID.String(),
		Variant: g.Config.Variant.String(),
		Phase:   g.phase.String(),
		Dealer:  g.dealer,
		HandNum: g.handNum,
		ScoreNS: g.scoreNS,
		ScoreEW: g.scoreEW,
		Status:  g.status,
	}

	if g.rules.HasTrump() {
		snap.Trump = g.rules.Trump.String()
	}
	if g.trumpCard != nil {
		snap.TrumpCard = g.trumpCard.Token()
	}

	if g.result.Status == engine.AuctionWon {
		declarer := g.declarer
		snap.Declarer = &declarer
		snap.Contract = g.contract.String()
		if g.handType != engine.HandNone {
			snap.HandType = g.handType.String()
		}
	}

	if g.auction != nil {
		for _, e := range g.auction.History() {
			bid := e.Bid.String()
			if e.Bid.Kind == engine.BidCard && g.phase == PhaseBidding {
				bid = "face down" // color bids hidden until the reveal
			}
			snap.BidHistory = append(snap.BidHistory, BidView{Seat: e.Bidder, Bid: bid})
		}
	}

	var turn engine.Position
	hasTurn := false
	if g.phase == PhasePlay && g.trick != nil {
		leader := g.trick.Leader
		snap.TrickLeader = &leader
		for _, p := range g.trick.Plays {
			snap.CurrentTrick = append(snap.CurrentTrick, PlayView{Seat: p.Player, Card: p.Card.Token()})
		}
		if !g.trick.IsComplete() {
			turn = g.trick.NextToPlay()
			hasTurn = true
			if turn == viewer {
				for _, c := range g.trick.LegalCards(g.hands[viewer]) {
					snap.LegalCards = append(snap.LegalCards, c.Token())
				}
			}
		}
	}
	if g.phase == PhaseBidding {
		if next, ok := g.auction.NextBidder(); ok {
			turn, hasTurn = next, true
		}
	}
	if g.phase == PhaseExchange {
		turn, hasTurn = g.declarer, true
	}

	for seat := engine.Position(0); seat < engine.NumPositions; seat++ {
		sv := SeatView{
			Seat:      seat,
			HandSize:  len(g.hands[seat]),
			TricksWon: g.trickCount[seat],
			Score:     g.seatScores[seat],
			IsTurn:    hasTurn && seat == turn,
			CanClaim:  g.canClaim[seat],
			IsDealer:  seat == g.dealer,
		}
		if seat == viewer {
			for _, c := range g.hands[seat] {
				sv.Hand = append(sv.Hand, c.Token())
			}
		}
		snap.Seats[seat] = sv
	}

	if g.phase == PhaseGameOver {
		snap.GameOver = true
		snap.Winner = g.gameStatus.Winner().String()
	}
	return snap
}
