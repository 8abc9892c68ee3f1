package game

import (
	"whist/engine"
)

// EventType tags a game event pushed to the presentation layer.
type EventType string

const (
	EventHandStarted   EventType = "hand_started"    // Public: a new hand begins, dealer announced.
	EventCutCard       EventType = "cut_card"        // Public: a seat cut a card from the spread deck.
	EventDealerChosen  EventType = "dealer_chosen"   // Public: cut resolved, dealer fixed.
	EventCardsDealt    EventType = "cards_dealt"     // Public: hands are out (counts only).
	EventPrivateHand   EventType = "private_hand"    // Seat-private: the seat's own cards.
	EventTrumpRevealed EventType = "trump_revealed"  // Public: trump fixed by flip or last-dealt card.
	EventBidPlaced     EventType = "bid_placed"      // Public: a seat bid (face-down bids carry no detail).
	EventAuctionClosed EventType = "auction_closed"  // Public: auction resolved, contract announced.
	EventRedeal        EventType = "redeal"          // Public: every seat passed, the hand is thrown in.
	EventTrumpDeclared EventType = "trump_declared"  // Public: declarer named trump at the exchange.
	EventCardPlayed    EventType = "card_played"     // Public: a card hit the table.
	EventTrickWon      EventType = "trick_won"       // Public: four cards down, trick awarded.
	EventClaimApplied  EventType = "claim_applied"   // Public: remaining tricks conceded to the claimer.
	EventHandScored    EventType = "hand_scored"     // Public: hand totals applied.
	EventGameEnded     EventType = "game_ended"      // Public: a side reached the target.
)

// Event is the broadcast unit for state changes. Cards travel as tokens so
// the payload stays transport-agnostic.
type Event struct {
	Type    EventType              `json:"type"`
	Seat    *engine.Position       `json:"seat,omitempty"`
	Card    string                 `json:"card,omitempty"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// seatRef returns a pointer for the omitempty JSON encoding.
func seatRef(p engine.Position) *engine.Position { return &p }

// fire sends an event to every connected seat, if a broadcaster is attached.
// Assumes the game lock is held.
func (g *Game) fire(ev Event) {
	if g.BroadcastFn != nil {
		g.BroadcastFn(ev)
	}
}

// fireSeat sends an event to a single seat.
func (g *Game) fireSeat(seat engine.Position, ev Event) {
	if g.BroadcastToSeatFn != nil {
		g.BroadcastToSeatFn(seat, ev)
	}
}

// pushHand sends a seat its own cards. The only event carrying hand
// contents; everything on the public channel ships counts.
func (g *Game) pushHand(seat engine.Position) {
	tokens := make([]string, 0, len(g.hands[seat]))
	for _, c := range g.hands[seat] {
		tokens = append(tokens, c.Token())
	}
	g.fireSeat(seat, Event{Type: EventPrivateHand, Seat: seatRef(seat), Payload: map[string]interface{}{
		"cards": tokens,
	}})
}
