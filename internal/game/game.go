// internal/game/game.go
package game

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"whist/engine"
)

// OnGameEndFunc is the callback executed when a game reaches its target
// score. It receives the game ID, the winning side, and the final totals.
type OnGameEndFunc func(gameID uuid.UUID, winner engine.Team, scoreNS, scoreEW int)

// Phase is the orchestrator's lifecycle state. Every transition happens
// synchronously inside an intent call; there are no timers.
type Phase int8

const (
	PhaseSetup Phase = iota
	PhaseCutForDeal
	PhaseDealing
	PhaseBidding
	PhaseExchange
	PhasePlay
	PhaseScoring
	PhaseGameOver
)

var phaseNames = [...]string{
	"setup", "cut_for_deal", "dealing", "bidding", "exchange", "play", "scoring", "game_over",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// Config carries the table settings fixed at game creation.
type Config struct {
	Variant engine.Variant

	// Seed drives the injected rng; zero means seed from the clock.
	Seed int64

	// PresetDeck, when non-empty, replaces the shuffle for every deal.
	// Test and replay hook.
	PresetDeck engine.Deck

	// AISeats marks seats driven by the built-in strategies. AI seats act
	// synchronously as soon as the turn reaches them.
	AISeats [engine.NumPositions]bool

	// SkipCut starts the game at Dealer instead of cutting for deal.
	SkipCut bool
	Dealer  engine.Position
}

// Game is the mutable state and intent surface for one table. All exported
// methods lock Mu; everything below them assumes the lock is held.
type Game struct {
	ID     uuid.UUID
	Config Config

	Mu  sync.Mutex
	log *logrus.Entry
	rng *rand.Rand

	phase   Phase
	dealer  engine.Position
	handNum int

	// Cut-for-deal state.
	cutDeck  engine.Deck
	cutCards [engine.NumPositions]*engine.Card

	// Hand state.
	hands     [engine.NumPositions][]engine.Card
	kitty     []engine.Card
	undealt   []engine.Card
	trumpCard *engine.Card // flip card (Oh Hell) or dealer's last card (Classic)

	auction  engine.Auction
	result   engine.AuctionResult
	rules    engine.TrumpRules
	handType engine.HandType
	allLow   bool
	declarer engine.Position
	contract engine.Bid

	trick      *engine.Trick
	completed  []*engine.Trick
	trickCount [engine.NumPositions]int
	canClaim   [engine.NumPositions]bool

	// Running totals. seatScores is only meaningful for Oh Hell.
	scoreNS    int
	scoreEW    int
	seatScores [engine.NumPositions]int
	lastScore  engine.HandScore
	gameStatus engine.GameStatus
	winnerSeat *engine.Position // Oh Hell winner

	status string // last user-facing status message

	BroadcastFn       func(ev Event)
	BroadcastToSeatFn func(seat engine.Position, ev Event)
	OnGameEnd         OnGameEndFunc
}

// NewGame creates a table for the configured variant. The rng is owned by
// the game and only touched under the lock.
func NewGame(cfg Config) *Game {
	id := uuid.New()
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Game{
		ID:     id,
		Config: cfg,
		log: logrus.WithFields(logrus.Fields{
			"game":    id,
			"variant": cfg.Variant.String(),
		}),
		rng:   rand.New(rand.NewSource(seed)),
		phase: PhaseSetup,
	}
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.phase
}

// intentError records a rejected intent as the status message and returns
// it. State is never touched on the error path.
func (g *Game) intentError(format string, args ...interface{}) error {
	err := fmt.Errorf(format, args...)
	g.status = err.Error()
	return err
}

// ---------------------------------------------------------------------------
// Intents
// ---------------------------------------------------------------------------

// StartNewGame moves the table out of setup: into the cut for deal, or
// straight to dealing when the config fixes the dealer.
func (g *Game) StartNewGame() error {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	if g.phase != PhaseSetup {
		return g.intentError("game already started")
	}

	if g.Config.SkipCut {
		g.dealer = g.Config.Dealer
		g.phase = PhaseDealing
		g.log.WithField("dealer", g.dealer.String()).Info("game started with fixed dealer")
		g.fire(Event{Type: EventDealerChosen, Seat: seatRef(g.dealer)})
		return nil
	}

	g.cutDeck = g.Config.Variant.NewDeckFor()
	g.cutDeck.Shuffle(g.rng)
	g.cutCards = [engine.NumPositions]*engine.Card{}
	g.phase = PhaseCutForDeal
	g.log.Info("game started, cutting for deal")
	g.fire(Event{Type: EventHandStarted})
	g.aiAdvance()
	return nil
}

// SelectCutCard draws the card at idx from the spread deck for the given
// seat. Once all four seats have cut, the lowest card deals.
func (g *Game) SelectCutCard(seat engine.Position, idx int) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	if err := g.doSelectCutCard(seat, idx); err != nil {
		return err
	}
	g.aiAdvance()
	return nil
}

func (g *Game) doSelectCutCard(seat engine.Position, idx int) error {
	if g.phase != PhaseCutForDeal {
		return g.intentError("not cutting for deal")
	}
	if g.cutCards[seat] != nil {
		return g.intentError("%s has already cut", seat)
	}
	if idx < 0 || idx >= len(g.cutDeck) {
		return g.intentError("cut index %d out of range", idx)
	}

	card := g.cutDeck[idx]
	g.cutDeck = append(g.cutDeck[:idx:idx], g.cutDeck[idx+1:]...)
	g.cutCards[seat] = &card
	g.fire(Event{Type: EventCutCard, Seat: seatRef(seat), Card: card.Token()})

	for _, c := range g.cutCards {
		if c == nil {
			return nil
		}
	}
	g.resolveCut()
	return nil
}

// resolveCut fixes the dealer: lowest cut card deals, ties broken toward the
// earliest seat in table order.
func (g *Game) resolveCut() {
	dealer := engine.North
	for seat := engine.Position(1); seat < engine.NumPositions; seat++ {
		if g.cutCards[seat].Rank < g.cutCards[dealer].Rank {
			dealer = seat
		}
	}
	g.dealer = dealer
	g.cutDeck = nil
	g.phase = PhaseDealing
	g.log.WithField("dealer", dealer.String()).Info("cut resolved")
	g.fire(Event{Type: EventDealerChosen, Seat: seatRef(dealer)})
}

// DealCards shuffles and deals the variant's shape, then opens the auction
// (or play, for the auctionless variant).
func (g *Game) DealCards() error {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	if err := g.doDeal(); err != nil {
		return err
	}
	g.aiAdvance()
	return nil
}

func (g *Game) doDeal() error {
	if g.phase != PhaseDealing {
		return g.intentError("not ready to deal")
	}

	r := g.Config.Variant.Rules()
	deck := g.Config.Variant.NewDeckFor()
	if len(g.Config.PresetDeck) > 0 {
		deck = append(engine.Deck(nil), g.Config.PresetDeck...)
	} else {
		deck.Shuffle(g.rng)
	}

	hands, kitty, undealt, err := deck.Deal(g.dealer, r.HandSize, r.KittySize)
	if err != nil {
		g.log.WithError(err).Error("deal failed")
		return err
	}
	g.hands = hands
	g.kitty = kitty
	g.undealt = undealt
	g.trumpCard = nil
	g.completed = nil
	g.trickCount = [engine.NumPositions]int{}
	g.canClaim = [engine.NumPositions]bool{}
	g.handType = engine.HandNone
	g.allLow = false
	g.lastScore = engine.HandScore{}
	g.handNum++

	g.log.WithField("hand", g.handNum).Info("cards dealt")
	g.fire(Event{Type: EventCardsDealt, Payload: map[string]interface{}{
		"dealer": g.dealer.String(),
		"hand":   g.handNum,
	}})
	for seat := engine.Position(0); seat < engine.NumPositions; seat++ {
		g.pushHand(seat)
	}

	switch {
	case r.TrumpFlip:
		// Trump is fixed by the top undealt card, revealed before bidding.
		flip := g.undealt[0]
		g.trumpCard = &flip
		g.rules = g.Config.Variant.TrumpRulesFor(flip.Suit)
		g.fire(Event{Type: EventTrumpRevealed, Card: flip.Token()})
		g.openAuction()

	case r.TrumpByDeal:
		// The dealer's final card names trump and the hand plays at once.
		last := g.hands[g.dealer][len(g.hands[g.dealer])-1]
		g.trumpCard = &last
		g.rules = g.Config.Variant.TrumpRulesFor(last.Suit)
		g.fire(Event{Type: EventTrumpRevealed, Card: last.Token()})
		g.startPlay(g.dealer.Next())

	default:
		g.rules = engine.NoTrump()
		g.openAuction()
	}
	return nil
}

func (g *Game) openAuction() {
	g.auction = g.Config.Variant.NewAuction(g.dealer)
	g.result = engine.AuctionResult{}
	g.phase = PhaseBidding
}

// SubmitBid places a bid for the given seat. Illegal bids leave the auction
// untouched and surface the reason as the status message.
func (g *Game) SubmitBid(seat engine.Position, bid engine.Bid) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	if err := g.doSubmitBid(seat, bid); err != nil {
		return err
	}
	g.aiAdvance()
	return nil
}

func (g *Game) doSubmitBid(seat engine.Position, bid engine.Bid) error {
	if g.phase != PhaseBidding {
		return g.intentError("not in the bidding phase")
	}
	// The color bid is a card from the bidder's own hand.
	if bid.Kind == engine.BidCard && !handContains(g.hands[seat], bid.Card) {
		return g.intentError("bid card is not in %s's hand", seat)
	}
	if err := g.auction.Submit(seat, bid); err != nil {
		g.status = err.Reason
		return err
	}

	ev := Event{Type: EventBidPlaced, Seat: seatRef(seat)}
	if bid.Kind != engine.BidCard {
		// Card bids stay face down until the reveal.
		ev.Payload = map[string]interface{}{"bid": bid.String()}
	}
	g.fire(ev)

	if g.auction.IsComplete() {
		g.resolveAuction()
	}
	return nil
}

func (g *Game) resolveAuction() {
	res := g.auction.Resolve()
	g.result = res
	g.status = res.Message

	if res.Status == engine.AuctionAllPass {
		g.log.Info("auction passed out, redealing")
		g.fire(Event{Type: EventRedeal})
		g.dealer = g.dealer.Next()
		g.phase = PhaseDealing
		return
	}

	g.declarer = res.Declarer
	g.contract = res.WinningBid
	g.fire(Event{Type: EventAuctionClosed, Seat: seatRef(res.Declarer), Payload: map[string]interface{}{
		"message": res.Message,
	}})

	switch g.Config.Variant {
	case engine.VariantMinnesotaWhist:
		g.handType = res.HandType
		g.allLow = res.AllLow
		g.rules = engine.NoTrump()
		g.startPlay(res.Declarer)

	case engine.VariantOhHell:
		// Trump was fixed at the flip; the leader is the dealer's left.
		g.startPlay(g.dealer.Next())

	case engine.VariantFiveHundred:
		g.rules = g.Config.Variant.TrumpRulesFor(res.Trump)
		g.phase = PhaseExchange

	default: // Bid Whist, Widow Whist: declarer exchanges and names trump
		g.phase = PhaseExchange
	}
}

// PerformExchange lets the declarer absorb the kitty, discard back to hand
// size, and (where the contract hasn't already fixed it) declare trump.
func (g *Game) PerformExchange(seat engine.Position, discards []engine.Card, trump engine.Suit) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	if err := g.doExchange(seat, discards, trump); err != nil {
		return err
	}
	g.aiAdvance()
	return nil
}

func (g *Game) doExchange(seat engine.Position, discards []engine.Card, trump engine.Suit) error {
	if g.phase != PhaseExchange {
		return g.intentError("no exchange is pending")
	}
	if seat != g.declarer {
		return g.intentError("only %s may exchange", g.declarer)
	}
	if len(discards) != len(g.kitty) {
		return g.intentError("must discard exactly %d cards", len(g.kitty))
	}

	merged := append(append([]engine.Card(nil), g.hands[seat]...), g.kitty...)
	for _, c := range discards {
		if !handContains(merged, c) {
			return g.intentError("%s is not available to discard", c)
		}
		merged = removeFromHand(merged, c)
	}
	g.hands[seat] = merged
	g.kitty = nil
	g.pushHand(seat)

	if g.Config.Variant == engine.VariantFiveHundred {
		// Trump was fixed by the winning bid.
		trump = g.result.Trump
	} else {
		g.rules = g.Config.Variant.TrumpRulesFor(trump)
	}
	g.fire(Event{Type: EventTrumpDeclared, Seat: seatRef(seat), Payload: map[string]interface{}{
		"trump": trump.String(),
	}})
	g.log.WithField("trump", trump.String()).Info("exchange complete")
	g.startPlay(seat)
	return nil
}

func (g *Game) startPlay(leader engine.Position) {
	g.trick = engine.NewTrick(leader, g.rules)
	g.phase = PhasePlay
	g.status = leader.String() + " leads"
}

// PlayCard plays a card from the seat's hand into the current trick.
func (g *Game) PlayCard(seat engine.Position, card engine.Card) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	if err := g.doPlayCard(seat, card); err != nil {
		return err
	}
	g.aiAdvance()
	return nil
}

func (g *Game) doPlayCard(seat engine.Position, card engine.Card) error {
	if g.phase != PhasePlay {
		return g.intentError("not in the play phase")
	}
	if turn := g.trick.NextToPlay(); seat != turn {
		return g.intentError("it is %s's turn", turn)
	}

	res := g.trick.Play(card, seat, g.hands[seat])
	if res.Status == engine.PlayInvalid {
		g.status = res.Err.Reason
		return res.Err
	}
	g.hands[seat] = removeFromHand(g.hands[seat], card)
	g.fire(Event{Type: EventCardPlayed, Seat: seatRef(seat), Card: card.Token()})

	if res.Status != engine.PlayComplete {
		return nil
	}

	winner := res.Winner
	g.trickCount[winner]++
	g.completed = append(g.completed, g.trick)
	g.fire(Event{Type: EventTrickWon, Seat: seatRef(winner), Payload: map[string]interface{}{
		"trick": len(g.completed),
	}})

	if len(g.hands[winner]) == 0 {
		g.finishHand()
		return nil
	}
	g.trick = engine.NewTrick(winner, g.rules)
	g.recomputeClaims()
	return nil
}

// recomputeClaims refreshes the per-seat claim flags after every completed
// trick. An inconsistent state reads as not claimable.
func (g *Game) recomputeClaims() {
	for seat := engine.Position(0); seat < engine.NumPositions; seat++ {
		ok, err := engine.CanClaimRest(g.hands, seat, g.trick, g.rules)
		if err != nil {
			g.log.WithError(err).Warn("claim analysis failed")
			ok = false
		}
		g.canClaim[seat] = ok
	}
}

// ClaimRemainingTricks concedes the rest of the hand to the claimer if the
// engine can prove the claim safe; otherwise the hand continues untouched.
func (g *Game) ClaimRemainingTricks(seat engine.Position) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	if g.phase != PhasePlay {
		return g.intentError("nothing to claim")
	}

	ok, tricks, err := engine.PlayOutClaim(g.hands, seat, g.trick, g.rules)
	if err != nil {
		g.log.WithError(err).Error("claim playout failed")
		return err
	}
	if !ok {
		return g.intentError("claim refused: %s cannot prove the remaining tricks", seat)
	}

	g.trickCount[seat] += len(tricks)
	g.completed = append(g.completed, tricks...)
	for s := range g.hands {
		g.hands[s] = nil
	}
	g.fire(Event{Type: EventClaimApplied, Seat: seatRef(seat), Payload: map[string]interface{}{
		"tricks": len(tricks),
	}})
	g.log.WithField("tricks", len(tricks)).Info("claim accepted")
	g.finishHand()
	return nil
}

// StartNextHand rotates the dealer and returns to the deal after scoring.
func (g *Game) StartNextHand() error {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	if g.phase != PhaseScoring {
		return g.intentError("the hand is still in progress")
	}
	g.dealer = g.dealer.Next()
	g.phase = PhaseDealing
	g.fire(Event{Type: EventHandStarted, Payload: map[string]interface{}{
		"dealer": g.dealer.String(),
	}})
	return nil
}

// ---------------------------------------------------------------------------
// Hand completion and scoring
// ---------------------------------------------------------------------------

func (g *Game) finishHand() {
	g.phase = PhaseScoring
	g.trick = nil
	g.canClaim = [engine.NumPositions]bool{}

	if err := g.scoreHand(); err != nil {
		g.log.WithError(err).Error("scoring failed")
		g.status = err.Error()
		return
	}

	g.fire(Event{Type: EventHandScored, Payload: map[string]interface{}{
		"description": g.lastScore.Description,
		"scoreNS":     g.scoreNS,
		"scoreEW":     g.scoreEW,
	}})
	g.log.WithFields(logrus.Fields{
		"scoreNS": g.scoreNS,
		"scoreEW": g.scoreEW,
	}).Info(g.lastScore.Description)

	g.checkGameEnd()
}

func (g *Game) scoreHand() error {
	teamTricks := func(t engine.Team) int {
		total := 0
		for seat, n := range g.trickCount {
			if engine.Position(seat).Team() == t {
				total += n
			}
		}
		return total
	}

	switch g.Config.Variant {
	case engine.VariantMinnesotaWhist:
		team := g.declarer.Team()
		score, err := engine.ScoreMinnesotaHand(g.handType, team, teamTricks(team), g.allLow)
		if err != nil {
			return err
		}
		g.applyHandScore(score)

	case engine.VariantBidWhist:
		team := g.declarer.Team()
		score, err := engine.ScoreBidWhistHand(g.contract.Tricks, team, teamTricks(team))
		if err != nil {
			return err
		}
		g.applyHandScore(score)

	case engine.VariantClassicWhist:
		score, err := engine.ScoreClassicHand(
			teamTricks(engine.TeamNorthSouth), teamTricks(engine.TeamEastWest))
		if err != nil {
			return err
		}
		g.applyHandScore(score)

	case engine.VariantWidowWhist:
		declTricks := g.trickCount[g.declarer]
		score, err := engine.ScoreWidowHand(
			g.declarer, g.contract.Tricks, declTricks, engine.WidowTricksPerHand-declTricks)
		if err != nil {
			return err
		}
		g.applyHandScore(score)

	case engine.VariantFiveHundred:
		team := g.declarer.Team()
		t := teamTricks(team)
		score, err := engine.ScoreFiveHundredHand(
			g.contract, team, t, engine.FiveHundredTricksPerHand-t)
		if err != nil {
			return err
		}
		g.applyHandScore(score)

	case engine.VariantOhHell:
		auction, ok := g.auction.(*engine.OhHellAuction)
		if !ok {
			return fmt.Errorf("missing exact-bid auction for scoring")
		}
		var bids [engine.NumPositions]int
		for seat := range bids {
			bids[seat], _ = auction.BidFor(engine.Position(seat))
		}
		scores, err := engine.ScoreOhHellHand(bids, g.trickCount, g.Config.Variant.Rules().HandSize)
		if err != nil {
			return err
		}
		for seat, pts := range scores {
			g.seatScores[seat] += pts
		}
		g.lastScore = engine.HandScore{Description: "bids settled"}
	}
	return nil
}

func (g *Game) applyHandScore(score engine.HandScore) {
	g.lastScore = score
	g.scoreNS += score.TeamNorthSouth
	g.scoreEW += score.TeamEastWest
	g.status = score.Description
}

func (g *Game) checkGameEnd() {
	target := g.Config.Variant.Rules().TargetScore

	switch g.Config.Variant {
	case engine.VariantFiveHundred:
		g.gameStatus = engine.CheckFiveHundredGameOver(g.scoreNS, g.scoreEW)

	case engine.VariantOhHell:
		best := -1
		for seat, pts := range g.seatScores {
			if pts >= target && (best < 0 || pts > g.seatScores[best]) {
				best = seat
			}
		}
		if best >= 0 {
			winner := engine.Position(best)
			g.winnerSeat = &winner
			if winner.Team() == engine.TeamNorthSouth {
				g.gameStatus = engine.GameWonByNorthSouth
			} else {
				g.gameStatus = engine.GameWonByEastWest
			}
		}

	default:
		g.gameStatus = engine.CheckGameOver(g.scoreNS, g.scoreEW, target)
	}

	if g.gameStatus == engine.GameInProgress {
		return
	}

	g.phase = PhaseGameOver
	winner := g.gameStatus.Winner()
	g.status = winner.String() + " wins the game"
	g.fire(Event{Type: EventGameEnded, Payload: map[string]interface{}{
		"winner":  winner.String(),
		"scoreNS": g.scoreNS,
		"scoreEW": g.scoreEW,
	}})
	g.log.WithField("winner", winner.String()).Info("game over")
	if g.OnGameEnd != nil {
		g.OnGameEnd(g.ID, winner, g.scoreNS, g.scoreEW)
	}
}

// ---------------------------------------------------------------------------
// Hand helpers
// ---------------------------------------------------------------------------

func handContains(hand []engine.Card, card engine.Card) bool {
	for _, c := range hand {
		if c == card {
			return true
		}
	}
	return false
}

func removeFromHand(hand []engine.Card, card engine.Card) []engine.Card {
	for i, c := range hand {
		if c == card {
			return append(hand[:i:i], hand[i+1:]...)
		}
	}
	return hand
}
