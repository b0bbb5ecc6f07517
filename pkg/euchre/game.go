package euchre

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"euchre-engine/internal/rng"
	"euchre-engine/pkg/deck"
)

// Options are table-level rule and engine settings
type Options struct {
	// StickTheDealer forces the dealer to name trump if both rounds pass
	StickTheDealer bool

	// Seed makes the game deterministic. 0 draws a seed from the crypto generator.
	Seed int64
}

// HandResult reports everything that happened in one hand as plain data
type HandResult struct {
	Dealer             int                 `json:"dealer"`
	Misdeal            bool                `json:"misdeal"`
	Maker              int                 `json:"makerSeat"`
	Trump              deck.Suit           `json:"trump,omitempty"`
	Alone              bool                `json:"loner"`
	MakerRound         int                 `json:"makerRound"`
	StuckDealer        bool                `json:"stuckDealer"`
	DealtHands         [NumSeats]deck.Hand `json:"dealtHands"`
	TricksWon          [2]int              `json:"tricksWon"`
	Tricks             []TrickResult       `json:"tricks"`
	Points             [2]int              `json:"pointsAwarded"`
	WinningPartnership int                 `json:"winningPartnership"`
	Events             []*Event            `json:"events"`
}

// Game holds the scores and dealer rotation that persist across hands.
// Hands are played to completion as pure computations over a GameState.
type Game struct {
	logger         logrus.FieldLogger
	strategies     [NumSeats]Strategy
	stickTheDealer bool
	rng            *rand.Rand

	dealer int
	scores [2]int
}

// NewGame returns a new game for the four seat strategies. It refuses to start
// with an invalid strategy.
func NewGame(logger logrus.FieldLogger, strategies [NumSeats]Strategy, opts Options) (*Game, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	for seat, strategy := range strategies {
		if err := strategy.Validate(); err != nil {
			return nil, fmt.Errorf("seat %d: %w", seat, err)
		}
	}

	seed := opts.Seed
	if seed == 0 {
		seed = rng.Seed()
	}

	return &Game{
		logger:         logger,
		strategies:     strategies,
		stickTheDealer: opts.StickTheDealer,
		rng:            rand.New(rand.NewSource(seed)),
	}, nil
}

// Scores returns the cumulative partnership scores
func (g *Game) Scores() [2]int {
	return g.scores
}

// Dealer returns the seat that deals the next hand
func (g *Game) Dealer() int {
	return g.dealer
}

// Winner returns the winning partnership once one has reached the winning score
func (g *Game) Winner() (int, bool) {
	for partnership, score := range g.scores {
		if score >= WinningScore {
			return partnership, true
		}
	}

	return 0, false
}

// DealHand deals a new hand and runs it through bidding and the dealer
// discard, returning a state ready for trick play. ok is false on a misdeal;
// the dealer advances either way. Use PlayHand to run a whole hand instead.
func (g *Game) DealHand() (state *GameState, ok bool) {
	var events []*Event
	state, call := g.dealAndBid(&events)
	if call == nil {
		g.dealer = (g.dealer + 1) % NumSeats
		return state, false
	}

	g.applyCall(state, call, &events)
	return state, true
}

// PlayHand plays a complete hand: deal, bidding, discard, five tricks, and
// scoring. Misdeals are reported, not scored. The dealer rotates afterward.
func (g *Game) PlayHand() (*HandResult, error) {
	if _, over := g.Winner(); over {
		return nil, ErrGameOver
	}

	var events []*Event
	state, call := g.dealAndBid(&events)

	result := &HandResult{
		Dealer:             state.Dealer,
		Maker:              -1,
		WinningPartnership: -1,
	}
	for seat := range state.Hands {
		result.DealtHands[seat] = state.Hands[seat].Clone()
	}

	if call == nil {
		events = append(events, newEvent(EventMisdeal, -1))
		result.Misdeal = true
		result.Events = events

		g.logger.WithField("dealer", g.dealer).Debug("misdeal")
		g.dealer = (g.dealer + 1) % NumSeats
		return result, nil
	}

	g.applyCall(state, call, &events)

	for state.TrickNo < TricksPerHand {
		for !state.TrickComplete() {
			seat := state.NextToPlay()
			card := choosePlay(g.viewFor(state, seat))

			if err := state.PlayCard(seat, card); err != nil {
				return nil, err
			}

			events = append(events, newEvent(EventPlay, seat, card))
		}

		trick := state.ResolveTrick()
		result.Tricks = append(result.Tricks, trick)
		events = append(events, newEvent(EventTrick, trick.Winner))
	}

	makerTeam := Partnership(state.Maker)
	points := scoreHand(makerTeam, state.TricksWon[makerTeam], state.Alone)

	result.Maker = state.Maker
	result.Trump = state.Trump
	result.Alone = state.Alone
	result.MakerRound = state.MakerRound
	result.StuckDealer = state.StuckDealer
	result.TricksWon = state.TricksWon
	result.Points = points

	if points[makerTeam] > 0 {
		result.WinningPartnership = makerTeam
	} else {
		result.WinningPartnership = 1 - makerTeam
	}

	g.scores[0] += points[0]
	g.scores[1] += points[1]

	scoreEvent := newEvent(EventScore, state.Maker)
	scoreEvent.Suit = state.Trump
	events = append(events, scoreEvent)
	result.Events = events

	g.logger.WithFields(logrus.Fields{
		"maker":  state.Maker,
		"trump":  state.Trump,
		"tricks": state.TricksWon,
		"points": points,
		"scores": g.scores,
	}).Debug("hand complete")

	g.dealer = (g.dealer + 1) % NumSeats
	return result, nil
}

func (g *Game) dealAndBid(events *[]*Event) (*GameState, *bidCall) {
	d := deck.New()
	d.Shuffle(g.rng.Int63())

	state := Deal(d, g.dealer)
	dealEvent := newEvent(EventDeal, state.Dealer, state.UpCard)
	*events = append(*events, dealEvent)

	return state, g.runBidding(state, events)
}

func (g *Game) applyCall(state *GameState, call *bidCall, events *[]*Event) {
	state.Trump = call.suit
	state.Maker = call.seat
	state.MakerRound = call.round
	state.Alone = call.alone
	state.StuckDealer = call.stuck

	*events = append(*events, newSuitEvent(EventBid, call.seat, call.suit, call.alone))

	if call.round == 1 {
		state.Hands[state.Dealer].AddCard(state.UpCard)
		*events = append(*events, newEvent(EventPickUp, state.Dealer, state.UpCard))

		discarded := dealerDiscard(state, g.strategies[state.Dealer].DealerDiscard)
		*events = append(*events, newEvent(EventDiscard, state.Dealer, discarded))
	}

	leader := (state.Dealer + 1) % NumSeats
	if !state.IsActive(leader) {
		leader = (leader + 1) % NumSeats
	}
	state.Leader = leader
}

// scoreHand awards points for a finished hand. Exactly one partnership scores.
func scoreHand(makerTeam, makerTricks int, alone bool) [2]int {
	var points [2]int

	switch {
	case makerTricks < 3:
		// euchre: the defenders score
		points[1-makerTeam] = 2
	case makerTricks == TricksPerHand && alone:
		points[makerTeam] = 4
	case makerTricks == TricksPerHand:
		points[makerTeam] = 2
	default:
		points[makerTeam] = 1
	}

	return points
}
