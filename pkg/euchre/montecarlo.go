package euchre

import (
	"math/rand"

	"euchre-engine/internal/rng"
	"euchre-engine/pkg/deck"
)

// DefaultTrials is the number of rollouts per candidate card
const DefaultTrials = 250

// PlayEvaluation reports the empirical win rate of one legal card
type PlayEvaluation struct {
	Card    *deck.Card `json:"card"`
	WinRate float64    `json:"winRate"`
	Best    bool       `json:"isBest"`
}

// Evaluator estimates the win probability of each legal play by resampling
// the hidden cards and rolling the trick out under the heuristic policy.
type Evaluator struct {
	strategies [NumSeats]Strategy
	trials     int
	rng        *rand.Rand
}

// NewEvaluator returns an evaluator running the given number of trials per
// candidate card. A seed of 0 draws one from the crypto generator.
func NewEvaluator(strategies [NumSeats]Strategy, trials int, seed int64) *Evaluator {
	if trials <= 0 {
		trials = DefaultTrials
	}

	if seed == 0 {
		seed = rng.Seed()
	}

	return &Evaluator{
		strategies: strategies,
		trials:     trials,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// EvaluatePlays reports the win rate of every legal card for the seat, in
// hand order, with the best card flagged (ties broken by evaluation order).
// The input state is never mutated; every trial runs on an independent clone.
// A decision point with a single legal card reports 100% without trials, and
// a seat with no cards left reports nothing.
func (e *Evaluator) EvaluatePlays(state *GameState, seat int) []PlayEvaluation {
	legal := LegalMoves(state.Hands[seat], state.Trump, state.leadSuit)

	if len(legal) == 0 {
		return nil
	}

	if len(legal) == 1 {
		return []PlayEvaluation{{Card: legal[0], WinRate: 100, Best: true}}
	}

	evaluations := make([]PlayEvaluation, len(legal))
	best := 0

	for i, candidate := range legal {
		wins := 0
		for trial := 0; trial < e.trials; trial++ {
			if e.runTrial(state, seat, candidate) {
				wins++
			}
		}

		evaluations[i] = PlayEvaluation{
			Card:    candidate,
			WinRate: float64(wins) / float64(e.trials) * 100,
		}

		if evaluations[i].WinRate > evaluations[best].WinRate {
			best = i
		}
	}

	evaluations[best].Best = true
	return evaluations
}

// runTrial deals the unseen cards into a consistent hidden-information world,
// plays the candidate, completes the trick under the heuristic policy, and
// reports whether the seat's partnership took the trick.
func (e *Evaluator) runTrial(state *GameState, seat int, candidate *deck.Card) bool {
	clone := state.Clone()
	e.redealUnseen(clone, seat)

	if err := clone.PlayCard(seat, candidate); err != nil {
		panic(err)
	}

	for !clone.TrickComplete() {
		next := clone.NextToPlay()
		view := playView{
			hand:     clone.Hands[next],
			plays:    clone.plays,
			trump:    clone.Trump,
			leadSuit: clone.leadSuit,
			seat:     next,
			maker:    clone.Maker,
			strategy: e.strategies[next],
		}

		if err := clone.PlayCard(next, choosePlay(view)); err != nil {
			panic(err)
		}
	}

	trick := clone.ResolveTrick()
	return Partnership(trick.Winner) == Partnership(seat)
}

// redealUnseen replaces every other seat's hand with a random partition of
// the cards the evaluating seat cannot see, preserving each hand's size
func (e *Evaluator) redealUnseen(state *GameState, seat int) {
	pool := e.unseenCards(state, seat)

	e.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	// the dealer is known to have picked up the up-card; seed it into their
	// resampled hand whenever the evaluating seat hasn't seen it leave play
	seedUpCard := state.UpCard != nil && !state.UpCardTurnedDown && pool.HasCard(state.UpCard)

	for other := 0; other < NumSeats; other++ {
		if other == seat {
			continue
		}

		size := len(state.Hands[other])
		hand := make(deck.Hand, 0, size)

		if other == state.Dealer && seedUpCard && size > 0 {
			hand.AddCard(state.UpCard)
			pool.Discard(state.UpCard)
		}

		for len(hand) < size {
			hand.AddCard(pool[0])
			pool = pool[1:]
		}

		state.Hands[other] = hand
	}
}

// unseenCards returns the deck minus everything the seat has seen: its own
// hand, every card played this hand, the up-card when it was turned down, and
// its own discard when the seat dealt and picked up.
func (e *Evaluator) unseenCards(state *GameState, seat int) deck.Hand {
	seen := state.Hands[seat].Clone()
	seen = append(seen, state.played...)

	if state.UpCardTurnedDown {
		seen.AddCard(state.UpCard)
	}

	if seat == state.Dealer && state.discarded != nil {
		seen.AddCard(state.discarded)
	}

	var pool deck.Hand
	for _, card := range deck.New().Cards {
		if !seen.HasCard(card) {
			pool.AddCard(card)
		}
	}

	return pool
}
