// Package simulator runs non-interactive batches of euchre games and
// aggregates call, euchre, and per-card tendency statistics.
package simulator

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"euchre-engine/internal/rng"
	"euchre-engine/pkg/deck"
	"euchre-engine/pkg/euchre"
)

// DefaultChunkSize is the number of games simulated per ProcessChunk call
const DefaultChunkSize = 50

// a game should end long before this many hands; a run that doesn't
// indicates a scoring bug
const maxHandsPerGame = 1000

// ErrNoGames is an error when a simulator is built for zero games
var ErrNoGames = errors.New("games must be > 0")

// Options configure a batch run
type Options struct {
	// Games is the total number of full games to simulate
	Games int

	// ChunkSize bounds how many games one ProcessChunk call plays
	ChunkSize int

	// StickTheDealer applies the rule variant to every simulated game
	StickTheDealer bool

	// Seed makes the batch deterministic. 0 draws a seed from the crypto generator.
	Seed int64
}

// Simulator plays games in bounded chunks so a host can interleave progress
// reporting between calls. It is resumable: call ProcessChunk until it
// reports done, or simply stop calling it to cancel the run.
type Simulator struct {
	logger     logrus.FieldLogger
	strategies [euchre.NumSeats]euchre.Strategy
	opts       Options
	rng        *rand.Rand

	gamesDone int
	agg       aggregate
}

// aggregate is the single-writer accumulator updated between hands
type aggregate struct {
	totalHands  int
	misdeals    int
	wins        [2]int
	stuckHands  int
	stuckEuchre int
	seats       [euchre.NumSeats]seatCounters
	cards       map[string]*cardCounters
}

type seatCounters struct {
	calls          int
	round1Calls    int
	round2Calls    int
	lonerAttempts  int
	lonerSuccesses int
	euchresFor     int
	euchresAgainst int
}

type cardCounters struct {
	card          *deck.Card
	handsHeld     int
	callsWhenHeld int
	timesPlayed   int
	trickWins     int
}

// New returns a simulator for the given per-seat strategies. Strategies are
// validated up front; the batch never starts with a bad configuration.
func New(logger logrus.FieldLogger, strategies [euchre.NumSeats]euchre.Strategy, opts Options) (*Simulator, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	if opts.Games <= 0 {
		return nil, ErrNoGames
	}

	if opts.ChunkSize <= 0 {
		opts.ChunkSize = DefaultChunkSize
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

	s := &Simulator{
		logger:     logger,
		strategies: strategies,
		opts:       opts,
		rng:        rand.New(rand.NewSource(seed)),
	}

	s.agg.cards = make(map[string]*cardCounters)
	for _, card := range deck.New().Cards {
		s.agg.cards[deck.CardToString(card)] = &cardCounters{card: card}
	}

	return s, nil
}

// GamesDone returns how many games have completed so far
func (s *Simulator) GamesDone() int {
	return s.gamesDone
}

// ProcessChunk simulates up to ChunkSize games and returns true once the full
// batch is complete. Hosts call it repeatedly, doing their own work between
// calls; an abandoned simulator is simply garbage collected.
func (s *Simulator) ProcessChunk() (done bool, err error) {
	for i := 0; i < s.opts.ChunkSize && s.gamesDone < s.opts.Games; i++ {
		if err := s.runGame(); err != nil {
			return false, err
		}

		s.gamesDone++
	}

	return s.gamesDone >= s.opts.Games, nil
}

func (s *Simulator) runGame() error {
	game, err := euchre.NewGame(s.logger, s.strategies, euchre.Options{
		StickTheDealer: s.opts.StickTheDealer,
		Seed:           s.rng.Int63(),
	})
	if err != nil {
		return err
	}

	for hands := 0; ; hands++ {
		if hands >= maxHandsPerGame {
			return fmt.Errorf("game did not finish within %d hands", maxHandsPerGame)
		}

		result, err := game.PlayHand()
		if err != nil {
			return err
		}

		s.recordHand(result)

		if winner, over := game.Winner(); over {
			s.agg.wins[winner]++
			return nil
		}
	}
}

func (s *Simulator) recordHand(result *euchre.HandResult) {
	s.agg.totalHands++

	// a misdeal is an all-pass hand: the dealt cards still count as pass
	// samples for the tendency index
	for seat, hand := range result.DealtHands {
		for _, card := range hand {
			counters := s.agg.cards[deck.CardToString(card)]
			counters.handsHeld++
			if !result.Misdeal && seat == result.Maker {
				counters.callsWhenHeld++
			}
		}
	}

	if result.Misdeal {
		s.agg.misdeals++
		return
	}

	maker := &s.agg.seats[result.Maker]
	maker.calls++
	if result.MakerRound == 1 {
		maker.round1Calls++
	} else {
		maker.round2Calls++
	}

	if result.Alone {
		maker.lonerAttempts++
		if result.TricksWon[euchre.Partnership(result.Maker)] == euchre.TricksPerHand {
			maker.lonerSuccesses++
		}
	}

	if result.StuckDealer {
		s.agg.stuckHands++
	}

	makerTeam := euchre.Partnership(result.Maker)
	euchred := result.TricksWon[makerTeam] < 3
	if euchred {
		// counted exactly once per stuck hand that ends in euchre
		if result.StuckDealer {
			s.agg.stuckEuchre++
		}

		for seat := 0; seat < euchre.NumSeats; seat++ {
			if euchre.Partnership(seat) == makerTeam {
				s.agg.seats[seat].euchresAgainst++
			} else {
				s.agg.seats[seat].euchresFor++
			}
		}
	}

	for _, trick := range result.Tricks {
		for _, play := range trick.Plays {
			counters := s.agg.cards[deck.CardToString(play.Card)]
			counters.timesPlayed++
			if play.Seat == trick.Winner {
				counters.trickWins++
			}
		}
	}
}
