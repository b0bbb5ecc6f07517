package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"euchre-engine/internal/config"
	"euchre-engine/pkg/deck"
	"euchre-engine/pkg/euchre"
)

var (
	trials = flag.Int("trials", euchre.DefaultTrials, "rollouts per candidate card")
	seed   = flag.Int64("seed", 0, "seed for a deterministic deal (0 = random)")
)

// insight is the host-facing report for one decision point
type insight struct {
	Seat        int                     `json:"seat"`
	Hand        deck.Hand               `json:"hand"`
	Trump       deck.Suit               `json:"trump"`
	Maker       int                     `json:"makerSeat"`
	UpCard      *deck.Card              `json:"upCard"`
	Evaluations []euchre.PlayEvaluation `json:"evaluations"`
}

func main() {
	flag.Parse()

	cfg := config.Instance()
	strategies := cfg.Strategies()

	game, err := euchre.NewGame(nil, strategies, euchre.Options{
		StickTheDealer: cfg.Simulation.StickTheDealer,
		Seed:           *seed,
	})
	if err != nil {
		logrus.WithError(err).Fatal("could not create game")
	}

	// redeal through any misdeals until a hand reaches trick play
	var state *euchre.GameState
	for {
		s, ok := game.DealHand()
		if ok {
			state = s
			break
		}
	}

	evaluator := euchre.NewEvaluator(strategies, *trials, *seed)
	seat := state.Leader

	report := insight{
		Seat:        seat,
		Hand:        state.Hands[seat],
		Trump:       state.Trump,
		Maker:       state.Maker,
		UpCard:      state.UpCard,
		Evaluations: evaluator.EvaluatePlays(state, seat),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		logrus.WithError(err).Fatal("could not encode report")
	}
}
