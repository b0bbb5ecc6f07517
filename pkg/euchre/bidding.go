package euchre

import (
	"math"

	"euchre-engine/pkg/deck"
)

// hand score weights. The trump count bonus is super-linear so each additional
// trump is worth disproportionately more.
const (
	rightBowerBonus    = 7.0
	leftBowerBonus     = 5.0
	offSuitAceBonus    = 2.0
	trumpCountExponent = 2.5
)

// HandScore rates a hand for a candidate trump suit. The left bower counts as
// trump, the bowers earn flat bonuses (additive when both are held), the trump
// count contributes count^2.5, and each off-suit ace adds a small bonus.
func HandScore(hand deck.Hand, trump deck.Suit) float64 {
	score := 0.0
	trumpCount := 0

	for _, card := range hand {
		if EffectiveSuit(card, trump) == trump {
			trumpCount++

			if IsRightBower(card, trump) {
				score += rightBowerBonus
			} else if IsLeftBower(card, trump) {
				score += leftBowerBonus
			}
		} else if card.Rank == deck.Ace {
			score += offSuitAceBonus
		}
	}

	return score + math.Pow(float64(trumpCount), trumpCountExponent)
}

// bestCallableSuit returns the highest-scoring suit for the hand, excluding
// the turned-down up-card's suit
func bestCallableSuit(hand deck.Hand, excluded deck.Suit) (deck.Suit, float64) {
	var bestSuit deck.Suit
	bestScore := math.Inf(-1)

	for _, suit := range deck.Suits {
		if suit == excluded {
			continue
		}

		if score := HandScore(hand, suit); score > bestScore {
			bestSuit = suit
			bestScore = score
		}
	}

	return bestSuit, bestScore
}

// bidCall is a successful trump call
type bidCall struct {
	seat  int
	suit  deck.Suit
	alone bool
	round int
	stuck bool
}

// runBidding plays out the two-round call protocol, appending pass events as
// seats decline. It returns nil on a misdeal (all seats pass twice with stick
// the dealer disabled).
func (g *Game) runBidding(state *GameState, events *[]*Event) *bidCall {
	// round 1: seats may only order up the up-card's suit, evaluating their
	// hand as if they already held the up-card
	for i := 1; i <= NumSeats; i++ {
		seat := (state.Dealer + i) % NumSeats
		strategy := g.strategies[seat]

		trial := state.Hands[seat].Clone()
		trial.AddCard(state.UpCard)

		if score := HandScore(trial, state.UpCard.Suit); score >= strategy.R1Threshold {
			return &bidCall{
				seat:  seat,
				suit:  state.UpCard.Suit,
				alone: score >= strategy.LonerThreshold,
				round: 1,
			}
		}

		*events = append(*events, newEvent(EventPass, seat))
	}

	state.UpCardTurnedDown = true

	// round 2: any suit except the up-card's, hand evaluated as dealt
	for i := 1; i <= NumSeats; i++ {
		seat := (state.Dealer + i) % NumSeats
		strategy := g.strategies[seat]

		suit, score := bestCallableSuit(state.Hands[seat], state.UpCard.Suit)
		if score >= strategy.R2Threshold {
			return &bidCall{
				seat:  seat,
				suit:  suit,
				alone: score >= strategy.LonerThreshold,
				round: 2,
			}
		}

		*events = append(*events, newEvent(EventPass, seat))
	}

	if !g.stickTheDealer {
		return nil
	}

	// the dealer is stuck: they must name their best non-up-card suit even if
	// it doesn't qualify
	strategy := g.strategies[state.Dealer]
	suit, score := bestCallableSuit(state.Hands[state.Dealer], state.UpCard.Suit)

	return &bidCall{
		seat:  state.Dealer,
		suit:  suit,
		alone: score >= strategy.LonerThreshold,
		round: 2,
		stuck: true,
	}
}
