package euchre

import (
	"euchre-engine/pkg/deck"
)

// dealerDiscard removes one card from the dealer's six-card hand after a
// round-1 pickup and returns it. lowest_non_trump prefers the lowest non-trump
// card and falls back to the lowest trump when the whole hand is trump.
func dealerDiscard(state *GameState, policy DiscardPolicy) *deck.Card {
	hand := state.Hands[state.Dealer]

	candidates := hand
	if policy == DiscardLowestNonTrump {
		var nonTrump deck.Hand
		for _, card := range hand {
			if EffectiveSuit(card, state.Trump) != state.Trump {
				nonTrump.AddCard(card)
			}
		}

		if len(nonTrump) > 0 {
			candidates = nonTrump
		}
	}

	lowest := candidates[0]
	for _, card := range candidates[1:] {
		if CardValue(card, state.Trump, "") < CardValue(lowest, state.Trump, "") {
			lowest = card
		}
	}

	state.Hands[state.Dealer].Discard(lowest)
	state.discarded = lowest

	return lowest
}
