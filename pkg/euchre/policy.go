package euchre

import (
	"euchre-engine/pkg/deck"
)

// playView is the read-only context the heuristic policy needs for one
// decision. It never references shared mutable state, which is what lets the
// Monte Carlo evaluator call the policy inside rollouts.
type playView struct {
	hand     deck.Hand
	plays    []SeatCard
	trump    deck.Suit
	leadSuit deck.Suit
	seat     int
	maker    int
	strategy Strategy
}

func (g *Game) viewFor(state *GameState, seat int) playView {
	return playView{
		hand:     state.Hands[seat],
		plays:    state.plays,
		trump:    state.Trump,
		leadSuit: state.leadSuit,
		seat:     seat,
		maker:    state.Maker,
		strategy: g.strategies[seat],
	}
}

// choosePlay picks a legal card for the seat under its configured strategy
func choosePlay(v playView) *deck.Card {
	legal := LegalMoves(v.hand, v.trump, v.leadSuit)

	if len(v.plays) == 0 {
		return chooseLead(v, legal)
	}

	return chooseFollow(v, legal)
}

func (v playView) leadStyle() LeadStyle {
	switch v.seat {
	case v.maker:
		return v.strategy.LeadWhenMaker
	case PartnerOf(v.maker):
		return v.strategy.LeadWhenPartnerMaker
	}

	return v.strategy.LeadOnDefense
}

func chooseLead(v playView, legal deck.Hand) *deck.Card {
	switch v.leadStyle() {
	case LeadBestTrump:
		if card := highestOfEffectiveSuit(legal, v.trump, v.trump); card != nil {
			return card
		}
	case LeadBestOffsuit:
		if card := highestOffSuit(legal, v.trump); card != nil {
			return card
		}
	}

	return highestCard(legal, v.trump, "")
}

func chooseFollow(v playView, legal deck.Hand) *deck.Card {
	winning := currentWinner(v.plays, v.trump, v.leadSuit)
	lowest := lowestCard(legal, v.trump, v.leadSuit)

	if winning.Seat == PartnerOf(v.seat) && !v.strategy.TrumpWhenPartnerWinning {
		// protect the partner's winner, unless they're winning with an
		// off-suit ace and the seat is configured to trump on top of it
		winningIsOffAce := winning.Card.Rank == deck.Ace &&
			EffectiveSuit(winning.Card, v.trump) != v.trump
		if !(v.strategy.TrumpPartnersAce && winningIsOffAce) {
			return lowest
		}
	}

	var winners deck.Hand
	winningValue := CardValue(winning.Card, v.trump, v.leadSuit)
	for _, card := range legal {
		if CardValue(card, v.trump, v.leadSuit) > winningValue {
			winners.AddCard(card)
		}
	}

	if len(winners) == 0 {
		return lowest
	}

	// don't waste a trump overtaking an opponent's trump if disabled
	opponentWinning := Partnership(winning.Seat) != Partnership(v.seat)
	if opponentWinning && !v.strategy.OvertrumpOpponent &&
		EffectiveSuit(winning.Card, v.trump) == v.trump {
		return lowest
	}

	// minimal sufficient win
	return lowestCard(winners, v.trump, v.leadSuit)
}

func highestCard(cards deck.Hand, trump, leadSuit deck.Suit) *deck.Card {
	var best *deck.Card
	bestValue := -1

	for _, card := range cards {
		if value := CardValue(card, trump, leadSuit); value > bestValue {
			best = card
			bestValue = value
		}
	}

	return best
}

func lowestCard(cards deck.Hand, trump, leadSuit deck.Suit) *deck.Card {
	var best *deck.Card
	bestValue := int(^uint(0) >> 1)

	for _, card := range cards {
		if value := CardValue(card, trump, leadSuit); value < bestValue {
			best = card
			bestValue = value
		}
	}

	return best
}

func highestOfEffectiveSuit(cards deck.Hand, trump, suit deck.Suit) *deck.Card {
	var matching deck.Hand
	for _, card := range cards {
		if EffectiveSuit(card, trump) == suit {
			matching.AddCard(card)
		}
	}

	if len(matching) == 0 {
		return nil
	}

	return highestCard(matching, trump, "")
}

func highestOffSuit(cards deck.Hand, trump deck.Suit) *deck.Card {
	var matching deck.Hand
	for _, card := range cards {
		if EffectiveSuit(card, trump) != trump {
			matching.AddCard(card)
		}
	}

	if len(matching) == 0 {
		return nil
	}

	return highestCard(matching, trump, "")
}
