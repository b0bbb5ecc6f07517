package euchre

import (
	"euchre-engine/pkg/deck"
)

// LegalMoves returns the cards the seat may play. A seat holding the lead suit
// (by effective suit) must follow it; otherwise the whole hand is legal. The
// result is never empty for a non-empty hand.
func LegalMoves(hand deck.Hand, trump, leadSuit deck.Suit) deck.Hand {
	if leadSuit == "" {
		return hand.Clone()
	}

	var follow deck.Hand
	for _, card := range hand {
		if EffectiveSuit(card, trump) == leadSuit {
			follow.AddCard(card)
		}
	}

	if len(follow) > 0 {
		return follow
	}

	return hand.Clone()
}

// trickWinner returns the seat whose card has the highest value. Values are
// unique for a given trump and lead suit, so ties cannot occur.
func trickWinner(plays []SeatCard, trump, leadSuit deck.Suit) int {
	return currentWinner(plays, trump, leadSuit).Seat
}

// currentWinner returns the play winning the trick so far
func currentWinner(plays []SeatCard, trump, leadSuit deck.Suit) SeatCard {
	best := plays[0]
	bestValue := CardValue(best.Card, trump, leadSuit)

	for _, play := range plays[1:] {
		if value := CardValue(play.Card, trump, leadSuit); value > bestValue {
			best = play
			bestValue = value
		}
	}

	return best
}
