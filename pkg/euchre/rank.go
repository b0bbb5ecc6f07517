package euchre

import (
	"euchre-engine/pkg/deck"
)

// card value offsets. Trump cards always outrank lead-suit cards, which always
// outrank off-suit cards; the bowers sit on top of the trump band.
const (
	trumpBase    = 100
	leadSuitBase = 50

	rightBowerValue = trumpBase + 20
	leftBowerValue  = trumpBase + 15
)

// IsRightBower returns true if the card is the jack of the trump suit
func IsRightBower(card *deck.Card, trump deck.Suit) bool {
	return card.Rank == deck.Jack && card.Suit == trump
}

// IsLeftBower returns true if the card is the jack of the same-color suit as trump
func IsLeftBower(card *deck.Card, trump deck.Suit) bool {
	return card.Rank == deck.Jack && card.Suit == deck.SameColorSuit(trump)
}

// EffectiveSuit returns the suit a card counts as for following and ranking.
// The left bower counts as a trump-suit card; every other card keeps its own suit.
func EffectiveSuit(card *deck.Card, trump deck.Suit) deck.Suit {
	if IsLeftBower(card, trump) {
		return trump
	}

	return card.Suit
}

// CardValue assigns a strict total order over the deck for the given trump and
// lead suit: right bower > left bower > trump by rank > lead suit by rank >
// off-suit by rank. Pass an empty lead suit when no card has been led.
func CardValue(card *deck.Card, trump, leadSuit deck.Suit) int {
	if IsRightBower(card, trump) {
		return rightBowerValue
	}

	if IsLeftBower(card, trump) {
		return leftBowerValue
	}

	// ranks 9..14 map to 1..6
	rank := card.Rank - deck.Nine + 1

	if card.Suit == trump {
		return trumpBase + rank
	}

	if card.Suit == leadSuit {
		return leadSuitBase + rank
	}

	return rank
}
