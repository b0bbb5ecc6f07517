package euchre

import (
	"errors"
	"fmt"

	"euchre-engine/pkg/deck"
)

// ErrGameOver is an error when a hand is dealt after a partnership reached the winning score
var ErrGameOver = errors.New("the game is over")

// ErrHandComplete is an error when a card is played after the fifth trick
var ErrHandComplete = errors.New("the hand is complete")

// ErrNoTrump is an error when trick play is attempted before trump is named
var ErrNoTrump = errors.New("no trump has been named")

// ErrNotSeatsTurn is returned when a seat plays out of turn
var ErrNotSeatsTurn = errors.New("not seat's turn")

// ErrCardNotInHand happens when a seat tries to play a card they don't hold
var ErrCardNotInHand = errors.New("card is not in seat's hand")

// ErrMustFollowSuit happens when a seat holds the lead suit and plays off-suit
var ErrMustFollowSuit = errors.New("seat must follow the lead suit")

// IllegalMoveError identifies the seat and card of a rejected play.
// The game state is left unchanged when one is returned.
type IllegalMoveError struct {
	Seat int
	Card *deck.Card
	Err  error
}

func (e IllegalMoveError) Error() string {
	return fmt.Sprintf("seat %d cannot play %s: %v", e.Seat, e.Card, e.Err)
}

// Unwrap returns the underlying reason
func (e IllegalMoveError) Unwrap() error {
	return e.Err
}
