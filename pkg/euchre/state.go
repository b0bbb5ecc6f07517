package euchre

import (
	"fmt"

	"euchre-engine/pkg/deck"
)

// seat and hand arithmetic
const (
	// NumSeats is the number of seats at the table. Seats 0&2 are one
	// partnership, seats 1&3 the other.
	NumSeats = 4

	// HandSize is the number of cards dealt to each seat
	HandSize = 5

	// TricksPerHand is the number of tricks in a hand
	TricksPerHand = 5

	// WinningScore ends the game when a partnership reaches it
	WinningScore = 10
)

// Partnership returns the partnership index (0 or 1) for a seat
func Partnership(seat int) int {
	return seat % 2
}

// PartnerOf returns the seat index of a seat's partner
func PartnerOf(seat int) int {
	return (seat + 2) % NumSeats
}

// SeatCard is a single play within a trick
type SeatCard struct {
	Seat int        `json:"seat"`
	Card *deck.Card `json:"card"`
}

// TrickResult reports a resolved trick
type TrickResult struct {
	Winner int        `json:"winnerSeat"`
	Plays  []SeatCard `json:"cards"`
}

// GameState is the full state of a single hand. It is created by Deal, mutated
// in place through bidding and trick play, and discarded after scoring.
type GameState struct {
	Dealer           int
	UpCard           *deck.Card
	UpCardTurnedDown bool
	Trump            deck.Suit // empty until a maker names it
	Maker            int       // -1 until trump is named
	MakerRound       int       // bidding round the call came in (0 = none)
	Alone            bool
	StuckDealer      bool
	Leader           int
	TrickNo          int
	TricksWon        [2]int
	Hands            [NumSeats]deck.Hand

	// discarded is the dealer's face-down discard after a round-1 pickup
	discarded *deck.Card

	// played accumulates every card played this hand, in play order
	played deck.Hand

	// in-flight trick
	plays    []SeatCard
	leadSuit deck.Suit
}

// Deal deals five cards to each of the four seats plus the up-card and returns
// a fresh GameState. A short deck is a deck-construction bug, so it panics.
func Deal(d *deck.Deck, dealer int) *GameState {
	state := &GameState{
		Dealer: dealer,
		Maker:  -1,
	}

	for i := 0; i < HandSize; i++ {
		for seat := 0; seat < NumSeats; seat++ {
			card, err := d.Draw()
			if err != nil {
				panic(fmt.Sprintf("deck exhausted during deal: %v", err))
			}

			state.Hands[seat].AddCard(card)
		}
	}

	upCard, err := d.Draw()
	if err != nil {
		panic(fmt.Sprintf("deck exhausted drawing the up-card: %v", err))
	}

	state.UpCard = upCard
	return state
}

// Clone returns a deep copy of the state. Cards are immutable and shared.
func (s *GameState) Clone() *GameState {
	clone := *s
	for i := range s.Hands {
		clone.Hands[i] = s.Hands[i].Clone()
	}

	clone.played = s.played.Clone()
	clone.plays = append([]SeatCard(nil), s.plays...)

	return &clone
}

// IsActive returns false for the maker's partner when the maker went alone
func (s *GameState) IsActive(seat int) bool {
	return !(s.Alone && seat == PartnerOf(s.Maker))
}

// ActiveSeats returns the number of seats playing the hand
func (s *GameState) ActiveSeats() int {
	if s.Alone {
		return NumSeats - 1
	}

	return NumSeats
}

func (s *GameState) nextActiveSeat(seat int) int {
	next := (seat + 1) % NumSeats
	if !s.IsActive(next) {
		next = (next + 1) % NumSeats
	}

	return next
}

// NextToPlay returns the seat due to play the next card of the current trick
func (s *GameState) NextToPlay() int {
	seat := s.Leader
	for range s.plays {
		seat = s.nextActiveSeat(seat)
	}

	return seat
}

// LeadSuit returns the effective suit of the first card of the current trick,
// or an empty suit if no card has been led
func (s *GameState) LeadSuit() deck.Suit {
	return s.leadSuit
}

// CurrentTrick returns the plays made so far in the current trick
func (s *GameState) CurrentTrick() []SeatCard {
	return append([]SeatCard(nil), s.plays...)
}

// PlayCard plays a card for the seat. Illegal plays are rejected with an
// IllegalMoveError and leave the state unchanged.
func (s *GameState) PlayCard(seat int, card *deck.Card) error {
	if s.Trump == "" {
		return ErrNoTrump
	}

	if s.TrickNo >= TricksPerHand {
		return ErrHandComplete
	}

	if seat != s.NextToPlay() {
		return IllegalMoveError{Seat: seat, Card: card, Err: ErrNotSeatsTurn}
	}

	if !s.Hands[seat].HasCard(card) {
		return IllegalMoveError{Seat: seat, Card: card, Err: ErrCardNotInHand}
	}

	if !LegalMoves(s.Hands[seat], s.Trump, s.leadSuit).HasCard(card) {
		return IllegalMoveError{Seat: seat, Card: card, Err: ErrMustFollowSuit}
	}

	if len(s.plays) == 0 {
		s.leadSuit = EffectiveSuit(card, s.Trump)
	}

	s.Hands[seat].Discard(card)
	s.played.AddCard(card)
	s.plays = append(s.plays, SeatCard{Seat: seat, Card: card})

	return nil
}

// TrickComplete returns true once every active seat has played to the trick
func (s *GameState) TrickComplete() bool {
	return len(s.plays) == s.ActiveSeats()
}

// ResolveTrick determines the trick winner, credits their partnership, and
// sets them up to lead the next trick
func (s *GameState) ResolveTrick() TrickResult {
	if !s.TrickComplete() {
		panic("ResolveTrick() called mid-trick")
	}

	winner := trickWinner(s.plays, s.Trump, s.leadSuit)
	result := TrickResult{
		Winner: winner,
		Plays:  s.plays,
	}

	s.TricksWon[Partnership(winner)]++
	s.Leader = winner
	s.TrickNo++
	s.plays = nil
	s.leadSuit = ""

	return result
}
