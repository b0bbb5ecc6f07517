package euchre

import (
	"time"

	"github.com/google/uuid"

	"euchre-engine/pkg/deck"
)

// EventType distinguishes the decision and result events a hand emits
type EventType string

// event type constants
const (
	EventDeal    EventType = "deal"
	EventPass    EventType = "pass"
	EventBid     EventType = "bid"
	EventPickUp  EventType = "pickUp"
	EventDiscard EventType = "discard"
	EventPlay    EventType = "play"
	EventTrick   EventType = "trick"
	EventMisdeal EventType = "misdeal"
	EventScore   EventType = "score"
)

// Event is a single decision or result in a hand, emitted as plain data.
// Seat is -1 for events that don't belong to a seat.
type Event struct {
	UUID  string       `json:"uuid"`
	Time  time.Time    `json:"time"`
	Type  EventType    `json:"type"`
	Seat  int          `json:"seat"`
	Suit  deck.Suit    `json:"suit,omitempty"`
	Cards []*deck.Card `json:"cards,omitempty"`
	Alone bool         `json:"alone,omitempty"`
}

func newEvent(eventType EventType, seat int, cards ...*deck.Card) *Event {
	return &Event{
		UUID:  uuid.New().String(),
		Time:  time.Now(),
		Type:  eventType,
		Seat:  seat,
		Cards: cards,
	}
}

func newSuitEvent(eventType EventType, seat int, suit deck.Suit, alone bool) *Event {
	event := newEvent(eventType, seat)
	event.Suit = suit
	event.Alone = alone
	return event
}
