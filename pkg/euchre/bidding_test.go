package euchre

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"euchre-engine/pkg/deck"
)

func defaultStrategies() [NumSeats]Strategy {
	var strategies [NumSeats]Strategy
	for seat := range strategies {
		strategies[seat] = DefaultStrategy()
	}

	return strategies
}

func TestHandScore(t *testing.T) {
	a := assert.New(t)

	// all five trump plus both bowers
	a.InDelta(67.902, HandScore(deck.HandFromString("11s,11c,14s,13s,12s"), deck.Spades), 0.001)

	// three trump with both bowers, no off-suit aces
	a.InDelta(27.588, HandScore(deck.HandFromString("11s,11c,14s,9d,9h"), deck.Spades), 0.001)

	// one plain trump plus two off-suit aces
	a.InDelta(5, HandScore(deck.HandFromString("12s,14d,14h,9c,10c"), deck.Spades), 0.001)

	// no trump at all: only the off-suit aces count
	a.InDelta(4, HandScore(deck.HandFromString("9h,10h,12h,14d,14c"), deck.Spades), 0.001)

	// the left bower counts toward the trump count
	a.InDelta(10.657, HandScore(deck.HandFromString("11c,9s,9d,10d,12d"), deck.Spades), 0.001)
}

func TestHandScore_LonerHand(t *testing.T) {
	a := assert.New(t)

	score := HandScore(deck.HandFromString("11s,11c,14s,13s,12s"), deck.Spades)
	a.GreaterOrEqual(score, DefaultStrategy().LonerThreshold)
}

func TestBestCallableSuit(t *testing.T) {
	a := assert.New(t)

	hand := deck.HandFromString("14h,13h,12h,9c,10c")

	suit, score := bestCallableSuit(hand, deck.Hearts)
	a.Equal(deck.Clubs, suit)
	a.InDelta(7.657, score, 0.001)

	suit, score = bestCallableSuit(hand, deck.Clubs)
	a.Equal(deck.Hearts, suit)
	a.InDelta(15.588, score, 0.001)
}

func TestGame_RunBidding_Round1(t *testing.T) {
	a := assert.New(t)

	g, err := NewGame(nil, defaultStrategies(), Options{Seed: 1})
	require.NoError(t, err)

	state := &GameState{Dealer: 0, Maker: -1, UpCard: deck.CardFromString("9s")}
	state.Hands[1] = deck.HandFromString("11s,11c,14s,13s,10h")

	var events []*Event
	call := g.runBidding(state, &events)
	require.NotNil(t, call)

	a.Equal(1, call.seat)
	a.Equal(deck.Spades, call.suit)
	a.Equal(1, call.round)
	a.True(call.alone)
	a.False(call.stuck)
	a.Empty(events, "the first bidder called; nobody passed")
	a.False(state.UpCardTurnedDown)
}

func TestGame_RunBidding_Round2(t *testing.T) {
	a := assert.New(t)

	g, err := NewGame(nil, defaultStrategies(), Options{Seed: 1})
	require.NoError(t, err)

	// nobody orders up spades, but seat 1 holds every heart that matters
	state := &GameState{Dealer: 0, Maker: -1, UpCard: deck.CardFromString("9s")}
	state.Hands[0] = deck.HandFromString("11s,12d,14d,10h,13d")
	state.Hands[1] = deck.HandFromString("14h,13h,12h,11h,11d")
	state.Hands[2] = deck.HandFromString("9c,10c,12c,10s,12s")
	state.Hands[3] = deck.HandFromString("13c,14c,9h,13s,14s")

	var events []*Event
	call := g.runBidding(state, &events)
	require.NotNil(t, call)

	a.Equal(1, call.seat)
	a.Equal(deck.Hearts, call.suit)
	a.Equal(2, call.round)
	a.True(call.alone)
	a.Len(events, NumSeats, "one pass per seat in round 1")
	a.True(state.UpCardTurnedDown)
}

func weakBiddingState() *GameState {
	state := &GameState{Dealer: 0, Maker: -1, UpCard: deck.CardFromString("9s")}
	state.Hands[0] = deck.HandFromString("9c,10c,9d,10d,9h")
	state.Hands[1] = deck.HandFromString("10h,11h,11d,12c,12d")
	state.Hands[2] = deck.HandFromString("12h,13h,13d,13c,10s")
	state.Hands[3] = deck.HandFromString("14h,14d,14c,11s,11c")
	return state
}

func TestGame_RunBidding_Misdeal(t *testing.T) {
	a := assert.New(t)

	strategies := defaultStrategies()
	for seat := range strategies {
		strategies[seat].R1Threshold = maxThreshold
		strategies[seat].R2Threshold = maxThreshold
		strategies[seat].LonerThreshold = maxThreshold
	}

	g, err := NewGame(nil, strategies, Options{Seed: 1})
	require.NoError(t, err)

	state := weakBiddingState()

	var events []*Event
	call := g.runBidding(state, &events)

	a.Nil(call)
	a.Len(events, 2*NumSeats, "every seat passed twice")
	for _, event := range events {
		a.Equal(EventPass, event.Type)
	}
	a.True(state.UpCardTurnedDown)
}

func TestGame_RunBidding_StickTheDealer(t *testing.T) {
	a := assert.New(t)

	strategies := defaultStrategies()
	for seat := range strategies {
		strategies[seat].R1Threshold = maxThreshold
		strategies[seat].R2Threshold = maxThreshold
		strategies[seat].LonerThreshold = maxThreshold
	}

	g, err := NewGame(nil, strategies, Options{StickTheDealer: true, Seed: 1})
	require.NoError(t, err)

	state := weakBiddingState()

	var events []*Event
	call := g.runBidding(state, &events)
	require.NotNil(t, call)

	a.Equal(state.Dealer, call.seat)
	a.Equal(2, call.round)
	a.True(call.stuck)
	a.False(call.alone)
	a.NotEqual(deck.Spades, call.suit, "the turned-down suit cannot be named")
	a.Equal(deck.Clubs, call.suit)
}
