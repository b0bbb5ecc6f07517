package simulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"euchre-engine/pkg/deck"
	"euchre-engine/pkg/euchre"
)

func defaultStrategies() [euchre.NumSeats]euchre.Strategy {
	var strategies [euchre.NumSeats]euchre.Strategy
	for seat := range strategies {
		strategies[seat] = euchre.DefaultStrategy()
	}

	return strategies
}

func TestNew_Validation(t *testing.T) {
	a := assert.New(t)

	_, err := New(nil, defaultStrategies(), Options{})
	a.Equal(ErrNoGames, err)

	bad := defaultStrategies()
	bad[1].R2Threshold = -4
	_, err = New(nil, bad, Options{Games: 1})
	a.Error(err)
	a.Contains(err.Error(), "seat 1")
}

func TestSimulator_ProcessChunk(t *testing.T) {
	a := assert.New(t)

	s, err := New(nil, defaultStrategies(), Options{
		Games:          3,
		ChunkSize:      2,
		StickTheDealer: true,
		Seed:           11,
	})
	require.NoError(t, err)
	a.Equal(0, s.GamesDone())

	done, err := s.ProcessChunk()
	require.NoError(t, err)
	a.False(done)
	a.Equal(2, s.GamesDone())

	done, err = s.ProcessChunk()
	require.NoError(t, err)
	a.True(done)
	a.Equal(3, s.GamesDone())

	// a finished batch stays finished
	done, err = s.ProcessChunk()
	require.NoError(t, err)
	a.True(done)
	a.Equal(3, s.GamesDone())
}

func TestSimulator_Stats(t *testing.T) {
	a := assert.New(t)

	s, err := New(nil, defaultStrategies(), Options{
		Games:          5,
		StickTheDealer: true,
		Seed:           21,
	})
	require.NoError(t, err)

	done, err := s.ProcessChunk()
	require.NoError(t, err)
	require.True(t, done)

	stats := s.Stats()

	a.Equal(5, stats.TotalGames)
	a.Equal(5, stats.PartnershipWins[0]+stats.PartnershipWins[1])
	a.InDelta(100, stats.WinRate[0]+stats.WinRate[1], 0.001)
	a.Equal(0, stats.Misdeals, "stick the dealer: no misdeals")

	// a game takes at least three hands to reach ten points
	a.GreaterOrEqual(stats.TotalHands, 3*stats.TotalGames)
	a.InDelta(float64(stats.TotalHands)/float64(stats.TotalGames), stats.AvgHandsPerGame, 0.001)

	// every played hand has exactly one maker
	totalCalls := 0
	for seat, seatStats := range stats.Seats {
		a.Equal(seat, seatStats.Seat)
		totalCalls += seatStats.Calls
		a.Equal(seatStats.Calls, seatStats.Round1Calls+seatStats.Round2Calls)
		a.LessOrEqual(seatStats.LonerSuccesses, seatStats.LonerAttempts)
	}
	a.Equal(stats.TotalHands-stats.Misdeals, totalCalls)

	// every dealt card is accounted for
	require.Len(t, stats.Cards, deck.Size)
	handsHeld := 0
	for _, cardStats := range stats.Cards {
		handsHeld += cardStats.HandsHeld
		a.LessOrEqual(cardStats.CallsWhenHeld, cardStats.HandsHeld)
		a.LessOrEqual(cardStats.TrickWins, cardStats.TimesPlayed)
	}
	a.Equal(stats.TotalHands*euchre.NumSeats*euchre.HandSize, handsHeld)
}

func TestSimulator_Deterministic(t *testing.T) {
	a := assert.New(t)

	run := func() Stats {
		s, err := New(nil, defaultStrategies(), Options{
			Games:          4,
			StickTheDealer: true,
			Seed:           33,
		})
		require.NoError(t, err)

		for {
			done, err := s.ProcessChunk()
			require.NoError(t, err)
			if done {
				break
			}
		}

		return s.Stats()
	}

	a.Equal(run(), run())
}
