package simulator

import (
	"sort"

	"euchre-engine/pkg/deck"
	"euchre-engine/pkg/euchre"
)

// SeatStats aggregates one seat's bidding record
type SeatStats struct {
	Seat           int     `json:"seat"`
	Calls          int     `json:"calls"`
	CallRate       float64 `json:"callRate"`
	Round1Calls    int     `json:"round1Calls"`
	Round2Calls    int     `json:"round2Calls"`
	LonerAttempts  int     `json:"lonerAttempts"`
	LonerSuccesses int     `json:"lonerSuccesses"`
	EuchresFor     int     `json:"euchresFor"`
	EuchresAgainst int     `json:"euchresAgainst"`
}

// CardStats aggregates one card's tendency and trick record. TendencyIndex
// compares the holder's call rate against the overall per-seat call rate:
// above 1.0 means holding the card makes a call more likely.
type CardStats struct {
	Card          string  `json:"card"`
	HandsHeld     int     `json:"handsHeld"`
	CallsWhenHeld int     `json:"callsWhenHeld"`
	TendencyIndex float64 `json:"tendencyIndex"`
	TimesPlayed   int     `json:"timesPlayed"`
	TrickWins     int     `json:"trickWins"`
	TrickWinRate  float64 `json:"trickWinRate"`
}

// Stats is a snapshot of the aggregate batch record, keyed for tabular or
// JSON presentation by the host
type Stats struct {
	TotalGames         int                        `json:"totalGames"`
	TotalHands         int                        `json:"totalHands"`
	Misdeals           int                        `json:"misdeals"`
	PartnershipWins    [2]int                     `json:"partnershipWins"`
	WinRate            [2]float64                 `json:"winRate"`
	AvgHandsPerGame    float64                    `json:"avgHandsPerGame"`
	StuckDealerHands   int                        `json:"stuckDealerHands"`
	StuckDealerEuchres int                        `json:"stuckDealerEuchres"`
	Seats              [euchre.NumSeats]SeatStats `json:"seats"`
	Cards              []CardStats                `json:"cards"`
}

// Stats returns a snapshot of everything recorded so far. It is safe to call
// between chunks while a batch is still running.
func (s *Simulator) Stats() Stats {
	stats := Stats{
		TotalGames:         s.gamesDone,
		TotalHands:         s.agg.totalHands,
		Misdeals:           s.agg.misdeals,
		PartnershipWins:    s.agg.wins,
		StuckDealerHands:   s.agg.stuckHands,
		StuckDealerEuchres: s.agg.stuckEuchre,
	}

	if s.gamesDone > 0 {
		stats.WinRate[0] = float64(s.agg.wins[0]) / float64(s.gamesDone) * 100
		stats.WinRate[1] = float64(s.agg.wins[1]) / float64(s.gamesDone) * 100
		stats.AvgHandsPerGame = float64(s.agg.totalHands) / float64(s.gamesDone)
	}

	totalCalls := 0
	for seat, counters := range s.agg.seats {
		totalCalls += counters.calls

		stats.Seats[seat] = SeatStats{
			Seat:           seat,
			Calls:          counters.calls,
			Round1Calls:    counters.round1Calls,
			Round2Calls:    counters.round2Calls,
			LonerAttempts:  counters.lonerAttempts,
			LonerSuccesses: counters.lonerSuccesses,
			EuchresFor:     counters.euchresFor,
			EuchresAgainst: counters.euchresAgainst,
		}

		if s.agg.totalHands > 0 {
			stats.Seats[seat].CallRate = float64(counters.calls) / float64(s.agg.totalHands) * 100
		}
	}

	// baseline: the chance that any given seat ends up calling in a hand
	baseCallRate := 0.0
	if s.agg.totalHands > 0 {
		baseCallRate = float64(totalCalls) / float64(s.agg.totalHands*euchre.NumSeats)
	}

	stats.Cards = make([]CardStats, 0, deck.Size)
	for key, counters := range s.agg.cards {
		card := CardStats{
			Card:          key,
			HandsHeld:     counters.handsHeld,
			CallsWhenHeld: counters.callsWhenHeld,
			TimesPlayed:   counters.timesPlayed,
			TrickWins:     counters.trickWins,
		}

		if counters.handsHeld > 0 && baseCallRate > 0 {
			heldCallRate := float64(counters.callsWhenHeld) / float64(counters.handsHeld)
			card.TendencyIndex = heldCallRate / baseCallRate
		}

		if counters.timesPlayed > 0 {
			card.TrickWinRate = float64(counters.trickWins) / float64(counters.timesPlayed) * 100
		}

		stats.Cards = append(stats.Cards, card)
	}

	sort.Slice(stats.Cards, func(i, j int) bool {
		return stats.Cards[i].Card < stats.Cards[j].Card
	})

	return stats
}
