package euchre

import (
	"fmt"
)

// LeadStyle selects which card a seat prefers to lead with
type LeadStyle string

// lead style constants
const (
	LeadBestTrump   LeadStyle = "best_trump"
	LeadBestOffsuit LeadStyle = "best_offsuit"
	LeadDefault     LeadStyle = "default"
)

// DiscardPolicy selects how the dealer discards after picking up the up-card
type DiscardPolicy string

// discard policy constants
const (
	DiscardLowestCard     DiscardPolicy = "lowest_card"
	DiscardLowestNonTrump DiscardPolicy = "lowest_non_trump"
)

// thresholds are hand scores, which top out well below this
const maxThreshold = 100

// Strategy configures the bidding and play heuristics for a single seat.
// The engine reads it but never mutates it.
type Strategy struct {
	R1Threshold    float64 `json:"r1Threshold" yaml:"r1Threshold"`
	R2Threshold    float64 `json:"r2Threshold" yaml:"r2Threshold"`
	LonerThreshold float64 `json:"lonerThreshold" yaml:"lonerThreshold"`

	LeadWhenMaker        LeadStyle `json:"leadWhenMaker" yaml:"leadWhenMaker"`
	LeadWhenPartnerMaker LeadStyle `json:"leadWhenPartnerMaker" yaml:"leadWhenPartnerMaker"`
	LeadOnDefense        LeadStyle `json:"leadOnDefense" yaml:"leadOnDefense"`

	TrumpWhenPartnerWinning bool `json:"trumpWhenPartnerWinning" yaml:"trumpWhenPartnerWinning"`
	OvertrumpOpponent       bool `json:"overtrumpOpponent" yaml:"overtrumpOpponent"`
	TrumpPartnersAce        bool `json:"trumpPartnersAce" yaml:"trumpPartnersAce"`

	DealerDiscard DiscardPolicy `json:"dealerDiscardStrategy" yaml:"dealerDiscardStrategy"`
}

// DefaultStrategy returns a sensible middle-of-the-road strategy.
// The thresholds clear round 1 on a three-trump hand holding the right bower.
func DefaultStrategy() Strategy {
	return Strategy{
		R1Threshold:          20,
		R2Threshold:          18,
		LonerThreshold:       32,
		LeadWhenMaker:        LeadBestTrump,
		LeadWhenPartnerMaker: LeadBestOffsuit,
		LeadOnDefense:        LeadDefault,
		OvertrumpOpponent:    true,
		DealerDiscard:        DiscardLowestNonTrump,
	}
}

// Validate returns an error if any threshold or enum is out of range.
// The engine refuses to start a hand with an invalid strategy.
func (s Strategy) Validate() error {
	for name, val := range map[string]float64{
		"r1Threshold":    s.R1Threshold,
		"r2Threshold":    s.R2Threshold,
		"lonerThreshold": s.LonerThreshold,
	} {
		if val < 0 || val > maxThreshold {
			return fmt.Errorf("%s must be between 0 and %d, got %v", name, maxThreshold, val)
		}
	}

	for name, style := range map[string]LeadStyle{
		"leadWhenMaker":        s.LeadWhenMaker,
		"leadWhenPartnerMaker": s.LeadWhenPartnerMaker,
		"leadOnDefense":        s.LeadOnDefense,
	} {
		switch style {
		case LeadBestTrump, LeadBestOffsuit, LeadDefault:
		default:
			return fmt.Errorf("unknown lead style for %s: %q", name, style)
		}
	}

	switch s.DealerDiscard {
	case DiscardLowestCard, DiscardLowestNonTrump:
	default:
		return fmt.Errorf("unknown dealer discard strategy: %q", s.DealerDiscard)
	}

	return nil
}
