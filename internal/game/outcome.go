package game

import "fmt"

// MatchOutcome classifies how an episode ended.
type MatchOutcome int

const (
	OutcomeInconclusive MatchOutcome = iota
	OutcomeAlphaVictory
	OutcomeBetaVictory
	OutcomeDraw
)

func (o MatchOutcome) String() string {
	switch o {
	case OutcomeAlphaVictory:
		return "alpha_victory"
	case OutcomeBetaVictory:
		return "beta_victory"
	case OutcomeDraw:
		return "draw"
	case OutcomeInconclusive:
		return "inconclusive"
	default:
		return "unknown"
	}
}

// OutcomeReason pairs the classification with the numbers behind it.
type OutcomeReason struct {
	Outcome      MatchOutcome
	AlphaShips   int
	BetaShips    int
	AlphaPlanets int
	BetaPlanets  int
	Description  string
}

// DetermineOutcome classifies the current world state. Annihilation is
// decisive; otherwise planets held break the tie, then fleet size, then a
// draw. Call it mid-episode and anything non-decisive is inconclusive.
func (w *World) DetermineOutcome(final bool) OutcomeReason {
	r := OutcomeReason{
		AlphaShips:   len(w.ShipsOf(0)),
		BetaShips:    len(w.ShipsOf(1)),
		AlphaPlanets: w.ownedPlanets(0),
		BetaPlanets:  w.ownedPlanets(1),
	}

	switch {
	case r.AlphaShips == 0 && r.BetaShips == 0:
		r.Outcome = OutcomeDraw
		r.Description = "mutual annihilation"
	case r.BetaShips == 0:
		r.Outcome = OutcomeAlphaVictory
		r.Description = "beta fleet destroyed"
	case r.AlphaShips == 0:
		r.Outcome = OutcomeBetaVictory
		r.Description = "alpha fleet destroyed"
	case !final:
		r.Outcome = OutcomeInconclusive
		r.Description = "both fleets alive"
	case r.AlphaPlanets != r.BetaPlanets:
		if r.AlphaPlanets > r.BetaPlanets {
			r.Outcome = OutcomeAlphaVictory
		} else {
			r.Outcome = OutcomeBetaVictory
		}
		r.Description = fmt.Sprintf("planets held %d-%d", r.AlphaPlanets, r.BetaPlanets)
	case r.AlphaShips != r.BetaShips:
		if r.AlphaShips > r.BetaShips {
			r.Outcome = OutcomeAlphaVictory
		} else {
			r.Outcome = OutcomeBetaVictory
		}
		r.Description = fmt.Sprintf("fleet size %d-%d", r.AlphaShips, r.BetaShips)
	default:
		r.Outcome = OutcomeDraw
		r.Description = "even on planets and ships"
	}
	return r
}
