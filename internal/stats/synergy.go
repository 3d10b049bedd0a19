package stats

import "math"

// Synergy is the observed pair win rate minus the geometric mean of the two
// solo win rates. All rates are percentages. Nil when either solo rate is
// missing or not strictly positive; nil means "undefined", not zero.
func Synergy(winOne, winTwo *float64, pairWinrate float64) *float64 {
	if winOne == nil || winTwo == nil {
		return nil
	}
	if *winOne <= 0 || *winTwo <= 0 {
		return nil
	}
	s := pairWinrate - math.Sqrt(*winOne**winTwo)
	return &s
}
