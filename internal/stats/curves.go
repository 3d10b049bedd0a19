package stats

import (
	"abilitydraft-stats/internal/domain"
)

// CurveLength is the number of draft pick slots.
const CurveLength = 40

// Missing slots get neutral priors rather than zeros: a 50% win rate so an
// empty slot doesn't read as "loses every time", and a [0,100] Wilson band
// for maximal uncertainty. Pick rates genuinely are 0 when nothing was
// observed.
const (
	neutralWinrate    = 50.0
	wilsonFloorAbsent = 0.0
	wilsonCeilAbsent  = 100.0
)

// CurvePoint is one dense slot of the pick/win-rate curve. All rates are
// percentages.
type CurvePoint struct {
	Pick               int     `json:"pick"`
	PickRate           float64 `json:"pickRate"`
	CumulativePickRate float64 `json:"cumulativePickRate"`
	Winrate            float64 `json:"winrate"`
	CumulativeWinrate  float64 `json:"cumulativeWinrate"`
	WilsonLower        float64 `json:"wilsonLower"`
	WilsonUpper        float64 `json:"wilsonUpper"`
}

// BuildCurve converts the sparse per-pick-slot rows into a dense
// CurveLength-point series carrying both per-slot and cumulative rates, in
// one pass, so consumers can switch display modes without recomputing.
// Upstream rates are fractions; output is percentages.
func BuildCurve(rows []domain.PickPositionStat) []CurvePoint {
	byPick := make(map[int]domain.PickPositionStat, len(rows))
	grandTotal := 0
	for _, row := range rows {
		byPick[row.Pick] = row
		grandTotal += row.Total
	}

	points := make([]CurvePoint, CurveLength)
	cumTotal := 0
	cumWins := 0

	for i := range points {
		pick := i + 1
		point := CurvePoint{
			Pick:              pick,
			Winrate:           neutralWinrate,
			CumulativeWinrate: neutralWinrate,
			WilsonLower:       wilsonFloorAbsent,
			WilsonUpper:       wilsonCeilAbsent,
		}

		if row, ok := byPick[pick]; ok {
			cumTotal += row.Total
			cumWins += row.Wins
			if grandTotal > 0 {
				point.PickRate = 100 * float64(row.Total) / float64(grandTotal)
			}
			point.Winrate = 100 * row.Winrate
			point.WilsonLower = 100 * row.WilsonLower
			point.WilsonUpper = 100 * row.WilsonUpper
		}

		if grandTotal > 0 {
			point.CumulativePickRate = 100 * float64(cumTotal) / float64(grandTotal)
		}
		if cumTotal > 0 {
			point.CumulativeWinrate = 100 * float64(cumWins) / float64(cumTotal)
		}

		points[i] = point
	}

	return points
}
