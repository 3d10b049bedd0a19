package stats

import (
	"abilitydraft-stats/internal/domain"
)

// RatingBucketWidth is the fixed width of the upstream rating histogram
// buckets, in rating points. Policy constant; the interpolation below
// assumes it.
const RatingBucketWidth = 25.0

type DistributionPoint struct {
	Rating     float64 `json:"rating"`
	Count      int     `json:"count"`
	Cumulative int     `json:"cumulative"`
	Percentile float64 `json:"percentile"`
}

type DistributionSummary struct {
	TotalPlayers int                 `json:"totalPlayers"`
	Points       []DistributionPoint `json:"points"`
	Q1           float64             `json:"q1"`
	Median       float64             `json:"median"`
	Q3           float64             `json:"q3"`
	Mean         float64             `json:"mean"`
}

// EstimateDistribution turns the binned player-count histogram into
// cumulative count/percentile series plus interpolated quartiles and a
// weighted mean. Bands must be sorted ascending by rating. The total is the
// sum of the band counts — authoritative over any externally reported
// total, since it has to reconcile with the buckets actually shown.
func EstimateDistribution(bands []domain.RatingBand) DistributionSummary {
	total := 0
	for _, b := range bands {
		total += b.Count
	}

	points := make([]DistributionPoint, len(bands))
	cum := 0
	weighted := 0.0
	for i, b := range bands {
		cum += b.Count
		points[i] = DistributionPoint{
			Rating:     b.Rating,
			Count:      b.Count,
			Cumulative: cum,
		}
		if total > 0 {
			points[i].Percentile = 100 * float64(cum) / float64(total)
		}
		mid := b.Rating + RatingBucketWidth/2
		weighted += mid * float64(b.Count)
	}

	summary := DistributionSummary{
		TotalPlayers: total,
		Points:       points,
	}
	if total > 0 {
		summary.Mean = weighted / float64(total)
		summary.Q1 = quantileAt(points, float64(total)/4)
		summary.Median = quantileAt(points, float64(total)/2)
		summary.Q3 = quantileAt(points, 3*float64(total)/4)
	}
	return summary
}

// quantileAt finds the rating at cumulative player position p by scanning
// for the first bucket whose cumulative count reaches p and interpolating
// linearly inside it. Zero-count buckets return their start unmodified, and
// a p beyond the total falls back to the last bucket's start.
func quantileAt(points []DistributionPoint, p float64) float64 {
	for _, pt := range points {
		if float64(pt.Cumulative) < p {
			continue
		}
		if pt.Count == 0 {
			return pt.Rating
		}
		before := float64(pt.Cumulative - pt.Count)
		return pt.Rating + (p-before)/float64(pt.Count)*RatingBucketWidth
	}
	if len(points) == 0 {
		return 0
	}
	return points[len(points)-1].Rating
}
