package stats

import (
	"abilitydraft-stats/internal/domain"
)

// Share of a pair's picks a triplet must reach to be flagged. The bar is
// much higher when any two triplet members share a hero. Policy constants,
// not derived values.
const (
	sameHeroTripleShare  = 0.60
	crossHeroTripleShare = 0.0001
)

// OwnerFunc reports the owning hero of a slot id, if known. Must be the
// same resolution rule used for pair-level filtering (catalog.OwnerOf).
type OwnerFunc func(abilityID int32) (int32, bool)

// HiddenTriple flags that a pair's apparent synergy may be explained by a
// frequently co-picked third slot. Winrate is the triplet's own rate; the
// shift against the pair is computed by the consumer.
type HiddenTriple struct {
	Pair     PairKey
	HiddenID int32
	Picks    int
	Winrate  float64
}

type TripleDetector struct {
	owner OwnerFunc
}

func NewTripleDetector(owner OwnerFunc) *TripleDetector {
	return &TripleDetector{owner: owner}
}

// Detect expands every triplet into its three implied pairs, with the
// remaining member as the hidden companion, and keeps the ones whose triplet
// pick count clears the pair-relative threshold. Results are keyed by the
// sorted pair id.
func (d *TripleDetector) Detect(triplets []domain.TripletStat, pairPicks map[PairKey]int) map[PairKey][]HiddenTriple {
	found := make(map[PairKey][]HiddenTriple)

	for _, t := range triplets {
		share := crossHeroTripleShare
		if d.anyTwoShareHero(t.AbilityOne, t.AbilityTwo, t.AbilityThree) {
			share = sameHeroTripleShare
		}

		candidates := [3]struct {
			pair   PairKey
			hidden int32
		}{
			{NewPairKey(t.AbilityOne, t.AbilityTwo), t.AbilityThree},
			{NewPairKey(t.AbilityOne, t.AbilityThree), t.AbilityTwo},
			{NewPairKey(t.AbilityTwo, t.AbilityThree), t.AbilityOne},
		}

		for _, cand := range candidates {
			threshold := share * float64(pairPicks[cand.pair])
			if float64(t.Picks) < threshold {
				continue
			}
			found[cand.pair] = append(found[cand.pair], HiddenTriple{
				Pair:     cand.pair,
				HiddenID: cand.hidden,
				Picks:    t.Picks,
				Winrate:  t.Winrate,
			})
		}
	}

	return found
}

// anyTwoShareHero is the "any two of three" overlap test: true when at
// least two of the ids resolve to the same owning hero. Unknown owners
// never match.
func (d *TripleDetector) anyTwoShareHero(a, b, c int32) bool {
	return d.shareHero(a, b) || d.shareHero(a, c) || d.shareHero(b, c)
}

func (d *TripleDetector) shareHero(x, y int32) bool {
	ox, okx := d.owner(x)
	if !okx {
		return false
	}
	oy, oky := d.owner(y)
	return oky && ox == oy
}

// SharesHero reports whether two slot ids belong to the same hero, by the
// detector's ownership rule.
func (d *TripleDetector) SharesHero(x, y int32) bool {
	return d.shareHero(x, y)
}
