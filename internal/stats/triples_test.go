package stats

import (
	"testing"

	"abilitydraft-stats/internal/domain"
)

// testOwner maps slot ids to owning heroes: negative ids own themselves,
// positive ids per the table, everything else unknown.
func testOwner(owners map[int32]int32) OwnerFunc {
	return func(id int32) (int32, bool) {
		if id < 0 {
			return -id, true
		}
		owner, ok := owners[id]
		return owner, ok
	}
}

func TestDetectThresholdAsymmetry(t *testing.T) {
	// Abilities 1, 2, 3 owned by three distinct heroes.
	noOverlap := testOwner(map[int32]int32{1: 10, 2: 20, 3: 30})
	// Abilities 1 and 3 owned by the same hero.
	overlap := testOwner(map[int32]int32{1: 10, 2: 20, 3: 10})

	pairPicks := map[PairKey]int{
		NewPairKey(1, 2): 1000,
		NewPairKey(1, 3): 1000,
		NewPairKey(2, 3): 1000,
	}
	triplets := []domain.TripletStat{
		{AbilityOne: 1, AbilityTwo: 2, AbilityThree: 3, Picks: 1, Winrate: 0.55},
	}

	t.Run("no hero overlap flags at near-zero bar", func(t *testing.T) {
		// threshold = 0.0001 * 1000 = 0.1, and 1 >= 0.1
		found := NewTripleDetector(noOverlap).Detect(triplets, pairPicks)
		for _, key := range []PairKey{NewPairKey(1, 2), NewPairKey(1, 3), NewPairKey(2, 3)} {
			if len(found[key]) != 1 {
				t.Errorf("pair %v: got %d hidden triples, want 1", key, len(found[key]))
			}
		}
	})

	t.Run("hero overlap requires a large share", func(t *testing.T) {
		// threshold = 0.60 * 1000 = 600, and 1 < 600
		found := NewTripleDetector(overlap).Detect(triplets, pairPicks)
		if len(found) != 0 {
			t.Errorf("got %d flagged pairs, want 0", len(found))
		}
	})

	t.Run("hero overlap still flags above the large share", func(t *testing.T) {
		big := []domain.TripletStat{
			{AbilityOne: 1, AbilityTwo: 2, AbilityThree: 3, Picks: 600, Winrate: 0.55},
		}
		found := NewTripleDetector(overlap).Detect(big, pairPicks)
		if len(found[NewPairKey(1, 2)]) != 1 {
			t.Errorf("got %d hidden triples for (1,2), want 1", len(found[NewPairKey(1, 2)]))
		}
	})
}

func TestDetectHiddenMemberAssignment(t *testing.T) {
	owner := testOwner(map[int32]int32{1: 10, 2: 20, 3: 30})
	pairPicks := map[PairKey]int{
		NewPairKey(1, 2): 100,
		NewPairKey(1, 3): 100,
		NewPairKey(2, 3): 100,
	}
	triplets := []domain.TripletStat{
		{AbilityOne: 1, AbilityTwo: 2, AbilityThree: 3, Picks: 50, Winrate: 0.61},
	}

	found := NewTripleDetector(owner).Detect(triplets, pairPicks)

	wantHidden := map[PairKey]int32{
		NewPairKey(1, 2): 3,
		NewPairKey(1, 3): 2,
		NewPairKey(2, 3): 1,
	}
	for key, hidden := range wantHidden {
		entries := found[key]
		if len(entries) != 1 {
			t.Fatalf("pair %v: got %d entries, want 1", key, len(entries))
		}
		if entries[0].HiddenID != hidden {
			t.Errorf("pair %v: hidden = %d, want %d", key, entries[0].HiddenID, hidden)
		}
		if entries[0].Picks != 50 || entries[0].Winrate != 0.61 {
			t.Errorf("pair %v: entry = %+v, want picks 50 winrate 0.61", key, entries[0])
		}
	}
}

func TestDetectHeroBodyOverlap(t *testing.T) {
	// Slot -10 is hero 10's body; ability 1 belongs to hero 10. The pair
	// and the body overlap, so the same-hero share applies.
	owner := testOwner(map[int32]int32{1: 10, 2: 20})
	pairPicks := map[PairKey]int{NewPairKey(1, 2): 1000}
	triplets := []domain.TripletStat{
		{AbilityOne: -10, AbilityTwo: 1, AbilityThree: 2, Picks: 1, Winrate: 0.5},
	}

	found := NewTripleDetector(owner).Detect(triplets, pairPicks)
	if len(found[NewPairKey(1, 2)]) != 0 {
		t.Errorf("expected same-hero share to suppress the (1,2) flag, got %+v", found[NewPairKey(1, 2)])
	}
}

func TestDetectUnknownOwnersNeverOverlap(t *testing.T) {
	// No ownership data at all: the near-zero share applies.
	owner := testOwner(nil)
	pairPicks := map[PairKey]int{NewPairKey(1, 2): 1000}
	triplets := []domain.TripletStat{
		{AbilityOne: 1, AbilityTwo: 2, AbilityThree: 3, Picks: 1, Winrate: 0.5},
	}

	found := NewTripleDetector(owner).Detect(triplets, pairPicks)
	if len(found[NewPairKey(1, 2)]) != 1 {
		t.Errorf("got %d entries for (1,2), want 1", len(found[NewPairKey(1, 2)]))
	}
}

func TestPairKeyOrderInsensitive(t *testing.T) {
	if NewPairKey(5, 2) != NewPairKey(2, 5) {
		t.Error("NewPairKey should normalize member order")
	}
	if NewPairKey(2, 5).Other(2) != 5 || NewPairKey(2, 5).Other(5) != 2 {
		t.Error("Other should return the opposite member")
	}
}
