package stats

import (
	"math"
	"testing"

	"abilitydraft-stats/internal/domain"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestBuildCurveSingleRow(t *testing.T) {
	rows := []domain.PickPositionStat{
		{Pick: 1, Total: 10, Wins: 6, Winrate: 0.6, WilsonLower: 0.4, WilsonUpper: 0.8},
	}

	points := BuildCurve(rows)
	if len(points) != CurveLength {
		t.Fatalf("got %d points, want %d", len(points), CurveLength)
	}

	first := points[0]
	if !almostEqual(first.PickRate, 100) {
		t.Errorf("position 1 pick rate = %v, want 100", first.PickRate)
	}
	if !almostEqual(first.Winrate, 60) {
		t.Errorf("position 1 win rate = %v, want 60", first.Winrate)
	}
	if !almostEqual(first.WilsonLower, 40) || !almostEqual(first.WilsonUpper, 80) {
		t.Errorf("position 1 wilson = [%v, %v], want [40, 80]", first.WilsonLower, first.WilsonUpper)
	}

	second := points[1]
	if !almostEqual(second.PickRate, 0) {
		t.Errorf("position 2 pick rate = %v, want 0", second.PickRate)
	}
	if !almostEqual(second.Winrate, 50) {
		t.Errorf("position 2 win rate = %v, want the neutral 50", second.Winrate)
	}
	if !almostEqual(second.WilsonLower, 0) || !almostEqual(second.WilsonUpper, 100) {
		t.Errorf("position 2 wilson = [%v, %v], want [0, 100]", second.WilsonLower, second.WilsonUpper)
	}

	last := points[CurveLength-1]
	if !almostEqual(last.CumulativePickRate, 100) {
		t.Errorf("position 40 cumulative pick rate = %v, want 100", last.CumulativePickRate)
	}
	if !almostEqual(last.CumulativeWinrate, 60) {
		t.Errorf("position 40 cumulative win rate = %v, want 60", last.CumulativeWinrate)
	}
}

func TestBuildCurveCumulative(t *testing.T) {
	rows := []domain.PickPositionStat{
		{Pick: 1, Total: 10, Wins: 2, Winrate: 0.2, WilsonLower: 0.1, WilsonUpper: 0.4},
		{Pick: 3, Total: 30, Wins: 18, Winrate: 0.6, WilsonLower: 0.4, WilsonUpper: 0.75},
	}

	points := BuildCurve(rows)

	// Position 1: 10 of 40 picks.
	if !almostEqual(points[0].PickRate, 25) {
		t.Errorf("position 1 pick rate = %v, want 25", points[0].PickRate)
	}
	if !almostEqual(points[0].CumulativePickRate, 25) {
		t.Errorf("position 1 cumulative pick rate = %v, want 25", points[0].CumulativePickRate)
	}

	// Position 2 has no data: pick rate 0, cumulative carries forward.
	if !almostEqual(points[1].PickRate, 0) || !almostEqual(points[1].CumulativePickRate, 25) {
		t.Errorf("position 2 = %+v, want pick rate 0, cumulative 25", points[1])
	}
	// 2 wins of 10 cumulative.
	if !almostEqual(points[1].CumulativeWinrate, 20) {
		t.Errorf("position 2 cumulative win rate = %v, want 20", points[1].CumulativeWinrate)
	}

	// Position 3: all observations seen, 20 wins of 40.
	if !almostEqual(points[2].CumulativePickRate, 100) {
		t.Errorf("position 3 cumulative pick rate = %v, want 100", points[2].CumulativePickRate)
	}
	if !almostEqual(points[2].CumulativeWinrate, 50) {
		t.Errorf("position 3 cumulative win rate = %v, want 50", points[2].CumulativeWinrate)
	}
}

func TestBuildCurveEmpty(t *testing.T) {
	points := BuildCurve(nil)
	if len(points) != CurveLength {
		t.Fatalf("got %d points, want %d", len(points), CurveLength)
	}
	for _, p := range points {
		if !almostEqual(p.PickRate, 0) || !almostEqual(p.CumulativePickRate, 0) {
			t.Fatalf("pick %d: rates %+v, want zeros", p.Pick, p)
		}
		if !almostEqual(p.Winrate, 50) || !almostEqual(p.CumulativeWinrate, 50) {
			t.Fatalf("pick %d: win rates %+v, want neutral 50", p.Pick, p)
		}
		if !almostEqual(p.WilsonLower, 0) || !almostEqual(p.WilsonUpper, 100) {
			t.Fatalf("pick %d: wilson %+v, want [0, 100]", p.Pick, p)
		}
	}
}
