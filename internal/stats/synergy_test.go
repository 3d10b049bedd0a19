package stats

import (
	"math"
	"testing"
)

func ptr(v float64) *float64 { return &v }

func TestSynergy(t *testing.T) {
	tests := []struct {
		name    string
		winOne  *float64
		winTwo  *float64
		pairWin float64
		want    *float64
	}{
		{
			name:    "equal rates give zero synergy",
			winOne:  ptr(60),
			winTwo:  ptr(60),
			pairWin: 60,
			want:    ptr(0),
		},
		{
			name:    "pair overperforms baseline",
			winOne:  ptr(50),
			winTwo:  ptr(50),
			pairWin: 55,
			want:    ptr(5),
		},
		{
			name:    "pair underperforms baseline",
			winOne:  ptr(60),
			winTwo:  ptr(40),
			pairWin: 40,
			want:    ptr(40 - math.Sqrt(2400)),
		},
		{
			name:    "missing first rate",
			winOne:  nil,
			winTwo:  ptr(50),
			pairWin: 55,
			want:    nil,
		},
		{
			name:    "missing second rate",
			winOne:  ptr(50),
			winTwo:  nil,
			pairWin: 55,
			want:    nil,
		},
		{
			name:    "zero rate is undefined, not zero synergy",
			winOne:  ptr(0),
			winTwo:  ptr(50),
			pairWin: 55,
			want:    nil,
		},
		{
			name:    "negative rate is undefined",
			winOne:  ptr(-1),
			winTwo:  ptr(50),
			pairWin: 55,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Synergy(tt.winOne, tt.winTwo, tt.pairWin)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("Synergy() = %v, want %v", got, tt.want)
			}
			if got != nil && math.Abs(*got-*tt.want) > 1e-9 {
				t.Errorf("Synergy() = %v, want %v", *got, *tt.want)
			}
		})
	}
}
