// Package stats implements the derived-metrics layer: synergy scores,
// hidden-triple detection, pick/win-rate curves and rating distribution
// estimation. Everything here is a pure single-pass transform over the
// upstream aggregates; nothing mutates its inputs.
package stats

// PairKey identifies an unordered ability pair. A is always the smaller
// id, so (x,y) and (y,x) map to the same key.
type PairKey struct {
	A int32
	B int32
}

func NewPairKey(x, y int32) PairKey {
	if x > y {
		x, y = y, x
	}
	return PairKey{A: x, B: y}
}

// Other returns the pair member that is not id. Callers must pass a member
// of the pair.
func (k PairKey) Other(id int32) int32 {
	if k.A == id {
		return k.B
	}
	return k.A
}
