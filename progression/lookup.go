package progression

import (
	"math/rand"

	"github.com/jsphweid/changes/dist"
	"github.com/jsphweid/changes/model"
	"github.com/jsphweid/changes/theory"
)

// Override returns the second-order row for (prev, cur) if one exists.
func Override(prev, cur model.Degree) (Table, bool) {
	t, ok := overrides[Transition{Prev: prev, Cur: cur}]
	return t, ok
}

// FirstOrder resolves the transition row for a degree with the spec'd
// fallback chain: mode table, then major table, then the tonic's row.
func FirstOrder(d model.Degree, m model.Mode) Table {
	if m == model.Minor {
		if t, ok := minorTable[d]; ok {
			return t
		}
	}
	if t, ok := majorTable[d]; ok {
		return t
	}
	if m == model.Minor {
		return minorTable[theory.Tonic(model.Minor)]
	}
	return majorTable[theory.Tonic(model.Major)]
}

// PickApproach draws an approach target by weight, excluding a target
// equal to the current degree. Declines (ok=false) when nothing is
// eligible.
func PickApproach(rng *rand.Rand, exclude model.Degree) ([]model.Degree, bool) {
	var eligible dist.Distribution[model.Degree]
	for _, a := range approaches {
		if a.Target == exclude {
			continue
		}
		eligible = append(eligible, dist.Entry[model.Degree]{Value: a.Target, Weight: a.Weight})
	}
	if len(eligible) == 0 {
		return nil, false
	}
	target := eligible.Pick(rng)
	for _, a := range approaches {
		if a.Target == target {
			seq := make([]model.Degree, len(a.Sequence))
			copy(seq, a.Sequence)
			return seq, true
		}
	}
	return nil, false
}
