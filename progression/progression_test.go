package progression

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/changes/model"
	"github.com/jsphweid/changes/theory"
)

func TestFirstOrderUsesModeTable(t *testing.T) {
	assert := assert.New(t)

	major := FirstOrder("I", model.Major)
	assert.Equal(majorTable["I"], major)

	minor := FirstOrder("i", model.Minor)
	assert.Equal(minorTable["i"], minor)
}

func TestFirstOrderMinorFallsBackToMajor(t *testing.T) {
	// vi has no minor row, so the major row applies
	assert.Equal(t, majorTable["vi"], FirstOrder("vi", model.Minor))
}

func TestFirstOrderUnknownDegreeFallsBackToTonic(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(majorTable["I"], FirstOrder("XYZ", model.Major))
	assert.Equal(minorTable["i"], FirstOrder("XYZ", model.Minor))
}

func TestOverride(t *testing.T) {
	assert := assert.New(t)

	table, ok := Override("ii", "V")
	assert.True(ok)
	assert.Equal(model.Degree("I"), table.MostProbable())

	_, ok = Override("I", "iii")
	assert.False(ok)
}

func TestApplyModulationArithmetic(t *testing.T) {
	cMajor := model.Key{Root: "C", Mode: model.Major}
	cases := []struct {
		mod  ModulationType
		want model.Key
	}{
		{FifthUp, model.Key{Root: "G", Mode: model.Major}},
		{FifthDown, model.Key{Root: "F", Mode: model.Major}},
		{Relative, model.Key{Root: "A", Mode: model.Minor}},
		{Parallel, model.Key{Root: "C", Mode: model.Minor}},
		{Tritone, model.Key{Root: "Gb", Mode: model.Major}},
		{StepUp, model.Key{Root: "D", Mode: model.Major}},
		{StepDown, model.Key{Root: "Bb", Mode: model.Major}},
	}
	for _, c := range cases {
		if got := ApplyModulation(cMajor, c.mod); got != c.want {
			t.Errorf("ApplyModulation(C major, %v) = %v, want %v", c.mod, got, c.want)
		}
	}
}

func TestApplyModulationRelativeFromMinor(t *testing.T) {
	aMinor := model.Key{Root: "A", Mode: model.Minor}
	assert.Equal(t, model.Key{Root: "C", Mode: model.Major}, ApplyModulation(aMinor, Relative))
}

func TestPickApproachExcludesCurrentDegree(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		seq, ok := PickApproach(rng, "I")
		if !ok {
			t.Fatal("approach declined with eligible targets remaining")
		}
		if seq[len(seq)-1] == "I" {
			t.Fatal("picked the excluded target")
		}
	}
}

func TestApproachSequencesEndAtTarget(t *testing.T) {
	for _, a := range approaches {
		assert.Equal(t, a.Target, a.Sequence[len(a.Sequence)-1])
		assert.Len(t, a.Sequence, 3)
	}
}

func TestTablesAreWellFormed(t *testing.T) {
	known := make(map[model.Degree]bool)
	for _, d := range model.Degrees {
		known[d] = true
	}

	check := func(name string, table Table) {
		total := 0.0
		for _, e := range table {
			if !known[e.Value] {
				t.Errorf("%v: destination %v not in vocabulary", name, e.Value)
			}
			if e.Weight <= 0 {
				t.Errorf("%v: non-positive weight for %v", name, e.Value)
			}
			total += e.Weight
		}
		if total <= 0 {
			t.Errorf("%v: empty or zero-sum table", name)
		}
	}

	for d, table := range majorTable {
		if !known[d] {
			t.Errorf("major table keyed by unknown degree %v", d)
		}
		check("major/"+string(d), table)
	}
	for d, table := range minorTable {
		check("minor/"+string(d), table)
	}
	for tr, table := range overrides {
		check("override/"+string(tr.Prev)+">"+string(tr.Cur), table)
	}
}

func TestRandomKey(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	roots := make(map[string]bool)
	minors := 0
	for i := 0; i < 4000; i++ {
		k := RandomKey(rng)
		roots[k.Root] = true
		if _, ok := theory.PitchClass(k.Root); !ok {
			t.Fatalf("unparseable root %v", k.Root)
		}
		if k.Mode == model.Minor {
			minors++
		}
	}

	assert := assert.New(t)
	assert.Len(roots, len(startingRoots))
	assert.InDelta(0.25, float64(minors)/4000, 0.03)
}
