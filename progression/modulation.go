package progression

import (
	"math/rand"

	"github.com/jsphweid/changes/dist"
	"github.com/jsphweid/changes/model"
	"github.com/jsphweid/changes/theory"
)

type ModulationType string

const (
	FifthUp   ModulationType = "fifth_up"
	FifthDown ModulationType = "fifth_down"
	Relative  ModulationType = "relative"
	Parallel  ModulationType = "parallel"
	Tritone   ModulationType = "tritone"
	StepUp    ModulationType = "step_up"
	StepDown  ModulationType = "step_down"
)

var modulations = dist.Distribution[ModulationType]{
	{Value: FifthUp, Weight: 0.25},
	{Value: FifthDown, Weight: 0.25},
	{Value: Relative, Weight: 0.20},
	{Value: Parallel, Weight: 0.15},
	{Value: Tritone, Weight: 0.08},
	{Value: StepUp, Weight: 0.04},
	{Value: StepDown, Weight: 0.03},
}

func PickModulation(rng *rand.Rand) ModulationType {
	return modulations.Pick(rng)
}

// ApplyModulation computes the destination key. Mode only flips for
// relative and parallel moves.
func ApplyModulation(k model.Key, t ModulationType) model.Key {
	pc, ok := theory.PitchClass(k.Root)
	if !ok {
		pc = 0
	}
	res := k
	switch t {
	case FifthUp:
		res.Root = theory.NoteName(pc + 7)
	case FifthDown:
		res.Root = theory.NoteName(pc + 5)
	case Relative:
		if k.Mode == model.Major {
			res.Root = theory.NoteName(pc + 9)
			res.Mode = model.Minor
		} else {
			res.Root = theory.NoteName(pc + 3)
			res.Mode = model.Major
		}
	case Parallel:
		if k.Mode == model.Major {
			res.Mode = model.Minor
		} else {
			res.Mode = model.Major
		}
	case Tritone:
		res.Root = theory.NoteName(pc + 6)
	case StepUp:
		res.Root = theory.NoteName(pc + 2)
	case StepDown:
		res.Root = theory.NoteName(pc + 10)
	}
	return res
}

// common jazz roots for a fresh session
var startingRoots = []string{"C", "F", "Bb", "Eb", "Ab", "G", "D", "A"}

// RandomKey picks a starting key: roots equally likely, major 3 times
// out of 4.
func RandomKey(rng *rand.Rand) model.Key {
	k := model.Key{
		Root: startingRoots[rng.Intn(len(startingRoots))],
		Mode: model.Major,
	}
	if rng.Float64() < 0.25 {
		k.Mode = model.Minor
	}
	return k
}
