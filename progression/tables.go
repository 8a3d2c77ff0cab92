// Package progression holds the static harmonic model: per-mode
// first-order degree transition tables, second-order overrides,
// approach sequences and the modulation table. Tables are shared and
// read-only; shaping always happens on copies (see dist).
package progression

import (
	"github.com/jsphweid/changes/dist"
	"github.com/jsphweid/changes/model"
)

type Table = dist.Distribution[model.Degree]

// first-order transitions in a major key
var majorTable = map[model.Degree]Table{
	"I":    {{Value: "ii", Weight: 0.22}, {Value: "IV", Weight: 0.16}, {Value: "V", Weight: 0.14}, {Value: "vi", Weight: 0.14}, {Value: "iii", Weight: 0.08}, {Value: "bVII", Weight: 0.06}, {Value: "II", Weight: 0.05}, {Value: "#IV", Weight: 0.04}, {Value: "bII", Weight: 0.03}, {Value: "bVI", Weight: 0.03}, {Value: "vii", Weight: 0.03}, {Value: "bIII", Weight: 0.02}},
	"ii":   {{Value: "V", Weight: 0.50}, {Value: "I", Weight: 0.10}, {Value: "bII", Weight: 0.12}, {Value: "vii", Weight: 0.08}, {Value: "IV", Weight: 0.08}, {Value: "iii", Weight: 0.07}, {Value: "#IV", Weight: 0.05}},
	"iii":  {{Value: "vi", Weight: 0.35}, {Value: "ii", Weight: 0.20}, {Value: "IV", Weight: 0.15}, {Value: "VI", Weight: 0.10}, {Value: "I", Weight: 0.10}, {Value: "bIII", Weight: 0.10}},
	"IV":   {{Value: "V", Weight: 0.25}, {Value: "I", Weight: 0.20}, {Value: "ii", Weight: 0.15}, {Value: "iv", Weight: 0.12}, {Value: "vii", Weight: 0.08}, {Value: "#IV", Weight: 0.08}, {Value: "bVII", Weight: 0.07}, {Value: "III", Weight: 0.05}},
	"V":    {{Value: "I", Weight: 0.55}, {Value: "vi", Weight: 0.15}, {Value: "iii", Weight: 0.08}, {Value: "bVI", Weight: 0.06}, {Value: "ii", Weight: 0.06}, {Value: "IV", Weight: 0.05}, {Value: "bII", Weight: 0.05}},
	"vi":   {{Value: "ii", Weight: 0.35}, {Value: "IV", Weight: 0.18}, {Value: "V", Weight: 0.12}, {Value: "iii", Weight: 0.10}, {Value: "II", Weight: 0.10}, {Value: "bVI", Weight: 0.08}, {Value: "I", Weight: 0.07}},
	"vii":  {{Value: "I", Weight: 0.50}, {Value: "iii", Weight: 0.20}, {Value: "V", Weight: 0.15}, {Value: "vi", Weight: 0.15}},
	"bII":  {{Value: "I", Weight: 0.65}, {Value: "vi", Weight: 0.15}, {Value: "ii", Weight: 0.10}, {Value: "bIII", Weight: 0.10}},
	"bIII": {{Value: "bVI", Weight: 0.30}, {Value: "IV", Weight: 0.20}, {Value: "ii", Weight: 0.20}, {Value: "I", Weight: 0.20}, {Value: "bVII", Weight: 0.10}},
	"bVI":  {{Value: "bVII", Weight: 0.40}, {Value: "I", Weight: 0.25}, {Value: "V", Weight: 0.20}, {Value: "bII", Weight: 0.15}},
	"bVII": {{Value: "I", Weight: 0.45}, {Value: "IV", Weight: 0.20}, {Value: "V", Weight: 0.15}, {Value: "bVI", Weight: 0.10}, {Value: "ii", Weight: 0.10}},
	"iv":   {{Value: "I", Weight: 0.35}, {Value: "bVII", Weight: 0.25}, {Value: "V", Weight: 0.20}, {Value: "ii", Weight: 0.10}, {Value: "bVI", Weight: 0.10}},
	"II":   {{Value: "V", Weight: 0.60}, {Value: "ii", Weight: 0.20}, {Value: "IV", Weight: 0.10}, {Value: "bII", Weight: 0.10}},
	"III":  {{Value: "vi", Weight: 0.70}, {Value: "IV", Weight: 0.15}, {Value: "ii", Weight: 0.15}},
	"VI":   {{Value: "ii", Weight: 0.65}, {Value: "IV", Weight: 0.15}, {Value: "V", Weight: 0.10}, {Value: "bII", Weight: 0.10}},
	"#IV":  {{Value: "V", Weight: 0.40}, {Value: "IV", Weight: 0.25}, {Value: "I", Weight: 0.20}, {Value: "bVII", Weight: 0.15}},
}

// first-order transitions in a minor key; degrees missing here fall
// back to the major table by token
var minorTable = map[model.Degree]Table{
	"i":    {{Value: "iv", Weight: 0.25}, {Value: "ii", Weight: 0.18}, {Value: "bVI", Weight: 0.14}, {Value: "V", Weight: 0.14}, {Value: "bVII", Weight: 0.12}, {Value: "bIII", Weight: 0.09}, {Value: "bII", Weight: 0.04}, {Value: "v", Weight: 0.04}},
	"ii":   {{Value: "V", Weight: 0.55}, {Value: "bII", Weight: 0.15}, {Value: "i", Weight: 0.10}, {Value: "iv", Weight: 0.10}, {Value: "bVI", Weight: 0.10}},
	"bIII": {{Value: "bVI", Weight: 0.35}, {Value: "iv", Weight: 0.25}, {Value: "ii", Weight: 0.20}, {Value: "i", Weight: 0.20}},
	"iv":   {{Value: "V", Weight: 0.30}, {Value: "i", Weight: 0.25}, {Value: "ii", Weight: 0.15}, {Value: "bVII", Weight: 0.15}, {Value: "bVI", Weight: 0.10}, {Value: "bII", Weight: 0.05}},
	"v":    {{Value: "i", Weight: 0.40}, {Value: "iv", Weight: 0.25}, {Value: "bVI", Weight: 0.20}, {Value: "bVII", Weight: 0.15}},
	"V":    {{Value: "i", Weight: 0.60}, {Value: "bVI", Weight: 0.15}, {Value: "iv", Weight: 0.10}, {Value: "bII", Weight: 0.08}, {Value: "bIII", Weight: 0.07}},
	"bVI":  {{Value: "ii", Weight: 0.25}, {Value: "V", Weight: 0.25}, {Value: "bVII", Weight: 0.20}, {Value: "i", Weight: 0.15}, {Value: "iv", Weight: 0.15}},
	"bVII": {{Value: "bIII", Weight: 0.30}, {Value: "i", Weight: 0.30}, {Value: "bVI", Weight: 0.20}, {Value: "V", Weight: 0.20}},
}

type Transition struct {
	Prev model.Degree
	Cur  model.Degree
}

// second-order overrides: when the last two degrees match, this table
// fully replaces the first-order row (no blending)
var overrides = map[Transition]Table{
	{"ii", "V"}:    {{Value: "I", Weight: 0.70}, {Value: "vi", Weight: 0.12}, {Value: "bVI", Weight: 0.08}, {Value: "iii", Weight: 0.05}, {Value: "bII", Weight: 0.05}},
	{"IV", "V"}:    {{Value: "I", Weight: 0.60}, {Value: "vi", Weight: 0.20}, {Value: "iii", Weight: 0.10}, {Value: "IV", Weight: 0.10}},
	{"I", "vi"}:    {{Value: "ii", Weight: 0.50}, {Value: "IV", Weight: 0.30}, {Value: "V", Weight: 0.20}},
	{"vi", "ii"}:   {{Value: "V", Weight: 0.75}, {Value: "bII", Weight: 0.15}, {Value: "vii", Weight: 0.10}},
	{"V", "I"}:     {{Value: "IV", Weight: 0.25}, {Value: "ii", Weight: 0.25}, {Value: "vi", Weight: 0.20}, {Value: "I", Weight: 0.15}, {Value: "bVII", Weight: 0.15}},
	{"II", "V"}:    {{Value: "I", Weight: 0.65}, {Value: "vi", Weight: 0.20}, {Value: "iii", Weight: 0.15}},
	{"i", "iv"}:    {{Value: "V", Weight: 0.45}, {Value: "bVII", Weight: 0.25}, {Value: "ii", Weight: 0.20}, {Value: "bII", Weight: 0.10}},
	{"iv", "V"}:    {{Value: "i", Weight: 0.70}, {Value: "bVI", Weight: 0.20}, {Value: "bII", Weight: 0.10}},
	{"bVI", "bVII"}: {{Value: "I", Weight: 0.80}, {Value: "bIII", Weight: 0.20}},
}

type Approach struct {
	Target   model.Degree
	Weight   float64
	Sequence []model.Degree
}

// fixed multi-chord approach patterns; each sequence ends at its target
var approaches = []Approach{
	{Target: "I", Weight: 0.40, Sequence: []model.Degree{"ii", "V", "I"}},
	{Target: "V", Weight: 0.25, Sequence: []model.Degree{"vi", "II", "V"}},
	{Target: "ii", Weight: 0.20, Sequence: []model.Degree{"iii", "VI", "ii"}},
	{Target: "vi", Weight: 0.15, Sequence: []model.Degree{"vii", "III", "vi"}},
}
