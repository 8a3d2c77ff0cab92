// Package chord realizes a scale degree into a concrete chord: root
// note, quality and display name. Quality is chosen from the degree's
// functional category, colored by a hint of the likely next degree and
// widened by the complexity setting.
package chord

import (
	"math"
	"math/rand"

	"github.com/jsphweid/changes/model"
	"github.com/jsphweid/changes/theory"
)

// per-category quality options, simplest first, most altered last
var (
	secondaryDominantQualities = []string{"7", "9", "7b9", "7#11"}
	tritoneSubQualities        = []string{"7", "9", "7#11"}
	borrowedMajorQualities     = []string{"maj7", "6", "maj9"}
	minorSubdominantQualities  = []string{"m6", "m7", "m69"}
	halfDiminishedQualities    = []string{"m7b5", "dim7"}
	dominantQualities          = []string{"7", "9", "13", "7#11"}
	dominantDarkQualities      = []string{"7", "7b9", "7#9"}
	minorQualities             = []string{"m7", "m9", "m11", "m6"}
	majorTonicQualities        = []string{"maj7", "6", "maj9", "69"}
	subdominantQualities       = []string{"maj7", "6", "maj9"}
	fallbackQualities          = []string{"7", "maj7", "m7"}
)

func isSecondaryDominant(d model.Degree) bool {
	return d == "II" || d == "III" || d == "VI" || d == "#IV"
}

func inMinorQualitySet(d model.Degree, k model.Key) bool {
	switch d {
	case "ii", "iii", "vi", "v", "i":
		return true
	case "iv":
		return k.Mode == model.Minor
	}
	return false
}

// resolvesToMinor reports whether a dominant should anticipate a
// minor-quality target.
func resolvesToMinor(hint model.Degree, k model.Key) bool {
	switch hint {
	case "ii", "iii", "vi", "i", "iv", "v":
		return true
	case "I":
		return k.Mode == model.Minor
	}
	return false
}

// qualityOptions classifies a degree into its functional category and
// returns that category's option list. Case order is the fixed
// category priority.
func qualityOptions(d model.Degree, k model.Key, hint model.Degree) []string {
	switch {
	case isSecondaryDominant(d) || d == "V":
		base := dominantQualities
		if isSecondaryDominant(d) {
			base = secondaryDominantQualities
		}
		if hint == "" {
			return base
		}
		if resolvesToMinor(hint, k) {
			return dominantDarkQualities
		}
		return dominantQualities
	case d == "bII":
		return tritoneSubQualities
	case d == "bIII" || d == "bVI" || d == "bVII":
		return borrowedMajorQualities
	case d == "iv" && k.Mode != model.Minor:
		return minorSubdominantQualities
	case d == "vii" || (d == "ii" && k.Mode == model.Minor):
		return halfDiminishedQualities
	case inMinorQualitySet(d, k):
		return minorQualities
	case d == "I":
		if k.Mode == model.Minor {
			return minorQualities
		}
		return majorTonicQualities
	case d == "IV":
		return subdominantQualities
	}
	return fallbackQualities
}

// pickQuality widens the reachable slice of the option list with
// complexity. Index 0 stays reachable at every setting.
func pickQuality(options []string, complexity float64, rng *rand.Rand) string {
	maxIndex := int(math.Floor(1 + float64(len(options)-1)*complexity))
	if maxIndex < 1 {
		maxIndex = 1
	}
	i := rng.Intn(maxIndex)
	if i > len(options)-1 {
		i = len(options) - 1
	}
	return options[i]
}

// Realize produces the concrete chord for a degree in a key. The hint
// is the likely next degree and only influences dominant colors.
func Realize(k model.Key, d model.Degree, hint model.Degree, complexity float64, rng *rand.Rand) model.Chord {
	root := theory.ChordRoot(k, d)
	quality := pickQuality(qualityOptions(d, k, hint), complexity, rng)
	return model.Chord{
		Root:    root,
		Quality: quality,
		Degree:  theory.FormatDegree(d),
		DisplayName: model.DisplayName{
			Root:    root,
			Quality: theory.FormatQuality(quality),
		},
	}
}
