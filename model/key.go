package model

type Mode string

const (
	Major Mode = "major"
	Minor Mode = "minor"
)

// Key is the active tonal center. Exactly one is live per engine;
// only the modulation step may change it.
type Key struct {
	Root string `json:"root"`
	Mode Mode   `json:"mode"`
}

// Degree is a Roman-numeral position in a key, not a chord. Case marks
// quality (ii vs II), a leading b or # marks chromatic alteration.
type Degree string

// Degrees is the closed vocabulary. Anything outside it resolves via
// the tonic fallbacks in theory/ and progression/.
var Degrees = []Degree{
	"I", "ii", "iii", "IV", "V", "vi", "vii",
	"i", "iv", "v",
	"bII", "bIII", "bVI", "bVII",
	"II", "III", "VI", "#IV",
}
