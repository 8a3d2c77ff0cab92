package theory

import (
	"errors"
	"strings"

	"github.com/jsphweid/changes/model"
)

// flat spellings throughout; sharps are normalized on parse
var noteNames = []string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

var sharpToFlat = map[string]string{
	"C#": "Db",
	"D#": "Eb",
	"F#": "Gb",
	"G#": "Ab",
	"A#": "Bb",
}

// semitone offsets for the major scale shape, used for both modes
// (degree labels differ per mode but interval-from-tonic does not)
var degreeIntervals = map[string]int{
	"I":    0,
	"BII":  1,
	"II":   2,
	"BIII": 3,
	"III":  4,
	"IV":   5,
	"V":    7,
	"BVI":  8,
	"VI":   9,
	"BVII": 10,
	"VII":  11,
}

func PitchClass(name string) (int, bool) {
	n := normalizeNote(name)
	for i, v := range noteNames {
		if v == n {
			return i, true
		}
	}
	return 0, false
}

func NoteName(pc int) string {
	return noteNames[((pc%12)+12)%12]
}

func normalizeNote(name string) string {
	n := strings.TrimSpace(name)
	if n == "" {
		return n
	}
	n = strings.ToUpper(n[:1]) + strings.ToLower(n[1:])
	n = strings.Replace(n, "♭", "b", 1)
	n = strings.Replace(n, "♯", "#", 1)
	if flat, ok := sharpToFlat[n]; ok {
		return flat
	}
	return n
}

// DegreeInterval resolves a degree token to its semitone offset from
// the tonic. A leading # adds a semitone; unknown tokens land on 0.
func DegreeInterval(d model.Degree) int {
	s := string(d)
	sharp := 0
	for strings.HasPrefix(s, "#") {
		sharp++
		s = s[1:]
	}
	iv, ok := degreeIntervals[normalizeNumeral(s)]
	if !ok {
		iv = 0
	}
	return (iv + sharp) % 12
}

func normalizeNumeral(s string) string {
	// keep a leading flat marker lowercase, upcase the numeral
	if strings.HasPrefix(s, "b") {
		return "B" + strings.ToUpper(s[1:])
	}
	return strings.ToUpper(s)
}

// ChordRoot places a degree in a key and returns the absolute note name.
func ChordRoot(k model.Key, d model.Degree) string {
	pc, ok := PitchClass(k.Root)
	if !ok {
		pc = 0
	}
	return NoteName(pc + DegreeInterval(d))
}

func Tonic(m model.Mode) model.Degree {
	if m == model.Minor {
		return "i"
	}
	return "I"
}

// NormalizeKey validates a key at the configuration boundary and
// rewrites the root to its canonical flat spelling.
func NormalizeKey(k model.Key) (model.Key, error) {
	pc, ok := PitchClass(k.Root)
	if !ok {
		return k, errors.New("unrecognized key root: " + k.Root)
	}
	if k.Mode != model.Major && k.Mode != model.Minor {
		return k, errors.New("unrecognized mode: " + string(k.Mode))
	}
	k.Root = NoteName(pc)
	return k, nil
}

// ParseKey reads strings like "Bb", "F#m", "ebm". A trailing m marks
// minor. Unrecognized roots are an error so callers can reject bad
// input at the boundary.
func ParseKey(s string) (model.Key, error) {
	var k model.Key
	s = strings.TrimSpace(s)
	if s == "" {
		return k, errors.New("empty key")
	}
	k.Mode = model.Major
	if strings.HasSuffix(s, "m") && len(s) > 1 {
		k.Mode = model.Minor
		s = s[:len(s)-1]
	}
	pc, ok := PitchClass(s)
	if !ok {
		return k, errors.New("unrecognized key root: " + s)
	}
	k.Root = NoteName(pc)
	return k, nil
}
