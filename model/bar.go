package model

type DisplayName struct {
	Root    string `json:"root"`
	Quality string `json:"quality"`
}

// Chord is immutable once realized. Root is an enharmonic-normalized
// note name, Quality the raw token (e.g. "m7b5"), Degree the
// display-formatted numeral (e.g. "♭II").
type Chord struct {
	Root        string      `json:"root"`
	Quality     string      `json:"quality"`
	Degree      string      `json:"degree"`
	DisplayName DisplayName `json:"displayName"`
}

type Bar struct {
	Number     int     `json:"number"`
	Chords     []Chord `json:"chords"`
	Key        Key     `json:"key"`
	KeyChanged bool    `json:"keyChanged"`
}
